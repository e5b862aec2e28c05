package service

import (
	"context"
	"strings"

	"log/slog"

	"github.com/Availableperson/nexa/internal/domain"
)

const (
	welcomeText  = "Привет! 🚖 NexaRide вызовет машину в пару касаний.\nНажмите кнопку, чтобы открыть приложение."
	openAppLabel = "🚖 Открыть NexaRide"
)

type botService struct {
	notifier  Notifier
	logger    *slog.Logger
	webAppURL string
}

func NewBotService(notifier Notifier, logger *slog.Logger, webAppURL string) BotService {
	return &botService{
		notifier:  notifier,
		logger:    logger,
		webAppURL: webAppURL,
	}
}

// HandleUpdate replies to /start with a web-app button; all other updates are
// ignored.
func (s *botService) HandleUpdate(ctx context.Context, upd domain.Update) error {
	if upd.Message == nil {
		return nil
	}

	cmd, _, _ := strings.Cut(strings.TrimSpace(upd.Message.Text), " ")
	cmd, _, _ = strings.Cut(cmd, "@") // handle "/start@SomeBot"
	if cmd != "/start" {
		s.logger.Debug("ignoring update",
			slog.Int64("update_id", upd.UpdateID),
			slog.Int64("chat_id", upd.Message.Chat.ID),
		)
		return nil
	}

	s.logger.Info("start command received", slog.Int64("chat_id", upd.Message.Chat.ID))
	return s.notifier.SendWebAppButton(ctx, upd.Message.Chat.ID, welcomeText, openAppLabel, s.webAppURL)
}
