package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Availableperson/nexa/internal/api"
	"github.com/Availableperson/nexa/internal/config"
	"github.com/Availableperson/nexa/internal/render"
	"github.com/Availableperson/nexa/internal/service"
	"github.com/Availableperson/nexa/internal/telegram"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Telegram   *telegram.Client
	Poller     *telegram.Poller // nil in webhook transport
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Telegram client")
	tg := telegram.New(logger, cfg.Telegram)

	rideSvc := service.NewRideService(tg, logger, cfg.Telegram.ChatID)
	uploadSvc := service.NewUploadService(logger, cfg.Upload.Dir)
	botSvc := service.NewBotService(tg, logger, cfg.WebApp.PublicURL)

	svc := service.NewService(rideSvc, uploadSvc, botSvc)

	renderer, err := render.NewRenderer(cfg.WebApp.TemplatesGlob)
	if err != nil {
		logger.Warn("templates unavailable, using plain status page", slog.Any("error", err))
		renderer = nil
	}

	httpServer := api.NewServer(cfg, logger, svc, renderer)
	logger.Info("Initialized server")

	var poller *telegram.Poller
	switch cfg.Telegram.Transport {
	case config.TransportWebhook:
		url := strings.TrimRight(cfg.Telegram.WebhookPublicURL, "/") + "/webhook"
		if err := tg.SetWebhook(ctx, url, cfg.Telegram.WebhookSecret); err != nil {
			return nil, fmt.Errorf("failed to register webhook: %w", err)
		}
	case config.TransportPolling:
		if err := tg.DeleteWebhook(ctx); err != nil {
			logger.Warn("deleteWebhook failed, polling may see no updates", slog.Any("error", err))
		}
		poller = telegram.NewPoller(logger, tg, botSvc, cfg.Telegram.PollTimeout)
	}

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Telegram:   tg,
		Poller:     poller,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Завершение работы компонентов началось")

	if c.Telegram != nil {
		c.Telegram.Close()
	}

	c.logger.Info("Все компоненты успешно завершили работу",
		slog.Duration("latency", time.Since(start)))
}
