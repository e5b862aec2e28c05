package bot

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/Availableperson/nexa/internal/domain"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, upd domain.Update) error
}

type Handler struct {
	logger *slog.Logger
	Bot    UpdateHandler
}

func NewHandler(logger *slog.Logger, bot UpdateHandler) *Handler {
	return &Handler{
		logger: logger,
		Bot:    bot,
	}
}

// Webhook receives pushed Telegram updates. It always acks with 200 so the
// platform does not redeliver; failures are only logged.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var upd domain.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		l.Warn("invalid update payload", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := h.Bot.HandleUpdate(r.Context(), upd); err != nil {
		l.Error("update handling failed",
			slog.Int64("update_id", upd.UpdateID),
			slog.Any("error", err),
		)
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}
