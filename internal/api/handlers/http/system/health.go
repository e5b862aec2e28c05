package system

import (
	"net/http"

	"log/slog"

	"github.com/Availableperson/nexa/internal/render"
)

type Handler struct {
	logger   *slog.Logger
	renderer *render.Renderer
}

func NewHandler(logger *slog.Logger, renderer *render.Renderer) *Handler {
	return &Handler{
		logger:   logger,
		renderer: renderer,
	}
}

// Index serves the mini-app page, falling back to a plain status line when
// templates are unavailable.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if h.renderer != nil {
		err := h.renderer.Render(w, "index.html", nil)
		if err == nil {
			return
		}
		h.logger.Error("render index failed", slog.Any("error", err))
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("NexaRide relay is running"))
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
