package ride

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Availableperson/nexa/internal/domain"
	"github.com/Availableperson/nexa/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// genericDispatchError hides downstream detail from the caller.
const genericDispatchError = "не удалось отправить заявку, попробуйте ещё раз"

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	if errors.Is(err, e.ErrInvalidInput) {
		l.Warn("ride request rejected", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, domain.ErrorResponse{Status: "error", Message: err.Error()})
		return
	}

	l.Error("ride dispatch failed", slog.Any("error", err))
	h.writeJSON(w, http.StatusInternalServerError, domain.ErrorResponse{Status: "error", Message: genericDispatchError})
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
