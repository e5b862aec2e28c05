package ride

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/Availableperson/nexa/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type RideSubmitter interface {
	SubmitRide(ctx context.Context, req domain.RideRequest) (domain.RideAccepted, error)
}

type Handler struct {
	logger *slog.Logger
	Rides  RideSubmitter
}

func NewHandler(logger *slog.Logger, rides RideSubmitter) *Handler {
	return &Handler{
		logger: logger,
		Rides:  rides,
	}
}

func (h *Handler) SubmitRide(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.RideRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, domain.ErrorResponse{Status: "error", Message: "некорректный JSON"})
		return
	}

	// запрещаем "лишние данные" после первого JSON-объекта
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, domain.ErrorResponse{Status: "error", Message: "некорректный JSON"})
		return
	}

	resp, err := h.Rides.SubmitRide(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}
