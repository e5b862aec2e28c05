package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"log/slog"

	"github.com/Availableperson/nexa/internal/domain"
	"github.com/Availableperson/nexa/pkg/e"
	"github.com/Availableperson/nexa/pkg/validator"

	"github.com/google/uuid"
)

const acceptedMessage = "✅ Заявка принята"

type rideService struct {
	notifier Notifier
	logger   *slog.Logger
	chatID   int64
}

func NewRideService(notifier Notifier, logger *slog.Logger, chatID int64) RideService {
	return &rideService{
		notifier: notifier,
		logger:   logger,
		chatID:   chatID,
	}
}

// ValidateRide normalizes and checks a ride request. It is pure: no I/O, so
// the dispatch step stays independently testable.
func ValidateRide(req *domain.RideRequest) error {
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		return e.ErrEmptyDestination
	}
	if req.Latitude == nil || req.Longitude == nil {
		return e.ErrMissingCoordinates
	}
	if err := validator.ValidateStruct(req); err != nil {
		return e.ErrInvalidCoordinates
	}
	return nil
}

func (s *rideService) SubmitRide(ctx context.Context, req domain.RideRequest) (domain.RideAccepted, error) {
	if err := ValidateRide(&req); err != nil {
		s.logger.Warn("ride request rejected", slog.String("reason", err.Error()))
		return domain.RideAccepted{}, err
	}

	id := uuid.New()
	s.logger.Info("dispatching ride request",
		slog.String("request_id", id.String()),
		slog.String("destination", req.Destination),
		slog.Float64("lat", *req.Latitude),
		slog.Float64("lng", *req.Longitude),
	)

	// exactly one send per valid request, no retries, duplicates allowed
	if err := s.notifier.SendMessage(ctx, s.chatID, formatAlert(id, req)); err != nil {
		s.logger.Error("notification dispatch failed",
			slog.String("request_id", id.String()),
			slog.Any("error", err),
		)
		return domain.RideAccepted{}, e.WrapError("send notification", err)
	}

	s.logger.Info("ride request accepted", slog.String("request_id", id.String()))
	return domain.RideAccepted{
		Status:    "ok",
		Message:   acceptedMessage,
		RequestID: id.String(),
	}, nil
}

func formatAlert(id uuid.UUID, req domain.RideRequest) string {
	lat := formatCoord(*req.Latitude)
	lng := formatCoord(*req.Longitude)
	return fmt.Sprintf("🚖 Новая заявка!\n📍 Куда: %s\n🌍 Координаты: %s, %s\n🗺 https://maps.google.com/?q=%s,%s\n🆔 %s",
		req.Destination, lat, lng, lat, lng, id)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
