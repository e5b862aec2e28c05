package service

import (
	"context"
	"io"

	"github.com/Availableperson/nexa/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Notifier is the outbound messaging channel (the Telegram client in prod).
type Notifier interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendWebAppButton(ctx context.Context, chatID int64, text, label, url string) error
}

type RideService interface {
	SubmitRide(ctx context.Context, req domain.RideRequest) (domain.RideAccepted, error)
}

type UploadService interface {
	SaveFile(ctx context.Context, filename string, r io.Reader) (string, error)
}

type BotService interface {
	HandleUpdate(ctx context.Context, upd domain.Update) error
}

type Service struct {
	RideService   RideService
	UploadService UploadService
	BotService    BotService
}

func NewService(
	rideService RideService,
	uploadService UploadService,
	botService BotService,
) *Service {
	return &Service{
		RideService:   rideService,
		UploadService: uploadService,
		BotService:    botService,
	}
}
