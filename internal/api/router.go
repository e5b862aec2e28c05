package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Availableperson/nexa/internal/api/handlers/http/bot"
	"github.com/Availableperson/nexa/internal/api/handlers/http/ride"
	"github.com/Availableperson/nexa/internal/api/handlers/http/system"
	"github.com/Availableperson/nexa/internal/api/handlers/http/upload"
	"github.com/Availableperson/nexa/internal/config"
	"github.com/Availableperson/nexa/internal/middleware"
	"github.com/Availableperson/nexa/internal/render"
	"github.com/Availableperson/nexa/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, renderer *render.Renderer) *Server {
	rideHandler := ride.NewHandler(logger, svc.RideService)
	uploadHandler := upload.NewHandler(logger, svc.UploadService)
	botHandler := bot.NewHandler(logger, svc.BotService)
	systemHandler := system.NewHandler(logger, renderer)

	r := InitRouter(cfg, rideHandler, uploadHandler, botHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, rideHandler *ride.Handler, uploadHandler *upload.Handler, botHandler *bot.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	// чтобы request_id попал в лог chi.Logger
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	// мини-приложение открывается с любого origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/", systemHandler.Index)
	r.Get("/health", systemHandler.SystemHealth)

	r.Group(func(gr chi.Router) {
		gr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

		gr.Post("/ride", rideHandler.SubmitRide)
		gr.Post("/upload", uploadHandler.Upload)
	})

	if cfg.Telegram.Transport == config.TransportWebhook {
		r.With(middleware.WebhookSecret(cfg.Telegram.WebhookSecret, logger)).
			Post("/webhook", botHandler.Webhook)
	}

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
