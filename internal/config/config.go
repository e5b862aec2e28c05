package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	TransportWebhook = "webhook"
	TransportPolling = "polling"

	// DefaultOperatorChatID is the chat the original deployment hardcoded.
	// Override with TELEGRAM_CHAT_ID.
	DefaultOperatorChatID int64 = 641126421
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Telegram TelegramConfig `json:"telegram"`
	WebApp   WebAppConfig   `json:"web_app"`
	Upload   UploadConfig   `json:"upload"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type TelegramConfig struct {
	Token            string        `json:"token,omitempty"`
	APIBaseURL       string        `json:"api_base_url"`
	ChatID           int64         `json:"chat_id"`
	Transport        string        `json:"transport"`
	WebhookPublicURL string        `json:"webhook_public_url"`
	WebhookSecret    string        `json:"webhook_secret,omitempty"`
	PollTimeout      time.Duration `json:"poll_timeout"`
}

type WebAppConfig struct {
	PublicURL     string `json:"public_url"`
	TemplatesGlob string `json:"templates_glob"`
}

type UploadConfig struct {
	Dir string `json:"dir"`
}

func Load() (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Telegram: TelegramConfig{
			Token:            getEnv("TELEGRAM_TOKEN", ""),
			APIBaseURL:       getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
			ChatID:           getEnvInt64("TELEGRAM_CHAT_ID", DefaultOperatorChatID),
			Transport:        getEnv("TELEGRAM_TRANSPORT", TransportWebhook),
			WebhookPublicURL: getEnv("WEBHOOK_PUBLIC_URL", ""),
			WebhookSecret:    getEnv("WEBHOOK_SECRET", ""),
			PollTimeout:      getEnvDuration("TELEGRAM_POLL_TIMEOUT", 25*time.Second),
		},
		WebApp: WebAppConfig{
			PublicURL:     getEnv("WEBAPP_URL", "https://nexa-hvic.onrender.com"),
			TemplatesGlob: getEnv("TEMPLATES_GLOB", "web/templates/*.html"),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("transport", cfg.Telegram.Transport),
		slog.Int64("chat_id", cfg.Telegram.ChatID),
		slog.String("upload_dir", cfg.Upload.Dir))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	switch c.Telegram.Transport {
	case TransportWebhook, TransportPolling:
	default:
		return fmt.Errorf("TELEGRAM_TRANSPORT must be %q or %q", TransportWebhook, TransportPolling)
	}

	if c.Telegram.Transport == TransportWebhook && c.Telegram.WebhookPublicURL == "" {
		return errors.New("WEBHOOK_PUBLIC_URL required in webhook transport")
	}

	if c.Telegram.ChatID == 0 {
		return errors.New("TELEGRAM_CHAT_ID must not be zero")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
