package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"net/http"
	"time"

	"context"
	"log/slog"

	"github.com/Availableperson/nexa/internal/config"
	"github.com/Availableperson/nexa/internal/domain"
	"github.com/Availableperson/nexa/pkg/e"
)

// Client talks to the Telegram Bot API over plain HTTPS JSON.
type Client struct {
	logger  *slog.Logger
	token   string
	baseURL string
	http    *http.Client
}

func New(logger *slog.Logger, cfg config.TelegramConfig) *Client {
	base := strings.TrimRight(cfg.APIBaseURL, "/")
	if base == "" {
		base = "https://api.telegram.org"
	}
	// the HTTP timeout must outlive a full getUpdates long poll
	timeout := cfg.PollTimeout + 10*time.Second
	return &Client{
		logger:  logger,
		token:   cfg.Token,
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
	}
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

func (c *Client) call(ctx context.Context, method string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return e.Wrap(method+": marshal payload", err)
	}

	url := c.baseURL + "/bot" + c.token + "/" + method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return e.Wrap(method+": create request", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return e.WrapError(method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var api apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		return e.Wrap(method+": decode response", err)
	}
	if !api.OK {
		reason := api.Description
		if reason == "" {
			reason = resp.Status
		}
		return fmt.Errorf("%s: telegram: %s", method, reason)
	}
	if out != nil {
		if err := json.Unmarshal(api.Result, out); err != nil {
			return e.Wrap(method+": decode result", err)
		}
	}
	return nil
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	return c.call(ctx, "sendMessage", map[string]any{
		"chat_id": chatID,
		"text":    text,
	}, nil)
}

type webAppInfo struct {
	URL string `json:"url"`
}

type inlineKeyboardButton struct {
	Text   string      `json:"text"`
	WebApp *webAppInfo `json:"web_app,omitempty"`
}

type inlineKeyboardMarkup struct {
	InlineKeyboard [][]inlineKeyboardButton `json:"inline_keyboard"`
}

// SendWebAppButton sends text with a single inline button that opens url as a
// Telegram mini-app.
func (c *Client) SendWebAppButton(ctx context.Context, chatID int64, text, label, url string) error {
	markup := inlineKeyboardMarkup{
		InlineKeyboard: [][]inlineKeyboardButton{
			{{Text: label, WebApp: &webAppInfo{URL: url}}},
		},
	}
	return c.call(ctx, "sendMessage", map[string]any{
		"chat_id":      chatID,
		"text":         text,
		"reply_markup": markup,
	}, nil)
}

func (c *Client) SetWebhook(ctx context.Context, url, secret string) error {
	payload := map[string]any{"url": url}
	if secret != "" {
		payload["secret_token"] = secret
	}
	c.logger.Info("registering telegram webhook", slog.String("url", url))
	return c.call(ctx, "setWebhook", payload, nil)
}

func (c *Client) DeleteWebhook(ctx context.Context) error {
	return c.call(ctx, "deleteWebhook", map[string]any{"drop_pending_updates": false}, nil)
}

func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]domain.Update, error) {
	var updates []domain.Update
	err := c.call(ctx, "getUpdates", map[string]any{
		"offset":  offset,
		"timeout": int(timeout.Seconds()),
	}, &updates)
	if err != nil {
		return nil, err
	}
	return updates, nil
}

func (c *Client) Close() {
	c.http.CloseIdleConnections()
}
