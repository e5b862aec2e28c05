package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"log/slog"

	"github.com/Availableperson/nexa/internal/config"
	"github.com/Availableperson/nexa/internal/telegram"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*telegram.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := telegram.New(newTestLogger(), config.TelegramConfig{
		Token:       "TESTTOKEN",
		APIBaseURL:  srv.URL,
		PollTimeout: time.Second,
	})
	return c, srv
}

func TestSendMessage_OK(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody map[string]any

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
	})

	if err := c.SendMessage(context.Background(), 42, "привет"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if gotPath != "/botTESTTOKEN/sendMessage" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotBody["chat_id"] != float64(42) || gotBody["text"] != "привет" {
		t.Fatalf("unexpected body: %+v", gotBody)
	}
}

func TestSendMessage_APIError(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	})

	err := c.SendMessage(context.Background(), 42, "x")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "chat not found") {
		t.Fatalf("error lost the API description: %v", err)
	}
}

func TestSendWebAppButton_MarkupShape(t *testing.T) {
	t.Parallel()

	var gotBody struct {
		ChatID      int64  `json:"chat_id"`
		Text        string `json:"text"`
		ReplyMarkup struct {
			InlineKeyboard [][]struct {
				Text   string `json:"text"`
				WebApp struct {
					URL string `json:"url"`
				} `json:"web_app"`
			} `json:"inline_keyboard"`
		} `json:"reply_markup"`
	}

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	})

	err := c.SendWebAppButton(context.Background(), 42, "добро пожаловать", "открыть", "https://nexa.example.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	kb := gotBody.ReplyMarkup.InlineKeyboard
	if len(kb) != 1 || len(kb[0]) != 1 {
		t.Fatalf("unexpected keyboard shape: %+v", kb)
	}
	if kb[0][0].Text != "открыть" || kb[0][0].WebApp.URL != "https://nexa.example.com" {
		t.Fatalf("unexpected button: %+v", kb[0][0])
	}
}

func TestGetUpdates_ParsesResultAndPassesOffset(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/botTESTTOKEN/getUpdates" {
			t.Errorf("unexpected path: %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"ok":true,"result":[{"update_id":5,"message":{"message_id":1,"chat":{"id":42,"type":"private"},"text":"/start"}}]}`))
	})

	updates, err := c.GetUpdates(context.Background(), 5, time.Second)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if gotBody["offset"] != float64(5) {
		t.Fatalf("offset not passed: %+v", gotBody)
	}
	if len(updates) != 1 || updates[0].UpdateID != 5 {
		t.Fatalf("unexpected updates: %+v", updates)
	}
	if updates[0].Message == nil || updates[0].Message.Text != "/start" || updates[0].Message.Chat.ID != 42 {
		t.Fatalf("unexpected message: %+v", updates[0].Message)
	}
}

func TestSetWebhook_SendsSecret(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
	})

	if err := c.SetWebhook(context.Background(), "https://nexa.example.com/webhook", "s3cret"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if gotBody["url"] != "https://nexa.example.com/webhook" || gotBody["secret_token"] != "s3cret" {
		t.Fatalf("unexpected body: %+v", gotBody)
	}
}
