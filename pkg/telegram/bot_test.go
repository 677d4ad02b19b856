package telegram_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"daily-routine-bot/pkg/telegram"
)

func TestBot(t *testing.T) {
	var lastSecretToken string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasSuffix(path, "/setWebhook") {
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			lastSecretToken = req["secret_token"]
			if req["url"] == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid url"}`))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ok": true, "description": "webhook set"}`))
			return
		}

		if strings.HasSuffix(path, "/sendMessage") {
			var req map[string]interface{}
			json.NewDecoder(r.Body).Decode(&req)
			text := req["text"].(string)

			if text == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid text"}`))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ok": true}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL) // Route calls to the test server instead of api.telegram.org

	t.Run("SetWebhook Success", func(t *testing.T) {
		if err := bot.SetWebhook("https://example.com/webhook", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastSecretToken != "" {
			t.Errorf("expected no secret token, got %q", lastSecretToken)
		}
	})

	t.Run("SetWebhook With Secret Token", func(t *testing.T) {
		if err := bot.SetWebhook("https://example.com/webhook", "s3cret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastSecretToken != "s3cret" {
			t.Errorf("expected secret token to be forwarded, got %q", lastSecretToken)
		}
	})

	t.Run("SetWebhook API Error", func(t *testing.T) {
		err := bot.SetWebhook("cause_error", "")
		if err == nil || !strings.Contains(err.Error(), "invalid url") {
			t.Fatalf("expected setWebhook failure, got %v", err)
		}
	})

	t.Run("SendMessage Success", func(t *testing.T) {
		if err := bot.SendMessage(123, "hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessage API Error", func(t *testing.T) {
		err := bot.SendMessage(123, "cause_error")
		if err == nil {
			t.Fatal("expected sendMessage failure")
		}
	})
}
