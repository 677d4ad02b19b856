package webhook_test

import (
	"net/http/httptest"
	"testing"

	"daily-routine-bot/internal/webhook"
	"daily-routine-bot/pkg/telegram"
)

func TestValidateSecretToken(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		header  string
		wantErr bool
	}{
		{name: "No secret configured accepts anything", secret: "", header: "whatever"},
		{name: "Matching token", secret: "s3cret", header: "s3cret"},
		{name: "Wrong token", secret: "s3cret", header: "guess", wantErr: true},
		{name: "Missing header", secret: "s3cret", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := webhook.NewGuard(webhook.GuardConfig{Secret: tt.secret})

			r := httptest.NewRequest("POST", "/webhook/telegram", nil)
			if tt.header != "" {
				r.Header.Set(telegram.SecretTokenHeader, tt.header)
			}

			err := g.ValidateSecretToken(r)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSecretToken() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckRateLimit(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		g := webhook.NewGuard(webhook.GuardConfig{})
		for i := 0; i < 100; i++ {
			if err := g.CheckRateLimit(1); err != nil {
				t.Fatalf("disabled limiter must always allow, got %v", err)
			}
		}
	})

	t.Run("Throttles burst", func(t *testing.T) {
		g := webhook.NewGuard(webhook.GuardConfig{RateLimitPerMin: 10})

		allowed := 0
		for i := 0; i < 20; i++ {
			if g.CheckRateLimit(1) == nil {
				allowed++
			}
		}
		if allowed == 20 {
			t.Error("expected the limiter to throttle a 20-request burst")
		}
		if allowed == 0 {
			t.Error("expected at least the initial burst to pass")
		}
	})

	t.Run("Senders are independent", func(t *testing.T) {
		g := webhook.NewGuard(webhook.GuardConfig{RateLimitPerMin: 10})

		for i := 0; i < 20; i++ {
			g.CheckRateLimit(1)
		}
		if err := g.CheckRateLimit(2); err != nil {
			t.Errorf("sender 2 should not be throttled by sender 1: %v", err)
		}
	})
}
