package webhook

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"daily-routine-bot/pkg/telegram"
)

// GuardConfig configures webhook request validation.
type GuardConfig struct {
	// Secret is the token registered with setWebhook. Empty disables the
	// header check (local development without a public URL).
	Secret string
	// RateLimitPerMin caps updates per sender per minute. Zero disables
	// rate limiting.
	RateLimitPerMin int
}

// Guard validates inbound Telegram webhook requests: the secret-token header
// Telegram echoes back, and a per-sender rate limit.
type Guard struct {
	config      GuardConfig
	rateLimiter *rateLimiter
}

// NewGuard creates a webhook guard from the given config.
func NewGuard(config GuardConfig) *Guard {
	g := &Guard{config: config}
	if config.RateLimitPerMin > 0 {
		g.rateLimiter = newRateLimiter(config.RateLimitPerMin)
	}
	return g
}

// ValidateSecretToken verifies the X-Telegram-Bot-Api-Secret-Token header.
func (g *Guard) ValidateSecretToken(r *http.Request) error {
	if g.config.Secret == "" {
		return nil
	}

	got := r.Header.Get(telegram.SecretTokenHeader)
	if subtle.ConstantTimeCompare([]byte(got), []byte(g.config.Secret)) != 1 {
		return fmt.Errorf("secret token verification failed")
	}
	return nil
}

// CheckRateLimit enforces the per-sender rate limit.
func (g *Guard) CheckRateLimit(senderID int64) error {
	if g.rateLimiter == nil {
		return nil
	}
	return g.rateLimiter.Allow(strconv.FormatInt(senderID, 10))
}

// rateLimiter keeps one token bucket per sender with auto-cleanup.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique senders
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
