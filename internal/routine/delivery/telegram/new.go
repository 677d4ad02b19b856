package telegram

import (
	"github.com/gin-gonic/gin"

	"daily-routine-bot/internal/routine"
	"daily-routine-bot/internal/webhook"
	pkgLog "daily-routine-bot/pkg/log"
	pkgTelegram "daily-routine-bot/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	uc routine.UseCase,
	bot *pkgTelegram.Bot,
	guard *webhook.Guard,
) Handler {
	return &handler{
		l:     l,
		uc:    uc,
		bot:   bot,
		guard: guard,
	}
}
