package telegram

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"daily-routine-bot/internal/model"
	"daily-routine-bot/internal/routine"
	"daily-routine-bot/internal/webhook"
	pkgLog "daily-routine-bot/pkg/log"
	pkgResponse "daily-routine-bot/pkg/response"
	pkgTelegram "daily-routine-bot/pkg/telegram"
)

// Bot replies. The /done command is listed in help because the schema and
// store support completion, but no conversational trigger is wired yet.
const (
	helpText = `Daily routine bot:
/help - print this help
/add - add a task to your list
/show - print your tasks
     [period(day,week,month,year) | date(today,tomorrow,dd-mm-yyyy)]
     [date_till(dd-mm-yyyy)]
/cancel - abort adding a task
/done - mark a task as completed`

	promptTitle  = "Enter title of task"
	promptDate   = "Enter date (dd-mm-yyyy) of task"
	promptDetail = "Enter text of task"

	msgTaskAdded    = "Task added"
	msgUnrecognized = "Can't understand. Use /help to see command pool"
	msgEmptyReport  = "Nothing scheduled. Use /add to create a task"
	msgCancelled    = "Task entry cancelled"
	msgNoCancel     = "Nothing to cancel"
	msgSaveFailed   = "Couldn't save your task right now. Please send the task text again"
)

type handler struct {
	l     pkgLog.Logger
	uc    routine.UseCase
	bot   *pkgTelegram.Bot
	guard *webhook.Guard
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// Updates are processed synchronously: the whole pipeline is a local SQLite
// round-trip, well inside Telegram's webhook deadline, and the add wizard
// depends on per-chat message ordering.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.guard.ValidateSecretToken(c.Request); err != nil {
		h.l.Warnf(ctx, "telegram handler: rejected update: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	if err := h.guard.CheckRateLimit(msg.From.ID); err != nil {
		h.l.Warnf(ctx, "telegram handler: %v", err)
		pkgResponse.TooManyRequests(c)
		return
	}

	procID := uuid.NewString()
	h.l.Debugf(ctx, "telegram handler: update %s: user %d chat %d", procID, msg.From.ID, msg.Chat.ID)

	if reply := h.processMessage(ctx, msg); reply != "" {
		if err := h.bot.SendMessage(msg.Chat.ID, reply); err != nil {
			h.l.Errorf(ctx, "telegram handler: update %s: failed to send reply: %v", procID, err)
		}
	}

	pkgResponse.OK(c, map[string]string{"status": "processed"})
}

// processMessage routes a single Telegram message and returns the reply text.
// Unmatched slash commands deliberately fall through to the conversation
// state machine, so e.g. /done while listening gets the unrecognized reply.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) string {
	if msg.Text == "" {
		return ""
	}

	sc := model.Scope{
		UserID:   msg.From.ID,
		Username: msg.From.Username,
		ChatID:   msg.Chat.ID,
	}

	parts := strings.SplitN(strings.TrimSpace(msg.Text), " ", 3)

	switch parts[0] {
	case "/start", "/help":
		return helpText

	case "/add":
		if err := h.uc.StartAdd(ctx, sc); err != nil {
			h.l.Errorf(ctx, "telegram handler: StartAdd failed: %v", err)
			return errorMessage(err)
		}
		return promptTitle

	case "/cancel":
		out, err := h.uc.Cancel(ctx, sc)
		if err != nil {
			h.l.Errorf(ctx, "telegram handler: Cancel failed: %v", err)
			return errorMessage(err)
		}
		if out.WasCollecting {
			return msgCancelled
		}
		return msgNoCancel

	case "/show":
		args := make([]string, 0, 2)
		for _, a := range parts[1:] {
			if a = strings.TrimSpace(a); a != "" {
				args = append(args, a)
			}
		}

		out, err := h.uc.Show(ctx, sc, routine.ShowInput{Args: args})
		if err != nil {
			h.l.Warnf(ctx, "telegram handler: Show failed for user %d: %v", sc.UserID, err)
			return errorMessage(err)
		}
		if out.Count == 0 {
			return msgEmptyReport
		}
		return out.Report
	}

	out, err := h.uc.HandleText(ctx, sc, msg.Text)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: HandleText failed for user %d: %v", sc.UserID, err)
		return msgSaveFailed
	}

	switch out.Step {
	case routine.StepTitleSaved:
		return promptDate
	case routine.StepDateSaved:
		return promptDetail
	case routine.StepBadDate:
		return errorMessage(out.DateErr)
	case routine.StepTaskCreated:
		return msgTaskAdded
	default:
		return msgUnrecognized
	}
}
