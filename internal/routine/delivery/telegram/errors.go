package telegram

import (
	"errors"

	"daily-routine-bot/internal/routine"
	"daily-routine-bot/pkg/dateparse"
)

// User-facing error replies.
const (
	msgBadDate      = "I couldn't understand that date. Try today, tomorrow or dd-mm-yyyy"
	msgBadPeriod    = "Unknown period. Use day, week, month or year"
	msgNoUser       = "I couldn't identify you, please try again"
	msgTaskNotFound = "No such task"
	msgGeneric      = "Something went wrong. Please try again"
)

// errorMessage maps a domain or resolver error to a user-facing reply.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, dateparse.ErrInvalidDateFormat),
		errors.Is(err, dateparse.ErrUnparseableDate):
		return msgBadDate
	case errors.Is(err, dateparse.ErrUnknownPeriod):
		return msgBadPeriod
	case errors.Is(err, routine.ErrMissingOwner):
		return msgNoUser
	case errors.Is(err, routine.ErrTaskNotFound):
		return msgTaskNotFound
	default:
		return msgGeneric
	}
}
