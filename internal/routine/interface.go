package routine

import (
	"context"

	"daily-routine-bot/internal/model"
)

// UseCase defines the business logic interface for the routine domain.
type UseCase interface {
	// StartAdd begins the three-step add wizard for the scoped owner,
	// discarding any half-finished draft.
	StartAdd(ctx context.Context, sc model.Scope) error

	// HandleText feeds one free-text message to the owner's conversation
	// state machine and reports which transition happened.
	HandleText(ctx context.Context, sc model.Scope, text string) (HandleTextOutput, error)

	// Show resolves the /show arguments into date bounds, lists matching
	// tasks and formats them as a text report.
	Show(ctx context.Context, sc model.Scope, input ShowInput) (ShowOutput, error)

	// Cancel aborts a collecting flow and returns the owner to listening.
	Cancel(ctx context.Context, sc model.Scope) (CancelOutput, error)

	// MarkDone flips a task's completion flag. Data-layer support only;
	// no chat command is wired to it yet.
	MarkDone(ctx context.Context, sc model.Scope, input MarkDoneInput) error
}
