package repository

import (
	"context"

	"daily-routine-bot/internal/model"
)

// Repository is the interface for task persistence, keyed by owner.
type Repository interface {
	// CreateTask inserts a new task with rank 0 and done false and returns
	// it with the store-assigned ID. Duplicate titles and dates are allowed.
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// ListTasks returns the owner's tasks in canonical display order
	// (date, rank, id). A zero OwnerID fails with routine.ErrMissingOwner;
	// no matches yield an empty slice, not an error.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)

	// MarkDone sets the done flag on one of the owner's tasks. An unknown
	// id/owner pair fails with routine.ErrTaskNotFound.
	MarkDone(ctx context.Context, opt MarkDoneOptions) error
}
