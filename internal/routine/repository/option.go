package repository

import "time"

// CreateTaskOptions holds the parameters for inserting a task.
type CreateTaskOptions struct {
	OwnerID int64
	Title   string
	Date    time.Time // calendar date; time-of-day is discarded on write
	Detail  string
}

// ListTasksOptions holds the filters for listing tasks.
//
// Both bounds nil: the owner's full history. On only: tasks exactly on that
// date. Both set: the inclusive range [On, Till].
type ListTasksOptions struct {
	OwnerID int64
	On      *time.Time
	Till    *time.Time
}

// MarkDoneOptions identifies the task to complete.
type MarkDoneOptions struct {
	OwnerID int64
	TaskID  int64
}
