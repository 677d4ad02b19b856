package routine

import "daily-routine-bot/internal/model"

// StepKind identifies which wizard transition a free-text message caused.
type StepKind string

const (
	// StepUnrecognized: message arrived while listening; nothing changed.
	StepUnrecognized StepKind = "unrecognized"
	// StepTitleSaved: the message was stored as the draft title.
	StepTitleSaved StepKind = "title_saved"
	// StepDateSaved: the message resolved to the draft date.
	StepDateSaved StepKind = "date_saved"
	// StepBadDate: the message did not resolve to a date; draft unchanged.
	StepBadDate StepKind = "bad_date"
	// StepTaskCreated: the message completed the draft and the task was persisted.
	StepTaskCreated StepKind = "task_created"
)

// HandleTextOutput is the result of feeding one free-text message to the
// conversation state machine.
type HandleTextOutput struct {
	Step    StepKind
	Task    model.Task // populated when Step == StepTaskCreated
	DateErr error      // populated when Step == StepBadDate
}

// ShowInput carries the raw arguments of a /show command: either empty, a
// single period token, or one or two date tokens.
type ShowInput struct {
	Args []string
}

// ShowOutput is the formatted task report.
type ShowOutput struct {
	Report string // empty when no tasks matched
	Count  int
}

// CancelOutput reports whether a collecting flow was actually aborted.
type CancelOutput struct {
	WasCollecting bool
}

// MarkDoneInput identifies the task to complete, scoped to the calling owner.
type MarkDoneInput struct {
	TaskID int64
}
