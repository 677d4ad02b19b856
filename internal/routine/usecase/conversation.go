package usecase

import (
	"context"
	"fmt"
	"time"

	"daily-routine-bot/internal/model"
	"daily-routine-bot/internal/routine"
	"daily-routine-bot/internal/routine/repository"
)

// StartAdd begins the add wizard for the scoped owner. Restarting mid-flow
// discards the previous draft and starts over.
func (uc *implUseCase) StartAdd(ctx context.Context, sc model.Scope) error {
	if sc.UserID == 0 {
		return routine.ErrMissingOwner
	}

	c := uc.session(sc.UserID)
	c.Lock()
	defer c.Unlock()

	c.Reset()
	c.Mode = model.ModeCollecting

	uc.l.Infof(ctx, "routine usecase: add flow started for user %d", sc.UserID)
	return nil
}

// HandleText advances the owner's conversation by one message.
//
// The wizard fills title, date, detail in that order. The title is stored
// verbatim with no validation. A date that fails to resolve leaves the draft
// untouched so the user can retry; a failing store write keeps the collected
// title and date so only the detail needs resending.
func (uc *implUseCase) HandleText(ctx context.Context, sc model.Scope, text string) (routine.HandleTextOutput, error) {
	if sc.UserID == 0 {
		return routine.HandleTextOutput{}, routine.ErrMissingOwner
	}

	c := uc.session(sc.UserID)
	c.Lock()
	defer c.Unlock()

	if c.Mode != model.ModeCollecting {
		return routine.HandleTextOutput{Step: routine.StepUnrecognized}, nil
	}

	switch {
	case !c.Draft.HasTitle:
		c.Draft.Title = text
		c.Draft.HasTitle = true
		return routine.HandleTextOutput{Step: routine.StepTitleSaved}, nil

	case !c.Draft.HasDate:
		date, err := uc.resolver.ResolveDate(text, time.Now())
		if err != nil {
			uc.l.Infof(ctx, "routine usecase: user %d sent unresolvable date %q: %v", sc.UserID, text, err)
			return routine.HandleTextOutput{Step: routine.StepBadDate, DateErr: err}, nil
		}
		c.Draft.Date = date
		c.Draft.HasDate = true
		return routine.HandleTextOutput{Step: routine.StepDateSaved}, nil

	default:
		task, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
			OwnerID: sc.UserID,
			Title:   c.Draft.Title,
			Date:    c.Draft.Date,
			Detail:  text,
		})
		if err != nil {
			// Draft stays intact; the user retries by resending the detail.
			return routine.HandleTextOutput{}, fmt.Errorf("persisting task: %w", err)
		}

		c.Reset()
		uc.l.Infof(ctx, "routine usecase: task %d created for user %d on %s",
			task.ID, sc.UserID, task.Date.Format("2006-01-02"))
		return routine.HandleTextOutput{Step: routine.StepTaskCreated, Task: task}, nil
	}
}

// Cancel aborts a collecting flow and returns the owner to listening.
func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope) (routine.CancelOutput, error) {
	if sc.UserID == 0 {
		return routine.CancelOutput{}, routine.ErrMissingOwner
	}

	c := uc.session(sc.UserID)
	c.Lock()
	defer c.Unlock()

	wasCollecting := c.Mode == model.ModeCollecting
	c.Reset()
	return routine.CancelOutput{WasCollecting: wasCollecting}, nil
}
