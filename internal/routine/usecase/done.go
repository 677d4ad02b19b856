package usecase

import (
	"context"
	"fmt"

	"daily-routine-bot/internal/model"
	"daily-routine-bot/internal/routine"
	"daily-routine-bot/internal/routine/repository"
)

// MarkDone flips the completion flag of one of the owner's tasks.
// Only the data layer exists for completion so far; no chat command calls
// this yet.
func (uc *implUseCase) MarkDone(ctx context.Context, sc model.Scope, input routine.MarkDoneInput) error {
	if sc.UserID == 0 {
		return routine.ErrMissingOwner
	}

	if err := uc.repo.MarkDone(ctx, repository.MarkDoneOptions{
		OwnerID: sc.UserID,
		TaskID:  input.TaskID,
	}); err != nil {
		return fmt.Errorf("marking task %d done: %w", input.TaskID, err)
	}
	return nil
}
