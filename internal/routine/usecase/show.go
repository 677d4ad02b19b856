package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"daily-routine-bot/internal/model"
	"daily-routine-bot/internal/routine"
	"daily-routine-bot/internal/routine/repository"
	"daily-routine-bot/pkg/dateparse"
	"daily-routine-bot/pkg/response"
)

// Show resolves the /show arguments into date bounds and formats the matching
// tasks as a text report.
//
// No arguments means the owner's full history. A period token (day, week,
// month, year) expands to its calendar range. Otherwise the first argument is
// a single date and an optional second argument closes an inclusive range.
func (uc *implUseCase) Show(ctx context.Context, sc model.Scope, input routine.ShowInput) (routine.ShowOutput, error) {
	if sc.UserID == 0 {
		return routine.ShowOutput{}, routine.ErrMissingOwner
	}

	var on, till *time.Time
	if len(input.Args) > 0 {
		if dateparse.IsPeriod(input.Args[0]) {
			start, end, err := uc.resolver.ResolvePeriod(input.Args[0], time.Now())
			if err != nil {
				return routine.ShowOutput{}, err
			}
			on, till = &start, &end
		} else {
			date, err := uc.resolver.ResolveDate(input.Args[0], time.Now())
			if err != nil {
				return routine.ShowOutput{}, err
			}
			on = &date

			if len(input.Args) > 1 {
				end, err := uc.resolver.ResolveDate(input.Args[1], time.Now())
				if err != nil {
					return routine.ShowOutput{}, err
				}
				till = &end
			}
		}
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		OwnerID: sc.UserID,
		On:      on,
		Till:    till,
	})
	if err != nil {
		return routine.ShowOutput{}, fmt.Errorf("listing tasks: %w", err)
	}

	return routine.ShowOutput{Report: formatReport(tasks), Count: len(tasks)}, nil
}

// formatReport renders tasks grouped by date: a dd-mm-yyyy header whenever
// the date changes, then one indented line per task. Empty input yields the
// empty string.
func formatReport(tasks []model.Task) string {
	var (
		b       strings.Builder
		current time.Time
		started bool
	)
	for _, t := range tasks {
		if !started || !t.Date.Equal(current) {
			current = t.Date
			started = true
			fmt.Fprintf(&b, "\n%s\n", t.Date.Format(response.DateFormat))
		}
		fmt.Fprintf(&b, "\t-%s(%s)\n", t.Title, t.Detail)
	}
	return b.String()
}
