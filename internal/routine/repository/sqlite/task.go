package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"daily-routine-bot/internal/model"
	"daily-routine-bot/internal/routine"
	"daily-routine-bot/internal/routine/repository"
	pkgLog "daily-routine-bot/pkg/log"
)

// dateLayout is the canonical on-disk date format. Lexicographic order on it
// matches calendar order, which the range queries rely on.
const dateLayout = "2006-01-02"

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a SQLite-backed task repository.
func New(db *sql.DB, l pkgLog.Logger) repository.Repository {
	return &implRepository{db: db, l: l}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if opt.OwnerID == 0 {
		return model.Task{}, routine.ErrMissingOwner
	}

	date := opt.Date.Format(dateLayout)
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO daily_routine (user_id, task_title, task_date, task_text)
		VALUES (?, ?, ?, ?)`,
		opt.OwnerID, opt.Title, date, opt.Detail,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("inserting task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, fmt.Errorf("reading inserted id: %w", err)
	}

	day, _ := time.Parse(dateLayout, date)
	return model.Task{
		ID:      id,
		OwnerID: opt.OwnerID,
		Title:   opt.Title,
		Date:    day,
		Detail:  opt.Detail,
		Rank:    0,
		Done:    false,
	}, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if opt.OwnerID == 0 {
		return nil, routine.ErrMissingOwner
	}

	const cols = `id, user_id, task_title, task_date, task_text, rank, is_done`

	var (
		query string
		args  []any
	)
	switch {
	case opt.On != nil && opt.Till != nil:
		query = `SELECT ` + cols + ` FROM daily_routine
			WHERE user_id = ? AND task_date >= ? AND task_date <= ?
			ORDER BY task_date, rank, id`
		args = []any{opt.OwnerID, opt.On.Format(dateLayout), opt.Till.Format(dateLayout)}
	case opt.On != nil:
		query = `SELECT ` + cols + ` FROM daily_routine
			WHERE user_id = ? AND task_date = ?
			ORDER BY rank, id`
		args = []any{opt.OwnerID, opt.On.Format(dateLayout)}
	default:
		query = `SELECT ` + cols + ` FROM daily_routine
			WHERE user_id = ?
			ORDER BY task_date, rank, id`
		args = []any{opt.OwnerID}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var (
			t   model.Task
			day string
		)
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Title, &day, &t.Detail, &t.Rank, &t.Done); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		if t.Date, err = time.Parse(dateLayout, day); err != nil {
			return nil, fmt.Errorf("parsing stored date %q: %w", day, err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (r *implRepository) MarkDone(ctx context.Context, opt repository.MarkDoneOptions) error {
	if opt.OwnerID == 0 {
		return routine.ErrMissingOwner
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE daily_routine SET is_done = 1
		WHERE id = ? AND user_id = ?`,
		opt.TaskID, opt.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("marking task done: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return routine.ErrTaskNotFound
	}
	return nil
}
