package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"daily-routine-bot/internal/routine"
	"daily-routine-bot/internal/routine/repository"
	"daily-routine-bot/internal/routine/repository/sqlite"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newTestRepo(t *testing.T) repository.Repository {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	// Each pooled connection would get its own in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	return sqlite.New(db, nopLogger{})
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateAndListRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	d := day(2024, 5, 10)
	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		OwnerID: 42,
		Title:   "Buy milk",
		Date:    d,
		Detail:  "2% only",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected store-assigned id")
	}
	if created.Rank != 0 || created.Done {
		t.Errorf("expected rank 0 and done false, got rank=%d done=%v", created.Rank, created.Done)
	}

	got, err := repo.ListTasks(ctx, repository.ListTasksOptions{OwnerID: 42, On: &d, Till: &d})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 task, got %d", len(got))
	}
	task := got[0]
	if task.Title != "Buy milk" || task.Detail != "2% only" || !task.Date.Equal(d) {
		t.Errorf("round-trip mismatch: %+v", task)
	}
	if task.Rank != 0 || task.Done {
		t.Errorf("expected defaults rank=0 done=false, got %+v", task)
	}
}

func TestListTasksOrdering(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	d1 := day(2024, 5, 1)
	d2 := day(2024, 5, 2)
	d3 := day(2024, 5, 3)

	// Inserted out of calendar order on purpose.
	for _, d := range []time.Time{d2, d1, d3} {
		if _, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
			OwnerID: 7, Title: "task", Date: d,
		}); err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	got, err := repo.ListTasks(ctx, repository.ListTasksOptions{OwnerID: 7})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(got))
	}
	for i, want := range []time.Time{d1, d2, d3} {
		if !got[i].Date.Equal(want) {
			t.Errorf("position %d: got date %v, want %v", i, got[i].Date, want)
		}
	}
}

func TestListTasksSameDateOrdersByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	d := day(2024, 5, 1)
	var ids []int64
	for _, title := range []string{"first", "second", "third"} {
		task, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
			OwnerID: 7, Title: title, Date: d,
		})
		if err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
		ids = append(ids, task.ID)
	}

	got, err := repo.ListTasks(ctx, repository.ListTasksOptions{OwnerID: 7, On: &d})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(got))
	}
	for i := range got {
		if got[i].ID != ids[i] {
			t.Errorf("position %d: got id %d, want %d", i, got[i].ID, ids[i])
		}
	}
}

func TestListTasksRangeFilter(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, d := range []time.Time{day(2024, 4, 30), day(2024, 5, 1), day(2024, 5, 15), day(2024, 6, 1)} {
		if _, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
			OwnerID: 7, Title: "task", Date: d,
		}); err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	on := day(2024, 5, 1)
	till := day(2024, 5, 31)
	got, err := repo.ListTasks(ctx, repository.ListTasksOptions{OwnerID: 7, On: &on, Till: &till})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks inside May, got %d", len(got))
	}
}

func TestListTasksIsolatedPerOwner(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	d := day(2024, 5, 1)
	if _, err := repo.CreateTask(ctx, repository.CreateTaskOptions{OwnerID: 1, Title: "mine", Date: d}); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.CreateTask(ctx, repository.CreateTaskOptions{OwnerID: 2, Title: "theirs", Date: d}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.ListTasks(ctx, repository.ListTasksOptions{OwnerID: 1})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(got) != 1 || got[0].Title != "mine" {
		t.Errorf("expected only owner 1's task, got %+v", got)
	}
}

func TestListTasksEmptyAndMissingOwner(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	got, err := repo.ListTasks(ctx, repository.ListTasksOptions{OwnerID: 99})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}

	if _, err := repo.ListTasks(ctx, repository.ListTasksOptions{}); !errors.Is(err, routine.ErrMissingOwner) {
		t.Errorf("expected ErrMissingOwner, got %v", err)
	}
}

func TestCreateTaskAllowsDuplicates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	opt := repository.CreateTaskOptions{OwnerID: 7, Title: "same", Date: day(2024, 5, 1), Detail: "same"}
	if _, err := repo.CreateTask(ctx, opt); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.CreateTask(ctx, opt); err != nil {
		t.Fatalf("duplicate insert should be allowed: %v", err)
	}

	got, err := repo.ListTasks(ctx, repository.ListTasksOptions{OwnerID: 7})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(got))
	}
}

func TestMarkDone(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	task, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		OwnerID: 7, Title: "task", Date: day(2024, 5, 1),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.MarkDone(ctx, repository.MarkDoneOptions{OwnerID: 7, TaskID: task.ID}); err != nil {
		t.Fatalf("MarkDone: %v", err)
	}

	got, err := repo.ListTasks(ctx, repository.ListTasksOptions{OwnerID: 7})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !got[0].Done {
		t.Errorf("expected task marked done, got %+v", got)
	}

	t.Run("unknown task", func(t *testing.T) {
		err := repo.MarkDone(ctx, repository.MarkDoneOptions{OwnerID: 7, TaskID: 9999})
		if !errors.Is(err, routine.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("wrong owner", func(t *testing.T) {
		err := repo.MarkDone(ctx, repository.MarkDoneOptions{OwnerID: 8, TaskID: task.ID})
		if !errors.Is(err, routine.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound for foreign owner, got %v", err)
		}
	})

	t.Run("missing owner", func(t *testing.T) {
		err := repo.MarkDone(ctx, repository.MarkDoneOptions{TaskID: task.ID})
		if !errors.Is(err, routine.ErrMissingOwner) {
			t.Errorf("expected ErrMissingOwner, got %v", err)
		}
	})
}
