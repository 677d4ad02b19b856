package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// schema is created idempotently at startup; there are no migrations.
const schema = `
CREATE TABLE IF NOT EXISTS daily_routine (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id    INTEGER NOT NULL,
    task_title TEXT NOT NULL,
    task_date  DATE NOT NULL,
    task_text  TEXT NOT NULL DEFAULT '',
    rank       SMALLINT NOT NULL DEFAULT 0,
    is_done    BOOLEAN NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_daily_routine_user_date
    ON daily_routine (user_id, task_date);
`

// Open opens (creating if needed) the SQLite database at dbPath and ensures
// the schema exists.
func Open(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return db, nil
}
