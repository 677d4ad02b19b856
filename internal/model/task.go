package model

import "time"

// Task is a dated routine item stored in the daily_routine table.
type Task struct {
	ID      int64     // Store-assigned surrogate key
	OwnerID int64     // Telegram user ID of the creator
	Title   string    // Short label, entered first in the add flow
	Date    time.Time // Calendar date the task applies to (midnight, no time component)
	Detail  string    // Free-text description
	Rank    int       // Secondary sort key within the same date, defaults to 0
	Done    bool      // Completion flag, defaults to false
}
