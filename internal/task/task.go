package task

import (
	"time"

	"github.com/google/uuid"
)

// Task is one recurring obligation. Timestamps are milliseconds since the
// Unix epoch to match the persisted schema and the share-link payload.
type Task struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	IntervalDays      int    `json:"intervalDays"`
	LastCompleted     int64  `json:"lastCompleted"`
	CreatedAt         int64  `json:"createdAt"`
	InitialDaysOffset int    `json:"initialDaysOffset"`
}

// New creates a task due for the first time in offset days (or intervalDays
// when offset is nil). LastCompleted starts equal to CreatedAt; the two stay
// bitwise equal until the first completion.
func New(name string, intervalDays int, offset *int, now time.Time) Task {
	ms := now.UnixMilli()
	firstDue := intervalDays
	if offset != nil {
		firstDue = *offset
	}
	return Task{
		ID:                uuid.NewString(),
		Name:              name,
		IntervalDays:      intervalDays,
		LastCompleted:     ms,
		CreatedAt:         ms,
		InitialDaysOffset: firstDue,
	}
}

// FirstCycle reports whether the task has never been completed. The check is
// exact timestamp equality; Complete is the only operation allowed to break it.
func (t Task) FirstCycle() bool {
	return t.LastCompleted == t.CreatedAt
}

func (t Task) CreatedTime() time.Time {
	return time.UnixMilli(t.CreatedAt)
}

func (t Task) LastCompletedTime() time.Time {
	return time.UnixMilli(t.LastCompleted)
}
