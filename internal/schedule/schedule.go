// Package schedule is the due-date engine: pure calendar-day arithmetic over
// task timestamps. All functions take "now" as an argument so one wall-clock
// read stays consistent across a full evaluation pass.
package schedule

import (
	"time"

	"github.com/nkorobkov/one-click-routine/internal/clock"
	"github.com/nkorobkov/one-click-routine/internal/task"
)

const msPerDay = 24 * 60 * 60 * 1000

// DaysBetween returns the number of calendar days from a to b (b minus a),
// negative when b precedes a. Both instants are normalized to local midnight
// first so the hour of day never leaks into the count.
func DaysBetween(a, b time.Time) int {
	am := clock.Midnight(a).UnixMilli()
	bm := clock.Midnight(b).UnixMilli()
	return int((bm - am) / msPerDay)
}

// DaysRemaining returns whole days until the task is due: zero means due
// today, negative means overdue. A never-completed task counts from its
// creation day against InitialDaysOffset; after the first completion the
// steady interval governs, anchored on the last completion day.
func DaysRemaining(t task.Task, now time.Time) int {
	if t.FirstCycle() {
		elapsed := DaysBetween(t.CreatedTime(), now)
		return t.InitialDaysOffset - elapsed
	}
	elapsed := DaysBetween(t.LastCompletedTime(), now)
	return t.IntervalDays - elapsed
}

// DaysOverdue returns how many days past due the task is. It is always
// measured against IntervalDays, even for a first-cycle task scheduled by
// InitialDaysOffset. Only meaningful once DaysRemaining <= 0.
func DaysOverdue(t task.Task, now time.Time) int {
	return DaysBetween(t.LastCompletedTime(), now) - t.IntervalDays
}

// DueDate returns the local-midnight date the task is due. A task already
// due or overdue maps to today, never to a past date.
func DueDate(t task.Task, now time.Time) time.Time {
	days := DaysRemaining(t, now)
	if days < 0 {
		days = 0
	}
	return clock.Midnight(now).AddDate(0, 0, days)
}
