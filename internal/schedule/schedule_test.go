package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nkorobkov/one-click-routine/internal/clock"
	"github.com/nkorobkov/one-click-routine/internal/task"
)

var base = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.Local)

func intPtr(n int) *int { return &n }

// steadyTask builds a task completed once at lastDone, cycling every interval days.
func steadyTask(interval int, lastDone time.Time) task.Task {
	t := task.New("water plants", interval, nil, lastDone.AddDate(0, 0, -30))
	t.LastCompleted = lastDone.UnixMilli()
	return t
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(base, base))
	assert.Equal(t, 1, DaysBetween(base, base.AddDate(0, 0, 1)))
	assert.Equal(t, -3, DaysBetween(base, base.AddDate(0, 0, -3)))

	// Only the calendar day matters, never the hour.
	lateNight := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.Local)
	earlyMorning := time.Date(2026, time.March, 11, 0, 1, 0, 0, time.Local)
	assert.Equal(t, 1, DaysBetween(lateNight, earlyMorning))
}

func TestDaysBetween_MonthAndYearBoundary(t *testing.T) {
	dec31 := time.Date(2026, time.December, 31, 18, 0, 0, 0, time.Local)
	jan1 := time.Date(2027, time.January, 1, 6, 0, 0, 0, time.Local)
	assert.Equal(t, 1, DaysBetween(dec31, jan1))

	jan31 := time.Date(2026, time.January, 31, 12, 0, 0, 0, time.Local)
	mar1 := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.Local)
	assert.Equal(t, 29, DaysBetween(jan31, mar1))
}

func TestDaysRemaining_FirstCycleUsesOffset(t *testing.T) {
	tk := task.New("stretch", 5, intPtr(3), base)

	assert.True(t, tk.FirstCycle())
	assert.Equal(t, 3, DaysRemaining(tk, base))
	assert.Equal(t, 0, DaysRemaining(tk, base.AddDate(0, 0, 3)))
	assert.Equal(t, -1, DaysRemaining(tk, base.AddDate(0, 0, 4)))
}

func TestDaysRemaining_FirstCycleDefaultsToInterval(t *testing.T) {
	tk := task.New("stretch", 5, nil, base)
	assert.Equal(t, 5, DaysRemaining(tk, base))
}

func TestDaysRemaining_SteadyState(t *testing.T) {
	tk := steadyTask(7, base)

	assert.False(t, tk.FirstCycle())
	assert.Equal(t, 7, DaysRemaining(tk, base))
	assert.Equal(t, 0, DaysRemaining(tk, base.AddDate(0, 0, 7)))
	assert.Equal(t, -2, DaysRemaining(tk, base.AddDate(0, 0, 9)))
}

func TestDaysRemaining_DropsByOnePerCalendarDay(t *testing.T) {
	tk := steadyTask(10, base)
	for i := 0; i <= 12; i++ {
		at := base.AddDate(0, 0, i).Add(13 * time.Minute)
		assert.Equal(t, 10-i, DaysRemaining(tk, at), "day %d", i)
	}
}

func TestDaysOverdue_AlwaysMeasuredAgainstInterval(t *testing.T) {
	tk := steadyTask(5, base)
	assert.Equal(t, 1, DaysOverdue(tk, base.AddDate(0, 0, 6)))
	assert.Equal(t, 10, DaysOverdue(tk, base.AddDate(0, 0, 15)))

	// A first-cycle task is classified by interval too, not by its offset.
	fc := task.New("stretch", 5, intPtr(1), base)
	assert.Equal(t, -2, DaysRemaining(fc, base.AddDate(0, 0, 3)))
	assert.Equal(t, -2, DaysOverdue(fc, base.AddDate(0, 0, 3)))
}

func TestDueDate_NeverInThePast(t *testing.T) {
	tk := steadyTask(3, base)

	due := DueDate(tk, base)
	assert.Equal(t, clock.Midnight(base).AddDate(0, 0, 3), due)

	// Ten days overdue still maps onto today.
	late := base.AddDate(0, 0, 13)
	assert.Equal(t, clock.Midnight(late), DueDate(tk, late))
}

func TestEngine_PureForFixedInputs(t *testing.T) {
	tk := steadyTask(4, base)
	at := base.AddDate(0, 0, 2)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 2, DaysRemaining(tk, at))
		assert.Equal(t, -2, DaysOverdue(tk, at))
		assert.Equal(t, clock.Midnight(at).AddDate(0, 0, 2), DueDate(tk, at))
	}
}

// Full lifecycle: offset-driven first due, completion, steady-state cycling.
func TestScenario_OffsetThenSteadyState(t *testing.T) {
	tk := task.New("laundry", 5, intPtr(3), base)

	day3 := base.AddDate(0, 0, 3)
	assert.Equal(t, 0, DaysRemaining(tk, day3))
	assert.Equal(t, clock.Midnight(day3), DueDate(tk, day3))

	// Completing on day 3 exits the first cycle.
	tk.LastCompleted = day3.UnixMilli()
	assert.False(t, tk.FirstCycle())

	assert.Equal(t, 0, DaysRemaining(tk, day3.AddDate(0, 0, 5)))
	assert.Equal(t, -1, DaysRemaining(tk, day3.AddDate(0, 0, 6)))
	assert.Equal(t, 1, DaysOverdue(tk, day3.AddDate(0, 0, 6)))
}
