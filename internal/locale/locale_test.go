package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, English, Get("de").ID)
	assert.Equal(t, Russian, Get(Russian).ID)
	assert.True(t, Known(English))
	assert.True(t, Known(Russian))
	assert.False(t, Known("de"))
}

func TestPacksAreComplete(t *testing.T) {
	for _, id := range IDs() {
		p := Get(id)
		require.NotNil(t, p.FormatDuration, "%s", id)
		require.NotNil(t, p.FormatOverdue, "%s", id)
		require.NotNil(t, p.FormatEveryNDays, "%s", id)
		require.NotNil(t, p.FormatClock, "%s", id)
		require.NotNil(t, p.FormatDate, "%s", id)
		for i, d := range p.Weekdays {
			assert.NotEmpty(t, d, "%s weekday %d", id, i)
		}
		for i, m := range p.Months {
			assert.NotEmpty(t, m, "%s month %d", id, i)
		}
	}
}

func TestEnglishDuration(t *testing.T) {
	f := Get(English).FormatDuration
	assert.Equal(t, "1 day", f(1))
	assert.Equal(t, "4 days", f(4))
	assert.Equal(t, "1w", f(7))
	assert.Equal(t, "1w 3d", f(10))
	assert.Equal(t, "2w", f(14))
	assert.Equal(t, "3w 6d", f(27))
}

func TestEnglishOverdue(t *testing.T) {
	f := Get(English).FormatOverdue
	assert.Equal(t, "today", f(0))
	assert.Equal(t, "1 day ago", f(1))
	assert.Equal(t, "6 days ago", f(6))
	assert.Equal(t, "1 week ago", f(7))
	assert.Equal(t, "1 week 3 days ago", f(10))
	assert.Equal(t, "2 weeks ago", f(14))
	assert.Equal(t, "1 month ago", f(30))
	assert.Equal(t, "1 month 2 weeks ago", f(45))
	assert.Equal(t, "2 months ago", f(60))
}

func TestEnglishEveryNDays(t *testing.T) {
	f := Get(English).FormatEveryNDays
	assert.Equal(t, "every day", f(1))
	assert.Equal(t, "every 7 days", f(7))
}

func TestRussianDuration(t *testing.T) {
	f := Get(Russian).FormatDuration
	// One remaining day renders as a date word, only here.
	assert.Equal(t, "завтра", f(1))
	assert.Equal(t, "2 дня", f(2))
	assert.Equal(t, "5 дней", f(5))
	assert.Equal(t, "1 неделя", f(7))
	assert.Equal(t, "1 неделя 3 дня", f(10))
	assert.Equal(t, "2 недели", f(14))
	assert.Equal(t, "3 недели", f(21))
}

func TestRussianOverdue(t *testing.T) {
	f := Get(Russian).FormatOverdue
	assert.Equal(t, "сегодня", f(0))
	assert.Equal(t, "1 день назад", f(1))
	assert.Equal(t, "3 дня назад", f(3))
	assert.Equal(t, "6 дней назад", f(6))
	assert.Equal(t, "1 неделю назад", f(7))
	assert.Equal(t, "1 неделю 3 дня назад", f(10))
	assert.Equal(t, "2 недели назад", f(14))
	assert.Equal(t, "1 месяц назад", f(30))
	assert.Equal(t, "1 месяц 2 недели назад", f(45))
	assert.Equal(t, "2 месяца назад", f(60))
}

// The plural rule keys on the last digit with no teen exception.
func TestRussianPluralLastDigitRule(t *testing.T) {
	assert.Equal(t, "21 день", ruDays(21))
	assert.Equal(t, "22 дня", ruDays(22))
	assert.Equal(t, "25 дней", ruDays(25))
	assert.Equal(t, "11 день", ruDays(11))
}

func TestRussianEveryNDays(t *testing.T) {
	f := Get(Russian).FormatEveryNDays
	assert.Equal(t, "каждый день", f(1))
	assert.Equal(t, "каждые 2 дня", f(2))
	assert.Equal(t, "каждые 7 дней", f(7))
}

func TestClockAndDate(t *testing.T) {
	en := Get(English)
	assert.Equal(t, "09:05", en.FormatClock(9, 5))
	assert.Equal(t, "23:40", en.FormatClock(23, 40))
	assert.Equal(t, "Sunday, January 5", en.FormatDate(0, 5, 0))
	assert.Equal(t, "Saturday, December 31", en.FormatDate(6, 31, 11))

	ru := Get(Russian)
	assert.Equal(t, "воскресенье, 5 января", ru.FormatDate(0, 5, 0))
	assert.Equal(t, "пятница, 1 мая", ru.FormatDate(5, 1, 4))
}

// Formatters are total: out-of-contract input still returns something.
func TestFormattersNeverPanic(t *testing.T) {
	for _, id := range IDs() {
		p := Get(id)
		assert.NotPanics(t, func() {
			_ = p.FormatDuration(-5)
			_ = p.FormatDuration(0)
			_ = p.FormatOverdue(-1)
			_ = p.FormatDuration(400)
			_ = p.FormatOverdue(400)
		})
	}
}
