package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMidnight(t *testing.T) {
	at := time.Date(2026, time.March, 10, 17, 45, 12, 999, time.Local)
	got := Midnight(at)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local), got)
}

func TestDateEqual(t *testing.T) {
	morning := time.Date(2026, time.March, 10, 0, 1, 0, 0, time.Local)
	night := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.Local)
	nextDay := time.Date(2026, time.March, 11, 0, 1, 0, 0, time.Local)

	assert.True(t, DateEqual(morning, night))
	assert.False(t, DateEqual(night, nextDay))
}

func TestFake(t *testing.T) {
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)
	clk := NewFake(start)
	assert.Equal(t, start, clk.Now())

	clk.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), clk.Now())

	clk.AdvanceDays(2)
	assert.Equal(t, start.Add(90*time.Minute).AddDate(0, 0, 2), clk.Now())

	clk.Set(start)
	assert.Equal(t, start, clk.Now())
}
