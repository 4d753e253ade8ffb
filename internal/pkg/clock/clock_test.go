//go:build unit

package clock_test

import (
	"testing"
	"time"

	"loyalty-ledger/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestRealClockIn(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	now := clock.NewRealClockIn(loc).Now()

	assert.Equal(t, loc, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// 01:30 UTC is still the previous evening in the business zone.
	instant := time.Date(2024, time.March, 16, 1, 30, 0, 0, time.UTC).In(loc)

	got := clock.Today(instant)

	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, loc), got)
}

func TestMockClock(t *testing.T) {
	start := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)
	c := clock.NewMockClock(start)

	c.Add(36 * time.Hour)
	assert.Equal(t, start.Add(36*time.Hour), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
