package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct {
	loc *time.Location
}

// NewRealClockIn reports wall-clock time in loc, so that calendar dates
// derived from Now() follow the business timezone rather than the host's.
func NewRealClockIn(loc *time.Location) Clock {
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

// Today truncates t to midnight in t's own location.
func Today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
