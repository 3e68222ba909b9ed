package clock

import "time"

// Clock abstracts wall time so stay-window checks are testable. Today is the
// current UTC calendar day, the granularity all booking logic works at.
type Clock interface {
	Now() time.Time
	Today() time.Time
}

type SystemClock struct{}

func NewSystemClock() Clock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) Today() time.Time {
	return DayOf(time.Now())
}

// DayOf truncates to midnight UTC.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// FixedClock is a controllable clock for tests.
type FixedClock struct {
	current time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

func (c *FixedClock) Now() time.Time {
	return c.current
}

func (c *FixedClock) Today() time.Time {
	return DayOf(c.current)
}
