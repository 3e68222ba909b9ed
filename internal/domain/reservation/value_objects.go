package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidStayPeriod      = errors.New("check-out must be after check-in")
	ErrNegativePrice          = errors.New("price cannot be negative")
	ErrInvalidParty           = errors.New("party must have at least one adult")
	ErrSpecialRequestsTooLong = errors.New("special requests are too long (max 500 characters)")
)

const MaxSpecialRequestsLength = 500

// StayPeriod is a half-open date interval [checkIn, checkOut). Times are
// normalized to midnight UTC so date arithmetic is exact.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := truncateToDay(checkIn)
	out := truncateToDay(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

// Nights rounds partial days up and never returns less than one, even for
// degenerate input. Construction still enforces at least one full night.
func (p StayPeriod) Nights() int {
	hours := p.checkOut.Sub(p.checkIn).Hours()
	nights := int(hours / 24)
	if hours > float64(nights)*24 {
		nights++
	}
	if nights < 1 {
		nights = 1
	}
	return nights
}

// Covers reports whether the given day falls inside the half-open interval.
func (p StayPeriod) Covers(day time.Time) bool {
	d := truncateToDay(day)
	return !d.Before(p.checkIn) && d.Before(p.checkOut)
}

// HasStarted reports whether the stay window is open at the given time.
func (p StayPeriod) HasStarted(now time.Time) bool {
	return !truncateToDay(now).Before(p.checkIn)
}

func (p StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", p.checkIn.Format("2006-01-02"), p.checkOut.Format("2006-01-02"))
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Party is the adult/children split of a booking.
type Party struct {
	adults   int
	children int
}

func NewParty(adults, children int) (Party, error) {
	if adults < 1 || children < 0 {
		return Party{}, ErrInvalidParty
	}
	return Party{adults: adults, children: children}, nil
}

func (p Party) Adults() int   { return p.adults }
func (p Party) Children() int { return p.children }
func (p Party) Size() int     { return p.adults + p.children }

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(value string) (SpecialRequests, error) {
	value = strings.TrimSpace(value)
	if len(value) > MaxSpecialRequestsLength {
		return SpecialRequests{}, ErrSpecialRequestsTooLong
	}
	return SpecialRequests{value: value}, nil
}

func (s SpecialRequests) String() string {
	return s.value
}

func (s SpecialRequests) IsEmpty() bool {
	return s.value == ""
}
