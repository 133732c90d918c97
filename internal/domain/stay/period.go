package stay

import (
	"time"

	"hotel-reservation/internal/pkg/errs"
)

const (
	DateLayout = "2006-01-02"

	// MaxNights bounds every stay regardless of configured booking limits.
	MaxNights = 365

	secondsPerDay = 24 * 60 * 60
)

var ErrInvalidDateRange = errs.ErrInvalidDateRange

// Period is a half-open range of calendar days [checkIn, checkOut).
type Period struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewPeriod(checkIn, checkOut time.Time) (Period, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return Period{}, ErrInvalidDateRange
	}
	in := Day(checkIn)
	out := Day(checkOut)
	if !out.After(in) {
		return Period{}, ErrInvalidDateRange
	}
	p := Period{checkIn: in, checkOut: out}
	if n := p.Nights(); n > MaxNights {
		return Period{}, errs.Wrapf(ErrInvalidDateRange, "%d nights exceeds the %d night limit", n, MaxNights)
	}
	return p, nil
}

func ParsePeriod(checkIn, checkOut string) (Period, error) {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return Period{}, errs.Wrapf(ErrInvalidDateRange, "check-in %q: %v", checkIn, err)
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return Period{}, errs.Wrapf(ErrInvalidDateRange, "check-out %q: %v", checkOut, err)
	}
	return NewPeriod(in, out)
}

// Day truncates t to its calendar date at UTC midnight.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (p Period) CheckIn() time.Time  { return p.checkIn }
func (p Period) CheckOut() time.Time { return p.checkOut }

func (p Period) IsZero() bool {
	return p.checkIn.IsZero() && p.checkOut.IsZero()
}

// Nights counts calendar days between the UTC-midnight bounds.
func (p Period) Nights() int {
	return int((p.checkOut.Unix() - p.checkIn.Unix()) / secondsPerDay)
}

// Overlaps reports whether two half-open periods share at least one night.
// Touching boundaries (one checks out the day the other checks in) do not overlap.
func (p Period) Overlaps(other Period) bool {
	return p.checkIn.Before(other.checkOut) && p.checkOut.After(other.checkIn)
}

// Contains reports whether day falls within [checkIn, checkOut).
func (p Period) Contains(day time.Time) bool {
	d := Day(day)
	return !d.Before(p.checkIn) && d.Before(p.checkOut)
}

// EachNight calls fn with the date of every night in the stay.
func (p Period) EachNight(fn func(night time.Time)) {
	for d := p.checkIn; d.Before(p.checkOut); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

func (p Period) String() string {
	return "[" + p.checkIn.Format(DateLayout) + "," + p.checkOut.Format(DateLayout) + ")"
}
