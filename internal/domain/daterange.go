// Package domain contains the core data types for the rental booking API.
// This package depends only on the standard library, uuid, and decimal and
// is imported by every other internal package (repo, service, handler).
package domain

import (
	"fmt"
	"time"
)

// DateRange is a half-open interval [Start, End): the start day is included,
// the end day is not. Adjacent ranges (one ending on the day the other
// starts) therefore never overlap, which is what lets a vehicle be returned
// and picked up again on the same day.
//
// DateRange is a value object: construct it with NewDateRange and treat it
// as immutable afterwards. Equality is structural (== works).
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange builds a DateRange after validating Start <= End.
// Both bounds are truncated to midnight UTC: bookings are whole-day
// reservations, and normalising here keeps every comparison downstream
// on the same clock.
// Returns ErrInvalidArgument when start is after end.
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if start.After(end) {
		return DateRange{}, fmt.Errorf("%w: range start %s is after end %s",
			ErrInvalidArgument, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return DateRange{Start: start, End: end}, nil
}

// Overlaps reports whether r and other share at least one day under
// half-open semantics: r.Start < other.End && other.Start < r.End.
// A zero-length range (Start == End) overlaps nothing, including itself,
// even when its point lies strictly inside the other range. Postgres range
// semantics agree: an empty daterange never satisfies &&.
func (r DateRange) Overlaps(other DateRange) bool {
	if r.IsZero() || other.IsZero() {
		return false
	}
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Contains reports whether instant t falls inside the range: Start <= t < End.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Days returns the length of the range in whole days.
// Zero for a zero-length range.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// IsZero reports whether the range covers no days at all.
func (r DateRange) IsZero() bool {
	return !r.Start.Before(r.End)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
}

// truncateToDay drops the time-of-day component and pins the location to UTC.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.In(time.UTC).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
