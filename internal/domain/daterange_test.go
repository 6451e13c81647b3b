package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivebase/rental/internal/domain"
)

// day is shorthand for a midnight-UTC date in January 2026.
func day(d int) time.Time {
	return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC)
}

// mustRange builds a DateRange or fails the test.
func mustRange(t *testing.T, start, end time.Time) domain.DateRange {
	t.Helper()
	r, err := domain.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewDateRange_StartAfterEnd(t *testing.T) {
	_, err := domain.NewDateRange(day(10), day(5))

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestNewDateRange_TruncatesToMidnightUTC(t *testing.T) {
	start := time.Date(2026, time.January, 10, 15, 30, 0, 0, time.UTC)
	end := time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC)

	r, err := domain.NewDateRange(start, end)

	require.NoError(t, err)
	assert.Equal(t, day(10), r.Start)
	assert.Equal(t, day(12), r.End)
	assert.Equal(t, 2, r.Days())
}

func TestDateRange_Overlaps_Symmetry(t *testing.T) {
	cases := []struct {
		name string
		a, b domain.DateRange
		want bool
	}{
		{"disjoint", mustRange(t, day(1), day(5)), mustRange(t, day(10), day(15)), false},
		{"contained", mustRange(t, day(1), day(20)), mustRange(t, day(5), day(10)), true},
		{"partial", mustRange(t, day(1), day(12)), mustRange(t, day(10), day(15)), true},
		{"abutting", mustRange(t, day(1), day(10)), mustRange(t, day(10), day(15)), false},
		{"identical", mustRange(t, day(3), day(7)), mustRange(t, day(3), day(7)), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a), "Overlaps must be symmetric")
		})
	}
}

func TestDateRange_Overlaps_Self(t *testing.T) {
	nonEmpty := mustRange(t, day(10), day(15))
	assert.True(t, nonEmpty.Overlaps(nonEmpty), "a non-empty range overlaps itself")
}

func TestDateRange_ZeroLengthOverlapsNothing(t *testing.T) {
	empty := mustRange(t, day(10), day(10))
	covering := mustRange(t, day(1), day(20))

	assert.True(t, empty.IsZero())
	assert.False(t, empty.Overlaps(empty), "an empty range does not even overlap itself")
	assert.False(t, empty.Overlaps(covering))
	assert.False(t, covering.Overlaps(empty))
}

func TestDateRange_Contains(t *testing.T) {
	r := mustRange(t, day(10), day(15))

	assert.True(t, r.Contains(day(10)), "start day is included")
	assert.True(t, r.Contains(day(14)))
	assert.False(t, r.Contains(day(15)), "end day is excluded")
	assert.False(t, r.Contains(day(9)))
}

func TestDateRange_Days(t *testing.T) {
	assert.Equal(t, 5, mustRange(t, day(10), day(15)).Days())
	assert.Equal(t, 0, mustRange(t, day(10), day(10)).Days())
}
