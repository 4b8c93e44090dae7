package domain

import (
	"testing"
	"testing/quick"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func at(min int) time.Time {
	return base.Add(time.Duration(min) * time.Minute)
}

// threeClauseOverlap is the start-inside / end-inside / encloses formulation.
func threeClauseOverlap(a, b Interval) bool {
	startInside := !b.Start.After(a.Start) && b.End.After(a.Start)
	endInside := b.Start.Before(a.End) && !b.End.Before(a.End)
	encloses := !b.Start.Before(a.Start) && !b.End.After(a.End)
	return startInside || endInside || encloses
}

func TestInterval_Overlaps_MatchesThreeClauseForm_Grid(t *testing.T) {
	const n = 8
	for s1 := 0; s1 < n; s1++ {
		for e1 := s1 + 1; e1 <= n; e1++ {
			for s2 := 0; s2 < n; s2++ {
				for e2 := s2 + 1; e2 <= n; e2++ {
					a := Interval{Start: at(s1), End: at(e1)}
					b := Interval{Start: at(s2), End: at(e2)}
					require.Equalf(t, threeClauseOverlap(a, b), a.Overlaps(b),
						"a=[%d,%d) b=[%d,%d)", s1, e1, s2, e2)
				}
			}
		}
	}
}

func TestInterval_Overlaps_MatchesThreeClauseForm_Quick(t *testing.T) {
	f := func(s1, l1, s2, l2 uint16) bool {
		a := Interval{Start: at(int(s1)), End: at(int(s1) + int(l1%600) + 1)}
		b := Interval{Start: at(int(s2)), End: at(int(s2) + int(l2%600) + 1)}
		return a.Overlaps(b) == threeClauseOverlap(a, b) && a.Overlaps(b) == b.Overlaps(a)
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 5000}))
}

func TestInterval_Overlaps_Touching(t *testing.T) {
	a := Interval{Start: at(9 * 60), End: at(10 * 60)}
	b := Interval{Start: at(10 * 60), End: at(11 * 60)}

	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestInterval_Overlaps_Cases(t *testing.T) {
	existing := Interval{Start: at(10 * 60), End: at(12 * 60)}

	tests := []struct {
		name string
		in   Interval
		want bool
	}{
		{"starts inside", Interval{at(11 * 60), at(13 * 60)}, true},
		{"ends inside", Interval{at(9 * 60), at(11 * 60)}, true},
		{"enclosed", Interval{at(10*60 + 30), at(11 * 60)}, true},
		{"encloses", Interval{at(8 * 60), at(13 * 60)}, true},
		{"identical", existing, true},
		{"before", Interval{at(8 * 60), at(9 * 60)}, false},
		{"after", Interval{at(12 * 60), at(13 * 60)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Overlaps(existing))
		})
	}
}

func TestNewInterval_RejectsEmptyAndInverted(t *testing.T) {
	_, err := NewInterval(at(60), at(60))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(at(120), at(60))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	iv, err := NewInterval(at(60), at(61))
	require.NoError(t, err)
	assert.Equal(t, time.Minute, iv.Duration())
}

func TestNewInterval_RejectsTooLong(t *testing.T) {
	_, err := NewInterval(time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(base, base.Add(MaxIntervalLength+time.Minute))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	iv, err := NewInterval(base, base.Add(MaxIntervalLength))
	require.NoError(t, err)
	assert.Len(t, iv.Days(), 366)
}

func TestNewInterval_NormalisesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	iv, err := NewInterval(time.Date(2025, 3, 10, 12, 0, 0, 0, loc), time.Date(2025, 3, 10, 13, 0, 0, 0, loc))
	require.NoError(t, err)

	assert.Equal(t, time.UTC, iv.Start.Location())
	assert.Equal(t, 9, iv.Start.Hour())
}

func TestParseSlot(t *testing.T) {
	iv, err := ParseSlot("2025-03-10", "09:00", "11:30")
	require.NoError(t, err)
	assert.Equal(t, at(9*60), iv.Start)
	assert.Equal(t, at(11*60+30), iv.End)

	_, err = ParseSlot("2025-03-10", "11:00", "11:00")
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = ParseSlot("10/03/2025", "09:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseSlot("2025-03-10", "9am", "10:00")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseSlot("2025-03-10", "09:00", "24:30")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseSlot("2025-03-10", "9:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseSlot("2025-03-10", "09:00", "10:5")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseInstant(t *testing.T) {
	ts, err := ParseInstant("2025-03-10T12:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, at(10*60), ts)

	_, err = ParseInstant("2025-03-10 12:00")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDayInterval_IsHalfOpen(t *testing.T) {
	day, err := DayInterval("2025-03-10")
	require.NoError(t, err)

	assert.Equal(t, base, day.Start)
	assert.Equal(t, base.AddDate(0, 0, 1), day.End)

	lastMinute := Interval{Start: at(23*60 + 59), End: at(24 * 60)}
	nextDay := Interval{Start: at(24 * 60), End: at(25 * 60)}
	assert.True(t, day.Overlaps(lastMinute))
	assert.False(t, day.Overlaps(nextDay))

	_, err = DayInterval("2025-13-01")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestInterval_Days(t *testing.T) {
	iv := Interval{Start: at(22 * 60), End: at(26 * 60)}
	assert.Equal(t, []string{"2025-03-10", "2025-03-11"}, iv.Days())

	endsAtMidnight := Interval{Start: at(22 * 60), End: at(24 * 60)}
	assert.Equal(t, []string{"2025-03-10"}, endsAtMidnight.Days())
}
