package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// MaxIntervalLength is the longest interval NewInterval accepts.
const MaxIntervalLength = 366 * 24 * time.Hour

// Interval is a half-open time range [Start, End) in UTC.
type Interval struct {
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
}

// NewInterval normalises both bounds to UTC and requires Start < End and a
// length of at most MaxIntervalLength.
func NewInterval(start, end time.Time) (Interval, error) {
	start, end = start.UTC(), end.UTC()
	if !start.Before(end) {
		return Interval{}, fmt.Errorf("%w: start %s is not before end %s",
			ErrInvalidInterval, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	// Sub saturates instead of overflowing, so the comparison holds for any bounds.
	if end.Sub(start) > MaxIntervalLength {
		return Interval{}, fmt.Errorf("%w: interval longer than %s",
			ErrInvalidInterval, MaxIntervalLength)
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether the two intervals share at least one instant.
// Intervals that only touch (a.End == b.Start) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Days returns the UTC calendar dates the interval touches.
func (i Interval) Days() []string {
	var days []string
	last := i.End.Add(-time.Nanosecond)
	for d := startOfDay(i.Start); !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DateLayout))
	}
	return days
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(date string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q, expected YYYY-MM-DD", ErrInvalidFormat, date)
	}
	return d, nil
}

// ParseDateTime combines a date and an HH:MM wall-clock time, read as UTC.
func ParseDateTime(date, clock string) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	// раскладка "15" принимает и однозначный час, например "9:00"
	if len(clock) != len(TimeLayout) {
		return time.Time{}, fmt.Errorf("%w: time %q, expected HH:MM", ErrInvalidFormat, clock)
	}
	t, err := time.ParseInLocation(TimeLayout, clock, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q, expected HH:MM", ErrInvalidFormat, clock)
	}
	return d.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

// ParseInstant parses an RFC 3339 timestamp and converts it to UTC.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q, expected RFC3339", ErrInvalidFormat, s)
	}
	return t.UTC(), nil
}

// ParseSlot builds an interval from a date and two HH:MM times.
func ParseSlot(date, startClock, endClock string) (Interval, error) {
	start, err := ParseDateTime(date, startClock)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseDateTime(date, endClock)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(start, end)
}

// DayInterval is [00:00, next day 00:00) of the given date in UTC.
func DayInterval(date string) (Interval, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: d, End: d.AddDate(0, 0, 1)}, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
