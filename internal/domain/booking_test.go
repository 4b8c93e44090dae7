package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatus("UNKNOWN"), BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s->%s", tt.from, tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestBookingStatus_IsActive(t *testing.T) {
	assert.True(t, BookingStatusPending.IsActive())
	assert.True(t, BookingStatusConfirmed.IsActive())
	assert.False(t, BookingStatusCancelled.IsActive())
	assert.False(t, BookingStatusCompleted.IsActive())
}

func TestFindConflicts_IgnoresInactiveAndTouching(t *testing.T) {
	req := Interval{Start: at(10 * 60), End: at(12 * 60)}

	candidates := []Booking{
		{ID: "overlapping", StartTime: at(11 * 60), EndTime: at(13 * 60), Status: BookingStatusConfirmed},
		{ID: "cancelled", StartTime: at(10 * 60), EndTime: at(12 * 60), Status: BookingStatusCancelled},
		{ID: "completed", StartTime: at(9 * 60), EndTime: at(11 * 60), Status: BookingStatusCompleted},
		{ID: "touching-before", StartTime: at(8 * 60), EndTime: at(10 * 60), Status: BookingStatusPending},
		{ID: "touching-after", StartTime: at(12 * 60), EndTime: at(13 * 60), Status: BookingStatusPending},
		{ID: "pending", StartTime: at(9 * 60), EndTime: at(10*60 + 1), Status: BookingStatusPending},
	}

	got := FindConflicts(req, candidates)

	ids := make([]string, 0, len(got))
	for _, b := range got {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"overlapping", "pending"}, ids)
}

func TestFindConflicts_Empty(t *testing.T) {
	assert.Empty(t, FindConflicts(Interval{Start: at(0), End: at(60)}, nil))
}

func TestConflictError_Is(t *testing.T) {
	err := fmt.Errorf("create booking: %w", &ConflictError{
		Interval:  Interval{Start: at(0), End: at(60)},
		Conflicts: []Booking{{ID: "b1"}},
	})

	assert.ErrorIs(t, err, ErrConflict)

	var ce *ConflictError
	assert.True(t, errors.As(err, &ce))
	assert.Len(t, ce.Conflicts, 1)
}

func TestBooking_Interval(t *testing.T) {
	b := Booking{StartTime: at(60), EndTime: at(90)}
	assert.Equal(t, 30*time.Minute, b.Interval().Duration())
}
