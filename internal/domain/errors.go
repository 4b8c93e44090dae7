package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSpaceNotFound   = errors.New("space not found or not active")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrConflict          = errors.New("interval overlaps an existing booking")
	ErrLockTimeout       = errors.New("space is busy, retry later")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
	ErrSpaceInUse        = errors.New("space has active or upcoming bookings, deactivate it instead")
)

var (
	ErrValidation      = errors.New("validation error")
	ErrInvalidFormat   = errors.New("invalid date/time format")
	ErrInvalidInterval = errors.New("start time must be before end time")
	ErrInvalidCapacity = errors.New("capacity must be >= 1")
	ErrInvalidPrice    = errors.New("price must be > 0")
	ErrPriceOverflow   = errors.New("total price out of range")
	ErrInvalidCategory = errors.New("invalid space type, must be one of DESK, OFFICE, MEETING_ROOM, PHONE_BOOTH")
)

// ConflictError lists the bookings that obstruct a requested interval.
type ConflictError struct {
	Interval  Interval
	Conflicts []Booking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %d conflicting booking(s)", ErrConflict, len(e.Conflicts))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
