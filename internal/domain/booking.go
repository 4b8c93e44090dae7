package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ActiveStatuses hold their interval and take part in conflict checks.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

var validNext = map[BookingStatus]map[BookingStatus]bool{
	BookingStatusPending:   {BookingStatusConfirmed: true, BookingStatusCancelled: true, BookingStatusCompleted: true},
	BookingStatusConfirmed: {BookingStatusCancelled: true, BookingStatusCompleted: true},
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
}

func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

func (s BookingStatus) Valid() bool {
	_, ok := validNext[s]
	return ok
}

func CanTransition(from, to BookingStatus) bool {
	return validNext[from][to]
}

type Booking struct {
	ID         string        `json:"id"`
	SpaceID    string        `json:"space_id"`
	UserID     string        `json:"user_id"`
	StartTime  time.Time     `json:"start_time"`
	EndTime    time.Time     `json:"end_time"`
	Status     BookingStatus `json:"status"`
	TotalCents int64         `json:"total_cents"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

type CreateBookingInput struct {
	SpaceID  string
	UserID   string
	Interval Interval
}

// Availability is the outcome of checking one interval on one space.
type Availability struct {
	Space     Space     `json:"space"`
	Interval  Interval  `json:"interval"`
	Available bool      `json:"available"`
	Conflicts []Booking `json:"conflicts"`
}

// SpaceDay is the list of active bookings of a space touching one calendar day.
type SpaceDay struct {
	Space    Space     `json:"space"`
	Date     string    `json:"date"`
	Bookings []Booking `json:"bookings"`
}

// FindConflicts returns the active candidates that overlap interval.
func FindConflicts(interval Interval, candidates []Booking) []Booking {
	var out []Booking
	for _, b := range candidates {
		if !b.Status.IsActive() {
			continue
		}
		if interval.Overlaps(b.Interval()) {
			out = append(out, b)
		}
	}
	return out
}
