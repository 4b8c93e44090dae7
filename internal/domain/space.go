package domain

import (
	"fmt"
	"math"
	"math/bits"
	"time"
)

type SpaceType string

const (
	SpaceTypeDesk        SpaceType = "DESK"
	SpaceTypeOffice      SpaceType = "OFFICE"
	SpaceTypeMeetingRoom SpaceType = "MEETING_ROOM"
	SpaceTypePhoneBooth  SpaceType = "PHONE_BOOTH"
)

var SpaceTypes = []SpaceType{SpaceTypeDesk, SpaceTypeOffice, SpaceTypeMeetingRoom, SpaceTypePhoneBooth}

func (t SpaceType) Valid() bool {
	for _, v := range SpaceTypes {
		if t == v {
			return true
		}
	}
	return false
}

type Space struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           SpaceType `json:"type"`
	Capacity       int       `json:"capacity"`
	PriceHourCents int64     `json:"price_hour_cents"`
	Amenities      []string  `json:"amenities"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"image_url"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	// TotalBookings counts COMPLETED bookings; only List fills it.
	TotalBookings int `json:"total_bookings,omitempty"`
}

// PriceFor is the hourly price applied to the interval length, in cents,
// rounded half-up to the nearest cent.
func (s *Space) PriceFor(interval Interval) (int64, error) {
	return PriceCents(s.PriceHourCents, interval.Duration())
}

// PriceCents computes hourlyCents * seconds / 3600 in 128 bits and fails with
// ErrPriceOverflow when the total does not fit in int64.
func PriceCents(hourlyCents int64, d time.Duration) (int64, error) {
	if d <= 0 {
		return 0, nil
	}
	if hourlyCents < 0 {
		return 0, fmt.Errorf("%w: hourly price %d", ErrInvalidPrice, hourlyCents)
	}

	const perHour = uint64(time.Hour / time.Second)
	hi, lo := bits.Mul64(uint64(hourlyCents), uint64(d/time.Second))
	lo, carry := bits.Add64(lo, perHour/2, 0)
	hi += carry
	if hi >= perHour {
		return 0, ErrPriceOverflow
	}
	q, _ := bits.Div64(hi, lo, perHour)
	if q > math.MaxInt64 {
		return 0, ErrPriceOverflow
	}
	return int64(q), nil
}

// FormatCents renders cents as a decimal amount, e.g. 5000 -> "50.00".
func FormatCents(c int64) string {
	sign := ""
	if c < 0 {
		sign, c = "-", -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

type SpaceFilter struct {
	Type        SpaceType
	Active      *bool
	MinCapacity int
	Query       string
}

type CreateSpaceInput struct {
	Name           string
	Type           SpaceType
	Capacity       int
	PriceHourCents int64
	Amenities      []string
	Description    string
	ImageURL       string
}

// UpdateSpaceInput carries only the fields to change.
type UpdateSpaceInput struct {
	Name           *string
	Type           *SpaceType
	Capacity       *int
	PriceHourCents *int64
	Amenities      []string
	Description    *string
	ImageURL       *string
	IsActive       *bool
}
