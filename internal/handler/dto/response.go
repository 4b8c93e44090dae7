package dto

import (
	"math"
	"time"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
)

type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

type AvailabilityResponse struct {
	Available           bool           `json:"available"`
	ConflictingBookings []SlotResponse `json:"conflictingBookings"`
}

type SpaceDayResponse struct {
	Date     string         `json:"date"`
	SpaceID  string         `json:"spaceId"`
	Bookings []SlotResponse `json:"bookings"`
}

type CatalogSpaceResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	Capacity  int            `json:"capacity"`
	PriceHour float64        `json:"priceHour"`
	Bookings  []SlotResponse `json:"bookings"`
}

type CatalogDayResponse struct {
	Date   string                 `json:"date"`
	Spaces []CatalogSpaceResponse `json:"spaces"`
	Total  int                    `json:"total"`
}

type BookingResponse struct {
	ID         string `json:"id"`
	SpaceID    string `json:"spaceId"`
	UserID     string `json:"userId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Status     string `json:"status"`
	TotalCents int64  `json:"totalCents"`
	TotalPrice string `json:"totalPrice"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type SpaceResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	PriceHour   float64  `json:"priceHour"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	IsActive    bool     `json:"isActive"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
	// TotalBookings is the number of COMPLETED bookings, filled on listing.
	TotalBookings int `json:"totalBookings"`
}

type SpaceListResponse struct {
	Success bool            `json:"success"`
	Spaces  []SpaceResponse `json:"spaces"`
	Total   int             `json:"total"`
}

type ErrorResponse struct {
	Error               string         `json:"error"`
	ConflictingBookings []SlotResponse `json:"conflictingBookings,omitempty"`
}

// PriceToCents converts a decimal hourly price to cents, rounding half away from zero.
func PriceToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

func ToSlotResponses(bookings []domain.Booking) []SlotResponse {
	out := make([]SlotResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, SlotResponse{
			StartTime: b.StartTime.UTC().Format(time.RFC3339),
			EndTime:   b.EndTime.UTC().Format(time.RFC3339),
			Status:    string(b.Status),
		})
	}
	return out
}

func ToAvailabilityResponse(a *domain.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		Available:           a.Available,
		ConflictingBookings: ToSlotResponses(a.Conflicts),
	}
}

func ToSpaceDayResponse(d *domain.SpaceDay) SpaceDayResponse {
	return SpaceDayResponse{
		Date:     d.Date,
		SpaceID:  d.Space.ID,
		Bookings: ToSlotResponses(d.Bookings),
	}
}

func ToCatalogDayResponse(date string, days []domain.SpaceDay) CatalogDayResponse {
	spaces := make([]CatalogSpaceResponse, 0, len(days))
	for _, d := range days {
		spaces = append(spaces, CatalogSpaceResponse{
			ID:        d.Space.ID,
			Name:      d.Space.Name,
			Type:      string(d.Space.Type),
			Capacity:  d.Space.Capacity,
			PriceHour: float64(d.Space.PriceHourCents) / 100,
			Bookings:  ToSlotResponses(d.Bookings),
		})
	}
	return CatalogDayResponse{Date: date, Spaces: spaces, Total: len(spaces)}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		SpaceID:    b.SpaceID,
		UserID:     b.UserID,
		StartTime:  b.StartTime.UTC().Format(time.RFC3339),
		EndTime:    b.EndTime.UTC().Format(time.RFC3339),
		Status:     string(b.Status),
		TotalCents: b.TotalCents,
		TotalPrice: domain.FormatCents(b.TotalCents),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToSpaceResponse(s *domain.Space) SpaceResponse {
	amenities := s.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return SpaceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Type:        string(s.Type),
		Capacity:    s.Capacity,
		PriceHour:   float64(s.PriceHourCents) / 100,
		Amenities:   amenities,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),

		TotalBookings: s.TotalBookings,
	}
}
