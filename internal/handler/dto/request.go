package dto

// CreateBookingRequest takes HH:MM times when Date is set, RFC 3339 instants otherwise.
type CreateBookingRequest struct {
	SpaceID   string `json:"spaceId" binding:"required,uuid"`
	UserID    string `json:"userId" binding:"required,uuid"`
	Date      string `json:"date"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type CreateSpaceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Capacity    int      `json:"capacity"`
	PriceHour   float64  `json:"priceHour"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
}

type UpdateSpaceRequest struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Capacity    *int     `json:"capacity"`
	PriceHour   *float64 `json:"priceHour"`
	Amenities   []string `json:"amenities"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
	IsActive    *bool    `json:"isActive"`
}
