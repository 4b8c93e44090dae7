package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
	"github.com/KevinDaniel18/cowork-central/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type AvailabilitySvc interface {
	Check(ctx context.Context, spaceID string, interval domain.Interval) (*domain.Availability, error)
	SpaceDay(ctx context.Context, spaceID, date string) (*domain.SpaceDay, error)
	CatalogDay(ctx context.Context, date string) ([]domain.SpaceDay, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	Confirm(ctx context.Context, id string) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
}

type SpaceSvc interface {
	Create(ctx context.Context, input domain.CreateSpaceInput) (*domain.Space, error)
	Update(ctx context.Context, id string, input domain.UpdateSpaceInput) (*domain.Space, error)
	Get(ctx context.Context, id string) (*domain.Space, error)
	List(ctx context.Context, filter domain.SpaceFilter) ([]*domain.Space, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	availabilityService AvailabilitySvc
	bookingService      BookingSvc
	spaceService        SpaceSvc
}

func NewHandler(availabilityService AvailabilitySvc, bookingService BookingSvc, spaceService SpaceSvc) *Handler {
	return &Handler{
		availabilityService: availabilityService,
		bookingService:      bookingService,
		spaceService:        spaceService,
	}
}

// Availability

// CheckAvailability serves three shapes: a precise interval on one space,
// a whole day of one space, or a whole day of the catalog.
func (h *Handler) CheckAvailability(c *ginext.Context) {
	spaceID := c.Query("spaceId")
	date := c.Query("date")
	start := c.Query("startTime")
	end := c.Query("endTime")

	if spaceID == "" {
		if date == "" || start != "" || end != "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "spaceId is required unless only date is given"})
			return
		}
		days, err := h.availabilityService.CatalogDay(c.Request.Context(), date)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToCatalogDayResponse(date, days))
		return
	}

	if _, err := uuid.Parse(spaceID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid space id"})
		return
	}

	if start == "" && end == "" {
		if date == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date or startTime and endTime are required"})
			return
		}
		day, err := h.availabilityService.SpaceDay(c.Request.Context(), spaceID, date)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToSpaceDayResponse(day))
		return
	}

	interval, err := parseInterval(date, start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	availability, err := h.availabilityService.Check(c.Request.Context(), spaceID, interval)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	interval, err := parseInterval(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		SpaceID:  req.SpaceID,
		UserID:   req.UserID,
		Interval: interval,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := uuidParam(c, "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	id, ok := uuidParam(c, "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.Confirm(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := uuidParam(c, "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID, ok := uuidParam(c, "user")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Spaces

func (h *Handler) CreateSpace(c *ginext.Context) {
	var req dto.CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	space, err := h.spaceService.Create(c.Request.Context(), domain.CreateSpaceInput{
		Name:           req.Name,
		Type:           domain.SpaceType(req.Type),
		Capacity:       req.Capacity,
		PriceHourCents: dto.PriceToCents(req.PriceHour),
		Amenities:      req.Amenities,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSpaceResponse(space))
}

func (h *Handler) UpdateSpace(c *ginext.Context) {
	id, ok := uuidParam(c, "space")
	if !ok {
		return
	}

	var req dto.UpdateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateSpaceInput{
		Name:        req.Name,
		Capacity:    req.Capacity,
		Amenities:   req.Amenities,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	}
	if req.Type != nil {
		t := domain.SpaceType(*req.Type)
		input.Type = &t
	}
	if req.PriceHour != nil {
		cents := dto.PriceToCents(*req.PriceHour)
		input.PriceHourCents = &cents
	}

	space, err := h.spaceService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpaceResponse(space))
}

func (h *Handler) GetSpace(c *ginext.Context) {
	id, ok := uuidParam(c, "space")
	if !ok {
		return
	}

	space, err := h.spaceService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpaceResponse(space))
}

func (h *Handler) ListSpaces(c *ginext.Context) {
	filter := domain.SpaceFilter{
		Type:  domain.SpaceType(c.Query("type")),
		Query: c.Query("q"),
	}
	if v := c.Query("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "active must be true or false"})
			return
		}
		filter.Active = &active
	}
	if v := c.Query("minCapacity"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "minCapacity must be a non-negative integer"})
			return
		}
		filter.MinCapacity = n
	}

	spaces, err := h.spaceService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SpaceResponse, 0, len(spaces))
	for _, s := range spaces {
		resp = append(resp, dto.ToSpaceResponse(s))
	}

	c.JSON(http.StatusOK, dto.SpaceListResponse{Success: true, Spaces: resp, Total: len(resp)})
}

func (h *Handler) DeleteSpace(c *ginext.Context) {
	id, ok := uuidParam(c, "space")
	if !ok {
		return
	}

	if err := h.spaceService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var conflict *domain.ConflictError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:               domain.ErrConflict.Error(),
			ConflictingBookings: dto.ToSlotResponses(conflict.Conflicts),
		})

	case errors.Is(err, domain.ErrSpaceNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrLockTimeout),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrSpaceInUse):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrInvalidCapacity),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrPriceOverflow),
		errors.Is(err, domain.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// parseInterval reads HH:MM times on date, or RFC 3339 instants when date is empty.
func parseInterval(date, start, end string) (domain.Interval, error) {
	if start == "" || end == "" {
		return domain.Interval{}, fmt.Errorf("%w: startTime and endTime are required", domain.ErrValidation)
	}
	if date != "" {
		return domain.ParseSlot(date, start, end)
	}

	from, err := domain.ParseInstant(start)
	if err != nil {
		return domain.Interval{}, err
	}
	to, err := domain.ParseInstant(end)
	if err != nil {
		return domain.Interval{}, err
	}
	return domain.NewInterval(from, to)
}

func uuidParam(c *ginext.Context, what string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}
