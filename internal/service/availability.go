package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
	"github.com/KevinDaniel18/cowork-central/internal/metrics"
	"github.com/KevinDaniel18/cowork-central/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel/attribute"
)

type AvailabilityService struct {
	spaces   ports.SpaceRepo
	bookings ports.BookingRepo
	cache    ports.DayCache
	logger   logger.Logger
}

func NewAvailabilityService(
	spaces ports.SpaceRepo,
	bookings ports.BookingRepo,
	cache ports.DayCache,
	logger logger.Logger,
) *AvailabilityService {
	if cache == nil {
		cache = noCache{}
	}
	return &AvailabilityService{
		spaces:   spaces,
		bookings: bookings,
		cache:    cache,
		logger:   logger,
	}
}

// Check reports whether interval is free on the space and lists the active
// bookings that obstruct it.
func (s *AvailabilityService) Check(ctx context.Context, spaceID string, interval domain.Interval) (*domain.Availability, error) {
	ctx, span := tracer.Start(ctx, "AvailabilityService.Check")
	defer span.End()
	span.SetAttributes(attribute.String("space.id", spaceID))

	interval, err := domain.NewInterval(interval.Start, interval.End)
	if err != nil {
		return nil, err
	}

	space, err := s.activeSpace(ctx, spaceID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.bookings.ListActiveOverlapping(ctx, spaceID, interval)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	conflicts := domain.FindConflicts(interval, candidates)
	if conflicts == nil {
		conflicts = []domain.Booking{}
	}
	available := len(conflicts) == 0
	metrics.IncAvailabilityCheck(available)
	span.SetAttributes(attribute.Bool("available", available))

	return &domain.Availability{
		Space:     *space,
		Interval:  interval,
		Available: available,
		Conflicts: conflicts,
	}, nil
}

// SpaceDay lists the active bookings of one space that touch the half-open
// day [date 00:00, next day 00:00).
func (s *AvailabilityService) SpaceDay(ctx context.Context, spaceID, date string) (*domain.SpaceDay, error) {
	day, err := domain.DayInterval(date)
	if err != nil {
		return nil, err
	}

	space, err := s.activeSpace(ctx, spaceID)
	if err != nil {
		return nil, err
	}

	cached, version, ok := s.cache.GetSpaceDay(ctx, spaceID, date)
	if ok {
		metrics.IncDayCache(true)
		return &domain.SpaceDay{Space: *space, Date: date, Bookings: cached}, nil
	}
	metrics.IncDayCache(false)

	candidates, err := s.bookings.ListActiveOverlapping(ctx, spaceID, day)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	bookings := sortedConflicts(day, candidates)
	s.cache.SetSpaceDay(ctx, spaceID, date, version, bookings)

	return &domain.SpaceDay{Space: *space, Date: date, Bookings: bookings}, nil
}

// CatalogDay lists every active space ordered by name, each with its active
// bookings touching the day.
func (s *AvailabilityService) CatalogDay(ctx context.Context, date string) ([]domain.SpaceDay, error) {
	day, err := domain.DayInterval(date)
	if err != nil {
		return nil, err
	}

	cached, version, ok := s.cache.GetCatalogDay(ctx, date)
	if ok {
		metrics.IncDayCache(true)
		return cached, nil
	}
	metrics.IncDayCache(false)

	active := true
	spaces, err := s.spaces.List(ctx, domain.SpaceFilter{Active: &active})
	if err != nil {
		return nil, fmt.Errorf("list spaces: %w", err)
	}

	candidates, err := s.bookings.ListActiveOverlappingAll(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	bySpace := make(map[string][]domain.Booking, len(spaces))
	for _, b := range candidates {
		bySpace[b.SpaceID] = append(bySpace[b.SpaceID], b)
	}

	sort.SliceStable(spaces, func(i, j int) bool { return spaces[i].Name < spaces[j].Name })

	out := make([]domain.SpaceDay, 0, len(spaces))
	for _, sp := range spaces {
		out = append(out, domain.SpaceDay{
			Space:    *sp,
			Date:     date,
			Bookings: sortedConflicts(day, bySpace[sp.ID]),
		})
	}

	s.cache.SetCatalogDay(ctx, date, version, out)
	return out, nil
}

func (s *AvailabilityService) activeSpace(ctx context.Context, spaceID string) (*domain.Space, error) {
	space, err := s.spaces.GetByID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("get space: %w", err)
	}
	if !space.IsActive {
		return nil, domain.ErrSpaceNotFound
	}
	return space, nil
}

func sortedConflicts(interval domain.Interval, candidates []domain.Booking) []domain.Booking {
	out := domain.FindConflicts(interval, candidates)
	if out == nil {
		return []domain.Booking{}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}
