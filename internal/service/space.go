package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
	"github.com/KevinDaniel18/cowork-central/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type SpaceService struct {
	repo   ports.SpaceRepo
	logger logger.Logger
}

func NewSpaceService(repo ports.SpaceRepo, logger logger.Logger) *SpaceService {
	return &SpaceService{
		repo:   repo,
		logger: logger,
	}
}

func (s *SpaceService) Create(ctx context.Context, input domain.CreateSpaceInput) (*domain.Space, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidCategory
	}
	if input.Capacity < 1 {
		return nil, domain.ErrInvalidCapacity
	}
	if input.PriceHourCents <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	now := time.Now().UTC()
	space := &domain.Space{
		ID:             uuid.New().String(),
		Name:           name,
		Type:           input.Type,
		Capacity:       input.Capacity,
		PriceHourCents: input.PriceHourCents,
		Amenities:      normalizeAmenities(input.Amenities),
		Description:    input.Description,
		ImageURL:       input.ImageURL,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, space); err != nil {
		return nil, fmt.Errorf("create space: %w", err)
	}

	s.logger.Info("space created",
		logger.String("space_id", space.ID),
		logger.String("type", string(space.Type)),
	)

	return space, nil
}

func (s *SpaceService) Update(ctx context.Context, id string, input domain.UpdateSpaceInput) (*domain.Space, error) {
	space, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get space: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
		}
		space.Name = name
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, domain.ErrInvalidCategory
		}
		space.Type = *input.Type
	}
	if input.Capacity != nil {
		if *input.Capacity < 1 {
			return nil, domain.ErrInvalidCapacity
		}
		space.Capacity = *input.Capacity
	}
	if input.PriceHourCents != nil {
		if *input.PriceHourCents <= 0 {
			return nil, domain.ErrInvalidPrice
		}
		space.PriceHourCents = *input.PriceHourCents
	}
	if input.Amenities != nil {
		space.Amenities = normalizeAmenities(input.Amenities)
	}
	if input.Description != nil {
		space.Description = *input.Description
	}
	if input.ImageURL != nil {
		space.ImageURL = *input.ImageURL
	}
	if input.IsActive != nil {
		space.IsActive = *input.IsActive
	}
	space.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, space); err != nil {
		return nil, fmt.Errorf("update space: %w", err)
	}

	return space, nil
}

func (s *SpaceService) Get(ctx context.Context, id string) (*domain.Space, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SpaceService) List(ctx context.Context, filter domain.SpaceFilter) ([]*domain.Space, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, domain.ErrInvalidCategory
	}
	filter.Query = strings.TrimSpace(filter.Query)
	return s.repo.List(ctx, filter)
}

// Delete отказывает, пока у пространства есть незакончившиеся PENDING или
// CONFIRMED брони; вместо удаления пространство можно деактивировать.
func (s *SpaceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("delete space: %w", err)
	}

	s.logger.Info("space deleted", logger.String("space_id", id))
	return nil
}

func normalizeAmenities(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, a := range in {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
