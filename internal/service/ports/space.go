package ports

import (
	"context"
	"time"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
)

type SpaceRepo interface {
	Create(ctx context.Context, s *domain.Space) error
	Update(ctx context.Context, s *domain.Space) error
	GetByID(ctx context.Context, id string) (*domain.Space, error)
	List(ctx context.Context, filter domain.SpaceFilter) ([]*domain.Space, error)
	// Delete удаляет пространство, если у него нет активных броней,
	// заканчивающихся после now; иначе domain.ErrSpaceInUse.
	Delete(ctx context.Context, id string, now time.Time) error
}
