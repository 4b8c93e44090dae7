package ports

import (
	"context"
	"time"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
)

type BookingRepo interface {
	// CreateIfFree атомарно перепроверяет интервал по активным броням пространства
	// и вставляет b. Ошибки: *domain.ConflictError, domain.ErrSpaceNotFound,
	// domain.ErrLockTimeout.
	CreateIfFree(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListActiveOverlapping(ctx context.Context, spaceID string, interval domain.Interval) ([]domain.Booking, error)
	ListActiveOverlappingAll(ctx context.Context, interval domain.Interval) ([]domain.Booking, error)
	// UpdateStatus переводит бронь в status, если переход допустим,
	// иначе domain.ErrInvalidTransition.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	CompleteEnded(ctx context.Context, now time.Time) ([]*domain.Booking, error)
	CancelExpired(ctx context.Context, now time.Time, pendingTTL time.Duration) ([]*domain.Booking, error)
}
