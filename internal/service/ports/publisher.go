package ports

import (
	"context"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
)

type BookingPublisher interface {
	PublishBookingCreated(ctx context.Context, b *domain.Booking)
	PublishBookingConfirmed(ctx context.Context, b *domain.Booking)
	PublishBookingCancelled(ctx context.Context, b *domain.Booking)
	PublishBookingCompleted(ctx context.Context, b *domain.Booking)
}
