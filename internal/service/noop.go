package service

import (
	"context"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/KevinDaniel18/cowork-central/internal/service")

type noCache struct{}

func (noCache) GetSpaceDay(context.Context, string, string) ([]domain.Booking, int64, bool) {
	return nil, 0, false
}

func (noCache) SetSpaceDay(context.Context, string, string, int64, []domain.Booking) {}

func (noCache) GetCatalogDay(context.Context, string) ([]domain.SpaceDay, int64, bool) {
	return nil, 0, false
}

func (noCache) SetCatalogDay(context.Context, string, int64, []domain.SpaceDay) {}

func (noCache) Invalidate(context.Context, string, []string) {}

type noPublisher struct{}

func (noPublisher) PublishBookingCreated(context.Context, *domain.Booking)   {}
func (noPublisher) PublishBookingConfirmed(context.Context, *domain.Booking) {}
func (noPublisher) PublishBookingCancelled(context.Context, *domain.Booking) {}
func (noPublisher) PublishBookingCompleted(context.Context, *domain.Booking) {}
