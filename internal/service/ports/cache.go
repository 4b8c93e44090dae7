package ports

import (
	"context"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
)

// DayCache holds whole-day listings. Misses and errors are reported as ok=false.
//
// Every read also returns the day's version. Invalidate bumps it, and a Set
// carrying an older version is dropped, so a fill computed before a write
// cannot overwrite the invalidation.
type DayCache interface {
	GetSpaceDay(ctx context.Context, spaceID, date string) (bookings []domain.Booking, version int64, ok bool)
	SetSpaceDay(ctx context.Context, spaceID, date string, version int64, bookings []domain.Booking)
	GetCatalogDay(ctx context.Context, date string) (days []domain.SpaceDay, version int64, ok bool)
	SetCatalogDay(ctx context.Context, date string, version int64, days []domain.SpaceDay)
	Invalidate(ctx context.Context, spaceID string, dates []string)
}
