package memory

import (
	"context"
	"sort"
	"time"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
)

type BookingRepository struct {
	store *Store
}

func NewBookingRepo(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) CreateIfFree(_ context.Context, bk *domain.Booking) error {
	b := r.store.bucket(bk.SpaceID)
	b.mu.Lock()
	defer b.mu.Unlock()

	r.store.mu.RLock()
	sp, ok := r.store.spaces[bk.SpaceID]
	r.store.mu.RUnlock()
	if !ok || !sp.IsActive {
		return domain.ErrSpaceNotFound
	}

	candidates := make([]domain.Booking, 0, len(b.bookings))
	for _, existing := range b.bookings {
		candidates = append(candidates, *existing)
	}
	if conflicts := domain.FindConflicts(bk.Interval(), candidates); len(conflicts) > 0 {
		return &domain.ConflictError{Interval: bk.Interval(), Conflicts: conflicts}
	}

	stored := *bk
	b.bookings = append(b.bookings, &stored)

	r.store.mu.Lock()
	r.store.index[bk.ID] = bk.SpaceID
	r.store.mu.Unlock()

	return nil
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.store.mu.RLock()
	spaceID, ok := r.store.index[id]
	r.store.mu.RUnlock()
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	b := r.store.bucket(spaceID)
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, bk := range b.bookings {
		if bk.ID == id {
			c := *bk
			return &c, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r *BookingRepository) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for _, b := range r.store.allBuckets() {
		b.mu.Lock()
		for _, bk := range b.bookings {
			if bk.UserID == userID {
				c := *bk
				res = append(res, &c)
			}
		}
		b.mu.Unlock()
	}

	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (r *BookingRepository) ListActiveOverlapping(_ context.Context, spaceID string, interval domain.Interval) ([]domain.Booking, error) {
	b := r.store.bucket(spaceID)
	b.mu.Lock()
	defer b.mu.Unlock()

	return overlapping(b.bookings, interval), nil
}

func (r *BookingRepository) ListActiveOverlappingAll(_ context.Context, interval domain.Interval) ([]domain.Booking, error) {
	var res []domain.Booking
	for _, b := range r.store.allBuckets() {
		b.mu.Lock()
		res = append(res, overlapping(b.bookings, interval)...)
		b.mu.Unlock()
	}

	sort.Slice(res, func(i, j int) bool { return res[i].StartTime.Before(res[j].StartTime) })
	return res, nil
}

func (r *BookingRepository) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	r.store.mu.RLock()
	spaceID, ok := r.store.index[id]
	r.store.mu.RUnlock()
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	b := r.store.bucket(spaceID)
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, bk := range b.bookings {
		if bk.ID != id {
			continue
		}
		if !domain.CanTransition(bk.Status, status) {
			return nil, domain.ErrInvalidTransition
		}
		bk.Status = status
		bk.UpdatedAt = time.Now().UTC()
		c := *bk
		return &c, nil
	}
	return nil, domain.ErrBookingNotFound
}

func (r *BookingRepository) CompleteEnded(_ context.Context, now time.Time) ([]*domain.Booking, error) {
	return r.sweep(domain.BookingStatusCompleted, now, func(bk *domain.Booking) bool {
		return bk.Status == domain.BookingStatusConfirmed && !bk.EndTime.After(now)
	}), nil
}

func (r *BookingRepository) CancelExpired(_ context.Context, now time.Time, pendingTTL time.Duration) ([]*domain.Booking, error) {
	return r.sweep(domain.BookingStatusCancelled, now, func(bk *domain.Booking) bool {
		return bk.Status == domain.BookingStatusPending &&
			(bk.CreatedAt.Add(pendingTTL).Before(now) || !bk.EndTime.After(now))
	}), nil
}

func (r *BookingRepository) sweep(to domain.BookingStatus, now time.Time, match func(*domain.Booking) bool) []*domain.Booking {
	var res []*domain.Booking
	for _, b := range r.store.allBuckets() {
		b.mu.Lock()
		for _, bk := range b.bookings {
			if match(bk) {
				bk.Status = to
				bk.UpdatedAt = now
				c := *bk
				res = append(res, &c)
			}
		}
		b.mu.Unlock()
	}
	return res
}

func overlapping(bookings []*domain.Booking, interval domain.Interval) []domain.Booking {
	var res []domain.Booking
	for _, bk := range bookings {
		if bk.Status.IsActive() && interval.Overlaps(bk.Interval()) {
			res = append(res, *bk)
		}
	}
	return res
}
