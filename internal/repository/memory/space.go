package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
)

type SpaceRepository struct {
	store *Store
}

func NewSpaceRepo(store *Store) *SpaceRepository {
	return &SpaceRepository{store: store}
}

func (r *SpaceRepository) Create(_ context.Context, sp *domain.Space) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.spaces[sp.ID] = cloneSpace(sp)
	return nil
}

func (r *SpaceRepository) Update(_ context.Context, sp *domain.Space) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.spaces[sp.ID]; !ok {
		return domain.ErrSpaceNotFound
	}
	r.store.spaces[sp.ID] = cloneSpace(sp)
	return nil
}

func (r *SpaceRepository) GetByID(_ context.Context, id string) (*domain.Space, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sp, ok := r.store.spaces[id]
	if !ok {
		return nil, domain.ErrSpaceNotFound
	}
	return cloneSpace(sp), nil
}

func (r *SpaceRepository) List(_ context.Context, f domain.SpaceFilter) ([]*domain.Space, error) {
	res := r.filter(f)

	// bucket locks are taken without store.mu, the order Delete uses
	for _, sp := range res {
		sp.TotalBookings = r.store.bucket(sp.ID).count(domain.BookingStatusCompleted)
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].IsActive != res[j].IsActive {
			return res[i].IsActive
		}
		return res[i].Name < res[j].Name
	})
	return res, nil
}

func (r *SpaceRepository) filter(f domain.SpaceFilter) []*domain.Space {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	q := strings.ToLower(f.Query)
	res := make([]*domain.Space, 0, len(r.store.spaces))
	for _, sp := range r.store.spaces {
		if f.Type != "" && sp.Type != f.Type {
			continue
		}
		if f.Active != nil && sp.IsActive != *f.Active {
			continue
		}
		if sp.Capacity < f.MinCapacity {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(sp.Name), q) &&
			!strings.Contains(strings.ToLower(sp.Description), q) {
			continue
		}
		res = append(res, cloneSpace(sp))
	}
	return res
}

func (r *SpaceRepository) Delete(_ context.Context, id string, now time.Time) error {
	b := r.store.bucket(id)
	b.mu.Lock()
	defer b.mu.Unlock()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.spaces[id]; !ok {
		return domain.ErrSpaceNotFound
	}
	for _, bk := range b.bookings {
		if bk.Status.IsActive() && bk.EndTime.After(now) {
			return domain.ErrSpaceInUse
		}
	}

	for _, bk := range b.bookings {
		delete(r.store.index, bk.ID)
	}
	delete(r.store.spaces, id)
	delete(r.store.buckets, id)
	return nil
}
