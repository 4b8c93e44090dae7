package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
	"github.com/KevinDaniel18/cowork-central/internal/lock"
	"github.com/KevinDaniel18/cowork-central/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type admissionFixture struct {
	bookings *BookingService
	avail    *AvailabilityService
	repo     *memory.BookingRepository
}

func newAdmissionFixture(t *testing.T, spaces ...*domain.Space) admissionFixture {
	t.Helper()
	store := memory.NewStore()
	spaceRepo := memory.NewSpaceRepo(store)
	bookingRepo := memory.NewBookingRepo(store)
	for _, sp := range spaces {
		require.NoError(t, spaceRepo.Create(context.Background(), sp))
	}

	log := newTestLogger(t)
	return admissionFixture{
		bookings: NewBookingService(bookingRepo, spaceRepo, lock.NewLocal(5*time.Second), nil, nil, log, BookingOptions{}),
		avail:    NewAvailabilityService(spaceRepo, bookingRepo, nil, log),
		repo:     bookingRepo,
	}
}

func activeSpace(id string, priceCents int64) *domain.Space {
	return &domain.Space{
		ID: id, Name: "Space " + id, Type: domain.SpaceTypeMeetingRoom,
		Capacity: 4, PriceHourCents: priceCents, IsActive: true,
	}
}

func TestAdmission_ConcurrentOverlappingRequests_ExactlyOneWins(t *testing.T) {
	for _, n := range []int{2, 5, 16} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			f := newAdmissionFixture(t, activeSpace("s1", 2000))

			var (
				wg        sync.WaitGroup
				mu        sync.Mutex
				successes int
				conflicts int
				other     []error
			)
			// Every request covers 10:00-10:30 while the outer bounds differ.
			ivs := make([]domain.Interval, n)
			for i := range ivs {
				ivs[i] = slot(t, fmt.Sprintf("09:%02d", i%30), fmt.Sprintf("10:%02d", 30+i%29))
			}

			start := make(chan struct{})
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					<-start
					_, err := f.bookings.Create(context.Background(), domain.CreateBookingInput{
						SpaceID: "s1", UserID: fmt.Sprintf("u%d", i), Interval: ivs[i],
					})

					mu.Lock()
					defer mu.Unlock()
					switch {
					case err == nil:
						successes++
					case errors.Is(err, domain.ErrConflict):
						conflicts++
					default:
						other = append(other, err)
					}
				}(i)
			}
			close(start)
			wg.Wait()

			assert.Empty(t, other)
			assert.Equal(t, 1, successes)
			assert.Equal(t, n-1, conflicts)
		})
	}
}

func TestAdmission_TouchingIntervalsBothSucceed(t *testing.T) {
	f := newAdmissionFixture(t, activeSpace("s1", 2000))
	ctx := context.Background()

	_, err := f.bookings.Create(ctx, domain.CreateBookingInput{SpaceID: "s1", UserID: "u1", Interval: slot(t, "09:00", "10:00")})
	require.NoError(t, err)

	_, err = f.bookings.Create(ctx, domain.CreateBookingInput{SpaceID: "s1", UserID: "u2", Interval: slot(t, "10:00", "11:00")})
	require.NoError(t, err)

	_, err = f.bookings.Create(ctx, domain.CreateBookingInput{SpaceID: "s1", UserID: "u3", Interval: slot(t, "08:00", "09:00")})
	require.NoError(t, err)
}

func TestAdmission_CancelledBookingFreesSlot(t *testing.T) {
	f := newAdmissionFixture(t, activeSpace("s1", 2000))
	ctx := context.Background()
	iv := slot(t, "10:00", "12:00")

	first, err := f.bookings.Create(ctx, domain.CreateBookingInput{SpaceID: "s1", UserID: "u1", Interval: iv})
	require.NoError(t, err)

	_, err = f.bookings.Create(ctx, domain.CreateBookingInput{SpaceID: "s1", UserID: "u2", Interval: iv})
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.bookings.Cancel(ctx, first.ID)
	require.NoError(t, err)

	availability, err := f.avail.Check(ctx, "s1", iv)
	require.NoError(t, err)
	assert.True(t, availability.Available)

	_, err = f.bookings.Create(ctx, domain.CreateBookingInput{SpaceID: "s1", UserID: "u2", Interval: iv})
	require.NoError(t, err)
}

func TestAdmission_PriceComputation(t *testing.T) {
	f := newAdmissionFixture(t, activeSpace("s1", 2000))

	b, err := f.bookings.Create(context.Background(), domain.CreateBookingInput{
		SpaceID: "s1", UserID: "u1", Interval: slot(t, "09:00", "11:30"),
	})

	require.NoError(t, err)
	assert.Equal(t, "50.00", domain.FormatCents(b.TotalCents))
}

func TestAdmission_CrossSpaceIndependence(t *testing.T) {
	f := newAdmissionFixture(t, activeSpace("s1", 2000), activeSpace("s2", 1500))
	ctx := context.Background()
	iv := slot(t, "10:00", "12:00")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{"s1", "s2"} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = f.bookings.Create(ctx, domain.CreateBookingInput{SpaceID: id, UserID: "u1", Interval: iv})
		}(i, id)
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
}

func TestAdmission_InvalidIntervalStoresNothing(t *testing.T) {
	f := newAdmissionFixture(t, activeSpace("s1", 2000))
	ctx := context.Background()
	iv := slot(t, "10:00", "11:00")

	_, err := f.bookings.Create(ctx, domain.CreateBookingInput{
		SpaceID: "s1", UserID: "u1", Interval: domain.Interval{Start: iv.Start, End: iv.Start},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInterval)

	_, err = f.bookings.Create(ctx, domain.CreateBookingInput{
		SpaceID: "s1", UserID: "u1", Interval: domain.Interval{Start: iv.End, End: iv.Start},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInterval)

	stored, err := f.repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestAdmission_ConflictListsObstructions(t *testing.T) {
	f := newAdmissionFixture(t, activeSpace("s1", 2000))
	ctx := context.Background()

	_, err := f.bookings.Create(ctx, domain.CreateBookingInput{SpaceID: "s1", UserID: "u1", Interval: slot(t, "09:00", "10:00")})
	require.NoError(t, err)
	_, err = f.bookings.Create(ctx, domain.CreateBookingInput{SpaceID: "s1", UserID: "u1", Interval: slot(t, "11:00", "12:00")})
	require.NoError(t, err)

	_, err = f.bookings.Create(ctx, domain.CreateBookingInput{SpaceID: "s1", UserID: "u2", Interval: slot(t, "09:30", "11:30")})

	var ce *domain.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Len(t, ce.Conflicts, 2)
}
