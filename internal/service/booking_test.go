package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
	"github.com/KevinDaniel18/cowork-central/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	bookingRepo *mocks.MockBookingRepo
	spaceRepo   *mocks.MockSpaceRepo
	locker      *mocks.MockSpaceLocker
	cache       *mocks.MockDayCache
	publisher   *mocks.MockBookingPublisher
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		spaceRepo:   mocks.NewMockSpaceRepo(t),
		locker:      mocks.NewMockSpaceLocker(t),
		cache:       mocks.NewMockDayCache(t),
		publisher:   mocks.NewMockBookingPublisher(t),
	}
	svc := NewBookingService(m.bookingRepo, m.spaceRepo, m.locker, m.cache, m.publisher, newTestLogger(t), BookingOptions{})
	return svc, m
}

func slot(t *testing.T, start, end string) domain.Interval {
	t.Helper()
	iv, err := domain.ParseSlot("2030-03-10", start, end)
	require.NoError(t, err)
	return iv
}

var meetingRoom = &domain.Space{ID: "s1", Name: "Room", PriceHourCents: 2000, Capacity: 6, IsActive: true}

func TestBookingService_Create_Success(t *testing.T) {
	svc, m := newBookingService(t)
	released := false

	m.spaceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(meetingRoom, nil)
	m.locker.EXPECT().Acquire(mock.Anything, "s1").Return(func() { released = true }, nil)
	m.bookingRepo.EXPECT().CreateIfFree(mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "s1", []string{"2030-03-10"}).Return()
	m.publisher.EXPECT().PublishBookingCreated(mock.Anything, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		SpaceID:  "s1",
		UserID:   "u1",
		Interval: slot(t, "09:00", "11:30"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, int64(5000), booking.TotalCents)
	assert.Equal(t, "u1", booking.UserID)
	assert.True(t, released)
}

func TestBookingService_Create_InitialStatusConfirmed(t *testing.T) {
	m := bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		spaceRepo:   mocks.NewMockSpaceRepo(t),
		locker:      mocks.NewMockSpaceLocker(t),
	}
	svc := NewBookingService(m.bookingRepo, m.spaceRepo, m.locker, nil, nil, newTestLogger(t),
		BookingOptions{InitialStatus: domain.BookingStatusConfirmed})

	m.spaceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(meetingRoom, nil)
	m.locker.EXPECT().Acquire(mock.Anything, "s1").Return(func() {}, nil)
	m.bookingRepo.EXPECT().CreateIfFree(mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		SpaceID: "s1", UserID: "u1", Interval: slot(t, "09:00", "10:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
}

func TestBookingService_Create_InvalidIntervalTouchesNothing(t *testing.T) {
	svc, _ := newBookingService(t)
	start, _ := domain.ParseDateTime("2030-03-10", "11:00")

	tests := []struct {
		name string
		end  time.Time
	}{
		{"start equals end", start},
		{"start after end", start.Add(-time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), domain.CreateBookingInput{
				SpaceID:  "s1",
				UserID:   "u1",
				Interval: domain.Interval{Start: start, End: tt.end},
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInterval)
		})
	}
}

func TestBookingService_Create_RejectsOverlongBooking(t *testing.T) {
	m := bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		spaceRepo:   mocks.NewMockSpaceRepo(t),
		locker:      mocks.NewMockSpaceLocker(t),
	}
	svc := NewBookingService(m.bookingRepo, m.spaceRepo, m.locker, nil, nil, newTestLogger(t),
		BookingOptions{MaxDuration: 24 * time.Hour})
	start, _ := domain.ParseDateTime("2030-03-10", "09:00")

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		SpaceID:  "s1",
		UserID:   "u1",
		Interval: domain.Interval{Start: start, End: start.Add(25 * time.Hour)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInterval)

	_, err = svc.Create(context.Background(), domain.CreateBookingInput{
		SpaceID: "s1",
		UserID:  "u1",
		Interval: domain.Interval{
			Start: time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInterval)
}

func TestBookingService_Create_PriceOverflow(t *testing.T) {
	svc, m := newBookingService(t)
	pricey := &domain.Space{ID: "s1", Name: "Vault", PriceHourCents: math.MaxInt64, Capacity: 1, IsActive: true}

	m.spaceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(pricey, nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		SpaceID: "s1", UserID: "u1", Interval: slot(t, "09:00", "11:00"),
	})

	assert.ErrorIs(t, err, domain.ErrPriceOverflow)
	m.locker.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything)
}

func TestBookingService_WithoutCache_SkipsDayInvalidation(t *testing.T) {
	m := bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		spaceRepo:   mocks.NewMockSpaceRepo(t),
		locker:      mocks.NewMockSpaceLocker(t),
	}
	svc := NewBookingService(m.bookingRepo, m.spaceRepo, m.locker, nil, nil, newTestLogger(t), BookingOptions{})
	require.False(t, svc.cacheOn)

	start, _ := domain.ParseDateTime("2030-03-10", "00:00")
	long := domain.Interval{Start: start, End: start.Add(domain.MaxIntervalLength)}

	m.spaceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(meetingRoom, nil)
	m.locker.EXPECT().Acquire(mock.Anything, "s1").Return(func() {}, nil)
	m.bookingRepo.EXPECT().CreateIfFree(mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{SpaceID: "s1", UserID: "u1", Interval: long})

	require.NoError(t, err)
	assert.Equal(t, int64(2000*366*24), booking.TotalCents)
	assert.Zero(t, testing.AllocsPerRun(10, func() { svc.invalidate(context.Background(), booking) }))

	withCache, _ := newBookingService(t)
	assert.True(t, withCache.cacheOn)
}

func TestBookingService_Create_MissingRequester(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		SpaceID: "s1", Interval: slot(t, "09:00", "10:00"),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_SpaceNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.spaceRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrSpaceNotFound)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		SpaceID: "missing", UserID: "u1", Interval: slot(t, "09:00", "10:00"),
	})

	assert.ErrorIs(t, err, domain.ErrSpaceNotFound)
}

func TestBookingService_Create_InactiveSpace(t *testing.T) {
	svc, m := newBookingService(t)

	m.spaceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Space{ID: "s1", IsActive: false}, nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		SpaceID: "s1", UserID: "u1", Interval: slot(t, "09:00", "10:00"),
	})

	assert.ErrorIs(t, err, domain.ErrSpaceNotFound)
}

func TestBookingService_Create_LockTimeout(t *testing.T) {
	svc, m := newBookingService(t)

	m.spaceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(meetingRoom, nil)
	m.locker.EXPECT().Acquire(mock.Anything, "s1").Return(nil, domain.ErrLockTimeout)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		SpaceID: "s1", UserID: "u1", Interval: slot(t, "09:00", "10:00"),
	})

	assert.ErrorIs(t, err, domain.ErrLockTimeout)
}

func TestBookingService_Create_Conflict(t *testing.T) {
	svc, m := newBookingService(t)
	released := false

	conflict := &domain.ConflictError{Conflicts: []domain.Booking{{ID: "b0"}}}
	m.spaceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(meetingRoom, nil)
	m.locker.EXPECT().Acquire(mock.Anything, "s1").Return(func() { released = true }, nil)
	m.bookingRepo.EXPECT().CreateIfFree(mock.Anything, mock.Anything).Return(conflict)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		SpaceID: "s1", UserID: "u1", Interval: slot(t, "09:00", "10:00"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	var ce *domain.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "b0", ce.Conflicts[0].ID)
	assert.True(t, released)
}

func TestBookingService_Create_StorageError(t *testing.T) {
	svc, m := newBookingService(t)

	m.spaceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(meetingRoom, nil)
	m.locker.EXPECT().Acquire(mock.Anything, "s1").Return(func() {}, nil)
	m.bookingRepo.EXPECT().CreateIfFree(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		SpaceID: "s1", UserID: "u1", Interval: slot(t, "09:00", "10:00"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestBookingService_Confirm(t *testing.T) {
	svc, m := newBookingService(t)

	iv := slot(t, "09:00", "10:00")
	confirmed := &domain.Booking{ID: "b1", SpaceID: "s1", StartTime: iv.Start, EndTime: iv.End, Status: domain.BookingStatusConfirmed}
	m.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed).Return(confirmed, nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "s1", []string{"2030-03-10"}).Return()
	m.publisher.EXPECT().PublishBookingConfirmed(mock.Anything, confirmed).Return()

	b, err := svc.Confirm(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
}

func TestBookingService_Confirm_InvalidTransition(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed).Return(nil, domain.ErrInvalidTransition)

	_, err := svc.Confirm(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Cancel(t *testing.T) {
	svc, m := newBookingService(t)

	iv := slot(t, "09:00", "10:00")
	cancelled := &domain.Booking{ID: "b1", SpaceID: "s1", StartTime: iv.Start, EndTime: iv.End, Status: domain.BookingStatusCancelled}
	m.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusCancelled).Return(cancelled, nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "s1", mock.Anything).Return()
	m.publisher.EXPECT().PublishBookingCancelled(mock.Anything, cancelled).Return()

	b, err := svc.Cancel(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "missing", domain.BookingStatusCancelled).Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Cancel(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Sweep(t *testing.T) {
	svc, m := newBookingService(t)
	now := time.Date(2030, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	iv := slot(t, "09:00", "10:00")
	completed := []*domain.Booking{{ID: "b1", SpaceID: "s1", StartTime: iv.Start, EndTime: iv.End, Status: domain.BookingStatusCompleted}}
	cancelled := []*domain.Booking{{ID: "b2", SpaceID: "s2", StartTime: iv.Start, EndTime: iv.End, Status: domain.BookingStatusCancelled}}

	m.bookingRepo.EXPECT().CompleteEnded(mock.Anything, now).Return(completed, nil)
	m.bookingRepo.EXPECT().CancelExpired(mock.Anything, now, defaultPendingTTL).Return(cancelled, nil)
	m.cache.EXPECT().Invalidate(mock.Anything, mock.Anything, mock.Anything).Return().Times(2)
	m.publisher.EXPECT().PublishBookingCompleted(mock.Anything, completed[0]).Return()
	m.publisher.EXPECT().PublishBookingCancelled(mock.Anything, cancelled[0]).Return()

	swept, err := svc.Sweep(context.Background())

	require.NoError(t, err)
	assert.Len(t, swept, 2)
}

func TestBookingService_Sweep_Error(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().CompleteEnded(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.Sweep(context.Background())

	require.Error(t, err)
}

func TestBookingService_ListByUser(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.Booking{{ID: "b1"}, {ID: "b2"}}, nil)

	bookings, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestAdmissionResult(t *testing.T) {
	assert.Equal(t, "created", admissionResult(nil))
	assert.Equal(t, "conflict", admissionResult(&domain.ConflictError{}))
	assert.Equal(t, "lock_timeout", admissionResult(domain.ErrLockTimeout))
	assert.Equal(t, "invalid", admissionResult(domain.ErrInvalidInterval))
	assert.Equal(t, "invalid", admissionResult(domain.ErrPriceOverflow))
	assert.Equal(t, "not_found", admissionResult(domain.ErrSpaceNotFound))
	assert.Equal(t, "error", admissionResult(errors.New("boom")))
}
