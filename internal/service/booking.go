package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
	"github.com/KevinDaniel18/cowork-central/internal/metrics"
	"github.com/KevinDaniel18/cowork-central/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const defaultPendingTTL = 15 * time.Minute

type BookingOptions struct {
	InitialStatus domain.BookingStatus
	PendingTTL    time.Duration
	// MaxDuration ограничивает длину одной брони; ноль означает domain.MaxIntervalLength.
	MaxDuration time.Duration
}

type BookingService struct {
	bookingRepo ports.BookingRepo
	spaceRepo   ports.SpaceRepo
	locker      ports.SpaceLocker
	cache       ports.DayCache
	cacheOn     bool
	publisher   ports.BookingPublisher
	logger      logger.Logger
	opts        BookingOptions
	now         func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	spaceRepo ports.SpaceRepo,
	locker ports.SpaceLocker,
	cache ports.DayCache,
	publisher ports.BookingPublisher,
	logger logger.Logger,
	opts BookingOptions,
) *BookingService {
	cacheOn := cache != nil
	if !cacheOn {
		cache = noCache{}
	}
	if publisher == nil {
		publisher = noPublisher{}
	}
	if opts.InitialStatus == "" {
		opts.InitialStatus = domain.BookingStatusPending
	}
	if opts.PendingTTL == 0 {
		opts.PendingTTL = defaultPendingTTL
	}
	if opts.MaxDuration <= 0 || opts.MaxDuration > domain.MaxIntervalLength {
		opts.MaxDuration = domain.MaxIntervalLength
	}
	return &BookingService{
		bookingRepo: bookingRepo,
		spaceRepo:   spaceRepo,
		locker:      locker,
		cache:       cache,
		cacheOn:     cacheOn,
		publisher:   publisher,
		logger:      logger,
		opts:        opts,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create принимает бронь: валидация, загрузка пространства, блокировка
// пространства, затем атомарная перепроверка и вставка в репозитории.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingService.Create")
	defer span.End()
	span.SetAttributes(attribute.String("space.id", input.SpaceID))

	started := time.Now()
	booking, err := s.admit(ctx, input)
	metrics.ObserveAdmission(time.Since(started))
	metrics.IncAdmission(admissionResult(err))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("space_id", booking.SpaceID),
		logger.String("user_id", booking.UserID),
		logger.String("status", string(booking.Status)),
		logger.Int64("total_cents", booking.TotalCents),
	)

	s.invalidate(ctx, booking)
	s.publisher.PublishBookingCreated(context.WithoutCancel(ctx), booking)
	metrics.IncTransition(string(booking.Status), "create")

	return booking, nil
}

func (s *BookingService) admit(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if strings.TrimSpace(input.SpaceID) == "" {
		return nil, fmt.Errorf("%w: spaceId is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.UserID) == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}
	interval, err := domain.NewInterval(input.Interval.Start, input.Interval.End)
	if err != nil {
		return nil, err
	}
	if interval.Duration() > s.opts.MaxDuration {
		return nil, fmt.Errorf("%w: booking longer than %s", domain.ErrInvalidInterval, s.opts.MaxDuration)
	}

	// проверка, что пространство существует и активно
	space, err := s.spaceRepo.GetByID(ctx, input.SpaceID)
	if err != nil {
		return nil, fmt.Errorf("get space: %w", err)
	}
	if !space.IsActive {
		return nil, domain.ErrSpaceNotFound
	}
	total, err := space.PriceFor(interval)
	if err != nil {
		return nil, err
	}

	waitStart := time.Now()
	release, err := s.locker.Acquire(ctx, space.ID)
	metrics.ObserveLockWait(time.Since(waitStart))
	if err != nil {
		return nil, fmt.Errorf("lock space: %w", err)
	}
	defer release()

	now := s.now()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		SpaceID:    space.ID,
		UserID:     input.UserID,
		StartTime:  interval.Start,
		EndTime:    interval.End,
		Status:     s.opts.InitialStatus,
		TotalCents: total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.bookingRepo.CreateIfFree(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *BookingService) Confirm(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.transition(ctx, id, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}

	s.publisher.PublishBookingConfirmed(context.WithoutCancel(ctx), booking)
	return booking, nil
}

// Cancel сразу освобождает интервал.
func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.transition(ctx, id, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}

	s.publisher.PublishBookingCancelled(context.WithoutCancel(ctx), booking)
	return booking, nil
}

func (s *BookingService) transition(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.bookingRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", booking.ID),
		logger.String("space_id", booking.SpaceID),
		logger.String("status", string(status)),
	)

	s.invalidate(ctx, booking)
	metrics.IncTransition(string(status), "request")

	return booking, nil
}

// Sweep завершает подтверждённые брони, время которых прошло, и отменяет
// pending брони с истёкшим TTL или закончившиеся без подтверждения.
func (s *BookingService) Sweep(ctx context.Context) ([]*domain.Booking, error) {
	now := s.now()

	completed, err := s.bookingRepo.CompleteEnded(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("complete ended: %w", err)
	}

	cancelled, err := s.bookingRepo.CancelExpired(ctx, now, s.opts.PendingTTL)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	if len(completed) > 0 || len(cancelled) > 0 {
		s.logger.Info("bookings swept",
			logger.Int("completed", len(completed)),
			logger.Int("cancelled", len(cancelled)),
		)
	}

	detached := context.WithoutCancel(ctx)
	for _, b := range completed {
		s.invalidate(ctx, b)
		s.publisher.PublishBookingCompleted(detached, b)
		metrics.IncTransition(string(domain.BookingStatusCompleted), "sweep")
	}
	for _, b := range cancelled {
		s.invalidate(ctx, b)
		s.publisher.PublishBookingCancelled(detached, b)
		metrics.IncTransition(string(domain.BookingStatusCancelled), "sweep")
	}

	return append(completed, cancelled...), nil
}

// invalidate сбрасывает кэш дней брони. Без кэша список дней не строится.
func (s *BookingService) invalidate(ctx context.Context, b *domain.Booking) {
	if !s.cacheOn {
		return
	}
	s.cache.Invalidate(ctx, b.SpaceID, b.Interval().Days())
}

func admissionResult(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrLockTimeout):
		return "lock_timeout"
	case errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrPriceOverflow),
		errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrSpaceNotFound):
		return "not_found"
	default:
		return "error"
	}
}
