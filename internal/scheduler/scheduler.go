package scheduler

import (
	"context"
	"time"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingSweeper interface {
	Sweep(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler периодически переводит просроченные брони в конечный статус.
type Scheduler struct {
	sweeper  bookingSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	sweeper bookingSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

// Start сразу делает один проход, затем повторяет его по тикеру до отмены ctx.
func (s *Scheduler) Start(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	s.logger.Info("sweeper started",
		logger.String("interval", s.interval.String()),
	)

	// брони, истёкшие пока сервис был остановлен
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	started := time.Now()
	swept, err := s.sweeper.Sweep(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("booking sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}
	if len(swept) == 0 {
		return
	}

	byStatus := make(map[domain.BookingStatus]int, 2)
	for _, b := range swept {
		byStatus[b.Status]++
		s.logger.Debug("booking swept",
			logger.String("booking_id", b.ID),
			logger.String("space_id", b.SpaceID),
			logger.String("status", string(b.Status)),
		)
	}

	s.logger.Info("booking sweep finished",
		logger.Int("completed", byStatus[domain.BookingStatusCompleted]),
		logger.Int("cancelled", byStatus[domain.BookingStatusCancelled]),
		logger.Int64("took_ms", time.Since(started).Milliseconds()),
	)
}
