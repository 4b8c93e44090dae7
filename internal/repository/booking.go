package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, space_id, user_id, start_time, end_time, status, total_cents, created_at, updated_at`

type BookingRepository struct {
	db          *dbpg.DB
	strategy    retry.Strategy
	lockTimeout time.Duration
}

func NewBookingRepo(db *dbpg.DB, lockTimeout time.Duration) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		lockTimeout: lockTimeout,
	}
}

func (r *BookingRepository) CreateIfFree(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if r.lockTimeout > 0 {
		if _, err = tx.ExecContext(ctx,
			fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds()),
		); err != nil {
			return fmt.Errorf("set lock timeout: %w", err)
		}
	}

	// Блокируем строку пространства: брони одного пространства идут по очереди во всех инстансах
	var active bool
	spaceQuery := `SELECT is_active FROM spaces WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, spaceQuery, b.SpaceID).Scan(&active); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows), isInvalidText(err):
			return domain.ErrSpaceNotFound
		case isLockTimeout(err):
			return domain.ErrLockTimeout
		}
		return fmt.Errorf("lock space: %w", err)
	}
	if !active {
		return domain.ErrSpaceNotFound
	}

	// Проверяем пересечения с активными бронями
	overlapQuery := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE space_id = $1 AND status = ANY($2)
			    AND start_time < $4 AND end_time > $3
			  ORDER BY start_time`
	rows, err := tx.QueryContext(ctx, overlapQuery,
		b.SpaceID, pq.Array(domain.ActiveStatuses), b.StartTime, b.EndTime,
	)
	if err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	candidates, err := collectBookings(rows)
	if err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}

	if conflicts := domain.FindConflicts(b.Interval(), candidates); len(conflicts) > 0 {
		return &domain.ConflictError{Interval: b.Interval(), Conflicts: conflicts}
	}

	// Создаем бронь
	insertQuery := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err = tx.ExecContext(ctx, insertQuery,
		b.ID, b.SpaceID, b.UserID, b.StartTime, b.EndTime,
		b.Status, b.TotalCents, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		switch pgCode(err) {
		case pgExclusionViolation:
			return &domain.ConflictError{Interval: b.Interval()}
		case pgForeignKeyViolation:
			return domain.ErrSpaceNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		if pgCode(err) == pgExclusionViolation {
			return &domain.ConflictError{Interval: b.Interval()}
		}
		return fmt.Errorf("commit booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE user_id = $1
              ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}

	return collectBookingPtrs(rows)
}

func (r *BookingRepository) ListActiveOverlapping(ctx context.Context, spaceID string, interval domain.Interval) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE space_id = $1 AND status = ANY($2)
                AND start_time < $4 AND end_time > $3
              ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		spaceID, pq.Array(domain.ActiveStatuses), interval.Start, interval.End,
	)
	if err != nil {
		return nil, fmt.Errorf("list overlapping bookings: %w", err)
	}

	return collectBookings(rows)
}

func (r *BookingRepository) ListActiveOverlappingAll(ctx context.Context, interval domain.Interval) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE status = ANY($1)
                AND start_time < $3 AND end_time > $2
              ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		pq.Array(domain.ActiveStatuses), interval.Start, interval.End,
	)
	if err != nil {
		return nil, fmt.Errorf("list overlapping bookings: %w", err)
	}

	return collectBookings(rows)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем бронь и проверяем допустимость перехода
	var current domain.BookingStatus
	if err = tx.QueryRowContext(ctx,
		`SELECT status FROM bookings WHERE id = $1 FOR UPDATE`, id,
	).Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking status: %w", err)
	}

	if !domain.CanTransition(current, status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current, status)
	}

	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + bookingColumns
	b, err := scanBooking(tx.QueryRowContext(ctx, query, id, status))
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit status: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) CompleteEnded(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `
        UPDATE bookings
        SET status = $2, updated_at = $3
        WHERE status = $1 AND end_time <= $3
        RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		domain.BookingStatusConfirmed, domain.BookingStatusCompleted, now,
	)
	if err != nil {
		return nil, fmt.Errorf("complete ended: %w", err)
	}

	return collectBookingPtrs(rows)
}

func (r *BookingRepository) CancelExpired(ctx context.Context, now time.Time, pendingTTL time.Duration) ([]*domain.Booking, error) {
	query := `
        UPDATE bookings
        SET status = $2, updated_at = $3
        WHERE status = $1
          AND (created_at < $4 OR end_time <= $3)
        RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusCancelled, now, now.Add(-pendingTTL),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	return collectBookingPtrs(rows)
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(
		&b.ID, &b.SpaceID, &b.UserID, &b.StartTime, &b.EndTime,
		&b.Status, &b.TotalCents, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.StartTime = b.StartTime.UTC()
	b.EndTime = b.EndTime.UTC()
	b.CreatedAt = b.CreatedAt.UTC()
	b.UpdatedAt = b.UpdatedAt.UTC()
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]domain.Booking, error) {
	defer rows.Close()

	res := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, *b)
	}

	return res, rows.Err()
}

func collectBookingPtrs(rows *sql.Rows) ([]*domain.Booking, error) {
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
