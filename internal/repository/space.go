package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const spaceColumns = `id, name, type, capacity, price_hour_cents, amenities, description, image_url, is_active, created_at, updated_at`

type SpaceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSpaceRepo(db *dbpg.DB) *SpaceRepository {
	return &SpaceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SpaceRepository) Create(ctx context.Context, s *domain.Space) error {
	query := `INSERT INTO spaces (` + spaceColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Name, s.Type, s.Capacity, s.PriceHourCents, pq.Array(s.Amenities),
		s.Description, s.ImageURL, s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert space: %w", err)
	}

	return nil
}

func (r *SpaceRepository) Update(ctx context.Context, s *domain.Space) error {
	query := `UPDATE spaces
			  SET name = $2, type = $3, capacity = $4, price_hour_cents = $5, amenities = $6,
			      description = $7, image_url = $8, is_active = $9, updated_at = $10
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Name, s.Type, s.Capacity, s.PriceHourCents, pq.Array(s.Amenities),
		s.Description, s.ImageURL, s.IsActive, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update space: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("space rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrSpaceNotFound
	}

	return nil
}

func (r *SpaceRepository) GetByID(ctx context.Context, id string) (*domain.Space, error) {
	query := `SELECT ` + spaceColumns + ` FROM spaces WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get space: %w", err)
	}

	s, err := scanSpace(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
			return nil, domain.ErrSpaceNotFound
		}
		return nil, fmt.Errorf("scan space: %w", err)
	}

	return s, nil
}

func (r *SpaceRepository) List(ctx context.Context, f domain.SpaceFilter) ([]*domain.Space, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Type != "" {
		where = append(where, "type = "+arg(f.Type))
	}
	if f.Active != nil {
		where = append(where, "is_active = "+arg(*f.Active))
	}
	if f.MinCapacity > 0 {
		where = append(where, "capacity >= "+arg(f.MinCapacity))
	}
	if f.Query != "" {
		p := arg("%" + f.Query + "%")
		where = append(where, "(name ILIKE "+p+" OR description ILIKE "+p+")")
	}

	completed := arg(domain.BookingStatusCompleted)
	query := `SELECT ` + spaceColumns + `,
			    (SELECT count(*) FROM bookings b
			     WHERE b.space_id = spaces.id AND b.status = ` + completed + `)
			  FROM spaces`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	// активные первыми, затем по имени
	query += " ORDER BY is_active DESC, name"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list spaces: %w", err)
	}
	defer rows.Close()

	var res []*domain.Space
	for rows.Next() {
		var total int
		s, err := scanSpace(rows, &total)
		if err != nil {
			return nil, fmt.Errorf("scan space: %w", err)
		}
		s.TotalBookings = total
		res = append(res, s)
	}

	return res, rows.Err()
}

// Delete блокирует ту же строку пространства, что и создание брони, поэтому
// между проверкой занятости и удалением новая бронь не появится.
func (r *SpaceRepository) Delete(ctx context.Context, id string, now time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var locked string
	if err = tx.QueryRowContext(ctx, `SELECT id FROM spaces WHERE id = $1 FOR UPDATE`, id).Scan(&locked); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows), isInvalidText(err):
			return domain.ErrSpaceNotFound
		case isLockTimeout(err):
			return domain.ErrLockTimeout
		}
		return fmt.Errorf("lock space: %w", err)
	}

	var inUse bool
	inUseQuery := `SELECT EXISTS (
			  SELECT 1 FROM bookings
			  WHERE space_id = $1 AND status = ANY($2) AND end_time > $3)`
	if err = tx.QueryRowContext(ctx, inUseQuery, id, pq.Array(domain.ActiveStatuses), now).Scan(&inUse); err != nil {
		return fmt.Errorf("check space usage: %w", err)
	}
	if inUse {
		return domain.ErrSpaceInUse
	}

	// брони удаляются вместе с пространством (ON DELETE CASCADE)
	if _, err = tx.ExecContext(ctx, `DELETE FROM spaces WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete space: %w", err)
	}

	return tx.Commit()
}

// scanSpace читает spaceColumns; extra принимает колонки, выбранные после них.
func scanSpace(row rowScanner, extra ...any) (*domain.Space, error) {
	var s domain.Space
	var amenities pq.StringArray
	dest := append([]any{
		&s.ID, &s.Name, &s.Type, &s.Capacity, &s.PriceHourCents, &amenities,
		&s.Description, &s.ImageURL, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	s.Amenities = []string(amenities)
	if s.Amenities == nil {
		s.Amenities = []string{}
	}
	return &s, nil
}
