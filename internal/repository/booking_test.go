package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/KevinDaniel18/cowork-central/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

var bookingColumnNames = []string{
	"id", "space_id", "user_id", "start_time", "end_time", "status", "total_cents", "created_at", "updated_at",
}

var (
	setLockTimeoutSQL = regexp.QuoteMeta(`SET LOCAL lock_timeout = '1000ms'`)
	lockSpaceSQL      = regexp.QuoteMeta(`SELECT is_active FROM spaces WHERE id = $1 FOR UPDATE`)
	overlapSQL        = `SELECT .+ FROM bookings\s+WHERE space_id = \$1 AND status = ANY\(\$2\)`
	insertBookingSQL  = regexp.QuoteMeta(`INSERT INTO bookings`)
	lockBookingSQL    = regexp.QuoteMeta(`SELECT status FROM bookings WHERE id = $1 FOR UPDATE`)
	updateStatusSQL   = regexp.QuoteMeta(`UPDATE bookings`)
)

// newMockDB собирает dbpg.DB поверх sqlmock и проверяет, что все ожидания выполнены.
func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return &dbpg.DB{Master: db}, mock
}

func newTestBooking() *domain.Booking {
	start := time.Date(2030, 3, 10, 9, 0, 0, 0, time.UTC)
	now := time.Date(2030, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:         "7f9c4a1e-0000-4000-8000-000000000001",
		SpaceID:    "7f9c4a1e-0000-4000-8000-0000000000aa",
		UserID:     "u1",
		StartTime:  start,
		EndTime:    start.Add(2 * time.Hour),
		Status:     domain.BookingStatusPending,
		TotalCents: 4000,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func bookingRow(rows *sqlmock.Rows, b *domain.Booking) *sqlmock.Rows {
	return rows.AddRow(b.ID, b.SpaceID, b.UserID, b.StartTime, b.EndTime,
		string(b.Status), b.TotalCents, b.CreatedAt, b.UpdatedAt)
}

// expectAdmissionUpToOverlap описывает транзакцию до проверки пересечений включительно.
func expectAdmissionUpToOverlap(mock sqlmock.Sqlmock, b *domain.Booking, existing ...*domain.Booking) {
	mock.ExpectBegin()
	mock.ExpectExec(setLockTimeoutSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(lockSpaceSQL).
		WithArgs(b.SpaceID).
		WillReturnRows(sqlmock.NewRows([]string{"is_active"}).AddRow(true))

	rows := sqlmock.NewRows(bookingColumnNames)
	for _, e := range existing {
		bookingRow(rows, e)
	}
	mock.ExpectQuery(overlapSQL).WillReturnRows(rows)
}

func TestBookingRepository_CreateIfFree_Inserts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, time.Second)
	b := newTestBooking()

	expectAdmissionUpToOverlap(mock, b)
	mock.ExpectExec(insertBookingSQL).
		WithArgs(b.ID, b.SpaceID, b.UserID, b.StartTime, b.EndTime,
			string(b.Status), b.TotalCents, b.CreatedAt, b.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateIfFree(context.Background(), b))
}

func TestBookingRepository_CreateIfFree_TouchingBookingIsNotAConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, time.Second)
	b := newTestBooking()

	before := newTestBooking()
	before.ID = "7f9c4a1e-0000-4000-8000-000000000002"
	before.StartTime, before.EndTime = b.StartTime.Add(-time.Hour), b.StartTime

	expectAdmissionUpToOverlap(mock, b, before)
	mock.ExpectExec(insertBookingSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateIfFree(context.Background(), b))
}

func TestBookingRepository_CreateIfFree_OverlapRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, time.Second)
	b := newTestBooking()

	existing := newTestBooking()
	existing.ID = "7f9c4a1e-0000-4000-8000-000000000003"
	existing.Status = domain.BookingStatusConfirmed
	existing.StartTime = b.StartTime.Add(time.Hour)
	existing.EndTime = b.EndTime.Add(time.Hour)

	expectAdmissionUpToOverlap(mock, b, existing)
	mock.ExpectRollback()

	err := repo.CreateIfFree(context.Background(), b)

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.ErrorIs(t, err, domain.ErrConflict)
	require.Len(t, conflict.Conflicts, 1)
	assert.Equal(t, existing.ID, conflict.Conflicts[0].ID)
}

func TestBookingRepository_CreateIfFree_InsertErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wrapped bool
	}{
		{"exclusion constraint", &pq.Error{Code: pgExclusionViolation}, domain.ErrConflict, false},
		{"space deleted meanwhile", &pq.Error{Code: pgForeignKeyViolation}, domain.ErrSpaceNotFound, false},
		{"storage failure", errors.New("connection reset"), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewBookingRepo(db, time.Second)
			b := newTestBooking()

			expectAdmissionUpToOverlap(mock, b)
			mock.ExpectExec(insertBookingSQL).WillReturnError(tt.err)
			mock.ExpectRollback()

			err := repo.CreateIfFree(context.Background(), b)

			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wrapped {
				assert.ErrorIs(t, err, tt.err)
				assert.Contains(t, err.Error(), "insert booking")
			}
		})
	}
}

func TestBookingRepository_CreateIfFree_CommitExclusionIsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, time.Second)
	b := newTestBooking()

	expectAdmissionUpToOverlap(mock, b)
	mock.ExpectExec(insertBookingSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: pgExclusionViolation})

	err := repo.CreateIfFree(context.Background(), b)

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestBookingRepository_CreateIfFree_SpaceLockErrors(t *testing.T) {
	tests := []struct {
		name   string
		expect func(q *sqlmock.ExpectedQuery)
		want   error
	}{
		{
			name:   "lock timeout",
			expect: func(q *sqlmock.ExpectedQuery) { q.WillReturnError(&pq.Error{Code: pgLockNotAvailable}) },
			want:   domain.ErrLockTimeout,
		},
		{
			name:   "malformed uuid",
			expect: func(q *sqlmock.ExpectedQuery) { q.WillReturnError(&pq.Error{Code: pgInvalidText}) },
			want:   domain.ErrSpaceNotFound,
		},
		{
			name:   "no such space",
			expect: func(q *sqlmock.ExpectedQuery) { q.WillReturnRows(sqlmock.NewRows([]string{"is_active"})) },
			want:   domain.ErrSpaceNotFound,
		},
		{
			name: "inactive space",
			expect: func(q *sqlmock.ExpectedQuery) {
				q.WillReturnRows(sqlmock.NewRows([]string{"is_active"}).AddRow(false))
			},
			want: domain.ErrSpaceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewBookingRepo(db, time.Second)
			b := newTestBooking()

			mock.ExpectBegin()
			mock.ExpectExec(setLockTimeoutSQL).WillReturnResult(sqlmock.NewResult(0, 0))
			tt.expect(mock.ExpectQuery(lockSpaceSQL).WithArgs(b.SpaceID))
			mock.ExpectRollback()

			err := repo.CreateIfFree(context.Background(), b)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBookingRepository_CreateIfFree_WithoutLockTimeout(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, 0)
	b := newTestBooking()

	mock.ExpectBegin()
	mock.ExpectQuery(lockSpaceSQL).WillReturnRows(sqlmock.NewRows([]string{"is_active"}).AddRow(true))
	mock.ExpectQuery(overlapSQL).WillReturnRows(sqlmock.NewRows(bookingColumnNames))
	mock.ExpectExec(insertBookingSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateIfFree(context.Background(), b))
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db, time.Second)
	b := newTestBooking()

	confirmed := *b
	confirmed.Status = domain.BookingStatusConfirmed

	mock.ExpectBegin()
	mock.ExpectQuery(lockBookingSQL).
		WithArgs(b.ID).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(string(domain.BookingStatusPending)))
	mock.ExpectQuery(updateStatusSQL).
		WithArgs(b.ID, string(domain.BookingStatusConfirmed)).
		WillReturnRows(bookingRow(sqlmock.NewRows(bookingColumnNames), &confirmed))
	mock.ExpectCommit()

	got, err := repo.UpdateStatus(context.Background(), b.ID, domain.BookingStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, time.UTC, got.StartTime.Location())
}

func TestBookingRepository_UpdateStatus_Errors(t *testing.T) {
	tests := []struct {
		name   string
		expect func(q *sqlmock.ExpectedQuery)
		want   error
	}{
		{
			name:   "no such booking",
			expect: func(q *sqlmock.ExpectedQuery) { q.WillReturnRows(sqlmock.NewRows([]string{"status"})) },
			want:   domain.ErrBookingNotFound,
		},
		{
			name:   "malformed uuid",
			expect: func(q *sqlmock.ExpectedQuery) { q.WillReturnError(&pq.Error{Code: pgInvalidText}) },
			want:   domain.ErrBookingNotFound,
		},
		{
			name: "terminal status",
			expect: func(q *sqlmock.ExpectedQuery) {
				q.WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(string(domain.BookingStatusCompleted)))
			},
			want: domain.ErrInvalidTransition,
		},
		{
			name:   "storage failure",
			expect: func(q *sqlmock.ExpectedQuery) { q.WillReturnError(sql.ErrConnDone) },
			want:   sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewBookingRepo(db, time.Second)

			mock.ExpectBegin()
			tt.expect(mock.ExpectQuery(lockBookingSQL))
			mock.ExpectRollback()

			_, err := repo.UpdateStatus(context.Background(), "7f9c4a1e-0000-4000-8000-000000000001", domain.BookingStatusCancelled)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}
