package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/niksmo/slotkeeper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occurrenceRows(occs ...*domain.Occurrence) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "product_id", "start_at", "end_at",
		"capacity", "booked", "status", "created_at", "updated_at",
	})
	for _, o := range occs {
		var endAt any
		if o.EndAt != nil {
			endAt = *o.EndAt
		}
		rows.AddRow(o.ID, o.ProductID, o.StartAt, endAt, o.Capacity, o.Booked, o.Status, o.CreatedAt, o.UpdatedAt)
	}
	return rows
}

func TestOccurrenceRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOccurrenceRepo(db)

	now := time.Now()
	occ := &domain.Occurrence{
		ID:        "o1",
		ProductID: "p1",
		StartAt:   now.Add(48 * time.Hour),
		Capacity:  12,
		Status:    domain.OccurrenceStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO occurrences").
		WithArgs(occ.ID, occ.ProductID, occ.StartAt, occ.EndAt, occ.Capacity, occ.Booked, occ.Status, occ.CreatedAt, occ.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), occ))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOccurrenceRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOccurrenceRepo(db)

	now := time.Now()
	endAt := now.Add(50 * time.Hour)
	occ := &domain.Occurrence{
		ID:        "o1",
		ProductID: "p1",
		StartAt:   now.Add(48 * time.Hour),
		EndAt:     &endAt,
		Capacity:  12,
		Booked:    3,
		Status:    domain.OccurrenceStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectQuery("SELECT (.+) FROM occurrences").
		WithArgs("o1").
		WillReturnRows(occurrenceRows(occ))

	got, err := repo.GetByID(context.Background(), "o1")

	require.NoError(t, err)
	assert.Equal(t, "o1", got.ID)
	assert.Equal(t, 12, got.Capacity)
	assert.Equal(t, 3, got.Booked)
	require.NotNil(t, got.EndAt)
	assert.True(t, got.EndAt.Equal(endAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOccurrenceRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOccurrenceRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM occurrences").
		WithArgs("missing").
		WillReturnRows(occurrenceRows())

	_, err := repo.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOccurrenceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOccurrenceRepository_ListByProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOccurrenceRepo(db)

	now := time.Now()
	from := now.Add(-time.Hour)
	to := now.Add(72 * time.Hour)

	first := &domain.Occurrence{ID: "o1", ProductID: "p1", StartAt: now.Add(24 * time.Hour), Capacity: 10, Status: domain.OccurrenceStatusActive, CreatedAt: now, UpdatedAt: now}
	second := &domain.Occurrence{ID: "o2", ProductID: "p1", StartAt: now.Add(48 * time.Hour), Capacity: 8, Status: domain.OccurrenceStatusActive, CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery("SELECT (.+) FROM occurrences").
		WithArgs("p1", from, to).
		WillReturnRows(occurrenceRows(first, second))

	got, err := repo.ListByProduct(context.Background(), "p1", from, to)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "o1", got[0].ID)
	assert.Equal(t, "o2", got[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOccurrenceRepository_IncrementBooked(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOccurrenceRepo(db)

	mock.ExpectExec("UPDATE occurrences").
		WithArgs("o1", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementBooked(context.Background(), "o1", 3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOccurrenceRepository_IncrementBooked_GuardRejects(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOccurrenceRepo(db)

	now := time.Now()
	full := &domain.Occurrence{
		ID: "o1", ProductID: "p1", StartAt: now,
		Capacity: 10, Booked: 10,
		Status: domain.OccurrenceStatusActive, CreatedAt: now, UpdatedAt: now,
	}

	// Guarded update touches no row; the follow-up read shows the
	// occurrence exists, so this is a capacity refusal.
	mock.ExpectExec("UPDATE occurrences").
		WithArgs("o1", 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM occurrences").
		WithArgs("o1").
		WillReturnRows(occurrenceRows(full))

	err := repo.IncrementBooked(context.Background(), "o1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOccurrenceRepository_IncrementBooked_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOccurrenceRepo(db)

	mock.ExpectExec("UPDATE occurrences").
		WithArgs("missing", 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM occurrences").
		WithArgs("missing").
		WillReturnRows(occurrenceRows())

	err := repo.IncrementBooked(context.Background(), "missing", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOccurrenceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOccurrenceRepository_UpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOccurrenceRepo(db)

	mock.ExpectExec("UPDATE occurrences").
		WithArgs("o1", domain.OccurrenceStatusInactive).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), "o1", domain.OccurrenceStatusInactive))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOccurrenceRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOccurrenceRepo(db)

	mock.ExpectExec("UPDATE occurrences").
		WithArgs("missing", domain.OccurrenceStatusInactive).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", domain.OccurrenceStatusInactive)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOccurrenceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
