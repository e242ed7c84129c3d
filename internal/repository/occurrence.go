package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/niksmo/slotkeeper/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OccurrenceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOccurrenceRepo(db *dbpg.DB) *OccurrenceRepository {
	return &OccurrenceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const occurrenceColumns = `id, product_id, start_at, end_at, capacity, booked, status, created_at, updated_at`

func (r *OccurrenceRepository) Create(ctx context.Context, o *domain.Occurrence) error {
	query := `INSERT INTO occurrences (` + occurrenceColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		o.ID, o.ProductID, o.StartAt, o.EndAt,
		o.Capacity, o.Booked, o.Status, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert occurrence: %w", err)
	}

	return nil
}

func (r *OccurrenceRepository) GetByID(ctx context.Context, id string) (*domain.Occurrence, error) {
	query := `SELECT ` + occurrenceColumns + `
			  FROM occurrences
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get occurrence: %w", err)
	}

	o, err := scanOccurrence(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOccurrenceNotFound
		}
		return nil, fmt.Errorf("scan occurrence: %w", err)
	}

	return o, nil
}

func (r *OccurrenceRepository) ListByProduct(ctx context.Context, productID string, from, to time.Time) ([]*domain.Occurrence, error) {
	query := `SELECT ` + occurrenceColumns + `
			  FROM occurrences
			  WHERE product_id = $1 AND start_at >= $2 AND start_at <= $3
			  ORDER BY start_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, productID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list occurrences: %w", err)
	}
	defer rows.Close()

	var res []*domain.Occurrence
	for rows.Next() {
		o, err := scanOccurrence(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan occurrence: %w", err)
		}
		res = append(res, o)
	}

	return res, rows.Err()
}

// IncrementBooked moves booked by delta in one guarded statement; the
// WHERE clause refuses any update that would leave booked outside
// [0, capacity], so callers never read-modify-write.
func (r *OccurrenceRepository) IncrementBooked(ctx context.Context, id string, delta int) error {
	query := `UPDATE occurrences
			  SET booked = booked + $2, updated_at = now()
			  WHERE id = $1
			    AND booked + $2 >= 0
			    AND booked + $2 <= capacity`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, delta)
	if err != nil {
		return fmt.Errorf("increment booked: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("increment booked rows affected: %w", err)
	}
	if rows == 0 {
		if _, err = r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrInsufficientCapacity
	}

	return nil
}

func (r *OccurrenceRepository) UpdateStatus(ctx context.Context, id string, status domain.OccurrenceStatus) error {
	query := `UPDATE occurrences
			  SET status = $2, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update status rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrOccurrenceNotFound
	}

	return nil
}

func scanOccurrence(scan func(dest ...any) error) (*domain.Occurrence, error) {
	var o domain.Occurrence
	var endAt sql.NullTime
	if err := scan(
		&o.ID, &o.ProductID, &o.StartAt, &endAt,
		&o.Capacity, &o.Booked, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if endAt.Valid {
		t := endAt.Time
		o.EndAt = &t
	}

	return &o, nil
}
