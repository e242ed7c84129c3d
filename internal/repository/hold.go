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

type HoldRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHoldRepo(db *dbpg.DB) *HoldRepository {
	return &HoldRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const holdColumns = `token, occurrence_id, quantity, state, created_at, expires_at, updated_at`

func (r *HoldRepository) Create(ctx context.Context, h *domain.Hold) error {
	query := `INSERT INTO holds (` + holdColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		h.Token, h.OccurrenceID, h.Quantity, h.State,
		h.CreatedAt, h.ExpiresAt, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert hold: %w", err)
	}

	return nil
}

func (r *HoldRepository) Get(ctx context.Context, token string) (*domain.Hold, error) {
	query := `SELECT ` + holdColumns + `
			  FROM holds
			  WHERE token = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, token)
	if err != nil {
		return nil, fmt.Errorf("get hold: %w", err)
	}

	var h domain.Hold
	if err = row.Scan(
		&h.Token, &h.OccurrenceID, &h.Quantity, &h.State,
		&h.CreatedAt, &h.ExpiresAt, &h.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHoldNotFound
		}
		return nil, fmt.Errorf("scan hold: %w", err)
	}

	return &h, nil
}

// UpdateState performs the transition only when the row still carries
// the expected from state, making terminal states sticky at the
// storage level as well.
func (r *HoldRepository) UpdateState(ctx context.Context, token string, from, to domain.HoldState) (bool, error) {
	query := `UPDATE holds
			  SET state = $3, updated_at = now()
			  WHERE token = $1 AND state = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, token, from, to)
	if err != nil {
		return false, fmt.Errorf("update hold state: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update hold state rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *HoldRepository) UpdateExpiry(ctx context.Context, token string, expiresAt time.Time) error {
	query := `UPDATE holds
			  SET expires_at = $2, updated_at = now()
			  WHERE token = $1 AND state = $3`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, token, expiresAt, domain.HoldStateActive)
	if err != nil {
		return fmt.Errorf("update hold expiry: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update hold expiry rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrHoldNotActive
	}

	return nil
}

func (r *HoldRepository) SumActive(ctx context.Context, occurrenceID string, now time.Time) (int, error) {
	query := `SELECT COALESCE(SUM(quantity), 0)
			  FROM holds
			  WHERE occurrence_id = $1 AND state = $2 AND expires_at > $3`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, occurrenceID, domain.HoldStateActive, now)
	if err != nil {
		return 0, fmt.Errorf("sum active holds: %w", err)
	}

	var sum int
	if err = row.Scan(&sum); err != nil {
		return 0, fmt.Errorf("scan active holds sum: %w", err)
	}

	return sum, nil
}

func (r *HoldRepository) ListActiveExpiring(ctx context.Context, before time.Time) ([]*domain.Hold, error) {
	query := `SELECT ` + holdColumns + `
			  FROM holds
			  WHERE state = $1 AND expires_at < $2
			  ORDER BY expires_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.HoldStateActive, before)
	if err != nil {
		return nil, fmt.Errorf("list expiring holds: %w", err)
	}
	defer rows.Close()

	var res []*domain.Hold
	for rows.Next() {
		var h domain.Hold
		if err = rows.Scan(
			&h.Token, &h.OccurrenceID, &h.Quantity, &h.State,
			&h.CreatedAt, &h.ExpiresAt, &h.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan hold: %w", err)
		}
		res = append(res, &h)
	}

	return res, rows.Err()
}
