package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/niksmo/slotkeeper/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ClosureRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClosureRepo(db *dbpg.DB) *ClosureRepository {
	return &ClosureRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ClosureRepository) List(ctx context.Context, productID string, from, to time.Time) ([]*domain.Closure, error) {
	query := `SELECT id, product_id, start_date, end_date, reason, created_at
			  FROM closures
			  WHERE (product_id IS NULL OR product_id = $1)
			    AND start_date <= $3 AND end_date >= $2
			  ORDER BY start_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, productID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list closures: %w", err)
	}
	defer rows.Close()

	var res []*domain.Closure
	for rows.Next() {
		var c domain.Closure
		var productID sql.NullString
		if err = rows.Scan(&c.ID, &productID, &c.StartDate, &c.EndDate, &c.Reason, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan closure: %w", err)
		}
		if productID.Valid {
			p := productID.String
			c.ProductID = &p
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *ClosureRepository) Create(ctx context.Context, c *domain.Closure) error {
	query := `INSERT INTO closures (id, product_id, start_date, end_date, reason, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.ProductID, c.StartDate, c.EndDate, c.Reason, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert closure: %w", err)
	}

	return nil
}

func (r *ClosureRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM closures WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete closure: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete closure rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrClosureNotFound
	}

	return nil
}
