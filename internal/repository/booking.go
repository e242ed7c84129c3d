package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/niksmo/slotkeeper/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, occurrence_id, hold_token, quantity, customer_name, customer_email, note, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.OccurrenceID, b.HoldToken, b.Quantity,
		b.CustomerName, b.CustomerEmail, b.Note, b.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// hold_token is unique; a duplicate means this hold was
			// already turned into a booking.
			return fmt.Errorf("%w: hold already booked", domain.ErrHoldNotActive)
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}
