package ports

import (
	"context"
	"time"

	"github.com/niksmo/slotkeeper/internal/domain"
)

type OccurrenceStore interface {
	Create(ctx context.Context, o *domain.Occurrence) error
	GetByID(ctx context.Context, id string) (*domain.Occurrence, error)
	ListByProduct(ctx context.Context, productID string, from, to time.Time) ([]*domain.Occurrence, error)
	// IncrementBooked applies delta atomically and fails instead of
	// ever letting booked leave the [0, capacity] range.
	IncrementBooked(ctx context.Context, id string, delta int) error
	UpdateStatus(ctx context.Context, id string, status domain.OccurrenceStatus) error
}
