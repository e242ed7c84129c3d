package ports

import (
	"context"
	"time"

	"github.com/niksmo/slotkeeper/internal/domain"
)

type ClosureStore interface {
	// List returns closures overlapping [from, to] that apply to the
	// product, global closures included.
	List(ctx context.Context, productID string, from, to time.Time) ([]*domain.Closure, error)
	Create(ctx context.Context, c *domain.Closure) error
	Delete(ctx context.Context, id string) error
}
