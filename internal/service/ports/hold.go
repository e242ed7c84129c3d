package ports

import (
	"context"
	"time"

	"github.com/niksmo/slotkeeper/internal/domain"
)

type HoldStore interface {
	Create(ctx context.Context, h *domain.Hold) error
	Get(ctx context.Context, token string) (*domain.Hold, error)
	// UpdateState transitions the hold only when it is still in the
	// from state. The bool reports whether the transition happened.
	UpdateState(ctx context.Context, token string, from, to domain.HoldState) (bool, error)
	// UpdateExpiry extends an active hold; fails when the hold is no
	// longer active.
	UpdateExpiry(ctx context.Context, token string, expiresAt time.Time) error
	// SumActive returns the total quantity of active, unexpired holds
	// on the occurrence as of now.
	SumActive(ctx context.Context, occurrenceID string, now time.Time) (int, error)
	ListActiveExpiring(ctx context.Context, before time.Time) ([]*domain.Hold, error)
}
