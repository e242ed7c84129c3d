package ports

import (
	"context"

	"github.com/niksmo/slotkeeper/internal/domain"
)

// BookingStore persists confirmed bookings. It is the external order
// persistence collaborator; the core never reads bookings back.
type BookingStore interface {
	Save(ctx context.Context, b *domain.Booking) error
}
