package ports

import (
	"context"

	"github.com/niksmo/slotkeeper/internal/domain"
)

// NotificationSink receives capacity and lifecycle events. Delivery
// mechanics are the sink's concern; emitters never block on failures.
type NotificationSink interface {
	EmitThreshold(ctx context.Context, e domain.CapacityThresholdEvent)
	EmitLifecycle(ctx context.Context, e domain.BookingLifecycleEvent)
}
