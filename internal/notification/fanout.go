package notification

import (
	"context"

	"github.com/niksmo/slotkeeper/internal/domain"
	"github.com/niksmo/slotkeeper/internal/service/ports"
)

// FanOut forwards every event to each configured sink. With no sinks
// it is a no-op, which keeps the core free of nil checks.
type FanOut struct {
	sinks []ports.NotificationSink
}

func NewFanOut(sinks ...ports.NotificationSink) *FanOut {
	return &FanOut{sinks: sinks}
}

func (f *FanOut) EmitThreshold(ctx context.Context, e domain.CapacityThresholdEvent) {
	for _, s := range f.sinks {
		s.EmitThreshold(ctx, e)
	}
}

func (f *FanOut) EmitLifecycle(ctx context.Context, e domain.BookingLifecycleEvent) {
	for _, s := range f.sinks {
		s.EmitLifecycle(ctx, e)
	}
}
