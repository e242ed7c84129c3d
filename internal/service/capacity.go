package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/niksmo/slotkeeper/internal/clock"
	"github.com/niksmo/slotkeeper/internal/domain"
	"github.com/niksmo/slotkeeper/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CapacityConfig carries the watermarks for threshold evaluation.
type CapacityConfig struct {
	// LowWatermarkPercent fires the low-availability event when
	// available seats drop to this share of capacity or below.
	LowWatermarkPercent int
	// NearFullSeats fires the nearly-full event at this absolute count.
	NearFullSeats int
}

// CapacityEngine computes available seats and raises edge-triggered
// watermark events. Reads issued from hold-mutation paths run under
// that path's occurrence lock and therefore see a consistent view.
type CapacityEngine struct {
	occurrences ports.OccurrenceStore
	holds       ports.HoldStore
	sink        ports.NotificationSink
	clock       clock.Clock
	cfg         CapacityConfig
	log         logger.Logger

	mu      sync.Mutex
	latches map[string]*thresholdLatch
}

// thresholdLatch remembers which watermarks already fired for an
// occurrence, so each crossing emits exactly once until recovery.
type thresholdLatch struct {
	low      bool
	nearFull bool
	waitlist bool
}

func NewCapacityEngine(
	occurrences ports.OccurrenceStore,
	holds ports.HoldStore,
	sink ports.NotificationSink,
	clk clock.Clock,
	cfg CapacityConfig,
	log logger.Logger,
) *CapacityEngine {
	return &CapacityEngine{
		occurrences: occurrences,
		holds:       holds,
		sink:        sink,
		clock:       clk,
		cfg:         cfg,
		log:         log,
		latches:     make(map[string]*thresholdLatch),
	}
}

// Available returns capacity - booked - active hold quantities.
func (e *CapacityEngine) Available(ctx context.Context, occurrenceID string) (int, error) {
	occ, err := e.occurrences.GetByID(ctx, occurrenceID)
	if err != nil {
		return 0, fmt.Errorf("get occurrence: %w", err)
	}

	return e.availableFor(ctx, occ)
}

func (e *CapacityEngine) availableFor(ctx context.Context, occ *domain.Occurrence) (int, error) {
	held, err := e.holds.SumActive(ctx, occ.ID, e.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("sum active holds: %w", err)
	}

	return occ.Capacity - occ.Booked - held, nil
}

// Describe returns a capacity snapshot for one occurrence.
func (e *CapacityEngine) Describe(ctx context.Context, occurrenceID string) (*domain.OccurrenceAvailability, error) {
	occ, err := e.occurrences.GetByID(ctx, occurrenceID)
	if err != nil {
		return nil, fmt.Errorf("get occurrence: %w", err)
	}

	available, err := e.availableFor(ctx, occ)
	if err != nil {
		return nil, err
	}

	return &domain.OccurrenceAvailability{
		OccurrenceID: occ.ID,
		Status:       occ.Status,
		Capacity:     occ.Capacity,
		Booked:       occ.Booked,
		Available:    available,
	}, nil
}

// Availability is the result of a capacity check. Reason is nil when OK.
type Availability struct {
	OK        bool
	Available int
	Reason    error
}

func (e *CapacityEngine) CheckAvailability(ctx context.Context, occurrenceID string, requestedQty int) (Availability, error) {
	if requestedQty < 1 {
		return Availability{}, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}

	occ, err := e.occurrences.GetByID(ctx, occurrenceID)
	if err != nil {
		return Availability{}, fmt.Errorf("get occurrence: %w", err)
	}

	available, err := e.availableFor(ctx, occ)
	if err != nil {
		return Availability{}, err
	}

	if !occ.Bookable() {
		return Availability{OK: false, Available: available, Reason: domain.ErrOccurrenceClosed}, nil
	}
	if requestedQty > available {
		return Availability{OK: false, Available: available, Reason: domain.ErrInsufficientCapacity}, nil
	}

	return Availability{OK: true, Available: available}, nil
}

// EvaluateThresholds recomputes availability and returns the threshold
// events the current level crosses for the first time. Fired events are
// also emitted to the notification sink.
func (e *CapacityEngine) EvaluateThresholds(ctx context.Context, occurrenceID string) ([]domain.CapacityThresholdEvent, error) {
	occ, err := e.occurrences.GetByID(ctx, occurrenceID)
	if err != nil {
		return nil, fmt.Errorf("get occurrence: %w", err)
	}

	available, err := e.availableFor(ctx, occ)
	if err != nil {
		return nil, err
	}

	return e.observe(ctx, occ, available), nil
}

// observe runs the edge-triggered latch logic for one availability
// level and emits every newly fired event.
func (e *CapacityEngine) observe(ctx context.Context, occ *domain.Occurrence, available int) []domain.CapacityThresholdEvent {
	now := e.clock.Now()

	e.mu.Lock()
	latch, ok := e.latches[occ.ID]
	if !ok {
		latch = &thresholdLatch{}
		e.latches[occ.ID] = latch
	}

	var events []domain.CapacityThresholdEvent
	fire := func(kind domain.ThresholdKind) {
		events = append(events, domain.CapacityThresholdEvent{
			OccurrenceID: occ.ID,
			Kind:         kind,
			Available:    available,
			Capacity:     occ.Capacity,
			At:           now,
		})
	}

	lowWatermark := occ.Capacity * e.cfg.LowWatermarkPercent / 100
	switch {
	case available <= lowWatermark:
		if !latch.low {
			latch.low = true
			fire(domain.ThresholdLowAvailability)
		}
	default:
		latch.low = false
	}

	switch {
	case available <= e.cfg.NearFullSeats:
		if !latch.nearFull {
			latch.nearFull = true
			fire(domain.ThresholdNearlyFull)
		}
	default:
		latch.nearFull = false
	}

	switch {
	case available == 0 && occ.Capacity > 0:
		if !latch.waitlist {
			latch.waitlist = true
			fire(domain.ThresholdWaitlist)
		}
	default:
		latch.waitlist = false
	}
	e.mu.Unlock()

	for _, ev := range events {
		e.log.Info("capacity threshold crossed",
			logger.String("occurrence_id", ev.OccurrenceID),
			logger.String("kind", string(ev.Kind)),
			logger.Int("available", ev.Available),
			logger.Int("capacity", ev.Capacity),
		)
		go e.sink.EmitThreshold(context.WithoutCancel(ctx), ev)
	}

	return events
}

// Forget drops the latch state for an occurrence that reached a
// terminal status.
func (e *CapacityEngine) Forget(occurrenceID string) {
	e.mu.Lock()
	delete(e.latches, occurrenceID)
	e.mu.Unlock()
}
