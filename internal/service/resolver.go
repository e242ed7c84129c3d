package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/niksmo/slotkeeper/internal/clock"
	"github.com/niksmo/slotkeeper/internal/domain"
	"github.com/niksmo/slotkeeper/internal/service/ports"
)

// Resolver computes the set of bookable occurrences for a product,
// filtering closures, non-active statuses and past start times.
type Resolver struct {
	products    ports.ProductStore
	occurrences ports.OccurrenceStore
	closures    ports.ClosureStore
	engine      *CapacityEngine
	clock       clock.Clock
	grace       time.Duration
}

func NewResolver(
	products ports.ProductStore,
	occurrences ports.OccurrenceStore,
	closures ports.ClosureStore,
	engine *CapacityEngine,
	clk clock.Clock,
	grace time.Duration,
) *Resolver {
	return &Resolver{
		products:    products,
		occurrences: occurrences,
		closures:    closures,
		engine:      engine,
		clock:       clk,
		grace:       grace,
	}
}

// ResolveSlots returns the valid occurrences for the product within
// [from, to], ascending by start time, each annotated with its
// availability. An empty result is not an error.
func (r *Resolver) ResolveSlots(ctx context.Context, productID string, from, to time.Time) ([]domain.Slot, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: from is after to", domain.ErrValidation)
	}

	if _, err := r.products.GetByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("check product: %w", err)
	}

	occs, err := r.occurrences.ListByProduct(ctx, productID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list occurrences: %w", err)
	}

	closures, err := r.closures.List(ctx, productID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list closures: %w", err)
	}

	cutoff := r.clock.Now().Add(-r.grace)

	var candidates []*domain.Occurrence
	for _, occ := range occs {
		if !occ.Bookable() {
			continue
		}
		if occ.StartAt.Before(cutoff) {
			continue
		}
		if coveredByClosure(closures, occ) {
			continue
		}
		candidates = append(candidates, occ)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].StartAt.Equal(candidates[j].StartAt) {
			return candidates[i].ID < candidates[j].ID
		}
		return candidates[i].StartAt.Before(candidates[j].StartAt)
	})

	slots := make([]domain.Slot, 0, len(candidates))
	for _, occ := range candidates {
		available, err := r.engine.availableFor(ctx, occ)
		if err != nil {
			return nil, err
		}
		slots = append(slots, domain.Slot{Occurrence: occ, Available: available})
	}

	return slots, nil
}

// CheckBookable applies the resolver's filters to a single occurrence.
// Used by the reservation path to reject stale or forged occurrence IDs.
func (r *Resolver) CheckBookable(ctx context.Context, occ *domain.Occurrence) error {
	if !occ.Bookable() {
		return domain.ErrOccurrenceClosed
	}
	if occ.StartAt.Before(r.clock.Now().Add(-r.grace)) {
		return fmt.Errorf("%w: occurrence already started", domain.ErrOccurrenceClosed)
	}

	closures, err := r.closures.List(ctx, occ.ProductID, occ.StartAt, occ.StartAt)
	if err != nil {
		return fmt.Errorf("list closures: %w", err)
	}
	if coveredByClosure(closures, occ) {
		return fmt.Errorf("%w: closure in effect", domain.ErrOccurrenceClosed)
	}

	return nil
}

func coveredByClosure(closures []*domain.Closure, occ *domain.Occurrence) bool {
	for _, c := range closures {
		if c.AppliesTo(occ.ProductID) && c.Covers(occ.StartAt) {
			return true
		}
	}
	return false
}
