package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/niksmo/slotkeeper/internal/clock"
	"github.com/niksmo/slotkeeper/internal/domain"
	"github.com/niksmo/slotkeeper/internal/service/ports"
)

// CatalogService covers the administrative side: products, occurrence
// setup, status transitions and closures.
type CatalogService struct {
	products    ports.ProductStore
	occurrences ports.OccurrenceStore
	closures    ports.ClosureStore
	engine      *CapacityEngine
	clock       clock.Clock
}

func NewCatalogService(
	products ports.ProductStore,
	occurrences ports.OccurrenceStore,
	closures ports.ClosureStore,
	engine *CapacityEngine,
	clk clock.Clock,
) *CatalogService {
	return &CatalogService{
		products:    products,
		occurrences: occurrences,
		closures:    closures,
		engine:      engine,
		clock:       clk,
	}
}

func (s *CatalogService) CreateProduct(ctx context.Context, input domain.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	product := &domain.Product{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Active:    true,
		CreatedAt: s.clock.Now(),
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func (s *CatalogService) CreateOccurrence(ctx context.Context, input domain.CreateOccurrenceInput) (*domain.Occurrence, error) {
	if input.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", domain.ErrValidation)
	}
	if input.StartAt.IsZero() {
		return nil, fmt.Errorf("%w: start_at is required", domain.ErrValidation)
	}
	if input.EndAt != nil && !input.EndAt.After(input.StartAt) {
		return nil, fmt.Errorf("%w: end_at must be after start_at", domain.ErrValidation)
	}
	if _, err := s.products.GetByID(ctx, input.ProductID); err != nil {
		return nil, fmt.Errorf("check product: %w", err)
	}

	now := s.clock.Now()
	occ := &domain.Occurrence{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		StartAt:   input.StartAt,
		EndAt:     input.EndAt,
		Capacity:  input.Capacity,
		Booked:    0,
		Status:    domain.OccurrenceStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.occurrences.Create(ctx, occ); err != nil {
		return nil, fmt.Errorf("create occurrence: %w", err)
	}

	return occ, nil
}

// UpdateOccurrenceStatus applies a status transition. Terminal statuses
// stick; occurrences with bookings are never deleted, only transitioned.
func (s *CatalogService) UpdateOccurrenceStatus(ctx context.Context, id string, status domain.OccurrenceStatus) error {
	occ, err := s.occurrences.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get occurrence: %w", err)
	}

	if !occ.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: cannot transition %s to %s", domain.ErrValidation, occ.Status, status)
	}

	if err = s.occurrences.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	if status == domain.OccurrenceStatusCancelled || status == domain.OccurrenceStatusCompleted {
		s.engine.Forget(id)
	}

	return nil
}

func (s *CatalogService) CreateClosure(ctx context.Context, input domain.CreateClosureInput) (*domain.Closure, error) {
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if input.StartDate.After(input.EndDate) {
		return nil, fmt.Errorf("%w: start_date is after end_date", domain.ErrValidation)
	}
	if input.ProductID != nil {
		if _, err := s.products.GetByID(ctx, *input.ProductID); err != nil {
			return nil, fmt.Errorf("check product: %w", err)
		}
	}

	closure := &domain.Closure{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Reason:    input.Reason,
		CreatedAt: s.clock.Now(),
	}
	if err := s.closures.Create(ctx, closure); err != nil {
		return nil, fmt.Errorf("create closure: %w", err)
	}

	return closure, nil
}

func (s *CatalogService) DeleteClosure(ctx context.Context, id string) error {
	if err := s.closures.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete closure: %w", err)
	}
	return nil
}
