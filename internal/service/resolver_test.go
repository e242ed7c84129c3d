package service

import (
	"context"
	"testing"
	"time"

	"github.com/niksmo/slotkeeper/internal/clock"
	"github.com/niksmo/slotkeeper/internal/domain"
	"github.com/niksmo/slotkeeper/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type resolverFixture struct {
	products    *mocks.MockProductStore
	occurrences *mocks.MockOccurrenceStore
	closures    *mocks.MockClosureStore
	clk         *clock.Fake
	resolver    *Resolver
}

func newResolverFixture(t *testing.T, grace time.Duration) *resolverFixture {
	t.Helper()

	f := &resolverFixture{
		products:    mocks.NewMockProductStore(t),
		occurrences: mocks.NewMockOccurrenceStore(t),
		closures:    mocks.NewMockClosureStore(t),
		clk:         clock.NewFake(time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)),
	}
	log := newTestLogger(t)
	engine := NewCapacityEngine(f.occurrences, newMemHoldStore(), &captureSink{}, f.clk, defaultCapacityConfig(), log)
	f.resolver = NewResolver(f.products, f.occurrences, f.closures, engine, f.clk, grace)

	return f
}

func occurrenceAt(id string, startAt time.Time) *domain.Occurrence {
	return &domain.Occurrence{
		ID:        id,
		ProductID: "p1",
		StartAt:   startAt,
		Capacity:  10,
		Status:    domain.OccurrenceStatusActive,
	}
}

func TestResolver_ResolveSlots_OrdersByStartThenID(t *testing.T) {
	f := newResolverFixture(t, 0)

	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)
	sameStart := time.Date(2024, 7, 10, 10, 0, 0, 0, time.UTC)

	occs := []*domain.Occurrence{
		occurrenceAt("b", sameStart),
		occurrenceAt("c", time.Date(2024, 7, 5, 10, 0, 0, 0, time.UTC)),
		occurrenceAt("a", sameStart),
	}

	f.products.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Product{ID: "p1"}, nil)
	f.occurrences.EXPECT().ListByProduct(mock.Anything, "p1", from, to).Return(occs, nil)
	f.closures.EXPECT().List(mock.Anything, "p1", from, to).Return(nil, nil)

	slots, err := f.resolver.ResolveSlots(context.Background(), "p1", from, to)

	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, "c", slots[0].Occurrence.ID)
	assert.Equal(t, "a", slots[1].Occurrence.ID)
	assert.Equal(t, "b", slots[2].Occurrence.ID)
}

func TestResolver_ResolveSlots_FiltersClosures(t *testing.T) {
	f := newResolverFixture(t, 0)

	from := time.Date(2024, 7, 9, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)

	// Closure over July 10th through 15th, bounds included.
	closure := &domain.Closure{
		ID:        "c1",
		StartDate: time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 7, 15, 23, 59, 59, 0, time.UTC),
	}
	covered := occurrenceAt("o1", time.Date(2024, 7, 12, 10, 0, 0, 0, time.UTC))
	dayAfter := occurrenceAt("o2", time.Date(2024, 7, 16, 10, 0, 0, 0, time.UTC))

	f.products.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Product{ID: "p1"}, nil)
	f.occurrences.EXPECT().ListByProduct(mock.Anything, "p1", from, to).
		Return([]*domain.Occurrence{covered, dayAfter}, nil)
	f.closures.EXPECT().List(mock.Anything, "p1", from, to).
		Return([]*domain.Closure{closure}, nil)

	slots, err := f.resolver.ResolveSlots(context.Background(), "p1", from, to)

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "o2", slots[0].Occurrence.ID)
}

func TestResolver_ResolveSlots_FiltersStatusAndPast(t *testing.T) {
	f := newResolverFixture(t, 0)

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)

	past := occurrenceAt("past", time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC))
	inactive := occurrenceAt("inactive", time.Date(2024, 7, 10, 10, 0, 0, 0, time.UTC))
	inactive.Status = domain.OccurrenceStatusInactive
	cancelled := occurrenceAt("cancelled", time.Date(2024, 7, 11, 10, 0, 0, 0, time.UTC))
	cancelled.Status = domain.OccurrenceStatusCancelled
	upcoming := occurrenceAt("upcoming", time.Date(2024, 7, 12, 10, 0, 0, 0, time.UTC))

	f.products.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Product{ID: "p1"}, nil)
	f.occurrences.EXPECT().ListByProduct(mock.Anything, "p1", from, to).
		Return([]*domain.Occurrence{past, inactive, cancelled, upcoming}, nil)
	f.closures.EXPECT().List(mock.Anything, "p1", from, to).Return(nil, nil)

	slots, err := f.resolver.ResolveSlots(context.Background(), "p1", from, to)

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "upcoming", slots[0].Occurrence.ID)
}

func TestResolver_ResolveSlots_GraceWindowKeepsJustStarted(t *testing.T) {
	f := newResolverFixture(t, 10*time.Minute)

	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)

	// Started five minutes ago; the grace window keeps it bookable.
	justStarted := occurrenceAt("o1", f.clk.Now().Add(-5*time.Minute))

	f.products.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Product{ID: "p1"}, nil)
	f.occurrences.EXPECT().ListByProduct(mock.Anything, "p1", from, to).
		Return([]*domain.Occurrence{justStarted}, nil)
	f.closures.EXPECT().List(mock.Anything, "p1", from, to).Return(nil, nil)

	slots, err := f.resolver.ResolveSlots(context.Background(), "p1", from, to)

	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestResolver_ResolveSlots_AnnotatesAvailability(t *testing.T) {
	f := newResolverFixture(t, 0)

	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)

	occ := occurrenceAt("o1", time.Date(2024, 7, 10, 10, 0, 0, 0, time.UTC))
	occ.Booked = 6

	f.products.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Product{ID: "p1"}, nil)
	f.occurrences.EXPECT().ListByProduct(mock.Anything, "p1", from, to).
		Return([]*domain.Occurrence{occ}, nil)
	f.closures.EXPECT().List(mock.Anything, "p1", from, to).Return(nil, nil)

	slots, err := f.resolver.ResolveSlots(context.Background(), "p1", from, to)

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, 4, slots[0].Available)
}

func TestResolver_ResolveSlots_Empty(t *testing.T) {
	f := newResolverFixture(t, 0)

	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)

	f.products.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Product{ID: "p1"}, nil)
	f.occurrences.EXPECT().ListByProduct(mock.Anything, "p1", from, to).Return(nil, nil)
	f.closures.EXPECT().List(mock.Anything, "p1", from, to).Return(nil, nil)

	slots, err := f.resolver.ResolveSlots(context.Background(), "p1", from, to)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolver_ResolveSlots_ProductNotFound(t *testing.T) {
	f := newResolverFixture(t, 0)

	f.products.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrProductNotFound)

	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	_, err := f.resolver.ResolveSlots(context.Background(), "missing", from, from.Add(24*time.Hour))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestResolver_ResolveSlots_InvalidRange(t *testing.T) {
	f := newResolverFixture(t, 0)

	from := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.resolver.ResolveSlots(context.Background(), "p1", from, to)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestResolver_CheckBookable(t *testing.T) {
	f := newResolverFixture(t, 0)
	ctx := context.Background()

	occ := occurrenceAt("o1", time.Date(2024, 7, 10, 10, 0, 0, 0, time.UTC))
	f.closures.EXPECT().List(mock.Anything, "p1", occ.StartAt, occ.StartAt).Return(nil, nil)

	require.NoError(t, f.resolver.CheckBookable(ctx, occ))
}

func TestResolver_CheckBookable_Inactive(t *testing.T) {
	f := newResolverFixture(t, 0)

	occ := occurrenceAt("o1", time.Date(2024, 7, 10, 10, 0, 0, 0, time.UTC))
	occ.Status = domain.OccurrenceStatusInactive

	err := f.resolver.CheckBookable(context.Background(), occ)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOccurrenceClosed)
}

func TestResolver_CheckBookable_AlreadyStarted(t *testing.T) {
	f := newResolverFixture(t, 0)

	occ := occurrenceAt("o1", f.clk.Now().Add(-time.Hour))

	err := f.resolver.CheckBookable(context.Background(), occ)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOccurrenceClosed)
}

func TestResolver_CheckBookable_ClosureInEffect(t *testing.T) {
	f := newResolverFixture(t, 0)

	occ := occurrenceAt("o1", time.Date(2024, 7, 12, 10, 0, 0, 0, time.UTC))
	closure := &domain.Closure{
		ID:        "c1",
		StartDate: time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 7, 15, 23, 59, 59, 0, time.UTC),
	}
	f.closures.EXPECT().List(mock.Anything, "p1", occ.StartAt, occ.StartAt).
		Return([]*domain.Closure{closure}, nil)

	err := f.resolver.CheckBookable(context.Background(), occ)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOccurrenceClosed)
}
