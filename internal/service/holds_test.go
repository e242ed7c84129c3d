package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/niksmo/slotkeeper/internal/clock"
	"github.com/niksmo/slotkeeper/internal/domain"
	"github.com/niksmo/slotkeeper/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type holdFixture struct {
	occStore  *memOccurrenceStore
	holdStore *memHoldStore
	sink      *captureSink
	clk       *clock.Fake
	engine    *CapacityEngine
	manager   *HoldManager
}

func newHoldFixture(t *testing.T, occs ...*domain.Occurrence) *holdFixture {
	t.Helper()

	f := &holdFixture{
		occStore:  newMemOccurrenceStore(occs...),
		holdStore: newMemHoldStore(),
		sink:      &captureSink{},
		clk:       clock.NewFake(time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)),
	}
	log := newTestLogger(t)
	f.engine = NewCapacityEngine(f.occStore, f.holdStore, f.sink, f.clk, defaultCapacityConfig(), log)
	f.manager = NewHoldManager(f.holdStore, f.occStore, f.engine, f.sink, f.clk, 2*time.Second, log)

	return f
}

func activeOccurrence(id string, capacity int) *domain.Occurrence {
	return &domain.Occurrence{
		ID:        id,
		ProductID: "p1",
		StartAt:   time.Date(2024, 7, 10, 10, 0, 0, 0, time.UTC),
		Capacity:  capacity,
		Status:    domain.OccurrenceStatusActive,
	}
}

func TestHoldManager_PlaceHold_Success(t *testing.T) {
	f := newHoldFixture(t, activeOccurrence("o1", 5))
	ctx := context.Background()

	hold, err := f.manager.PlaceHold(ctx, "o1", 3, 15*time.Minute)

	require.NoError(t, err)
	assert.NotEmpty(t, hold.Token)
	assert.Equal(t, "o1", hold.OccurrenceID)
	assert.Equal(t, 3, hold.Quantity)
	assert.Equal(t, domain.HoldStateActive, hold.State)
	assert.Equal(t, f.clk.Now().Add(15*time.Minute), hold.ExpiresAt)

	available, err := f.engine.Available(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 2, available)

	time.Sleep(50 * time.Millisecond) // goroutine emit
	assert.Contains(t, f.sink.lifecycleKinds(), domain.LifecycleHoldPlaced)
}

func TestHoldManager_PlaceHold_InsufficientCapacity(t *testing.T) {
	occ := activeOccurrence("o1", 5)
	occ.Booked = 3
	f := newHoldFixture(t, occ)

	_, err := f.manager.PlaceHold(context.Background(), "o1", 3, 15*time.Minute)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
}

func TestHoldManager_PlaceHold_ClosedOccurrence(t *testing.T) {
	occ := activeOccurrence("o1", 5)
	occ.Status = domain.OccurrenceStatusInactive
	f := newHoldFixture(t, occ)

	_, err := f.manager.PlaceHold(context.Background(), "o1", 1, 15*time.Minute)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOccurrenceClosed)
}

func TestHoldManager_PlaceHold_OccurrenceNotFound(t *testing.T) {
	f := newHoldFixture(t)

	_, err := f.manager.PlaceHold(context.Background(), "missing", 1, 15*time.Minute)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOccurrenceNotFound)
}

func TestHoldManager_PlaceHold_Validation(t *testing.T) {
	f := newHoldFixture(t, activeOccurrence("o1", 5))
	ctx := context.Background()

	_, err := f.manager.PlaceHold(ctx, "o1", 0, 15*time.Minute)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.manager.PlaceHold(ctx, "o1", 1, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestHoldManager_PlaceHold_ConcurrentSingleWinner(t *testing.T) {
	f := newHoldFixture(t, activeOccurrence("o1", 5))
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.manager.PlaceHold(ctx, "o1", 3, 15*time.Minute)
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range results {
		switch {
		case err == nil:
			won++
		default:
			assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
			lost++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)

	held, err := f.holdStore.SumActive(ctx, "o1", f.clk.Now())
	require.NoError(t, err)
	assert.Equal(t, 3, held)
}

func TestHoldManager_PlaceHold_NeverOversells(t *testing.T) {
	f := newHoldFixture(t, activeOccurrence("o1", 10))
	ctx := context.Background()

	const workers = 25
	placed := make([]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			qty := i%3 + 1
			if _, err := f.manager.PlaceHold(ctx, "o1", qty, 15*time.Minute); err == nil {
				placed[i] = qty
			}
		}(i)
	}
	wg.Wait()

	total := 0
	for _, qty := range placed {
		total += qty
	}
	assert.LessOrEqual(t, total, 10)

	held, err := f.holdStore.SumActive(ctx, "o1", f.clk.Now())
	require.NoError(t, err)
	assert.Equal(t, total, held)
}

func TestHoldManager_Renew_ExtendsExpiry(t *testing.T) {
	f := newHoldFixture(t, activeOccurrence("o1", 5))
	ctx := context.Background()

	hold, err := f.manager.PlaceHold(ctx, "o1", 2, 10*time.Minute)
	require.NoError(t, err)

	f.clk.Advance(5 * time.Minute)
	require.NoError(t, f.manager.Renew(ctx, hold.Token, 10*time.Minute))

	renewed, err := f.holdStore.Get(ctx, hold.Token)
	require.NoError(t, err)
	assert.Equal(t, f.clk.Now().Add(10*time.Minute), renewed.ExpiresAt)
}

func TestHoldManager_Renew_Expired(t *testing.T) {
	f := newHoldFixture(t, activeOccurrence("o1", 5))
	ctx := context.Background()

	hold, err := f.manager.PlaceHold(ctx, "o1", 2, time.Minute)
	require.NoError(t, err)

	f.clk.Advance(2 * time.Minute)
	err = f.manager.Renew(ctx, hold.Token, 10*time.Minute)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHoldExpired)

	expired, err := f.holdStore.Get(ctx, hold.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.HoldStateExpired, expired.State)

	available, err := f.engine.Available(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 5, available)
}

func TestHoldManager_Renew_NotActive(t *testing.T) {
	f := newHoldFixture(t, activeOccurrence("o1", 5))
	ctx := context.Background()

	hold, err := f.manager.PlaceHold(ctx, "o1", 2, 10*time.Minute)
	require.NoError(t, err)
	require.NoError(t, f.manager.Release(ctx, hold.Token))

	err = f.manager.Renew(ctx, hold.Token, 10*time.Minute)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHoldNotActive)
}

func TestHoldManager_Consume_CapacityNeutral(t *testing.T) {
	f := newHoldFixture(t, activeOccurrence("o1", 5))
	ctx := context.Background()

	hold, err := f.manager.PlaceHold(ctx, "o1", 3, 15*time.Minute)
	require.NoError(t, err)

	before, err := f.engine.Available(ctx, "o1")
	require.NoError(t, err)

	consumed, err := f.manager.Consume(ctx, hold.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.HoldStateConsumed, consumed.State)
	assert.Equal(t, 3, consumed.Quantity)

	// Seats move from held to booked; availability does not change.
	after, err := f.engine.Available(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	occ, err := f.occStore.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 3, occ.Booked)
}

func TestHoldManager_Consume_ExpiredLazily(t *testing.T) {
	f := newHoldFixture(t, activeOccurrence("o1", 5))
	ctx := context.Background()

	hold, err := f.manager.PlaceHold(ctx, "o1", 3, time.Second)
	require.NoError(t, err)

	// Past expiry but not swept yet: consume still loses.
	f.clk.Advance(2 * time.Second)
	_, err = f.manager.Consume(ctx, hold.Token)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHoldExpired)

	occ, err := f.occStore.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 0, occ.Booked)
}

func TestHoldManager_Consume_Terminal(t *testing.T) {
	f := newHoldFixture(t, activeOccurrence("o1", 5))
	ctx := context.Background()

	hold, err := f.manager.PlaceHold(ctx, "o1", 2, 15*time.Minute)
	require.NoError(t, err)

	_, err = f.manager.Consume(ctx, hold.Token)
	require.NoError(t, err)

	_, err = f.manager.Consume(ctx, hold.Token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHoldNotActive)

	occ, err := f.occStore.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 2, occ.Booked)
}

func TestHoldManager_Consume_RollsBackOnLostRace(t *testing.T) {
	occStore := mocks.NewMockOccurrenceStore(t)
	holdStore := mocks.NewMockHoldStore(t)
	sink := &captureSink{}
	clk := clock.NewFake(time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC))
	log := newTestLogger(t)

	engine := NewCapacityEngine(occStore, holdStore, sink, clk, defaultCapacityConfig(), log)
	manager := NewHoldManager(holdStore, occStore, engine, sink, clk, 2*time.Second, log)

	hold := &domain.Hold{
		Token:        "t1",
		OccurrenceID: "o1",
		Quantity:     2,
		State:        domain.HoldStateActive,
		ExpiresAt:    clk.Now().Add(10 * time.Minute),
	}
	holdStore.EXPECT().Get(mock.Anything, "t1").Return(hold, nil)
	occStore.EXPECT().IncrementBooked(mock.Anything, "o1", 2).Return(nil)
	// Another writer retired the hold between the read and the update.
	holdStore.EXPECT().
		UpdateState(mock.Anything, "t1", domain.HoldStateActive, domain.HoldStateConsumed).
		Return(false, nil)
	occStore.EXPECT().IncrementBooked(mock.Anything, "o1", -2).Return(nil)

	_, err := manager.Consume(context.Background(), "t1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHoldNotActive)
}

func TestHoldManager_Release_Idempotent(t *testing.T) {
	f := newHoldFixture(t, activeOccurrence("o1", 5))
	ctx := context.Background()

	hold, err := f.manager.PlaceHold(ctx, "o1", 3, 15*time.Minute)
	require.NoError(t, err)

	require.NoError(t, f.manager.Release(ctx, hold.Token))
	require.NoError(t, f.manager.Release(ctx, hold.Token))

	available, err := f.engine.Available(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 5, available)

	released, err := f.holdStore.Get(ctx, hold.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.HoldStateReleased, released.State)
}

func TestHoldManager_Release_AfterConsume_NoOp(t *testing.T) {
	f := newHoldFixture(t, activeOccurrence("o1", 5))
	ctx := context.Background()

	hold, err := f.manager.PlaceHold(ctx, "o1", 2, 15*time.Minute)
	require.NoError(t, err)
	_, err = f.manager.Consume(ctx, hold.Token)
	require.NoError(t, err)

	require.NoError(t, f.manager.Release(ctx, hold.Token))

	stored, err := f.holdStore.Get(ctx, hold.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.HoldStateConsumed, stored.State)

	occ, err := f.occStore.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 2, occ.Booked)
}

func TestHoldManager_SweepExpired_ReclaimsSeats(t *testing.T) {
	f := newHoldFixture(t, activeOccurrence("o1", 5))
	ctx := context.Background()

	overdue, err := f.manager.PlaceHold(ctx, "o1", 3, time.Second)
	require.NoError(t, err)
	fresh, err := f.manager.PlaceHold(ctx, "o1", 1, time.Hour)
	require.NoError(t, err)

	f.clk.Advance(2 * time.Second)

	count, err := f.manager.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	expired, err := f.holdStore.Get(ctx, overdue.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.HoldStateExpired, expired.State)

	survivor, err := f.holdStore.Get(ctx, fresh.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.HoldStateActive, survivor.State)

	available, err := f.engine.Available(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 4, available)

	// A swept hold cannot be consumed afterwards.
	_, err = f.manager.Consume(ctx, overdue.Token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHoldExpired)
}

func TestHoldManager_SweepExpired_Nothing(t *testing.T) {
	f := newHoldFixture(t, activeOccurrence("o1", 5))

	count, err := f.manager.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestHoldManager_ThresholdsRefireAfterRelease(t *testing.T) {
	f := newHoldFixture(t, activeOccurrence("o1", 5))
	ctx := context.Background()

	hold, err := f.manager.PlaceHold(ctx, "o1", 5, 15*time.Minute)
	require.NoError(t, err)
	require.NoError(t, f.manager.Release(ctx, hold.Token))

	_, err = f.manager.PlaceHold(ctx, "o1", 5, 15*time.Minute)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond) // goroutine emit

	waitlists := 0
	for _, kind := range f.sink.thresholdKinds() {
		if kind == domain.ThresholdWaitlist {
			waitlists++
		}
	}
	assert.Equal(t, 2, waitlists)
}
