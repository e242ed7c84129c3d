package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/slotkeeper/internal/clock"
	"github.com/niksmo/slotkeeper/internal/domain"
	"github.com/niksmo/slotkeeper/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// HoldManager owns the set of active holds. All operations that change
// the capacity picture of an occurrence run under that occurrence's
// lock, so the check-and-reserve in PlaceHold never interleaves with a
// concurrent one for the same occurrence.
type HoldManager struct {
	holds       ports.HoldStore
	occurrences ports.OccurrenceStore
	engine      *CapacityEngine
	sink        ports.NotificationSink
	clock       clock.Clock
	locks       *occLocks
	lockWait    time.Duration
	log         logger.Logger
}

func NewHoldManager(
	holds ports.HoldStore,
	occurrences ports.OccurrenceStore,
	engine *CapacityEngine,
	sink ports.NotificationSink,
	clk clock.Clock,
	lockWait time.Duration,
	log logger.Logger,
) *HoldManager {
	return &HoldManager{
		holds:       holds,
		occurrences: occurrences,
		engine:      engine,
		sink:        sink,
		clock:       clk,
		locks:       newOccLocks(),
		lockWait:    lockWait,
		log:         log,
	}
}

// PlaceHold reserves qty seats on the occurrence for ttl. The capacity
// read and the hold write form one atomic unit per occurrence.
func (m *HoldManager) PlaceHold(ctx context.Context, occurrenceID string, qty int, ttl time.Duration) (*domain.Hold, error) {
	if qty < 1 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("%w: ttl must be positive", domain.ErrValidation)
	}

	release, err := m.locks.acquire(ctx, occurrenceID, m.lockWait)
	if err != nil {
		return nil, err
	}
	defer release()

	occ, err := m.occurrences.GetByID(ctx, occurrenceID)
	if err != nil {
		return nil, fmt.Errorf("get occurrence: %w", err)
	}
	if !occ.Bookable() {
		return nil, domain.ErrOccurrenceClosed
	}

	available, err := m.engine.availableFor(ctx, occ)
	if err != nil {
		return nil, err
	}
	if qty > available {
		return nil, domain.ErrInsufficientCapacity
	}

	now := m.clock.Now()
	hold := &domain.Hold{
		Token:        uuid.New().String(),
		OccurrenceID: occurrenceID,
		Quantity:     qty,
		State:        domain.HoldStateActive,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
		UpdatedAt:    now,
	}
	if err = m.holds.Create(ctx, hold); err != nil {
		return nil, fmt.Errorf("create hold: %w", err)
	}

	m.log.Info("hold placed",
		logger.String("hold_token", hold.Token),
		logger.String("occurrence_id", occurrenceID),
		logger.Int("quantity", qty),
		logger.Duration("ttl", ttl),
	)

	m.emitLifecycle(ctx, domain.LifecycleHoldPlaced, hold)
	m.engine.observe(ctx, occ, available-qty)

	return hold, nil
}

// Renew extends an active hold's expiry by ttl from now.
func (m *HoldManager) Renew(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("%w: ttl must be positive", domain.ErrValidation)
	}

	hold, err := m.holds.Get(ctx, token)
	if err != nil {
		return fmt.Errorf("get hold: %w", err)
	}

	release, err := m.locks.acquire(ctx, hold.OccurrenceID, m.lockWait)
	if err != nil {
		return err
	}
	defer release()

	// Re-read under the lock: the state may have changed while waiting.
	if hold, err = m.holds.Get(ctx, token); err != nil {
		return fmt.Errorf("get hold: %w", err)
	}

	now := m.clock.Now()
	if hold.State != domain.HoldStateActive {
		return domain.ErrHoldNotActive
	}
	if hold.ExpiredAt(now) {
		m.expireLocked(ctx, hold)
		return domain.ErrHoldExpired
	}

	if err = m.holds.UpdateExpiry(ctx, token, now.Add(ttl)); err != nil {
		return fmt.Errorf("update expiry: %w", err)
	}

	m.log.Info("hold renewed",
		logger.String("hold_token", token),
		logger.Duration("ttl", ttl),
	)
	m.emitLifecycle(ctx, domain.LifecycleHoldRenewed, hold)

	return nil
}

// Consume makes the reservation permanent: the occurrence's booked
// count absorbs the hold quantity and the hold retires. Returns the
// consumed hold so callers know what was booked.
func (m *HoldManager) Consume(ctx context.Context, token string) (*domain.Hold, error) {
	hold, err := m.holds.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get hold: %w", err)
	}

	release, err := m.locks.acquire(ctx, hold.OccurrenceID, m.lockWait)
	if err != nil {
		return nil, err
	}
	defer release()

	if hold, err = m.holds.Get(ctx, token); err != nil {
		return nil, fmt.Errorf("get hold: %w", err)
	}

	switch hold.State {
	case domain.HoldStateActive:
	case domain.HoldStateExpired:
		return nil, domain.ErrHoldExpired
	default:
		return nil, domain.ErrHoldNotActive
	}

	// A hold past its expiry loses to the sweep even when the sweep has
	// not reached it yet.
	if hold.ExpiredAt(m.clock.Now()) {
		m.expireLocked(ctx, hold)
		return nil, domain.ErrHoldExpired
	}

	if err = m.occurrences.IncrementBooked(ctx, hold.OccurrenceID, hold.Quantity); err != nil {
		return nil, fmt.Errorf("increment booked: %w", err)
	}

	ok, err := m.holds.UpdateState(ctx, token, domain.HoldStateActive, domain.HoldStateConsumed)
	if err != nil || !ok {
		// Roll the seats back; the hold was not retired.
		if derr := m.occurrences.IncrementBooked(ctx, hold.OccurrenceID, -hold.Quantity); derr != nil {
			m.log.Error("failed to roll back booked count",
				logger.String("occurrence_id", hold.OccurrenceID),
				logger.String("error", derr.Error()),
			)
		}
		if err != nil {
			return nil, fmt.Errorf("consume hold: %w", err)
		}
		return nil, domain.ErrHoldNotActive
	}

	hold.State = domain.HoldStateConsumed

	m.log.Info("hold consumed",
		logger.String("hold_token", token),
		logger.String("occurrence_id", hold.OccurrenceID),
		logger.Int("quantity", hold.Quantity),
	)

	return hold, nil
}

// Release frees an active hold's seats. Releasing a hold that already
// reached a terminal state is a no-op, so duplicate cancellation
// signals are harmless.
func (m *HoldManager) Release(ctx context.Context, token string) error {
	hold, err := m.holds.Get(ctx, token)
	if err != nil {
		return fmt.Errorf("get hold: %w", err)
	}
	if hold.State.Terminal() {
		return nil
	}

	release, err := m.locks.acquire(ctx, hold.OccurrenceID, m.lockWait)
	if err != nil {
		return err
	}
	defer release()

	ok, err := m.holds.UpdateState(ctx, token, domain.HoldStateActive, domain.HoldStateReleased)
	if err != nil {
		return fmt.Errorf("release hold: %w", err)
	}
	if !ok {
		return nil
	}

	hold.State = domain.HoldStateReleased

	m.log.Info("hold released",
		logger.String("hold_token", token),
		logger.String("occurrence_id", hold.OccurrenceID),
		logger.Int("quantity", hold.Quantity),
	)

	m.emitLifecycle(ctx, domain.LifecycleHoldReleased, hold)
	m.reactThresholds(ctx, hold.OccurrenceID)

	return nil
}

// SweepExpired reclaims every active hold whose expiry has passed and
// returns the count. Safe to run concurrently with itself and with
// in-flight operations: each hold is re-checked under its occurrence
// lock and the store transition is state-guarded.
func (m *HoldManager) SweepExpired(ctx context.Context) (int, error) {
	now := m.clock.Now()

	expiring, err := m.holds.ListActiveExpiring(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list expiring holds: %w", err)
	}

	count := 0
	for _, h := range expiring {
		release, err := m.locks.acquire(ctx, h.OccurrenceID, m.lockWait)
		if err != nil {
			if errors.Is(err, domain.ErrBusy) {
				// Contended occurrence; the next sweep picks it up.
				continue
			}
			return count, err
		}

		hold, err := m.holds.Get(ctx, h.Token)
		if err == nil && hold.State == domain.HoldStateActive && hold.ExpiredAt(now) {
			if m.expireLocked(ctx, hold) {
				count++
			}
		}
		release()
	}

	return count, nil
}

// expireLocked transitions an overdue active hold to expired. Callers
// must hold the occurrence lock.
func (m *HoldManager) expireLocked(ctx context.Context, hold *domain.Hold) bool {
	ok, err := m.holds.UpdateState(ctx, hold.Token, domain.HoldStateActive, domain.HoldStateExpired)
	if err != nil {
		m.log.Error("failed to expire hold",
			logger.String("hold_token", hold.Token),
			logger.String("error", err.Error()),
		)
		return false
	}
	if !ok {
		return false
	}

	hold.State = domain.HoldStateExpired

	m.log.Info("hold expired",
		logger.String("hold_token", hold.Token),
		logger.String("occurrence_id", hold.OccurrenceID),
		logger.Int("quantity", hold.Quantity),
	)

	m.emitLifecycle(ctx, domain.LifecycleHoldExpired, hold)
	m.reactThresholds(ctx, hold.OccurrenceID)

	return true
}

// reactThresholds refreshes the engine's latch state after a change
// that freed seats. Runs under the caller's occurrence lock.
func (m *HoldManager) reactThresholds(ctx context.Context, occurrenceID string) {
	occ, err := m.occurrences.GetByID(ctx, occurrenceID)
	if err != nil {
		m.log.Error("failed to refresh thresholds",
			logger.String("occurrence_id", occurrenceID),
			logger.String("error", err.Error()),
		)
		return
	}

	available, err := m.engine.availableFor(ctx, occ)
	if err != nil {
		m.log.Error("failed to refresh thresholds",
			logger.String("occurrence_id", occurrenceID),
			logger.String("error", err.Error()),
		)
		return
	}

	m.engine.observe(ctx, occ, available)
}

func (m *HoldManager) emitLifecycle(ctx context.Context, kind domain.LifecycleKind, hold *domain.Hold) {
	ev := domain.BookingLifecycleEvent{
		Kind:         kind,
		OccurrenceID: hold.OccurrenceID,
		HoldToken:    hold.Token,
		Quantity:     hold.Quantity,
		At:           m.clock.Now(),
	}
	go m.sink.EmitLifecycle(context.WithoutCancel(ctx), ev)
}
