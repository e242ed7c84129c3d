package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/niksmo/slotkeeper/internal/domain"
)

// In-memory stores for the concurrency tests. Mock expectations cannot
// express interleavings, so these fakes reproduce the guarded updates
// the SQL layer performs.

type memOccurrenceStore struct {
	mu   sync.Mutex
	occs map[string]*domain.Occurrence
}

func newMemOccurrenceStore(occs ...*domain.Occurrence) *memOccurrenceStore {
	s := &memOccurrenceStore{occs: make(map[string]*domain.Occurrence)}
	for _, o := range occs {
		cp := *o
		s.occs[o.ID] = &cp
	}
	return s
}

func (s *memOccurrenceStore) Create(_ context.Context, o *domain.Occurrence) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *o
	s.occs[o.ID] = &cp
	return nil
}

func (s *memOccurrenceStore) GetByID(_ context.Context, id string) (*domain.Occurrence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.occs[id]
	if !ok {
		return nil, domain.ErrOccurrenceNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *memOccurrenceStore) ListByProduct(_ context.Context, productID string, from, to time.Time) ([]*domain.Occurrence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []*domain.Occurrence
	for _, o := range s.occs {
		if o.ProductID != productID {
			continue
		}
		if o.StartAt.Before(from) || o.StartAt.After(to) {
			continue
		}
		cp := *o
		res = append(res, &cp)
	}
	return res, nil
}

func (s *memOccurrenceStore) IncrementBooked(_ context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.occs[id]
	if !ok {
		return domain.ErrOccurrenceNotFound
	}
	next := o.Booked + delta
	if next < 0 || next > o.Capacity {
		return domain.ErrInsufficientCapacity
	}
	o.Booked = next
	return nil
}

func (s *memOccurrenceStore) UpdateStatus(_ context.Context, id string, status domain.OccurrenceStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.occs[id]
	if !ok {
		return domain.ErrOccurrenceNotFound
	}
	o.Status = status
	return nil
}

type memHoldStore struct {
	mu    sync.Mutex
	holds map[string]*domain.Hold
}

func newMemHoldStore() *memHoldStore {
	return &memHoldStore{holds: make(map[string]*domain.Hold)}
}

func (s *memHoldStore) Create(_ context.Context, h *domain.Hold) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.holds[h.Token]; ok {
		return fmt.Errorf("duplicate hold token %s", h.Token)
	}
	cp := *h
	s.holds[h.Token] = &cp
	return nil
}

func (s *memHoldStore) Get(_ context.Context, token string) (*domain.Hold, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.holds[token]
	if !ok {
		return nil, domain.ErrHoldNotFound
	}
	cp := *h
	return &cp, nil
}

func (s *memHoldStore) UpdateState(_ context.Context, token string, from, to domain.HoldState) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.holds[token]
	if !ok || h.State != from {
		return false, nil
	}
	h.State = to
	return true, nil
}

func (s *memHoldStore) UpdateExpiry(_ context.Context, token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.holds[token]
	if !ok || h.State != domain.HoldStateActive {
		return domain.ErrHoldNotActive
	}
	h.ExpiresAt = expiresAt
	return nil
}

func (s *memHoldStore) SumActive(_ context.Context, occurrenceID string, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := 0
	for _, h := range s.holds {
		if h.OccurrenceID == occurrenceID && h.State == domain.HoldStateActive && h.ExpiresAt.After(now) {
			sum += h.Quantity
		}
	}
	return sum, nil
}

func (s *memHoldStore) ListActiveExpiring(_ context.Context, before time.Time) ([]*domain.Hold, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []*domain.Hold
	for _, h := range s.holds {
		if h.State == domain.HoldStateActive && h.ExpiresAt.Before(before) {
			cp := *h
			res = append(res, &cp)
		}
	}
	return res, nil
}

// captureSink records emitted events so tests can wait for the
// fire-and-forget goroutines.
type captureSink struct {
	mu         sync.Mutex
	thresholds []domain.CapacityThresholdEvent
	lifecycles []domain.BookingLifecycleEvent
}

func (s *captureSink) EmitThreshold(_ context.Context, e domain.CapacityThresholdEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.thresholds = append(s.thresholds, e)
}

func (s *captureSink) EmitLifecycle(_ context.Context, e domain.BookingLifecycleEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lifecycles = append(s.lifecycles, e)
}

func (s *captureSink) thresholdKinds() []domain.ThresholdKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	kinds := make([]domain.ThresholdKind, 0, len(s.thresholds))
	for _, e := range s.thresholds {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func (s *captureSink) lifecycleKinds() []domain.LifecycleKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	kinds := make([]domain.LifecycleKind, 0, len(s.lifecycles))
	for _, e := range s.lifecycles {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// failingBookingStore rejects every save, for the compensation path.
type failingBookingStore struct{}

func (failingBookingStore) Save(context.Context, *domain.Booking) error {
	return errors.New("connection refused")
}

// memBookingStore keeps saved bookings for inspection.
type memBookingStore struct {
	mu    sync.Mutex
	saved []*domain.Booking
}

func (s *memBookingStore) Save(_ context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *b
	s.saved = append(s.saved, &cp)
	return nil
}

func (s *memBookingStore) last() *domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saved) == 0 {
		return nil
	}
	return s.saved[len(s.saved)-1]
}

type memClosureStore struct {
	mu       sync.Mutex
	closures []*domain.Closure
}

func (s *memClosureStore) List(_ context.Context, productID string, from, to time.Time) ([]*domain.Closure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []*domain.Closure
	for _, c := range s.closures {
		if !c.AppliesTo(productID) {
			continue
		}
		if c.EndDate.Before(from) || c.StartDate.After(to) {
			continue
		}
		cp := *c
		res = append(res, &cp)
	}
	return res, nil
}

func (s *memClosureStore) Create(_ context.Context, c *domain.Closure) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.closures = append(s.closures, &cp)
	return nil
}

func (s *memClosureStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.closures {
		if c.ID == id {
			s.closures = append(s.closures[:i], s.closures[i+1:]...)
			return nil
		}
	}
	return domain.ErrClosureNotFound
}
