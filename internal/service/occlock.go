package service

import (
	"context"
	"sync"
	"time"

	"github.com/niksmo/slotkeeper/internal/domain"
)

// occLocks serializes capacity-mutating work per occurrence ID.
// Acquisition is bounded: callers get ErrBusy instead of queueing
// indefinitely behind a contended occurrence.
type occLocks struct {
	mu      sync.Mutex
	entries map[string]*occLockEntry
}

type occLockEntry struct {
	ch   chan struct{}
	refs int
}

func newOccLocks() *occLocks {
	return &occLocks{entries: make(map[string]*occLockEntry)}
}

// acquire blocks until the occurrence lock is held, the wait budget is
// spent, or ctx is done. On success the returned func releases the lock.
func (l *occLocks) acquire(ctx context.Context, id string, wait time.Duration) (func(), error) {
	l.mu.Lock()
	e, ok := l.entries[id]
	if !ok {
		e = &occLockEntry{ch: make(chan struct{}, 1)}
		l.entries[id] = e
	}
	e.refs++
	l.mu.Unlock()

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case e.ch <- struct{}{}:
		return func() {
			<-e.ch
			l.put(id)
		}, nil
	case <-timer.C:
		l.put(id)
		return nil, domain.ErrBusy
	case <-ctx.Done():
		l.put(id)
		return nil, ctx.Err()
	}
}

func (l *occLocks) put(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[id]
	if !ok {
		return
	}
	e.refs--
	if e.refs <= 0 {
		delete(l.entries, id)
	}
}
