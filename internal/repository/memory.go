package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/blinktactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/entity"
)

type memoryEntry struct {
	state     entity.GameState
	expiresAt time.Time
}

type memorySession struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memoryEntry
}

// NewMemorySessionRepository keeps snapshots in process. Expired entries are dropped
// lazily on access. A zero ttl never expires.
func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return newMemorySessionRepository(ttl, time.Now)
}

func newMemorySessionRepository(ttl time.Duration, now func() time.Time) *memorySession {
	return &memorySession{
		ttl:      ttl,
		now:      now,
		sessions: make(map[string]memoryEntry),
	}
}

func (that *memorySession) Save(_ context.Context, id string, state entity.GameState) error {
	entry := memoryEntry{state: state.Clone()}
	if that.ttl > 0 {
		entry.expiresAt = that.now().Add(that.ttl)
	}

	that.mu.Lock()
	that.sessions[id] = entry
	that.mu.Unlock()

	return nil
}

func (that *memorySession) GetByID(_ context.Context, id string) (entity.GameState, error) {
	that.mu.RLock()
	entry, ok := that.sessions[id]
	that.mu.RUnlock()

	if ok && that.expired(entry) {
		that.mu.Lock()
		if current, found := that.sessions[id]; found && that.expired(current) {
			delete(that.sessions, id)
		}
		that.mu.Unlock()

		ok = false
	}

	if !ok {
		return entity.GameState{}, fmt.Errorf("session %s: %w", id, apperror.ErrNotFound)
	}

	return entry.state.Clone(), nil
}

func (that *memorySession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.sessions[id]
	if !ok {
		return fmt.Errorf("session %s: %w", id, apperror.ErrNotFound)
	}

	delete(that.sessions, id)

	if that.expired(entry) {
		return fmt.Errorf("session %s: %w", id, apperror.ErrNotFound)
	}

	return nil
}

func (that *memorySession) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt)
}
