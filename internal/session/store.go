// Package session keeps one view.State per browser, keyed by a cookie value.
// Sessions live in memory and expire after an idle TTL.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"pantry/internal/config"
	"pantry/internal/view"
)

type entry struct {
	state   view.State
	touched time.Time
}

type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	now     func() time.Time
	log     *zap.Logger
}

func NewStore(cfg *config.Config, logger *zap.Logger) *Store {
	return &Store{
		entries: make(map[string]*entry),
		ttl:     cfg.SessionTTL,
		now:     time.Now,
		log:     logger,
	}
}

func (s *Store) NewID() string {
	return uuid.NewString()
}

// Load returns the state for id. ok is false for unknown or expired ids.
func (s *Store) Load(id string) (view.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || s.expired(e) {
		return view.State{}, false
	}
	e.touched = s.now()
	return e.state, true
}

// Save stores state for id. Concurrent requests of one session overwrite each
// other; the last save wins.
func (s *Store) Save(id string, state view.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = &entry{state: state, touched: s.now()}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep drops expired sessions and reports how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.log.Debug("expired sessions removed", zap.Int("count", n))
			}
		}
	}
}

func (s *Store) expired(e *entry) bool {
	return s.ttl > 0 && s.now().Sub(e.touched) > s.ttl
}
