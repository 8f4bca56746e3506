package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned for unknown, closed or expired pages.
var ErrNotFound = errors.New("page session not found")

// DefaultTTL is how long an untouched page is kept.
const DefaultTTL = 30 * time.Minute

// DefaultMaxPages bounds the store when Deps.MaxPages is unset.
const DefaultMaxPages = 10000

// Store tracks live pages.
type Store struct {
	mu    sync.Mutex
	pages map[string]*Page
	deps  Deps
	ttl   time.Duration
	limit int
	now   func() time.Time
	log   zerolog.Logger

	running atomic.Bool
}

// NewStore returns an empty store. A non-positive ttl means DefaultTTL.
func NewStore(deps Deps, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	limit := deps.MaxPages
	if limit <= 0 {
		limit = DefaultMaxPages
	}
	return &Store{
		pages: make(map[string]*Page),
		deps:  deps,
		ttl:   ttl,
		limit: limit,
		now:   now,
		log:   deps.Logger.With().Str("component", "session").Logger(),
	}
}

// Create mounts a new page. A full store first unmounts its least recently
// seen page.
func (s *Store) Create() *Page {
	s.mu.Lock()
	var evicted *Page
	if len(s.pages) >= s.limit {
		evicted = s.oldestLocked()
		delete(s.pages, evicted.ID)
	}
	p := newPage(s.deps, s.now())
	s.pages[p.ID] = p
	live := len(s.pages)
	s.mu.Unlock()

	if evicted != nil {
		evicted.close()
		s.log.Warn().Str("page", evicted.ID).Int("max", s.limit).Msg("page store full, evicted idlest page")
	}
	s.log.Debug().Str("page", p.ID).Int("live", live).Msg("page mounted")
	return p
}

func (s *Store) oldestLocked() *Page {
	var oldest *Page
	for _, p := range s.pages {
		if oldest == nil || p.idleSince().Before(oldest.idleSince()) {
			oldest = p
		}
	}
	return oldest
}

// Get returns a live page and marks it as seen.
func (s *Store) Get(id string) (*Page, error) {
	s.mu.Lock()
	p, ok := s.pages[id]
	s.mu.Unlock()
	if !ok || !p.Alive() {
		return nil, ErrNotFound
	}
	p.touch(s.now())
	return p, nil
}

// Close unmounts a page.
func (s *Store) Close(id string) error {
	s.mu.Lock()
	p, ok := s.pages[id]
	delete(s.pages, id)
	s.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	p.close()
	s.log.Debug().Str("page", id).Msg("page unmounted")
	return nil
}

// Len returns the number of live pages.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}

// Running reports whether the janitor loop is active.
func (s *Store) Running() bool { return s.running.Load() }

// Sweep unmounts pages idle longer than the ttl and returns how many it closed.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)
	var expired []*Page

	s.mu.Lock()
	for id, p := range s.pages {
		if p.idleSince().Before(cutoff) {
			expired = append(expired, p)
			delete(s.pages, id)
		}
	}
	s.mu.Unlock()

	for _, p := range expired {
		p.close()
	}
	if len(expired) > 0 {
		s.log.Info().Int("expired", len(expired)).Msg("swept idle pages")
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done, then unmounts every page.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	s.running.Store(true)
	defer s.running.Store(false)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return nil
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store) closeAll() {
	s.mu.Lock()
	pages := s.pages
	s.pages = make(map[string]*Page)
	s.mu.Unlock()
	for _, p := range pages {
		p.close()
	}
}
