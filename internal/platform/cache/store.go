package cache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/scout-schedule/internal/platform/resilience"
)

var ErrNilLoader = errors.New("cache: loader is required")

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is an in-process memo keyed by string. A zero ttl keeps entries for
// the lifetime of the process.
type Store[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	// gens counts deletions per key; a load only stores its result when the
	// generation it started under is still current.
	gens    map[string]uint64
	ttl     time.Duration
	now     func() time.Time
	flight  resilience.SingleFlight
}

func NewStore[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
		gens:    make(map[string]uint64),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return zero, false
	}
	if s.ttl > 0 && !e.expiresAt.After(s.now()) {
		s.mu.Lock()
		if cur, still := s.entries[key]; still && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return zero, false
	}

	return e.value, true
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = entry[V]{value: value, expiresAt: s.expiry()}
	s.mu.Unlock()
}

func (s *Store[V]) expiry() time.Time {
	if s.ttl > 0 {
		return s.now().Add(s.ttl)
	}
	return time.Time{}
}

func (s *Store[V]) generation(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	gen, ok := s.gens[key]
	if !ok {
		s.gens[key] = 0
	}
	return gen
}

// setIfCurrent stores value unless key was deleted after gen was taken.
func (s *Store[V]) setIfCurrent(key string, gen uint64, value V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gens[key] != gen {
		return false
	}
	s.entries[key] = entry[V]{value: value, expiresAt: s.expiry()}
	return true
}

// Delete drops the memoized value and detaches any load still running for key.
// That load still returns to its own callers but no longer writes to the store.
func (s *Store[V]) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	if _, tracked := s.gens[key]; tracked {
		s.gens[key]++
	}
	s.mu.Unlock()
	s.flight.Forget(key)
}

func (s *Store[V]) DeletePrefix(ctx context.Context, prefix string) {
	if prefix == "" {
		return
	}

	// gens also holds keys whose first load is still running.
	var matched []string
	s.mu.RLock()
	for key := range s.gens {
		if strings.HasPrefix(key, prefix) {
			matched = append(matched, key)
		}
	}
	for key := range s.entries {
		if _, tracked := s.gens[key]; !tracked && strings.HasPrefix(key, prefix) {
			matched = append(matched, key)
		}
	}
	s.mu.RUnlock()

	for _, key := range matched {
		s.Delete(ctx, key)
	}
}

func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetOrLoad returns the memoized value for key or runs loader once, sharing
// the result with every concurrent caller for the same key. Loader errors are
// returned and nothing is stored.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	if loader == nil {
		return zero, ErrNilLoader
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	raw, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		gen := s.generation(key)
		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.setIfCurrent(key, gen, loaded)
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}

	value, _ := raw.(V)
	return value, nil
}
