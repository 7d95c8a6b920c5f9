package store

import (
	"sync"

	"shadoblade/internal/gamemap"
)

type levelKey struct {
	run   string
	depth int
}

// MemoryStore keeps levels in process memory. Saved maps are cloned so
// later changes to the live level do not leak into the stored copy.
type MemoryStore struct {
	mu     sync.RWMutex
	levels map[levelKey]*gamemap.Map
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{levels: make(map[levelKey]*gamemap.Map)}
}

func (s *MemoryStore) SaveLevel(run string, m *gamemap.Map) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels[levelKey{run, m.Depth}] = m.Clone()
	return nil
}

func (s *MemoryStore) LoadLevel(run string, depth int) (*gamemap.Map, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.levels[levelKey{run, depth}]
	if !ok {
		return nil, ErrLevelNotFound
	}
	return m.Clone(), nil
}

func (s *MemoryStore) DeleteRun(run string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.levels {
		if k.run == run {
			delete(s.levels, k)
		}
	}
	return nil
}

func (s *MemoryStore) Close() error { return nil }
