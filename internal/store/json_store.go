package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"shadoblade/internal/gamemap"
)

// JSONStore keeps levels in a single JSON file, rewritten on every save.
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	// runs maps run -> depth -> encoded level.
	runs map[string]map[string]json.RawMessage
}

// NewJSONStore opens the store at filePath, creating the file if needed.
func NewJSONStore(filePath string) (*JSONStore, error) {
	s := &JSONStore{filePath: filePath, runs: make(map[string]map[string]json.RawMessage)}
	if _, err := os.Stat(filePath); err == nil {
		if err := s.loadFromFile(); err != nil {
			return nil, fmt.Errorf("load JSON store: %w", err)
		}
		return s, nil
	}
	if err := s.saveToFile(); err != nil {
		return nil, fmt.Errorf("create JSON store file: %w", err)
	}
	return s, nil
}

func (s *JSONStore) loadFromFile() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &s.runs)
}

func (s *JSONStore) saveToFile() error {
	s.mutex.RLock()
	data, err := json.MarshalIndent(s.runs, "", "  ")
	s.mutex.RUnlock()
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0o644)
}

func (s *JSONStore) SaveLevel(run string, m *gamemap.Map) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode level %d: %w", m.Depth, err)
	}
	s.mutex.Lock()
	if s.runs[run] == nil {
		s.runs[run] = make(map[string]json.RawMessage)
	}
	s.runs[run][strconv.Itoa(m.Depth)] = data
	s.mutex.Unlock()
	return s.saveToFile()
}

func (s *JSONStore) LoadLevel(run string, depth int) (*gamemap.Map, error) {
	s.mutex.RLock()
	data, ok := s.runs[run][strconv.Itoa(depth)]
	s.mutex.RUnlock()
	if !ok {
		return nil, ErrLevelNotFound
	}
	m := &gamemap.Map{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("decode level %d: %w", depth, err)
	}
	return m, nil
}

func (s *JSONStore) DeleteRun(run string) error {
	s.mutex.Lock()
	delete(s.runs, run)
	s.mutex.Unlock()
	return s.saveToFile()
}

func (s *JSONStore) Close() error { return nil }
