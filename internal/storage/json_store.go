package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSONStore keeps the whole document in a single JSON file, written
// atomically via a temp file and rename.
type JSONStore struct {
	filePath string
	mu       sync.Mutex
}

func NewJSONStore(filePath string) (*JSONStore, error) {
	if filePath == "" {
		return nil, errors.New("json store: path is required")
	}
	return &JSONStore{filePath: filePath}, nil
}

func (s *JSONStore) Load() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("json store read: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("json store decode: %w", err)
	}
	snap.Normalize()
	return &snap, nil
}

func (s *JSONStore) Save(snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o755); err != nil {
		return fmt.Errorf("json store mkdir: %w", err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("json store encode: %w", err)
	}

	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("json store write: %w", err)
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		return fmt.Errorf("json store rename: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error { return nil }
