package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	EngineJSON   = "json"
	EngineSQLite = "sqlite"
)

// NewByEngine opens a store of the requested engine at path. An empty
// engine selects JSON.
func NewByEngine(engine string, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineJSON:
		return NewJSONStore(path)
	case EngineSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, errors.New("unsupported store engine: " + engine)
	}
}

// DefaultPath returns the default document location for an engine.
func DefaultPath(engine string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	if strings.EqualFold(strings.TrimSpace(engine), EngineSQLite) {
		return filepath.Join(homeDir, ".beandex.db"), nil
	}
	return filepath.Join(homeDir, ".beandex.json"), nil
}
