// Package backend selects and constructs the local store implementation.
package backend

import (
	"fmt"

	"mybudget/internal/config"
	"mybudget/internal/log"
	"mybudget/internal/store"
	"mybudget/internal/store/memory"
)

// Type identifies a local store backend.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Open builds the store named by the configuration.
func Open(cfg *config.Config, logger *log.Logger) (store.Store, error) {
	t := Type(cfg.StoreBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid store backend: %s", cfg.StoreBackend)
	}

	switch t {
	case MemoryBackend:
		logger.Info("initialized memory store")
		return memory.New(logger.WithComponent(log.ComponentStore)), nil
	default:
		s, err := store.NewSQLiteStore(cfg.SQLiteDBPath, store.SQLiteOptions{
			CacheSize: cfg.CacheSize,
			CacheTTL:  cfg.CacheTTL,
		}, logger.WithComponent(log.ComponentStore))
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Info("initialized sqlite store", "db_path", cfg.SQLiteDBPath)
		return s, nil
	}
}
