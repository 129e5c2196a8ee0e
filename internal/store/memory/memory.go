// Package memory provides an ephemeral Store used in tests and for runs
// that should not touch the filesystem.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"mybudget/internal/log"
	"mybudget/internal/store"
)

type Store struct {
	mu     sync.Mutex
	items  map[string][]byte
	logger *log.Logger
}

func New(logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default(log.ComponentStore)
	}
	return &Store{
		items:  make(map[string][]byte),
		logger: logger,
	}
}

func (s *Store) Save(ctx context.Context, key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.ErrorContext(ctx, "save failed to serialize value",
			log.FieldKey, key, log.FieldOperation, log.OpSave, log.FieldError, err)
		return false
	}

	s.mu.Lock()
	s.items[store.Namespace+key] = data
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "saved value",
		log.FieldKey, key, log.FieldOperation, log.OpSave)
	return true
}

func (s *Store) Load(ctx context.Context, key string, dest any) bool {
	s.mu.Lock()
	data, ok := s.items[store.Namespace+key]
	s.mu.Unlock()

	if !ok {
		s.logger.DebugContext(ctx, "load found no value",
			log.FieldKey, key, log.FieldOperation, log.OpLoad)
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.WarnContext(ctx, "load found corrupt value",
			log.FieldKey, key, log.FieldOperation, log.OpLoad, log.FieldError, err)
		return false
	}

	s.logger.DebugContext(ctx, "loaded value",
		log.FieldKey, key, log.FieldOperation, log.OpLoad)
	return true
}

func (s *Store) Delete(ctx context.Context, key string) bool {
	s.mu.Lock()
	delete(s.items, store.Namespace+key)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "deleted value", log.FieldKey, key)
	return true
}

func (s *Store) Close() error { return nil }

// Seed places a raw value under the namespaced key, bypassing serialization.
// Tests use it to simulate corrupt records.
func (s *Store) Seed(key string, raw []byte) {
	s.mu.Lock()
	s.items[store.Namespace+key] = raw
	s.mu.Unlock()
}
