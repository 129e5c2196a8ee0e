package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mybudget/internal/cache"
	"mybudget/internal/log"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists key-value pairs in a single sqlite table, fronted by
// an in-memory LRU so repeated loads of the same key skip the database.
type SQLiteStore struct {
	db     *sql.DB
	read   *cache.LRUCache[[]byte]
	logger *log.Logger
}

// SQLiteOptions tune the read cache; zero values pick sane defaults.
type SQLiteOptions struct {
	CacheSize int
	CacheTTL  time.Duration
}

func NewSQLiteStore(dbPath string, opts SQLiteOptions, logger *log.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	if opts.CacheSize <= 0 {
		opts.CacheSize = 64
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if logger == nil {
		logger = log.Default(log.ComponentStore)
	}

	return &SQLiteStore{
		db:     db,
		read:   cache.NewLRUCache[[]byte](opts.CacheSize, opts.CacheTTL),
		logger: logger,
	}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save serializes v and upserts it under the namespaced key. A marshalling
// or database failure is logged and reported as false, never returned.
func (s *SQLiteStore) Save(ctx context.Context, key string, v any) bool {
	full := Namespace + key

	data, err := json.Marshal(v)
	if err != nil {
		s.logger.ErrorContext(ctx, "save failed to serialize value",
			log.FieldKey, key, log.FieldOperation, log.OpSave, log.FieldError, err)
		return false
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		full, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		s.read.Delete(full)
		s.logger.ErrorContext(ctx, "save failed to write value",
			log.FieldKey, key, log.FieldOperation, log.OpSave, log.FieldError, err)
		return false
	}

	s.read.Set(full, data)
	s.logger.InfoContext(ctx, "saved value",
		log.FieldKey, key, log.FieldOperation, log.OpSave)
	return true
}

// Load reads the namespaced key into dest. Missing keys and corrupt values
// both report false with dest untouched.
func (s *SQLiteStore) Load(ctx context.Context, key string, dest any) bool {
	full := Namespace + key

	data, ok := s.read.Get(full)
	if !ok {
		var value string
		err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, full).Scan(&value)
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.DebugContext(ctx, "load found no value",
				log.FieldKey, key, log.FieldOperation, log.OpLoad)
			return false
		}
		if err != nil {
			s.logger.ErrorContext(ctx, "load failed to read value",
				log.FieldKey, key, log.FieldOperation, log.OpLoad, log.FieldError, err)
			return false
		}
		data = []byte(value)
		s.read.Set(full, data)
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

// Delete removes the namespaced key. Deleting an absent key succeeds.
func (s *SQLiteStore) Delete(ctx context.Context, key string) bool {
	full := Namespace + key
	s.read.Delete(full)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, full); err != nil {
		s.logger.ErrorContext(ctx, "delete failed",
			log.FieldKey, key, log.FieldError, err)
		return false
	}
	s.logger.InfoContext(ctx, "deleted value", log.FieldKey, key)
	return true
}

// CleanExpired drops expired read-cache entries; the persisted rows stay.
func (s *SQLiteStore) CleanExpired() int {
	return s.read.CleanExpired()
}
