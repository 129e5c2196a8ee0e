// Package session caches the signed-in user on the device.
//
// The record is stored verbatim, credentials included, because that is the
// contract the rest of the app was built against. Keeping the whole concern
// behind this one narrow type means a future hardening pass (hashing, a
// secure keystore) only has to touch this file.
package session

import (
	"context"

	"mybudget/internal/core"
	"mybudget/internal/log"
	"mybudget/internal/store"
)

type Session struct {
	store  store.Store
	logger *log.Logger
}

func New(s store.Store, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default(log.ComponentSession)
	}
	return &Session{store: s, logger: logger}
}

// Save persists the user record exactly as given.
func (s *Session) Save(ctx context.Context, user core.User) bool {
	ok := s.store.Save(ctx, store.KeyUser, user)
	s.logger.InfoContext(ctx, "saved user",
		log.FieldEmail, user.Email, log.FieldSuccess, ok)
	return ok
}

// Load returns the cached user, or (nil, false) when none is stored.
func (s *Session) Load(ctx context.Context) (*core.User, bool) {
	var user core.User
	if !s.store.Load(ctx, store.KeyUser, &user) {
		return nil, false
	}
	return &user, true
}

// Clear removes the cached user (logout).
func (s *Session) Clear(ctx context.Context) bool {
	return s.store.Delete(ctx, store.KeyUser)
}

// Token returns the bearer token of the cached user, or "" for anonymous
// flows.
func (s *Session) Token(ctx context.Context) string {
	user, ok := s.Load(ctx)
	if !ok {
		return ""
	}
	return user.Token
}
