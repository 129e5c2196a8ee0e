// Package goals caches the savings goals list, mirroring the ledger's role
// for transactions: the cached copy is what the goals screen renders when
// the remote fetch fails.
package goals

import (
	"context"

	"mybudget/internal/core"
	"mybudget/internal/log"
	"mybudget/internal/store"
)

type Goals struct {
	store  store.Store
	logger *log.Logger
}

func New(s store.Store, logger *log.Logger) *Goals {
	if logger == nil {
		logger = log.Default(log.ComponentGoals)
	}
	return &Goals{store: s, logger: logger}
}

// List returns the cached goals; absent or corrupt cache reads as empty.
func (g *Goals) List(ctx context.Context) []core.Goal {
	var out []core.Goal
	if !g.store.Load(ctx, store.KeyGoals, &out) {
		return []core.Goal{}
	}
	return out
}

// ReplaceWithRemote overwrites the cached goals with a fetched list.
func (g *Goals) ReplaceWithRemote(ctx context.Context, list []core.Goal) bool {
	if list == nil {
		list = []core.Goal{}
	}
	ok := g.store.Save(ctx, store.KeyGoals, list)
	g.logger.InfoContext(ctx, "replaced cached goals",
		log.FieldOperation, log.OpReplace, log.FieldCount, len(list), log.FieldSuccess, ok)
	return ok
}
