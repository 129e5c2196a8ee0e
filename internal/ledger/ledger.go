// Package ledger manages the locally cached transaction list. The device
// copy is the system of record whenever the network is down; a successful
// remote fetch replaces it wholesale.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mybudget/internal/core"
	"mybudget/internal/log"
	"mybudget/internal/store"
)

type Ledger struct {
	store  store.Store
	logger *log.Logger
}

func New(s store.Store, logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.Default(log.ComponentLedger)
	}
	return &Ledger{store: s, logger: logger}
}

// List returns the cached transactions; an absent or corrupt cache reads as
// an empty list.
func (l *Ledger) List(ctx context.Context) []core.Transaction {
	var txns []core.Transaction
	if !l.store.Load(ctx, store.KeyTransactions, &txns) {
		return []core.Transaction{}
	}
	return txns
}

// AddLocal validates the transaction, fills in an ID and timestamp when they
// are missing, appends it to the cached list and persists the whole list.
// The result is always the previous list plus the new entry at the end.
func (l *Ledger) AddLocal(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.Date.IsZero() {
		tx.Date = core.NewDate(time.Now())
	}
	if err := tx.Validate(); err != nil {
		l.logger.WarnContext(ctx, "rejected invalid transaction",
			log.FieldOperation, log.OpAppend, log.FieldError, err)
		return core.Transaction{}, err
	}

	txns := append(l.List(ctx), tx)
	if !l.store.Save(ctx, store.KeyTransactions, txns) {
		return core.Transaction{}, ErrNotPersisted
	}

	l.logger.InfoContext(ctx, "appended transaction",
		log.FieldTxID, tx.ID, log.FieldOperation, log.OpAppend, log.FieldCount, len(txns))
	return tx, nil
}

// ReplaceWithRemote overwrites the cached list with a freshly fetched one.
// No merge is attempted: local entries that were never uploaded are
// discarded, matching the long-standing refresh behavior.
func (l *Ledger) ReplaceWithRemote(ctx context.Context, txns []core.Transaction) bool {
	if txns == nil {
		txns = []core.Transaction{}
	}
	ok := l.store.Save(ctx, store.KeyTransactions, txns)
	l.logger.InfoContext(ctx, "replaced cached transactions",
		log.FieldOperation, log.OpReplace, log.FieldCount, len(txns), log.FieldSuccess, ok)
	return ok
}

// Stats folds the cached list into the home-screen figures.
func (l *Ledger) Stats(ctx context.Context, now time.Time) core.Stats {
	return core.ComputeStats(l.List(ctx), now)
}

// Recent returns the n newest cached transactions.
func (l *Ledger) Recent(ctx context.Context, n int) []core.Transaction {
	return core.Recent(l.List(ctx), n)
}
