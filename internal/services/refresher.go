// Package services coordinates the caches and the remote API. The refresher
// implements the screen-level refresh cycle: fetch everything the home screen
// needs, replace the caches on success, and fall back to whatever the caches
// already hold on failure.
package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"mybudget/internal/api"
	"mybudget/internal/core"
	"mybudget/internal/goals"
	"mybudget/internal/i18n"
	"mybudget/internal/ledger"
	"mybudget/internal/log"
	"mybudget/internal/prefs"
)

// State is the phase of the current refresh cycle.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateSuccess
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// ErrSuperseded is returned when a refresh was cancelled or overtaken by a
// newer one. A superseded refresh never touches the caches.
var ErrSuperseded = errors.New("refresh superseded")

// Remote is the slice of the API client the refresher depends on.
type Remote interface {
	FetchTransactions(ctx context.Context) ([]core.Transaction, error)
	FetchGoals(ctx context.Context) ([]core.Goal, error)
	FetchProfile(ctx context.Context) (*api.Profile, error)
}

// Snapshot is everything a screen renders after a refresh: the transaction
// list, goals, display preferences and the derived stats. FromCache marks a
// failed refresh that fell back to previously loaded data; Notice then holds
// the localized error message to show alongside it.
type Snapshot struct {
	Transactions []core.Transaction
	Goals        []core.Goal
	Language     core.Language
	Currency     core.Currency
	Stats        core.Stats
	FromCache    bool
	Notice       string
}

// Refresher runs refresh cycles against the remote API. Each call to Refresh
// cancels any cycle still in flight; only the newest cycle is allowed to
// write the caches.
type Refresher struct {
	remote Remote
	ledger *ledger.Ledger
	goals  *goals.Goals
	prefs  *prefs.Prefs
	logger *log.Logger

	mu     sync.Mutex
	state  State
	gen    uint64
	cancel context.CancelFunc
}

func NewRefresher(remote Remote, l *ledger.Ledger, g *goals.Goals, p *prefs.Prefs, logger *log.Logger) *Refresher {
	if logger == nil {
		logger = log.Default(log.ComponentRefresh)
	}
	return &Refresher{
		remote: remote,
		ledger: l,
		goals:  g,
		prefs:  p,
		logger: logger,
	}
}

// State returns the phase of the most recent refresh cycle.
func (r *Refresher) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Cancel aborts any refresh in flight. Called when the screen that started
// the refresh goes away; the aborted cycle leaves the caches untouched.
func (r *Refresher) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	if r.state == StateFetching {
		r.state = StateIdle
	}
}

// Refresh fetches transactions, goals and the profile concurrently. On
// success it overwrites the caches and returns a fresh snapshot. On failure
// it returns a snapshot assembled from the caches with FromCache set; the
// caches are never cleared. A refresh overtaken by a newer call returns
// ErrSuperseded.
func (r *Refresher) Refresh(ctx context.Context) (*Snapshot, error) {
	r.mu.Lock()
	r.gen++
	myGen := r.gen
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.state = StateFetching
	r.mu.Unlock()

	defer cancel()

	r.logger.InfoContext(ctx, "refresh started", log.FieldOperation, log.OpRefresh)

	var (
		txns       []core.Transaction
		goalList   []core.Goal
		profile    *api.Profile
		profileErr error
	)

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		txns, err = r.remote.FetchTransactions(grpCtx)
		return err
	})
	grp.Go(func() error {
		var err error
		goalList, err = r.remote.FetchGoals(grpCtx)
		return err
	})
	grp.Go(func() error {
		// Preferences are cosmetic; a failed profile fetch does not fail
		// the refresh, it just leaves the cached preferences in place.
		profile, profileErr = r.remote.FetchProfile(grpCtx)
		return nil
	})
	fetchErr := grp.Wait()

	r.mu.Lock()
	defer r.mu.Unlock()
	if myGen != r.gen {
		r.logger.Info("refresh superseded", log.FieldOperation, log.OpRefresh)
		return nil, ErrSuperseded
	}

	if fetchErr != nil {
		r.state = StateFailure
		r.logger.WarnContext(ctx, "refresh failed, serving cached data",
			log.FieldOperation, log.OpRefresh, log.FieldError, fetchErr)
		return r.cachedSnapshot(ctx), nil
	}

	r.ledger.ReplaceWithRemote(ctx, txns)
	r.goals.ReplaceWithRemote(ctx, goalList)
	if profileErr != nil {
		r.logger.WarnContext(ctx, "profile fetch failed, keeping cached preferences",
			log.FieldOperation, log.OpRefresh, log.FieldError, profileErr)
	} else if profile != nil {
		if profile.Language != "" {
			r.prefs.SaveLanguage(ctx, profile.Language)
		}
		if profile.Currency != nil && profile.Currency.Code != "" {
			r.prefs.SaveCurrency(ctx, *profile.Currency)
		}
	}

	r.state = StateSuccess
	r.logger.InfoContext(ctx, "refresh completed",
		log.FieldOperation, log.OpRefresh, log.FieldCount, len(txns))

	lang := r.prefs.LoadLanguage(ctx)
	return &Snapshot{
		Transactions: core.SortByDateDesc(txns),
		Goals:        goalList,
		Language:     lang,
		Currency:     r.prefs.LoadCurrency(ctx),
		Stats:        core.ComputeStats(txns, time.Now()),
	}, nil
}

// cachedSnapshot builds a snapshot entirely from local caches. Used when the
// remote fetch fails; the Notice carries the localized load error.
func (r *Refresher) cachedSnapshot(ctx context.Context) *Snapshot {
	txns := r.ledger.List(ctx)
	lang := r.prefs.LoadLanguage(ctx)
	return &Snapshot{
		Transactions: core.SortByDateDesc(txns),
		Goals:        r.goals.List(ctx),
		Language:     lang,
		Currency:     r.prefs.LoadCurrency(ctx),
		Stats:        core.ComputeStats(txns, time.Now()),
		FromCache:    true,
		Notice:       i18n.For(lang).LoadError,
	}
}
