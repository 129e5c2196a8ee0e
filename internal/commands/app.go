// Package commands implements the mybudget subcommands. Each command is a
// thin screen over the caches and the remote API: it refreshes what it can,
// renders from the cache when the network is down, and prints in whichever
// language the preferences say.
package commands

import (
	"context"

	"github.com/google/subcommands"

	"mybudget/internal/api"
	"mybudget/internal/config"
	"mybudget/internal/goals"
	"mybudget/internal/i18n"
	"mybudget/internal/ledger"
	"mybudget/internal/log"
	"mybudget/internal/prefs"
	"mybudget/internal/services"
	"mybudget/internal/session"
	"mybudget/internal/store"
)

// App carries the wired services every command needs.
type App struct {
	Config    *config.Config
	Store     store.Store
	Logger    *log.Logger
	Client    *api.Client
	Session   *session.Session
	Prefs     *prefs.Prefs
	Ledger    *ledger.Ledger
	Goals     *goals.Goals
	Refresher *services.Refresher
}

// NewApp wires the full service graph on top of an open store. If a session
// is cached its token is installed on the client right away, so commands
// start out authenticated.
func NewApp(cfg *config.Config, s store.Store, logger *log.Logger) *App {
	client := api.NewClient(cfg.APIBaseURL, api.Options{Timeout: cfg.HTTPTimeout}, logger.WithComponent(log.ComponentAPI))

	a := &App{
		Config:  cfg,
		Store:   s,
		Logger:  logger,
		Client:  client,
		Session: session.New(s, logger.WithComponent(log.ComponentSession)),
		Prefs:   prefs.New(s, logger.WithComponent(log.ComponentPrefs)),
		Ledger:  ledger.New(s, logger.WithComponent(log.ComponentLedger)),
		Goals:   goals.New(s, logger.WithComponent(log.ComponentGoals)),
	}
	a.Refresher = services.NewRefresher(client, a.Ledger, a.Goals, a.Prefs, logger.WithComponent(log.ComponentRefresh))

	if token := a.Session.Token(context.Background()); token != "" {
		client.SetToken(token)
	}
	return a
}

// Commands returns every subcommand, ready to register.
func (a *App) Commands() []subcommands.Command {
	return []subcommands.Command{
		&summaryCmd{app: a},
		&transactionsCmd{app: a},
		&addCmd{app: a},
		&goalsCmd{app: a},
		&addGoalCmd{app: a},
		&loginCmd{app: a},
		&registerCmd{app: a},
		&forgotPasswordCmd{app: a},
		&logoutCmd{app: a},
		&prefsCmd{app: a},
	}
}

// strings returns the translation table for the cached language.
func (a *App) strings(ctx context.Context) i18n.Table {
	return i18n.For(a.Prefs.LoadLanguage(ctx))
}
