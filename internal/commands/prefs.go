package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"mybudget/internal/core"
)

type prefsCmd struct {
	app      *App
	language string
	currency string
}

func (*prefsCmd) Name() string     { return "prefs" }
func (*prefsCmd) Synopsis() string { return "show or change display preferences" }
func (*prefsCmd) Usage() string {
	return `prefs [-language en|fr|ar] [-currency TND|USD|EUR]

  Without flags, prints the cached language and currency. With flags, writes
  the new preference to the cache.
`
}

func (c *prefsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.language, "language", "", "Display language: en, fr or ar")
	f.StringVar(&c.currency, "currency", "", "Display currency: TND, USD or EUR")
}

func (c *prefsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.language == "" && c.currency == "" {
		lang := c.app.Prefs.LoadLanguage(ctx)
		cur := c.app.Prefs.LoadCurrency(ctx)
		fmt.Printf("language: %s\ncurrency: %s (%s)\n", lang, cur.Code, cur.Symbol)
		return subcommands.ExitSuccess
	}

	if c.language != "" {
		lang := core.Language(c.language)
		if !lang.Valid() {
			fmt.Fprintf(os.Stderr, "unknown language %q\n", c.language)
			return subcommands.ExitUsageError
		}
		c.app.Prefs.SaveLanguage(ctx, lang)
	}

	if c.currency != "" {
		var found *core.Currency
		for _, known := range core.KnownCurrencies {
			if known.Code == c.currency {
				found = &known
				break
			}
		}
		if found == nil {
			fmt.Fprintf(os.Stderr, "unknown currency %q\n", c.currency)
			return subcommands.ExitUsageError
		}
		c.app.Prefs.SaveCurrency(ctx, *found)
	}
	return subcommands.ExitSuccess
}
