package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"mybudget/internal/core"
	"mybudget/internal/i18n"
)

type transactionsCmd struct {
	app   *App
	limit int
	local bool
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list transactions, newest first" }
func (*transactionsCmd) Usage() string {
	return `transactions [-n <count>] [-local]

  Lists transactions sorted by date, newest first. By default the list is
  refreshed from the remote API first; -local skips the network and reads
  straight from the cache.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 0, "Show at most this many transactions (0 for all)")
	f.BoolVar(&c.local, "local", false, "Read from the local cache without refreshing")
}

func (c *transactionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	strs := c.app.strings(ctx)
	cur := c.app.Prefs.LoadCurrency(ctx).Symbol

	var txns []core.Transaction
	if c.local {
		txns = core.SortByDateDesc(c.app.Ledger.List(ctx))
	} else {
		snap, err := c.app.Refresher.Refresh(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "refresh: %v\n", err)
			return subcommands.ExitFailure
		}
		if snap.FromCache {
			fmt.Fprintf(os.Stderr, "%s\n", snap.Notice)
		}
		txns = snap.Transactions
	}

	if c.limit > 0 {
		txns = core.Recent(txns, c.limit)
	}
	if len(txns) == 0 {
		fmt.Println(strs.NoTransactions)
		return subcommands.ExitSuccess
	}

	fmt.Println(strs.AllTransactions)
	for _, tx := range txns {
		printTransaction(tx, cur, strs)
	}
	return subcommands.ExitSuccess
}

func printTransaction(tx core.Transaction, cur string, strs i18n.Table) {
	sign := "-"
	if tx.Type == core.Income {
		sign = "+"
	}
	desc := tx.Description
	if desc == "" {
		desc = strs.NoDescription
	}
	fmt.Printf("  %s  %s%s %s  %-10s %s\n",
		tx.Date.Format("2006-01-02"), sign, tx.Amount.Format(), cur,
		strs.Category(tx.Category), desc)
}
