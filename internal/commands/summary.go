package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"mybudget/internal/core"
)

type summaryCmd struct {
	app *App
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show balance, daily spending and recent activity" }
func (*summaryCmd) Usage() string {
	return `summary

  Refreshes from the remote API and prints the balance, income, expenses,
  today's spending and the most recent transactions. When the API is
  unreachable the summary is rendered from the local cache instead.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := c.app.Refresher.Refresh(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "refresh: %v\n", err)
		return subcommands.ExitFailure
	}

	strs := c.app.strings(ctx)
	cur := snap.Currency.Symbol

	if snap.FromCache {
		fmt.Fprintf(os.Stderr, "%s\n", snap.Notice)
	}

	fmt.Printf("%s: %s %s\n", strs.CurrentBalance, snap.Stats.Balance.Format(), cur)
	fmt.Printf("%s: %s %s\n", strs.Income, snap.Stats.Income.Format(), cur)
	fmt.Printf("%s: %s %s\n", strs.Expenses, snap.Stats.Expenses.Format(), cur)
	fmt.Printf("%s: %s %s %s\n", strs.DailyBudget, snap.Stats.DailySpent.Format(), cur, strs.SpentToday)
	fmt.Printf("%s: %s %s\n", strs.MonthlySavings, snap.Stats.MonthlySavings.Format(), cur)

	fmt.Printf("\n%s\n", strs.RecentTransactions)
	recent := core.Recent(snap.Transactions, 5)
	if len(recent) == 0 {
		fmt.Printf("  %s\n", strs.NoTransactions)
		return subcommands.ExitSuccess
	}
	for _, tx := range recent {
		printTransaction(tx, cur, strs)
	}
	return subcommands.ExitSuccess
}
