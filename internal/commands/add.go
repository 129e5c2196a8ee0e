package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"mybudget/internal/core"
)

type addCmd struct {
	app         *App
	amount      string
	category    string
	txType      string
	description string
	date        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction" }
func (*addCmd) Usage() string {
	return `add -amount <amount> -category <category> [-type income|expense] [-description <text>] [-date <YYYY-MM-DD>]

  Appends a transaction to the local cache and uploads it to the remote API.
  When the API is unreachable the transaction stays in the cache; the next
  successful refresh replaces the cache with the server's list.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Transaction amount (required)")
	f.StringVar(&c.category, "category", "", "Category: food, transport, salary, shopping, bills or other (required)")
	f.StringVar(&c.txType, "type", string(core.Expense), "Transaction type: income or expense")
	f.StringVar(&c.description, "description", "", "Free-form description")
	f.StringVar(&c.date, "date", "", "Transaction date, defaults to today")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	strs := c.app.strings(ctx)

	if c.amount == "" || c.category == "" {
		fmt.Fprintln(os.Stderr, strs.FillAllFields)
		return subcommands.ExitUsageError
	}

	amount, err := core.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, strs.InvalidAmount)
		return subcommands.ExitUsageError
	}

	tx := core.Transaction{
		Amount:      amount,
		Category:    core.Category(c.category),
		Type:        core.TransactionType(c.txType),
		Description: c.description,
	}
	if c.date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", c.date, time.Local)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid date %q, expected YYYY-MM-DD\n", c.date)
			return subcommands.ExitUsageError
		}
		tx.Date = core.NewDate(parsed)
	}

	saved, err := c.app.Ledger.AddLocal(ctx, tx)
	if err != nil {
		if errors.Is(err, core.ErrInvalidCategory) || errors.Is(err, core.ErrInvalidType) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", strs.Error, err)
			return subcommands.ExitUsageError
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", strs.Error, err)
		return subcommands.ExitFailure
	}

	if _, err := c.app.Client.CreateTransaction(ctx, saved); err != nil {
		c.app.Logger.Warn("transaction kept local, upload failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", strs.LoadError)
		return subcommands.ExitSuccess
	}

	fmt.Printf("%s %s\n", saved.Date.Format("2006-01-02"), saved.Amount.Format())
	return subcommands.ExitSuccess
}
