package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"mybudget/internal/core"
)

type goalsCmd struct {
	app   *App
	local bool
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list financial goals with their progress" }
func (*goalsCmd) Usage() string {
	return `goals [-local]

  Lists financial goals with saved and target amounts and a progress bar.
  -local reads from the cache without refreshing.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.local, "local", false, "Read from the local cache without refreshing")
}

func (c *goalsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	strs := c.app.strings(ctx)
	cur := c.app.Prefs.LoadCurrency(ctx).Symbol

	var list []core.Goal
	if c.local {
		list = c.app.Goals.List(ctx)
	} else {
		snap, err := c.app.Refresher.Refresh(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "refresh: %v\n", err)
			return subcommands.ExitFailure
		}
		if snap.FromCache {
			fmt.Fprintf(os.Stderr, "%s\n", snap.Notice)
		}
		list = snap.Goals
	}

	fmt.Println(strs.FinancialGoals)
	for _, g := range list {
		status := fmt.Sprintf("%3.0f%%", g.Progress()*100)
		if g.Complete() {
			status = "done"
		}
		fmt.Printf("  %-20s %s / %s %s  [%s]\n",
			g.Name, g.Current.Format(), g.Target.Format(), cur, status)
	}
	return subcommands.ExitSuccess
}

type addGoalCmd struct {
	app     *App
	name    string
	target  string
	current string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "create a financial goal" }
func (*addGoalCmd) Usage() string {
	return `add-goal -name <name> -target <amount> [-current <amount>]

  Creates a financial goal on the remote API and refreshes the goal cache.
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Goal name (required)")
	f.StringVar(&c.target, "target", "", "Target amount (required)")
	f.StringVar(&c.current, "current", "0", "Amount already saved")
}

func (c *addGoalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	strs := c.app.strings(ctx)

	if c.name == "" || c.target == "" {
		fmt.Fprintln(os.Stderr, strs.FillAllFields)
		return subcommands.ExitUsageError
	}
	target, err := core.ParseAmount(c.target)
	if err != nil {
		fmt.Fprintln(os.Stderr, strs.InvalidAmount)
		return subcommands.ExitUsageError
	}
	current, err := core.ParseAmount(c.current)
	if err != nil {
		fmt.Fprintln(os.Stderr, strs.InvalidAmount)
		return subcommands.ExitUsageError
	}

	goal := core.Goal{Name: c.name, Target: target, Current: current}
	if err := goal.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", strs.Error, err)
		return subcommands.ExitUsageError
	}

	saved, err := c.app.Client.SaveGoal(ctx, goal)
	if err != nil {
		fmt.Fprintln(os.Stderr, strs.FailedToSaveGoal)
		return subcommands.ExitFailure
	}

	// Adopt the server's list so the cache carries the assigned ID.
	if remote, err := c.app.Client.FetchGoals(ctx); err == nil {
		c.app.Goals.ReplaceWithRemote(ctx, remote)
	}

	fmt.Printf("%s: %s\n", strs.SaveGoal, saved.Name)
	return subcommands.ExitSuccess
}
