package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"mybudget/internal/core"
)

type loginCmd struct {
	app      *App
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in and cache the session" }
func (*loginCmd) Usage() string {
	return `login -email <email> -password <password>

  Exchanges credentials for a token and caches the session locally, so later
  commands run authenticated.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Account email (required)")
	f.StringVar(&c.password, "password", "", "Account password (required)")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	strs := c.app.strings(ctx)

	if c.email == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, strs.FillAllFields)
		return subcommands.ExitUsageError
	}
	if err := core.ValidateEmail(c.email); err != nil {
		fmt.Fprintln(os.Stderr, strs.InvalidEmail)
		return subcommands.ExitUsageError
	}

	res, err := c.app.Client.Login(ctx, c.email, c.password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", strs.Error, err)
		return subcommands.ExitFailure
	}

	user := core.User{Email: c.email, Token: res.Token}
	if res.User != nil {
		user.Username = res.User.Username
		if res.User.Email != "" {
			user.Email = res.User.Email
		}
	}
	c.app.Session.Save(ctx, user)
	c.app.Client.SetToken(res.Token)

	fmt.Printf("%s %s\n", strs.Greeting, user.Username)
	return subcommands.ExitSuccess
}

type registerCmd struct {
	app      *App
	email    string
	username string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create an account" }
func (*registerCmd) Usage() string {
	return `register -email <email> -username <name> -password <password>

  Creates an account on the remote API.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Account email (required)")
	f.StringVar(&c.username, "username", "", "Display name (required)")
	f.StringVar(&c.password, "password", "", "Account password (required)")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	strs := c.app.strings(ctx)

	if c.email == "" || c.username == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, strs.FillAllFields)
		return subcommands.ExitUsageError
	}
	if err := core.ValidateEmail(c.email); err != nil {
		fmt.Fprintln(os.Stderr, strs.InvalidEmail)
		return subcommands.ExitUsageError
	}

	if err := c.app.Client.Register(ctx, c.email, c.username, c.password); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", strs.Error, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type forgotPasswordCmd struct {
	app   *App
	email string
}

func (*forgotPasswordCmd) Name() string     { return "forgot-password" }
func (*forgotPasswordCmd) Synopsis() string { return "request a password reset email" }
func (*forgotPasswordCmd) Usage() string {
	return `forgot-password -email <email>

  Asks the remote API to send a password reset email.
`
}

func (c *forgotPasswordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Account email (required)")
}

func (c *forgotPasswordCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	strs := c.app.strings(ctx)

	if err := core.ValidateEmail(c.email); err != nil {
		fmt.Fprintln(os.Stderr, strs.InvalidEmail)
		return subcommands.ExitUsageError
	}
	if err := c.app.Client.ForgotPassword(ctx, c.email); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", strs.Error, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type logoutCmd struct {
	app *App
}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "drop the cached session" }
func (*logoutCmd) Usage() string {
	return `logout

  Removes the cached session. Other cached data stays in place.
`
}

func (c *logoutCmd) SetFlags(f *flag.FlagSet) {}

func (c *logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c.app.Session.Clear(ctx)
	c.app.Client.SetToken("")
	return subcommands.ExitSuccess
}
