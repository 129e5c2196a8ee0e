package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"mybudget/internal/cli"
	"mybudget/internal/commands"
	"mybudget/internal/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	s := cli.OpenStore(cfg, logger)
	defer func() {
		if err := s.Close(); err != nil {
			logger.Error("failed to close local store", log.FieldError, err)
		}
	}()

	app := commands.NewApp(cfg, s, logger)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(subcommands.FlagsCommand(), "")
	commander.Register(subcommands.CommandsCommand(), "")
	for _, c := range app.Commands() {
		commander.Register(c, "")
	}

	flag.Parse()
	return int(commander.Execute(context.Background()))
}
