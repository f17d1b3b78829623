package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"sitd/config"
	logs "sitd/internal/infra/log"
	"sitd/internal/infra/persistence/postgres"
)

const usage = `Usage: migrate [flags] <command> [args]

Commands:
  up                   Apply all pending migrations
  up-by-one            Apply the next pending migration
  up-to VERSION        Migrate up to VERSION
  down                 Roll back the latest migration
  down-to VERSION      Roll back down to VERSION
  redo                 Roll back and re-apply the latest migration
  reset                Roll back every migration
  status               Print the status of every migration
  version              Print the current schema version
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, args []string) error {
	var migrator *postgres.Migrator

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewMigrator,
		),
		// The command below is the only schema change this process may make.
		fx.Decorate(func(cfg *config.Config) *config.Config {
			cfg.Migration.AutoMigrate = false

			return cfg
		}),
		fx.Populate(&migrator),
	)

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "start")
	}
	defer func() {
		_ = app.Stop(context.Background())
	}()

	return migrator.Run(ctx, command, args...)
}
