package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"expatmart/config"
	logs "expatmart/internal/infra/log"
	"expatmart/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:      Apply every pending migration
// - down:    Roll back the last N migrations
// - version: Print the applied schema version
// - force:   Set the version after fixing a dirty migration by hand

func main() {
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")

	forceCmd := flag.NewFlagSet("force", flag.ExitOnError)
	forceVersion := forceCmd.Int("version", -1, "Version to record as applied")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], downCmd, downSteps, forceCmd, forceVersion); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string, downCmd *flag.FlagSet, downSteps *int, forceCmd *flag.FlagSet, forceVersion *int) error {
	switch command {
	case "up", "version":
	case "down":
		if err := downCmd.Parse(args); err != nil {
			return errors.Wrap(err, "failed to parse down flags")
		}
	case "force":
		if err := forceCmd.Parse(args); err != nil {
			return errors.Wrap(err, "failed to parse force flags")
		}
		if *forceVersion < 0 {
			return errors.New("force requires -version")
		}
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", command)
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	migrator, err := openMigrator(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			logger.Warn("Failed to close migrator", slog.Any("error", err))
		}
	}()

	switch command {
	case "up":
		if err := migrator.Up(); err != nil {
			return err
		}
	case "down":
		if err := migrator.Down(*downSteps); err != nil {
			return err
		}
	case "force":
		if err := migrator.Force(*forceVersion); err != nil {
			return err
		}
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return err
	}
	logger.Info("Schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}

func openMigrator(cfg *config.Config, logger *slog.Logger) (*migrations.Migrator, error) {
	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to PostgreSQL")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	migrator, err := migrations.NewMigrator(sqlDB, logger)
	if err != nil {
		_ = sqlDB.Close()

		return nil, err
	}

	return migrator, nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up                    Apply every pending migration")
	fmt.Println("  down -steps N         Roll back the last N migrations (default 1)")
	fmt.Println("  version               Print the applied schema version")
	fmt.Println("  force -version V      Record V as applied and clear the dirty flag")
}
