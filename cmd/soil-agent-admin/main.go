// Command soil-agent-admin bundles operational tasks that run against the
// same database as the API server: migrations, development seeding, and
// quick account inspection.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx database/sql driver

	"github.com/soilfarming/soil-agent/config"
	"github.com/soilfarming/soil-agent/internal/bootstrap"
	"github.com/soilfarming/soil-agent/internal/data"
	"github.com/soilfarming/soil-agent/internal/devseed"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const defaultMigrationTimeout = 5 * time.Minute

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"migrate": {
			name:        "migrate",
			description: "Run database migrations",
			run:         runMigrate,
		},
		"db-seed": {
			name:        "db-seed",
			description: "Run migrations and seed demo accounts plus reference data",
			run:         runDBSeed,
		},
		"users-list": {
			name:        "users-list",
			description: "List registered user profiles",
			run:         runUsersList,
		},
	}
}

func printUsage() error {
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	if err := writef(os.Stderr, "usage: soil-agent-admin <command> [flags]\n\ncommands:\n"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stderr, 0, 4, 2, ' ', 0)
	for _, name := range names {
		if err := writef(tw, "  %s\t%s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func runMigrate(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer closeQuietly(ctx, db.Close, "close database")

	migrateCtx, cancel := context.WithTimeout(ctx.Ctx, defaultMigrationTimeout)
	defer cancel()

	return bootstrap.RunMigrations(migrateCtx, db, ctx.Logger)
}

func runDBSeed(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("db-seed", flag.ContinueOnError)
	allowNonDev := fs.Bool("force", false, "seed even when DEV mode is off")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !ctx.Config.IsDev && !*allowNonDev {
		return errors.New("db-seed refuses to run outside DEV mode; pass -force to override")
	}

	db, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer closeQuietly(ctx, db.Close, "close database")

	migrateCtx, cancel := context.WithTimeout(ctx.Ctx, defaultMigrationTimeout)
	defer cancel()
	if err = bootstrap.RunMigrations(migrateCtx, db, ctx.Logger); err != nil {
		return err
	}

	return devseed.Run(ctx.Ctx, devseed.NewRepos(db), ctx.Logger)
}

func runUsersList(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("users-list", flag.ContinueOnError)
	limit := fs.Int("limit", 100, "maximum number of profiles to list")
	offset := fs.Int("offset", 0, "number of profiles to skip")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer closeQuietly(ctx, db.Close, "close database")

	profiles, err := data.NewUserRepo(db).List(ctx.Ctx, *limit, *offset)
	if err != nil {
		return fmt.Errorf("list profiles: %w", err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err = writef(tw, "ID\tEMAIL\tNAME\tROLE\tCREATED\n"); err != nil {
		return err
	}
	for _, p := range profiles {
		if err = writef(tw, "%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Email, p.Name, p.Role, p.CreatedAt.Format(time.RFC3339)); err != nil {
			return err
		}
	}
	return tw.Flush()
}
