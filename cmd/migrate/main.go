// Command migrate applies, rolls back or reports the embedded SQL migrations.
//
//	migrate up       apply every pending migration
//	migrate down     roll back the most recent migration
//	migrate status   list migrations and whether they are applied
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	_ "github.com/joho/godotenv/autoload"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/observability"
	"github.com/pkordes/travel-agency/backend/migrations"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

func run() error {
	dsn := flag.String("dsn", os.Getenv("DATABASE_URL"), "Postgres connection string")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: migrate [-dsn url] <up|down|status>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("expected exactly one command, got %d", flag.NArg())
	}
	if *dsn == "" {
		return fmt.Errorf("DATABASE_URL or -dsn is required")
	}

	logger, err := observability.NewLogger("info", "development")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}

	switch cmd := flag.Arg(0); cmd {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("up: %w", err)
		}
		for _, r := range results {
			logger.Info("applied", zap.String("migration", r.Source.Path), zap.Duration("took", r.Duration))
		}
		logger.Info("migrations up to date", zap.Int("applied", len(results)))
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("down: %w", err)
		}
		logger.Info("rolled back", zap.String("migration", r.Source.Path), zap.Duration("took", r.Duration))
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("status: %w", err)
		}
		for _, s := range statuses {
			fields := []zap.Field{
				zap.Int64("version", s.Source.Version),
				zap.String("migration", s.Source.Path),
				zap.String("state", string(s.State)),
			}
			if !s.AppliedAt.IsZero() {
				fields = append(fields, zap.Time("appliedAt", s.AppliedAt))
			}
			logger.Info("migration", fields...)
		}
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
