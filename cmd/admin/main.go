// Command admin creates the first main_admin account, or promotes an
// existing account to main_admin.
//
//	admin -email owner@example.com -name "Owner" -password 's3cret-pass'
//
// The password may also be supplied through ADMIN_PASSWORD so it stays out
// of shell history.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/observability"
	"github.com/pkordes/travel-agency/backend/internal/repo"
	"github.com/pkordes/travel-agency/backend/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "admin:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		dsn      = flag.String("dsn", os.Getenv("DATABASE_URL"), "Postgres connection string")
		email    = flag.String("email", "", "account e-mail (required)")
		name     = flag.String("name", "", "display name, required when creating")
		password = flag.String("password", os.Getenv("ADMIN_PASSWORD"), "password, required when creating")
	)
	flag.Parse()

	if *dsn == "" {
		return errors.New("DATABASE_URL or -dsn is required")
	}
	if strings.TrimSpace(*email) == "" {
		flag.Usage()
		return errors.New("-email is required")
	}

	logger, err := observability.NewLogger("info", "development")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, *dsn)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}
	defer pool.Close()

	users := repo.NewUserRepo(pool)
	svc := service.NewUserService(users, logger)

	existing, err := users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(*email)))
	switch {
	case err == nil:
		u, err := promote(ctx, svc, existing, *password)
		if err != nil {
			return err
		}
		logger.Info("promoted account", zap.Int64("id", u.ID), zap.String("email", u.Email), zap.String("role", u.Role))
		return nil
	case errors.Is(err, domain.ErrNotFound):
		u, err := svc.Create(ctx, domain.User{
			Name:     *name,
			Email:    *email,
			Password: *password,
			Role:     domain.RoleMainAdmin,
			Status:   domain.StatusActive,
		})
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}
		logger.Info("created account", zap.Int64("id", u.ID), zap.String("email", u.Email), zap.String("role", u.Role))
		return nil
	default:
		return fmt.Errorf("look up account: %w", err)
	}
}

// promote makes u an active main_admin. A non-empty password replaces the
// current one.
func promote(ctx context.Context, svc *service.UserService, u domain.User, password string) (domain.User, error) {
	role, status := domain.RoleMainAdmin, domain.StatusActive
	p := domain.UserPatch{Role: &role, Status: &status}
	if password != "" {
		p.Password = &password
	}
	updated, err := svc.Update(ctx, u.ID, p)
	if err != nil {
		return domain.User{}, fmt.Errorf("promote account: %w", err)
	}
	return updated, nil
}
