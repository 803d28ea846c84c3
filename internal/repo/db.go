// Package repo contains all database access logic for the travel agency API.
// Every entity is served by one generic Table over a small declaration
// (columns, mapper, filters, statuses, ordering). No business logic lives
// here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing one mapper per
// entity to serve QueryRow and Query calls alike.
type scanner interface {
	Scan(dest ...any) error
}

// Postgres SQLSTATE codes translated into domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02"
)

// translate maps driver errors onto the domain sentinels. Errors it does not
// recognise are returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%w (%s)", domain.ErrConflict, pgErr.ConstraintName)
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: referenced record does not exist (%s)", domain.ErrValidation, pgErr.ConstraintName)
	case codeNotNullViolation:
		return fmt.Errorf("%w: %s is required", domain.ErrValidation, pgErr.ColumnName)
	case codeCheckViolation:
		return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.Message)
	case codeInvalidText:
		return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.Message)
	}
	return err
}
