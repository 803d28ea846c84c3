package repo

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// OrphanRepo tracks media keys whose removal from storage failed.
type OrphanRepo interface {
	// Record stores key for a later retry.
	Record(ctx context.Context, key, lastErr string) error

	// ListDue returns up to limit orphans with fewer than maxAttempts
	// failures, oldest first.
	ListDue(ctx context.Context, maxAttempts, limit int) ([]domain.MediaOrphan, error)

	// Resolve deletes an orphan once its media has been removed.
	Resolve(ctx context.Context, id int64) error

	// Fail records another failed attempt.
	Fail(ctx context.Context, id int64, lastErr string) error

	// CountExhausted counts orphans left for manual inspection.
	CountExhausted(ctx context.Context, maxAttempts int) (int, error)
}

type pgOrphanRepo struct {
	db db
}

// NewOrphanRepo returns an OrphanRepo backed by db.
func NewOrphanRepo(db db) OrphanRepo {
	return &pgOrphanRepo{db: db}
}

func (r *pgOrphanRepo) Record(ctx context.Context, key, lastErr string) error {
	const q = `INSERT INTO media_orphans (media_key, last_error) VALUES ($1, $2)`

	if _, err := r.db.Exec(ctx, q, key, lastErr); err != nil {
		return fmt.Errorf("repo.OrphanRepo.Record: %w", translate(err))
	}
	return nil
}

func (r *pgOrphanRepo) ListDue(ctx context.Context, maxAttempts, limit int) ([]domain.MediaOrphan, error) {
	const q = `
		SELECT id, media_key, attempts, last_error, created_at
		FROM media_orphans
		WHERE attempts < $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("repo.OrphanRepo.ListDue: %w", err)
	}
	defer rows.Close()

	out := []domain.MediaOrphan{}
	for rows.Next() {
		var o domain.MediaOrphan
		if err := rows.Scan(&o.ID, &o.MediaKey, &o.Attempts, &o.LastError, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("repo.OrphanRepo.ListDue: scan: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.OrphanRepo.ListDue: rows: %w", err)
	}
	return out, nil
}

func (r *pgOrphanRepo) Resolve(ctx context.Context, id int64) error {
	const q = `DELETE FROM media_orphans WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("repo.OrphanRepo.Resolve: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.OrphanRepo.Resolve: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgOrphanRepo) Fail(ctx context.Context, id int64, lastErr string) error {
	const q = `UPDATE media_orphans SET attempts = attempts + 1, last_error = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, lastErr)
	if err != nil {
		return fmt.Errorf("repo.OrphanRepo.Fail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.OrphanRepo.Fail: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgOrphanRepo) CountExhausted(ctx context.Context, maxAttempts int) (int, error) {
	const q = `SELECT count(*) FROM media_orphans WHERE attempts >= $1`

	var n int
	if err := r.db.QueryRow(ctx, q, maxAttempts).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.OrphanRepo.CountExhausted: %w", err)
	}
	return n, nil
}
