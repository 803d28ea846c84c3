// Package service contains the business logic for the travel agency API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/auth"
	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/media"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// MediaCleaner removes stored media on a best-effort basis.
type MediaCleaner interface {
	Cleanup(ctx context.Context, keys []string)
}

// Hooks let an entity service adjust a record after validation and before
// it is written. A hook error aborts the write.
type Hooks[T any, P any] struct {
	BeforeCreate func(ctx context.Context, v *T) error
	BeforeUpdate func(ctx context.Context, current T, p *P) error
}

// Catalog implements the CRUD rules shared by every entity: validation,
// status enumeration, public visibility and media cleanup.
type Catalog[T domain.Record, P domain.Patch] struct {
	name     string
	repo     repo.Repository[T, P]
	statuses domain.StatusSet
	media    MediaCleaner
	log      *zap.Logger
	hooks    Hooks[T, P]
}

// NewCatalog returns a Catalog for one entity. name prefixes wrapped errors.
func NewCatalog[T domain.Record, P domain.Patch](name string, r repo.Repository[T, P], statuses domain.StatusSet, m MediaCleaner, log *zap.Logger) *Catalog[T, P] {
	return &Catalog[T, P]{name: name, repo: r, statuses: statuses, media: m, log: log}
}

// Create validates v and persists it. Records that track their author get
// the caller's user id.
func (c *Catalog[T, P]) Create(ctx context.Context, v T) (T, error) {
	var zero T
	if err := validateStruct(v); err != nil {
		return zero, err
	}
	if err := checkStatus(c.statuses, v.RecordStatus()); err != nil {
		return zero, err
	}
	if a, ok := any(&v).(authored); ok {
		if id, ok := auth.FromContext(ctx); ok {
			a.SetCreatedBy(id.UserID)
		}
	}
	if c.hooks.BeforeCreate != nil {
		if err := c.hooks.BeforeCreate(ctx, &v); err != nil {
			return zero, err
		}
	}
	result, err := c.repo.Create(ctx, v)
	if err != nil {
		return zero, fmt.Errorf("service.%s.Create: %w", c.name, err)
	}
	return result, nil
}

// Get returns a record regardless of status.
func (c *Catalog[T, P]) Get(ctx context.Context, id int64) (T, error) {
	result, err := c.repo.FindByID(ctx, id)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("service.%s.Get: %w", c.name, err)
	}
	return result, nil
}

// GetVisible returns a record only when its status is publicly visible.
// Hidden records are reported as not found.
func (c *Catalog[T, P]) GetVisible(ctx context.Context, id int64) (T, error) {
	result, err := c.Get(ctx, id)
	if err != nil {
		return result, err
	}
	if !c.statuses.IsVisible(result.RecordStatus()) {
		var zero T
		return zero, fmt.Errorf("service.%s.GetVisible: %w", c.name, domain.ErrNotFound)
	}
	return result, nil
}

// List returns records of every status.
func (c *Catalog[T, P]) List(ctx context.Context, q domain.ListQuery) ([]T, error) {
	q.IncludeHidden = true
	result, err := c.repo.FindAll(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("service.%s.List: %w", c.name, err)
	}
	return result, nil
}

// ListVisible returns only publicly visible records. A status in q is still
// honoured, so asking for a hidden status yields an empty list.
func (c *Catalog[T, P]) ListVisible(ctx context.Context, q domain.ListQuery) ([]T, error) {
	q.IncludeHidden = false
	result, err := c.repo.FindAll(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("service.%s.ListVisible: %w", c.name, err)
	}
	return result, nil
}

// Update validates and applies a partial update. Media referenced before
// but not after the update is removed.
func (c *Catalog[T, P]) Update(ctx context.Context, id int64, p P) (T, error) {
	var zero T
	if err := validateStruct(p); err != nil {
		return zero, err
	}
	if s := p.PatchedStatus(); s != nil {
		if *s == "" {
			return zero, fmt.Errorf("%w: status must not be empty", domain.ErrValidation)
		}
		if err := checkStatus(c.statuses, *s); err != nil {
			return zero, err
		}
	}

	current, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("service.%s.Update: %w", c.name, err)
	}
	if c.hooks.BeforeUpdate != nil {
		if err := c.hooks.BeforeUpdate(ctx, current, &p); err != nil {
			return zero, err
		}
	}

	result, err := c.repo.Update(ctx, id, p)
	if err != nil {
		return zero, fmt.Errorf("service.%s.Update: %w", c.name, err)
	}
	c.cleanup(ctx, media.Dropped(mediaKeysOf(current), mediaKeysOf(result)))
	return result, nil
}

// Delete removes a record and returns it as it was. Its media is removed
// afterwards; removal failures never fail the delete.
func (c *Catalog[T, P]) Delete(ctx context.Context, id int64) (T, error) {
	result, err := c.repo.Delete(ctx, id)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("service.%s.Delete: %w", c.name, err)
	}
	c.cleanup(ctx, mediaKeysOf(result))
	return result, nil
}

func (c *Catalog[T, P]) cleanup(ctx context.Context, keys []string) {
	if len(keys) == 0 || c.media == nil {
		return
	}
	c.log.Debug("removing media", zap.String("entity", c.name), zap.Strings("keys", keys))
	// The write has committed; a canceled request must not skip cleanup.
	c.media.Cleanup(context.WithoutCancel(ctx), keys)
}

type authored interface {
	SetCreatedBy(id int64)
}

func mediaKeysOf(v any) []string {
	if m, ok := v.(domain.MediaOwner); ok {
		return m.MediaKeys()
	}
	return nil
}
