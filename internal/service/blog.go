package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// BlogService adds slug handling and publish stamping to the catalog rules.
type BlogService struct {
	*Catalog[domain.Blog, domain.BlogPatch]
	blogs repo.BlogRepo
	now   func() time.Time
}

// NewBlogService constructs a BlogService. now defaults to time.Now.
func NewBlogService(r repo.BlogRepo, m MediaCleaner, log *zap.Logger, now func() time.Time) *BlogService {
	if now == nil {
		now = time.Now
	}
	s := &BlogService{
		Catalog: NewCatalog("BlogService", repo.Repository[domain.Blog, domain.BlogPatch](r), domain.BlogStatuses, m, log),
		blogs:   r,
		now:     now,
	}
	s.hooks = Hooks[domain.Blog, domain.BlogPatch]{
		BeforeCreate: s.beforeCreate,
		BeforeUpdate: s.beforeUpdate,
	}
	return s
}

func (s *BlogService) beforeCreate(_ context.Context, b *domain.Blog) error {
	slug, err := slugFor(b.Slug, b.Title)
	if err != nil {
		return err
	}
	b.Slug = slug
	if b.Status == domain.StatusPublished && b.PublishedAt == nil {
		t := s.now().UTC()
		b.PublishedAt = &t
	}
	return nil
}

// beforeUpdate stamps publishedAt the first time a post is published. The
// stamp never replaces an existing date; an explicit publishedAt in the
// patch is applied as given.
func (s *BlogService) beforeUpdate(_ context.Context, current domain.Blog, p *domain.BlogPatch) error {
	if err := patchSlug(&p.Slug, p.Title, current.Title); err != nil {
		return err
	}
	if p.PublishedAt != nil || current.PublishedAt != nil {
		return nil
	}
	if p.Status != nil && *p.Status == domain.StatusPublished {
		t := s.now().UTC()
		p.PublishedAt = &t
	}
	return nil
}

// GetBySlug returns the post with the given slug. With public set, only
// published posts are returned.
func (s *BlogService) GetBySlug(ctx context.Context, slug string, public bool) (domain.Blog, error) {
	result, err := s.blogs.FindBySlug(ctx, slug)
	if err != nil {
		return domain.Blog{}, fmt.Errorf("service.BlogService.GetBySlug: %w", err)
	}
	if public && !domain.BlogStatuses.IsVisible(result.Status) {
		return domain.Blog{}, fmt.Errorf("service.BlogService.GetBySlug: %w", domain.ErrNotFound)
	}
	return result, nil
}
