package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// TripService implements business logic for Trip operations on top of the
// shared catalog rules: slugs are derived from titles and trips can be
// looked up by slug.
type TripService struct {
	*Catalog[domain.Trip, domain.TripPatch]
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo, m MediaCleaner, log *zap.Logger) *TripService {
	c := NewCatalog("TripService", repo.Repository[domain.Trip, domain.TripPatch](r), domain.TripStatuses, m, log)
	c.hooks = Hooks[domain.Trip, domain.TripPatch]{
		BeforeCreate: func(_ context.Context, t *domain.Trip) error {
			s, err := slugFor(t.Slug, t.Title)
			t.Slug = s
			return err
		},
		BeforeUpdate: func(_ context.Context, current domain.Trip, p *domain.TripPatch) error {
			return patchSlug(&p.Slug, p.Title, current.Title)
		},
	}
	return &TripService{Catalog: c, trips: r}
}

// GetBySlug returns the trip with the given slug. With public set, hidden
// trips are reported as not found.
func (s *TripService) GetBySlug(ctx context.Context, slug string, public bool) (domain.Trip, error) {
	result, err := s.trips.FindBySlug(ctx, slug)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetBySlug: %w", err)
	}
	if public && !domain.TripStatuses.IsVisible(result.Status) {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetBySlug: %w", domain.ErrNotFound)
	}
	return result, nil
}
