package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// ReviewService moderates customer reviews.
type ReviewService struct {
	*Catalog[domain.Review, domain.ReviewPatch]
}

// NewReviewService constructs a ReviewService backed by the provided ReviewRepo.
func NewReviewService(r repo.ReviewRepo, log *zap.Logger) *ReviewService {
	return &ReviewService{Catalog: NewCatalog("ReviewService", r, domain.ReviewStatuses, nil, log)}
}

// Submit stores a review from the public site. It always awaits moderation.
func (s *ReviewService) Submit(ctx context.Context, r domain.Review) (domain.Review, error) {
	r.Status = domain.StatusPending
	return s.Create(ctx, r)
}
