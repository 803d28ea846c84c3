package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// EnquiryNotifier tells the operator about new enquiries.
type EnquiryNotifier interface {
	NewEnquiry(ctx context.Context, e domain.Enquiry) error
}

// EnquiryCounter counts accepted enquiries by source.
type EnquiryCounter interface {
	EnquiryReceived(source string)
}

// EnquiryService accepts booking enquiries from the public site. Staff
// manage them through the embedded catalog operations.
type EnquiryService struct {
	*Catalog[domain.Enquiry, domain.EnquiryPatch]
	notifier EnquiryNotifier
	counter  EnquiryCounter
}

// NewEnquiryService constructs an EnquiryService backed by the provided EnquiryRepo.
func NewEnquiryService(r repo.EnquiryRepo, notifier EnquiryNotifier, counter EnquiryCounter, log *zap.Logger) *EnquiryService {
	return &EnquiryService{
		Catalog:  NewCatalog("EnquiryService", r, domain.EnquiryStatuses, nil, log),
		notifier: notifier,
		counter:  counter,
	}
}

// Submit stores a public enquiry with status new and notifies the operator.
// A failed notification is logged; the enquiry is still accepted.
func (s *EnquiryService) Submit(ctx context.Context, e domain.Enquiry) (domain.Enquiry, error) {
	e.Status = domain.StatusNew
	e.Notes = ""
	e.Email = normalizeEmail(e.Email)

	result, err := s.Create(ctx, e)
	if err != nil {
		return domain.Enquiry{}, err
	}
	s.counter.EnquiryReceived(result.Source)

	if err := s.notifier.NewEnquiry(ctx, result); err != nil {
		s.log.Warn("enquiry notification failed", zap.Int64("enquiry_id", result.ID), zap.Error(err))
	}
	return result, nil
}
