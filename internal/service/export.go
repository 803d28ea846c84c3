package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// ExportService assembles a flat export of enquiries for the sales team.
type ExportService struct {
	enquiries repo.EnquiryRepo
	trips     repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(enquiries repo.EnquiryRepo, trips repo.TripRepo) *ExportService {
	return &ExportService{enquiries: enquiries, trips: trips}
}

// Enquiries returns one row per enquiry matching q, newest first, with the
// trip title filled in. Enquiries whose trip has since been deleted keep
// the id and an empty title.
func (s *ExportService) Enquiries(ctx context.Context, q domain.ListQuery) ([]domain.EnquiryExportRow, error) {
	q.IncludeHidden = true
	enquiries, err := s.enquiries.FindAll(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Enquiries: %w", err)
	}

	titles := map[int64]string{}
	rows := make([]domain.EnquiryExportRow, 0, len(enquiries))
	for _, e := range enquiries {
		row := domain.EnquiryExportRow{
			EnquiryID:  e.ID,
			CreatedAt:  e.CreatedAt,
			Status:     e.Status,
			Source:     e.Source,
			Name:       e.Name,
			Email:      e.Email,
			Phone:      e.Phone,
			TripID:     e.TripID,
			Travellers: e.Travellers,
			Message:    e.Message,
			Notes:      e.Notes,
		}
		if e.TravelDate != nil {
			row.TravelDate = e.TravelDate.Format("2006-01-02")
		}
		if e.TripID != nil {
			title, ok := titles[*e.TripID]
			if !ok {
				title, err = s.tripTitle(ctx, *e.TripID)
				if err != nil {
					return nil, err
				}
				titles[*e.TripID] = title
			}
			row.TripTitle = title
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *ExportService) tripTitle(ctx context.Context, id int64) (string, error) {
	t, err := s.trips.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("service.ExportService.Enquiries: %w", err)
	}
	return t.Title, nil
}
