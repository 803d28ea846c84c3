package repo

import (
	"github.com/jackc/pgx/v5/pgtype"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// EnquiryRepo stores booking enquiries.
type EnquiryRepo = Repository[domain.Enquiry, domain.EnquiryPatch]

// NewEnquiryRepo returns an EnquiryRepo backed by db.
func NewEnquiryRepo(db db) EnquiryRepo {
	return newTable(db, enquiryEntity)
}

var enquiryEntity = entity[domain.Enquiry, domain.EnquiryPatch]{
	name:  "EnquiryRepo",
	table: "enquiries",
	columns: []string{
		"id", "trip_id", "name", "email", "phone", "message", "travel_date", "travellers",
		"source", "status", "notes", "created_at", "updated_at",
	},
	scan:   scanEnquiry,
	insert: insertEnquiry,
	patch:  patchEnquiry,
	filters: []Filter{
		{Key: "tripId", Column: "trip_id", Op: OpEqual, Cast: "bigint"},
		{Key: "source", Column: "source", Op: OpEqual},
	},
	search:   []string{"name", "email", "phone", "message"},
	statuses: domain.EnquiryStatuses,
	orderBy:  "created_at DESC, id DESC",
	touch:    true,
}

func scanEnquiry(s scanner) (domain.Enquiry, error) {
	var (
		e          domain.Enquiry
		travelDate pgtype.Date
	)
	err := s.Scan(&e.ID, &e.TripID, &e.Name, &e.Email, &e.Phone, &e.Message, &travelDate,
		&e.Travellers, &e.Source, &e.Status, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.Enquiry{}, err
	}
	if travelDate.Valid {
		e.TravelDate = &openapi_types.Date{Time: travelDate.Time}
	}
	return e, nil
}

// dateArg converts an optional calendar date into a pgx date argument.
func dateArg(d *openapi_types.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.Time, Valid: true}
}

func insertEnquiry(e domain.Enquiry) ([]field, error) {
	var s fieldSet
	s.add("trip_id", e.TripID)
	s.add("name", e.Name)
	s.add("email", e.Email)
	s.add("phone", e.Phone)
	s.add("message", e.Message)
	s.add("travel_date", dateArg(e.TravelDate))
	s.add("travellers", e.Travellers)
	source := e.Source
	if source == "" {
		source = "website"
	}
	s.add("source", source)
	s.add("status", e.Status)
	s.add("notes", e.Notes)
	return s.result()
}

func patchEnquiry(p domain.EnquiryPatch) ([]field, error) {
	var s fieldSet
	opt(&s, "trip_id", p.TripID)
	opt(&s, "name", p.Name)
	opt(&s, "email", p.Email)
	opt(&s, "phone", p.Phone)
	opt(&s, "message", p.Message)
	if p.TravelDate != nil {
		s.add("travel_date", dateArg(p.TravelDate))
	}
	opt(&s, "travellers", p.Travellers)
	opt(&s, "source", p.Source)
	opt(&s, "status", p.Status)
	opt(&s, "notes", p.Notes)
	return s.result()
}
