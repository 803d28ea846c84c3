package repo

import (
	"context"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// TripRepo adds slug lookup to the generic trip repository.
type TripRepo interface {
	Repository[domain.Trip, domain.TripPatch]

	// FindBySlug returns domain.ErrNotFound when no trip has that slug.
	FindBySlug(ctx context.Context, slug string) (domain.Trip, error)
}

type pgTripRepo struct {
	*Table[domain.Trip, domain.TripPatch]
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return pgTripRepo{newTable(db, tripEntity)}
}

func (r pgTripRepo) FindBySlug(ctx context.Context, slug string) (domain.Trip, error) {
	return r.findOne(ctx, "FindBySlug", "slug", slug)
}

var tripEntity = entity[domain.Trip, domain.TripPatch]{
	name:  "TripRepo",
	table: "trips",
	columns: []string{
		"id", "title", "slug", "short_description", "description", "category", "location",
		"duration", "difficulty", "price", "discounted_price", "max_group_size",
		"image_url", "image_public_id", "gallery", "itinerary", "inclusions", "exclusions",
		"highlights", "faqs", "featured", "status", "display_order", "created_by",
		"created_at", "updated_at",
	},
	scan:   scanTrip,
	insert: insertTrip,
	patch:  patchTrip,
	filters: []Filter{
		{Key: "category", Column: "category", Op: OpEqual},
		{Key: "location", Column: "location", Op: OpContains},
		{Key: "featured", Column: "featured", Op: OpEqual, Cast: "boolean"},
	},
	search:   []string{"title", "short_description", "location"},
	statuses: domain.TripStatuses,
	orderBy:  "display_order ASC, id ASC",
	touch:    true,
}

// scanTrip maps a single database row into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t                                                            domain.Trip
		gallery, itinerary, inclusions, exclusions, highlights, faqs []byte
	)
	err := s.Scan(
		&t.ID, &t.Title, &t.Slug, &t.ShortDescription, &t.Description, &t.Category, &t.Location,
		&t.Duration, &t.Difficulty, &t.Price, &t.DiscountedPrice, &t.MaxGroupSize,
		&t.ImageURL, &t.ImagePublicID, &gallery, &itinerary, &inclusions, &exclusions,
		&highlights, &faqs, &t.Featured, &t.Status, &t.DisplayOrder, &t.CreatedBy,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Trip{}, err
	}
	t.Gallery = decodeList[domain.MediaItem](gallery)
	t.Itinerary = decodeList[domain.ItineraryDay](itinerary)
	t.Inclusions = decodeList[string](inclusions)
	t.Exclusions = decodeList[string](exclusions)
	t.Highlights = decodeList[string](highlights)
	t.FAQs = decodeList[domain.QA](faqs)
	return t, nil
}

func insertTrip(t domain.Trip) ([]field, error) {
	var s fieldSet
	s.add("title", t.Title)
	s.add("slug", t.Slug)
	s.add("short_description", t.ShortDescription)
	s.add("description", t.Description)
	s.add("category", t.Category)
	s.add("location", t.Location)
	s.add("duration", t.Duration)
	s.add("difficulty", t.Difficulty)
	s.add("price", t.Price)
	s.add("discounted_price", t.DiscountedPrice)
	s.add("max_group_size", t.MaxGroupSize)
	s.add("image_url", t.ImageURL)
	s.add("image_public_id", t.ImagePublicID)
	listOf(&s, "gallery", t.Gallery)
	listOf(&s, "itinerary", t.Itinerary)
	listOf(&s, "inclusions", t.Inclusions)
	listOf(&s, "exclusions", t.Exclusions)
	listOf(&s, "highlights", t.Highlights)
	listOf(&s, "faqs", t.FAQs)
	s.add("featured", t.Featured)
	s.add("status", t.Status)
	s.add("display_order", t.DisplayOrder)
	s.add("created_by", t.CreatedBy)
	return s.result()
}

func patchTrip(p domain.TripPatch) ([]field, error) {
	var s fieldSet
	opt(&s, "title", p.Title)
	opt(&s, "slug", p.Slug)
	opt(&s, "short_description", p.ShortDescription)
	opt(&s, "description", p.Description)
	opt(&s, "category", p.Category)
	opt(&s, "location", p.Location)
	opt(&s, "duration", p.Duration)
	opt(&s, "difficulty", p.Difficulty)
	opt(&s, "price", p.Price)
	opt(&s, "discounted_price", p.DiscountedPrice)
	opt(&s, "max_group_size", p.MaxGroupSize)
	opt(&s, "image_url", p.ImageURL)
	opt(&s, "image_public_id", p.ImagePublicID)
	optList(&s, "gallery", p.Gallery)
	optList(&s, "itinerary", p.Itinerary)
	optList(&s, "inclusions", p.Inclusions)
	optList(&s, "exclusions", p.Exclusions)
	optList(&s, "highlights", p.Highlights)
	optList(&s, "faqs", p.FAQs)
	opt(&s, "featured", p.Featured)
	opt(&s, "status", p.Status)
	opt(&s, "display_order", p.DisplayOrder)
	return s.result()
}
