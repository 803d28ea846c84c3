package repo

import "github.com/pkordes/travel-agency/backend/internal/domain"

type (
	ReviewRepo        = Repository[domain.Review, domain.ReviewPatch]
	WrittenReviewRepo = Repository[domain.WrittenReview, domain.WrittenReviewPatch]
)

// NewReviewRepo returns a ReviewRepo backed by db.
func NewReviewRepo(db db) ReviewRepo {
	return newTable(db, reviewEntity)
}

// NewWrittenReviewRepo returns a WrittenReviewRepo backed by db.
func NewWrittenReviewRepo(db db) WrittenReviewRepo {
	return newTable(db, writtenReviewEntity)
}

var reviewEntity = entity[domain.Review, domain.ReviewPatch]{
	name:  "ReviewRepo",
	table: "reviews",
	columns: []string{
		"id", "trip_id", "name", "email", "rating", "comment", "status", "created_at", "updated_at",
	},
	scan: func(s scanner) (domain.Review, error) {
		var r domain.Review
		err := s.Scan(&r.ID, &r.TripID, &r.Name, &r.Email, &r.Rating, &r.Comment, &r.Status, &r.CreatedAt, &r.UpdatedAt)
		return r, err
	},
	insert: func(r domain.Review) ([]field, error) {
		var s fieldSet
		s.add("trip_id", r.TripID)
		s.add("name", r.Name)
		s.add("email", r.Email)
		s.add("rating", r.Rating)
		s.add("comment", r.Comment)
		s.add("status", r.Status)
		return s.result()
	},
	patch: func(p domain.ReviewPatch) ([]field, error) {
		var s fieldSet
		opt(&s, "trip_id", p.TripID)
		opt(&s, "name", p.Name)
		opt(&s, "email", p.Email)
		opt(&s, "rating", p.Rating)
		opt(&s, "comment", p.Comment)
		opt(&s, "status", p.Status)
		return s.result()
	},
	filters: []Filter{
		{Key: "tripId", Column: "trip_id", Op: OpEqual, Cast: "bigint"},
		{Key: "rating", Column: "rating", Op: OpEqual, Cast: "integer"},
	},
	search:   []string{"name", "comment"},
	statuses: domain.ReviewStatuses,
	orderBy:  "created_at DESC, id DESC",
	touch:    true,
}

var writtenReviewEntity = entity[domain.WrittenReview, domain.WrittenReviewPatch]{
	name:  "WrittenReviewRepo",
	table: "written_reviews",
	columns: []string{
		"id", "reviewer_name", "reviewer_location", "avatar_url", "avatar_public_id",
		"trip_name", "rating", "content", "status", "display_order", "created_at", "updated_at",
	},
	scan: func(s scanner) (domain.WrittenReview, error) {
		var w domain.WrittenReview
		err := s.Scan(
			&w.ID, &w.ReviewerName, &w.ReviewerLocation, &w.AvatarURL, &w.AvatarPublicID,
			&w.TripName, &w.Rating, &w.Content, &w.Status, &w.DisplayOrder, &w.CreatedAt, &w.UpdatedAt,
		)
		return w, err
	},
	insert: func(w domain.WrittenReview) ([]field, error) {
		var s fieldSet
		s.add("reviewer_name", w.ReviewerName)
		s.add("reviewer_location", w.ReviewerLocation)
		s.add("avatar_url", w.AvatarURL)
		s.add("avatar_public_id", w.AvatarPublicID)
		s.add("trip_name", w.TripName)
		s.add("rating", w.Rating)
		s.add("content", w.Content)
		s.add("status", w.Status)
		s.add("display_order", w.DisplayOrder)
		return s.result()
	},
	patch: func(p domain.WrittenReviewPatch) ([]field, error) {
		var s fieldSet
		opt(&s, "reviewer_name", p.ReviewerName)
		opt(&s, "reviewer_location", p.ReviewerLocation)
		opt(&s, "avatar_url", p.AvatarURL)
		opt(&s, "avatar_public_id", p.AvatarPublicID)
		opt(&s, "trip_name", p.TripName)
		opt(&s, "rating", p.Rating)
		opt(&s, "content", p.Content)
		opt(&s, "status", p.Status)
		opt(&s, "display_order", p.DisplayOrder)
		return s.result()
	},
	filters: []Filter{
		{Key: "tripName", Column: "trip_name", Op: OpContains},
	},
	search:   []string{"reviewer_name", "content"},
	statuses: domain.ToggleStatuses,
	orderBy:  "display_order ASC, id ASC",
	touch:    true,
}
