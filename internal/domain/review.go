package domain

import "time"

// Review is a customer review of a trip, submitted from the public site
// and shown only once approved.
type Review struct {
	ID        int64     `json:"id"`
	TripID    *int64    `json:"tripId"`
	Name      string    `json:"name" validate:"required,max=120"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" validate:"required,max=5000"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r Review) RecordID() int64      { return r.ID }
func (r Review) RecordStatus() string { return r.Status }

// Public returns the review as anonymous visitors see it, without the
// reviewer's e-mail address.
func (r Review) Public() Review {
	r.Email = ""
	return r
}

type ReviewPatch struct {
	TripID  *int64  `json:"tripId"`
	Name    *string `json:"name" validate:"omitnil,min=1,max=120"`
	Email   *string `json:"email" validate:"omitnil,email"`
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitnil,min=1,max=5000"`
	Status  *string `json:"status"`
}

func (p ReviewPatch) PatchedStatus() *string { return p.Status }

// WrittenReview is a curated testimonial entered by staff.
type WrittenReview struct {
	ID               int64     `json:"id"`
	ReviewerName     string    `json:"reviewerName" validate:"required,max=120"`
	ReviewerLocation string    `json:"reviewerLocation" validate:"max=120"`
	AvatarURL        string    `json:"avatarUrl" validate:"omitempty,url"`
	AvatarPublicID   string    `json:"avatarPublicId"`
	TripName         string    `json:"tripName" validate:"max=200"`
	Rating           int       `json:"rating" validate:"omitempty,min=1,max=5"`
	Content          string    `json:"content" validate:"required"`
	Status           string    `json:"status"`
	DisplayOrder     int       `json:"displayOrder"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (w WrittenReview) RecordID() int64      { return w.ID }
func (w WrittenReview) RecordStatus() string { return w.Status }
func (w WrittenReview) MediaKeys() []string  { return mediaKeys([]string{w.AvatarPublicID}) }

type WrittenReviewPatch struct {
	ReviewerName     *string `json:"reviewerName" validate:"omitnil,min=1,max=120"`
	ReviewerLocation *string `json:"reviewerLocation" validate:"omitempty,max=120"`
	AvatarURL        *string `json:"avatarUrl" validate:"omitempty,url"`
	AvatarPublicID   *string `json:"avatarPublicId"`
	TripName         *string `json:"tripName" validate:"omitempty,max=200"`
	Rating           *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Content          *string `json:"content" validate:"omitnil,min=1"`
	Status           *string `json:"status"`
	DisplayOrder     *int    `json:"displayOrder"`
}

func (p WrittenReviewPatch) PatchedStatus() *string { return p.Status }
