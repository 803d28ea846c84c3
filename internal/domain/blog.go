package domain

import "time"

// Blog is a travel article. PublishedAt is stamped the first time the post
// reaches the published status and is never moved by later publishes.
type Blog struct {
	ID                 int64      `json:"id"`
	Title              string     `json:"title" validate:"required,max=200"`
	Slug               string     `json:"slug" validate:"omitempty,max=220"`
	Excerpt            string     `json:"excerpt" validate:"max=500"`
	Content            string     `json:"content"`
	Category           string     `json:"category" validate:"max=100"`
	Tags               []string   `json:"tags"`
	CoverImageURL      string     `json:"coverImageUrl" validate:"omitempty,url"`
	CoverImagePublicID string     `json:"coverImagePublicId"`
	Author             string     `json:"author" validate:"max=120"`
	Status             string     `json:"status"`
	PublishedAt        *time.Time `json:"publishedAt"`
	CreatedBy          *int64     `json:"createdBy"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func (b Blog) RecordID() int64        { return b.ID }
func (b Blog) RecordStatus() string   { return b.Status }
func (b *Blog) SetCreatedBy(id int64) { b.CreatedBy = &id }
func (b Blog) MediaKeys() []string    { return mediaKeys([]string{b.CoverImagePublicID}) }

type BlogPatch struct {
	Title              *string    `json:"title" validate:"omitnil,min=1,max=200"`
	Slug               *string    `json:"slug" validate:"omitempty,max=220"`
	Excerpt            *string    `json:"excerpt" validate:"omitempty,max=500"`
	Content            *string    `json:"content"`
	Category           *string    `json:"category" validate:"omitempty,max=100"`
	Tags               *[]string  `json:"tags"`
	CoverImageURL      *string    `json:"coverImageUrl" validate:"omitempty,url"`
	CoverImagePublicID *string    `json:"coverImagePublicId"`
	Author             *string    `json:"author" validate:"omitempty,max=120"`
	Status             *string    `json:"status"`
	PublishedAt        *time.Time `json:"publishedAt"`
}

func (p BlogPatch) PatchedStatus() *string { return p.Status }
