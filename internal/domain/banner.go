package domain

import "time"

// Banner media types.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// Banner is a hero slide (image or video) placed on one page of the site.
type Banner struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title" validate:"max=200"`
	Subtitle      string    `json:"subtitle" validate:"max=500"`
	Page          string    `json:"page" validate:"required,max=80"`
	MediaType     string    `json:"mediaType" validate:"omitempty,oneof=image video"`
	MediaURL      string    `json:"mediaUrl" validate:"required,url"`
	MediaPublicID string    `json:"mediaPublicId"`
	LinkURL       string    `json:"linkUrl" validate:"omitempty,url"`
	ButtonText    string    `json:"buttonText" validate:"max=80"`
	Status        string    `json:"status"`
	DisplayOrder  int       `json:"displayOrder"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (b Banner) RecordID() int64      { return b.ID }
func (b Banner) RecordStatus() string { return b.Status }
func (b Banner) MediaKeys() []string  { return mediaKeys([]string{b.MediaPublicID}) }

type BannerPatch struct {
	Title         *string `json:"title" validate:"omitempty,max=200"`
	Subtitle      *string `json:"subtitle" validate:"omitempty,max=500"`
	Page          *string `json:"page" validate:"omitnil,min=1,max=80"`
	MediaType     *string `json:"mediaType" validate:"omitnil,oneof=image video"`
	MediaURL      *string `json:"mediaUrl" validate:"omitnil,url"`
	MediaPublicID *string `json:"mediaPublicId"`
	LinkURL       *string `json:"linkUrl" validate:"omitempty,url"`
	ButtonText    *string `json:"buttonText" validate:"omitempty,max=80"`
	Status        *string `json:"status"`
	DisplayOrder  *int    `json:"displayOrder"`
}

func (p BannerPatch) PatchedStatus() *string { return p.Status }
