package domain

import (
	"encoding/json"
	"time"
)

// PageSection is one content block of a product page. Content is free-form
// JSON owned by the frontend.
type PageSection struct {
	Type    string          `json:"type" validate:"required"`
	Title   string          `json:"title,omitempty"`
	Content json.RawMessage `json:"content,omitempty"`
}

// ProductPageSettings holds the editable hero and section layout of one
// product page, addressed by PageKey ("trips", "treks", "tours").
type ProductPageSettings struct {
	ID                int64          `json:"id"`
	PageKey           string         `json:"pageKey" validate:"required,max=80"`
	HeroTitle         string         `json:"heroTitle" validate:"max=200"`
	HeroSubtitle      string         `json:"heroSubtitle" validate:"max=500"`
	HeroImageURL      string         `json:"heroImageUrl" validate:"omitempty,url"`
	HeroImagePublicID string         `json:"heroImagePublicId"`
	MetaTitle         string         `json:"metaTitle" validate:"max=200"`
	MetaDescription   string         `json:"metaDescription" validate:"max=500"`
	Sections          []PageSection  `json:"sections" validate:"dive"`
	Extra             map[string]any `json:"extra"`
	Status            string         `json:"status"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

func (s ProductPageSettings) RecordID() int64      { return s.ID }
func (s ProductPageSettings) RecordStatus() string { return s.Status }
func (s ProductPageSettings) MediaKeys() []string {
	return mediaKeys([]string{s.HeroImagePublicID})
}

type ProductPageSettingsPatch struct {
	PageKey           *string         `json:"pageKey" validate:"omitnil,min=1,max=80"`
	HeroTitle         *string         `json:"heroTitle" validate:"omitempty,max=200"`
	HeroSubtitle      *string         `json:"heroSubtitle" validate:"omitempty,max=500"`
	HeroImageURL      *string         `json:"heroImageUrl" validate:"omitempty,url"`
	HeroImagePublicID *string         `json:"heroImagePublicId"`
	MetaTitle         *string         `json:"metaTitle" validate:"omitempty,max=200"`
	MetaDescription   *string         `json:"metaDescription" validate:"omitempty,max=500"`
	Sections          *[]PageSection  `json:"sections" validate:"omitempty,dive"`
	Extra             *map[string]any `json:"extra"`
	Status            *string         `json:"status"`
}

func (p ProductPageSettingsPatch) PatchedStatus() *string { return p.Status }
