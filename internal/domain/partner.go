package domain

import "time"

// BrandingPartner is a logo shown in the "as seen in" strip.
type BrandingPartner struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required,max=200"`
	LogoURL      string    `json:"logoUrl" validate:"omitempty,url"`
	LogoPublicID string    `json:"logoPublicId"`
	WebsiteURL   string    `json:"websiteUrl" validate:"omitempty,url"`
	Status       string    `json:"status"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (b BrandingPartner) RecordID() int64      { return b.ID }
func (b BrandingPartner) RecordStatus() string { return b.Status }
func (b BrandingPartner) MediaKeys() []string  { return mediaKeys([]string{b.LogoPublicID}) }

type BrandingPartnerPatch struct {
	Name         *string `json:"name" validate:"omitnil,min=1,max=200"`
	LogoURL      *string `json:"logoUrl" validate:"omitempty,url"`
	LogoPublicID *string `json:"logoPublicId"`
	WebsiteURL   *string `json:"websiteUrl" validate:"omitempty,url"`
	Status       *string `json:"status"`
	DisplayOrder *int    `json:"displayOrder"`
}

func (p BrandingPartnerPatch) PatchedStatus() *string { return p.Status }

// HotelPartner is a hotel the agency books guests into.
type HotelPartner struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name" validate:"required,max=200"`
	Location      string    `json:"location" validate:"max=200"`
	Description   string    `json:"description"`
	StarRating    *int      `json:"starRating" validate:"omitempty,min=1,max=7"`
	Amenities     []string  `json:"amenities"`
	ImageURL      string    `json:"imageUrl" validate:"omitempty,url"`
	ImagePublicID string    `json:"imagePublicId"`
	WebsiteURL    string    `json:"websiteUrl" validate:"omitempty,url"`
	Status        string    `json:"status"`
	DisplayOrder  int       `json:"displayOrder"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (h HotelPartner) RecordID() int64      { return h.ID }
func (h HotelPartner) RecordStatus() string { return h.Status }
func (h HotelPartner) MediaKeys() []string  { return mediaKeys([]string{h.ImagePublicID}) }

type HotelPartnerPatch struct {
	Name          *string   `json:"name" validate:"omitnil,min=1,max=200"`
	Location      *string   `json:"location" validate:"omitempty,max=200"`
	Description   *string   `json:"description"`
	StarRating    *int      `json:"starRating" validate:"omitempty,min=1,max=7"`
	Amenities     *[]string `json:"amenities"`
	ImageURL      *string   `json:"imageUrl" validate:"omitempty,url"`
	ImagePublicID *string   `json:"imagePublicId"`
	WebsiteURL    *string   `json:"websiteUrl" validate:"omitempty,url"`
	Status        *string   `json:"status"`
	DisplayOrder  *int      `json:"displayOrder"`
}

func (p HotelPartnerPatch) PatchedStatus() *string { return p.Status }
