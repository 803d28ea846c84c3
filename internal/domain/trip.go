// Package domain contains the core data types for the travel agency backend.
// It is imported by every other internal package (repo, service, handler)
// and depends on nothing outside the standard library except the OpenAPI
// date type used for travel dates.
package domain

import "time"

// Trip is a bookable tour package shown on the marketing site.
// Slug is derived from Title unless supplied explicitly.
type Trip struct {
	ID               int64          `json:"id"`
	Title            string         `json:"title" validate:"required,max=200"`
	Slug             string         `json:"slug" validate:"omitempty,max=220"`
	ShortDescription string         `json:"shortDescription" validate:"max=500"`
	Description      string         `json:"description"`
	Category         string         `json:"category" validate:"max=100"`
	Location         string         `json:"location" validate:"max=200"`
	Duration         string         `json:"duration" validate:"max=100"`
	Difficulty       string         `json:"difficulty" validate:"max=50"`
	Price            float64        `json:"price" validate:"gte=0"`
	DiscountedPrice  *float64       `json:"discountedPrice" validate:"omitempty,gte=0"`
	MaxGroupSize     *int           `json:"maxGroupSize" validate:"omitempty,gte=1"`
	ImageURL         string         `json:"imageUrl" validate:"omitempty,url"`
	ImagePublicID    string         `json:"imagePublicId"`
	Gallery          []MediaItem    `json:"gallery" validate:"dive"`
	Itinerary        []ItineraryDay `json:"itinerary" validate:"dive"`
	Inclusions       []string       `json:"inclusions"`
	Exclusions       []string       `json:"exclusions"`
	Highlights       []string       `json:"highlights"`
	FAQs             []QA           `json:"faqs" validate:"dive"`
	Featured         bool           `json:"featured"`
	Status           string         `json:"status"`
	DisplayOrder     int            `json:"displayOrder"`
	CreatedBy        *int64         `json:"createdBy"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// ItineraryDay is one day of a trip's day-by-day plan.
type ItineraryDay struct {
	Day           int      `json:"day" validate:"gte=1"`
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	Meals         []string `json:"meals,omitempty"`
	Accommodation string   `json:"accommodation,omitempty"`
}

func (t Trip) RecordID() int64        { return t.ID }
func (t Trip) RecordStatus() string   { return t.Status }
func (t *Trip) SetCreatedBy(id int64) { t.CreatedBy = &id }

// MediaKeys returns the cover image and every gallery item key.
func (t Trip) MediaKeys() []string {
	return mediaKeys([]string{t.ImagePublicID}, t.Gallery)
}

// TripPatch is a partial update: nil fields are left untouched.
type TripPatch struct {
	Title            *string         `json:"title" validate:"omitnil,min=1,max=200"`
	Slug             *string         `json:"slug" validate:"omitempty,max=220"`
	ShortDescription *string         `json:"shortDescription" validate:"omitempty,max=500"`
	Description      *string         `json:"description"`
	Category         *string         `json:"category" validate:"omitempty,max=100"`
	Location         *string         `json:"location" validate:"omitempty,max=200"`
	Duration         *string         `json:"duration" validate:"omitempty,max=100"`
	Difficulty       *string         `json:"difficulty" validate:"omitempty,max=50"`
	Price            *float64        `json:"price" validate:"omitempty,gte=0"`
	DiscountedPrice  *float64        `json:"discountedPrice" validate:"omitempty,gte=0"`
	MaxGroupSize     *int            `json:"maxGroupSize" validate:"omitempty,gte=1"`
	ImageURL         *string         `json:"imageUrl" validate:"omitempty,url"`
	ImagePublicID    *string         `json:"imagePublicId"`
	Gallery          *[]MediaItem    `json:"gallery" validate:"omitempty,dive"`
	Itinerary        *[]ItineraryDay `json:"itinerary" validate:"omitempty,dive"`
	Inclusions       *[]string       `json:"inclusions"`
	Exclusions       *[]string       `json:"exclusions"`
	Highlights       *[]string       `json:"highlights"`
	FAQs             *[]QA           `json:"faqs" validate:"omitempty,dive"`
	Featured         *bool           `json:"featured"`
	Status           *string         `json:"status"`
	DisplayOrder     *int            `json:"displayOrder"`
}

func (p TripPatch) PatchedStatus() *string { return p.Status }
