package domain

import "time"

// Destination is a region or place the agency operates in.
type Destination struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name" validate:"required,max=200"`
	Region          string      `json:"region" validate:"max=120"`
	Description     string      `json:"description"`
	BestTimeToVisit string      `json:"bestTimeToVisit" validate:"max=200"`
	ImageURL        string      `json:"imageUrl" validate:"omitempty,url"`
	ImagePublicID   string      `json:"imagePublicId"`
	Gallery         []MediaItem `json:"gallery" validate:"dive"`
	Highlights      []string    `json:"highlights"`
	Featured        bool        `json:"featured"`
	Status          string      `json:"status"`
	DisplayOrder    int         `json:"displayOrder"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func (d Destination) RecordID() int64      { return d.ID }
func (d Destination) RecordStatus() string { return d.Status }
func (d Destination) MediaKeys() []string {
	return mediaKeys([]string{d.ImagePublicID}, d.Gallery)
}

type DestinationPatch struct {
	Name            *string      `json:"name" validate:"omitnil,min=1,max=200"`
	Region          *string      `json:"region" validate:"omitempty,max=120"`
	Description     *string      `json:"description"`
	BestTimeToVisit *string      `json:"bestTimeToVisit" validate:"omitempty,max=200"`
	ImageURL        *string      `json:"imageUrl" validate:"omitempty,url"`
	ImagePublicID   *string      `json:"imagePublicId"`
	Gallery         *[]MediaItem `json:"gallery" validate:"omitempty,dive"`
	Highlights      *[]string    `json:"highlights"`
	Featured        *bool        `json:"featured"`
	Status          *string      `json:"status"`
	DisplayOrder    *int         `json:"displayOrder"`
}

func (p DestinationPatch) PatchedStatus() *string { return p.Status }
