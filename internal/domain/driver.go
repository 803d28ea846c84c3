package domain

import "time"

// Driver is a chauffeur offered for private transfers and road trips.
type Driver struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name" validate:"required,max=120"`
	Phone           string    `json:"phone" validate:"max=40"`
	Location        string    `json:"location" validate:"max=200"`
	VehicleType     string    `json:"vehicleType" validate:"max=80"`
	VehicleNumber   string    `json:"vehicleNumber" validate:"max=40"`
	ExperienceYears int       `json:"experienceYears" validate:"gte=0"`
	Languages       []string  `json:"languages"`
	PhotoURL        string    `json:"photoUrl" validate:"omitempty,url"`
	PhotoPublicID   string    `json:"photoPublicId"`
	Status          string    `json:"status"`
	CreatedBy       *int64    `json:"createdBy"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (d Driver) RecordID() int64        { return d.ID }
func (d Driver) RecordStatus() string   { return d.Status }
func (d *Driver) SetCreatedBy(id int64) { d.CreatedBy = &id }
func (d Driver) MediaKeys() []string    { return mediaKeys([]string{d.PhotoPublicID}) }

type DriverPatch struct {
	Name            *string   `json:"name" validate:"omitnil,min=1,max=120"`
	Phone           *string   `json:"phone" validate:"omitempty,max=40"`
	Location        *string   `json:"location" validate:"omitempty,max=200"`
	VehicleType     *string   `json:"vehicleType" validate:"omitempty,max=80"`
	VehicleNumber   *string   `json:"vehicleNumber" validate:"omitempty,max=40"`
	ExperienceYears *int      `json:"experienceYears" validate:"omitempty,gte=0"`
	Languages       *[]string `json:"languages"`
	PhotoURL        *string   `json:"photoUrl" validate:"omitempty,url"`
	PhotoPublicID   *string   `json:"photoPublicId"`
	Status          *string   `json:"status"`
}

func (p DriverPatch) PatchedStatus() *string { return p.Status }
