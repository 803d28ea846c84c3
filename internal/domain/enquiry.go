package domain

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Enquiry is a booking request submitted from the public site. Enquiries are
// only ever read back by staff.
type Enquiry struct {
	ID         int64               `json:"id"`
	TripID     *int64              `json:"tripId"`
	Name       string              `json:"name" validate:"required,max=120"`
	Email      string              `json:"email" validate:"required,email"`
	Phone      string              `json:"phone" validate:"max=40"`
	Message    string              `json:"message" validate:"max=5000"`
	TravelDate *openapi_types.Date `json:"travelDate"`
	Travellers *int                `json:"travellers" validate:"omitempty,min=1,max=500"`
	Source     string              `json:"source" validate:"max=50"`
	Status     string              `json:"status"`
	Notes      string              `json:"notes"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

func (e Enquiry) RecordID() int64      { return e.ID }
func (e Enquiry) RecordStatus() string { return e.Status }

// EnquiryPatch is used by staff to move an enquiry through follow-up.
type EnquiryPatch struct {
	TripID     *int64              `json:"tripId"`
	Name       *string             `json:"name" validate:"omitnil,min=1,max=120"`
	Email      *string             `json:"email" validate:"omitnil,email"`
	Phone      *string             `json:"phone" validate:"omitempty,max=40"`
	Message    *string             `json:"message" validate:"omitempty,max=5000"`
	TravelDate *openapi_types.Date `json:"travelDate"`
	Travellers *int                `json:"travellers" validate:"omitempty,min=1,max=500"`
	Source     *string             `json:"source" validate:"omitempty,max=50"`
	Status     *string             `json:"status"`
	Notes      *string             `json:"notes"`
}

func (p EnquiryPatch) PatchedStatus() *string { return p.Status }
