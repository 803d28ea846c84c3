package domain

import "time"

// FAQ is a frequently asked question shown on the help page.
type FAQ struct {
	ID           int64     `json:"id"`
	Question     string    `json:"question" validate:"required,max=500"`
	Answer       string    `json:"answer" validate:"required"`
	Category     string    `json:"category" validate:"max=100"`
	Status       string    `json:"status"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (f FAQ) RecordID() int64      { return f.ID }
func (f FAQ) RecordStatus() string { return f.Status }

type FAQPatch struct {
	Question     *string `json:"question" validate:"omitnil,min=1,max=500"`
	Answer       *string `json:"answer" validate:"omitnil,min=1"`
	Category     *string `json:"category" validate:"omitempty,max=100"`
	Status       *string `json:"status"`
	DisplayOrder *int    `json:"displayOrder"`
}

func (p FAQPatch) PatchedStatus() *string { return p.Status }
