package domain

import "time"

// Certificate is an accreditation or award displayed on the about page.
type Certificate struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title" validate:"required,max=200"`
	Issuer        string     `json:"issuer" validate:"max=200"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"imageUrl" validate:"omitempty,url"`
	ImagePublicID string     `json:"imagePublicId"`
	IssuedAt      *time.Time `json:"issuedAt"`
	Status        string     `json:"status"`
	DisplayOrder  int        `json:"displayOrder"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (c Certificate) RecordID() int64      { return c.ID }
func (c Certificate) RecordStatus() string { return c.Status }
func (c Certificate) MediaKeys() []string  { return mediaKeys([]string{c.ImagePublicID}) }

type CertificatePatch struct {
	Title         *string    `json:"title" validate:"omitnil,min=1,max=200"`
	Issuer        *string    `json:"issuer" validate:"omitempty,max=200"`
	Description   *string    `json:"description"`
	ImageURL      *string    `json:"imageUrl" validate:"omitempty,url"`
	ImagePublicID *string    `json:"imagePublicId"`
	IssuedAt      *time.Time `json:"issuedAt"`
	Status        *string    `json:"status"`
	DisplayOrder  *int       `json:"displayOrder"`
}

func (p CertificatePatch) PatchedStatus() *string { return p.Status }
