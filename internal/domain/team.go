package domain

import "time"

// TeamMember is a staff profile on the about page. SocialLinks maps a
// network name ("instagram", "linkedin") to a profile URL.
type TeamMember struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name" validate:"required,max=120"`
	Designation   string            `json:"designation" validate:"max=120"`
	Department    string            `json:"department" validate:"max=120"`
	Bio           string            `json:"bio"`
	PhotoURL      string            `json:"photoUrl" validate:"omitempty,url"`
	PhotoPublicID string            `json:"photoPublicId"`
	SocialLinks   map[string]string `json:"socialLinks"`
	Status        string            `json:"status"`
	DisplayOrder  int               `json:"displayOrder"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func (m TeamMember) RecordID() int64      { return m.ID }
func (m TeamMember) RecordStatus() string { return m.Status }
func (m TeamMember) MediaKeys() []string  { return mediaKeys([]string{m.PhotoPublicID}) }

type TeamMemberPatch struct {
	Name          *string            `json:"name" validate:"omitnil,min=1,max=120"`
	Designation   *string            `json:"designation" validate:"omitempty,max=120"`
	Department    *string            `json:"department" validate:"omitempty,max=120"`
	Bio           *string            `json:"bio"`
	PhotoURL      *string            `json:"photoUrl" validate:"omitempty,url"`
	PhotoPublicID *string            `json:"photoPublicId"`
	SocialLinks   *map[string]string `json:"socialLinks"`
	Status        *string            `json:"status"`
	DisplayOrder  *int               `json:"displayOrder"`
}

func (p TeamMemberPatch) PatchedStatus() *string { return p.Status }
