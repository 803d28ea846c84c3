package domain

import "slices"

// Lifecycle statuses shared across entities. Each entity permits only the
// subset listed in its StatusSet.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusDraft     = "draft"
	StatusArchived  = "archived"
	StatusPublished = "published"
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusConverted = "converted"
	StatusClosed    = "closed"
)

// StatusSet describes an entity's closed status enumeration: the value
// applied on create when none is supplied, every permitted value, and the
// subset returned to unauthenticated callers. An empty Visible means the
// entity has no public reads at all.
type StatusSet struct {
	Default string
	Allowed []string
	Visible []string
}

// Allows reports whether status is one of the permitted values.
func (s StatusSet) Allows(status string) bool {
	return slices.Contains(s.Allowed, status)
}

// IsVisible reports whether records with this status may be shown publicly.
func (s StatusSet) IsVisible(status string) bool {
	return slices.Contains(s.Visible, status)
}

// Enabled reports whether the entity has a status column at all.
func (s StatusSet) Enabled() bool {
	return len(s.Allowed) > 0
}

var (
	// TripStatuses: drafts and archived trips stay off the public site.
	TripStatuses = StatusSet{
		Default: StatusActive,
		Allowed: []string{StatusActive, StatusDraft, StatusArchived},
		Visible: []string{StatusActive},
	}

	// BlogStatuses: posts start as drafts and appear once published.
	BlogStatuses = StatusSet{
		Default: StatusDraft,
		Allowed: []string{StatusDraft, StatusPublished, StatusArchived},
		Visible: []string{StatusPublished},
	}

	// ReviewStatuses: customer reviews are moderated before display.
	ReviewStatuses = StatusSet{
		Default: StatusPending,
		Allowed: []string{StatusPending, StatusApproved, StatusRejected},
		Visible: []string{StatusApproved},
	}

	// ToggleStatuses is the plain on/off lifecycle used by most site content.
	ToggleStatuses = StatusSet{
		Default: StatusActive,
		Allowed: []string{StatusActive, StatusInactive},
		Visible: []string{StatusActive},
	}

	// EnquiryStatuses track the sales follow-up; enquiries are never public.
	EnquiryStatuses = StatusSet{
		Default: StatusNew,
		Allowed: []string{StatusNew, StatusContacted, StatusConverted, StatusClosed},
	}

	// UserStatuses: inactive users cannot log in; users are never public.
	UserStatuses = StatusSet{
		Default: StatusActive,
		Allowed: []string{StatusActive, StatusInactive},
	}
)
