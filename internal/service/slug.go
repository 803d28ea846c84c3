package service

import (
	"fmt"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// slugFor returns the slug to store on create: the supplied slug normalised,
// or one derived from the title.
func slugFor(slug, title string) (string, error) {
	src := slug
	if src == "" {
		src = title
	}
	s := domain.Slugify(src)
	if s == "" {
		return "", fmt.Errorf("%w: slug must contain at least one letter or digit", domain.ErrValidation)
	}
	return s, nil
}

// patchSlug rewrites a patch's slug. A supplied slug is normalised; otherwise
// a changed title regenerates it. An unchanged title leaves the slug alone.
func patchSlug(slug **string, title *string, currentTitle string) error {
	switch {
	case *slug != nil:
		s, err := slugFor(**slug, "")
		if err != nil {
			return err
		}
		*slug = &s
	case title != nil && *title != currentTitle:
		s, err := slugFor("", *title)
		if err != nil {
			return err
		}
		*slug = &s
	}
	return nil
}
