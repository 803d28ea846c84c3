package repo

import (
	"context"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// SettingsRepo adds page-key lookup to the product page settings repository.
type SettingsRepo interface {
	Repository[domain.ProductPageSettings, domain.ProductPageSettingsPatch]
	FindByPageKey(ctx context.Context, pageKey string) (domain.ProductPageSettings, error)
}

type pgSettingsRepo struct {
	*Table[domain.ProductPageSettings, domain.ProductPageSettingsPatch]
}

// NewSettingsRepo returns a SettingsRepo backed by db.
func NewSettingsRepo(db db) SettingsRepo {
	return pgSettingsRepo{newTable(db, settingsEntity)}
}

func (r pgSettingsRepo) FindByPageKey(ctx context.Context, pageKey string) (domain.ProductPageSettings, error) {
	return r.findOne(ctx, "FindByPageKey", "page_key", pageKey)
}

var settingsEntity = entity[domain.ProductPageSettings, domain.ProductPageSettingsPatch]{
	name:  "SettingsRepo",
	table: "product_page_settings",
	columns: []string{
		"id", "page_key", "hero_title", "hero_subtitle", "hero_image_url", "hero_image_public_id",
		"meta_title", "meta_description", "sections", "extra", "status", "created_at", "updated_at",
	},
	scan: func(s scanner) (domain.ProductPageSettings, error) {
		var (
			ps              domain.ProductPageSettings
			sections, extra []byte
		)
		err := s.Scan(&ps.ID, &ps.PageKey, &ps.HeroTitle, &ps.HeroSubtitle, &ps.HeroImageURL,
			&ps.HeroImagePublicID, &ps.MetaTitle, &ps.MetaDescription, &sections, &extra,
			&ps.Status, &ps.CreatedAt, &ps.UpdatedAt)
		if err != nil {
			return domain.ProductPageSettings{}, err
		}
		ps.Sections = decodeList[domain.PageSection](sections)
		ps.Extra = decodeMap[any](extra)
		return ps, nil
	},
	insert: func(ps domain.ProductPageSettings) ([]field, error) {
		var s fieldSet
		s.add("page_key", ps.PageKey)
		s.add("hero_title", ps.HeroTitle)
		s.add("hero_subtitle", ps.HeroSubtitle)
		s.add("hero_image_url", ps.HeroImageURL)
		s.add("hero_image_public_id", ps.HeroImagePublicID)
		s.add("meta_title", ps.MetaTitle)
		s.add("meta_description", ps.MetaDescription)
		listOf(&s, "sections", ps.Sections)
		mapOf(&s, "extra", ps.Extra)
		s.add("status", ps.Status)
		return s.result()
	},
	patch: func(p domain.ProductPageSettingsPatch) ([]field, error) {
		var s fieldSet
		opt(&s, "page_key", p.PageKey)
		opt(&s, "hero_title", p.HeroTitle)
		opt(&s, "hero_subtitle", p.HeroSubtitle)
		opt(&s, "hero_image_url", p.HeroImageURL)
		opt(&s, "hero_image_public_id", p.HeroImagePublicID)
		opt(&s, "meta_title", p.MetaTitle)
		opt(&s, "meta_description", p.MetaDescription)
		optList(&s, "sections", p.Sections)
		optMap(&s, "extra", p.Extra)
		opt(&s, "status", p.Status)
		return s.result()
	},
	filters:  []Filter{{Key: "pageKey", Column: "page_key", Op: OpEqual}},
	search:   []string{"page_key", "hero_title"},
	statuses: domain.ToggleStatuses,
	orderBy:  "page_key ASC",
	touch:    true,
}
