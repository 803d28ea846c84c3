package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// Site content with no rules beyond the shared catalog ones.
type (
	WrittenReviewService   = Catalog[domain.WrittenReview, domain.WrittenReviewPatch]
	CertificateService     = Catalog[domain.Certificate, domain.CertificatePatch]
	DestinationService     = Catalog[domain.Destination, domain.DestinationPatch]
	DriverService          = Catalog[domain.Driver, domain.DriverPatch]
	FAQService             = Catalog[domain.FAQ, domain.FAQPatch]
	BannerService          = Catalog[domain.Banner, domain.BannerPatch]
	BrandingPartnerService = Catalog[domain.BrandingPartner, domain.BrandingPartnerPatch]
	HotelPartnerService    = Catalog[domain.HotelPartner, domain.HotelPartnerPatch]
	TeamService            = Catalog[domain.TeamMember, domain.TeamMemberPatch]
)

func NewWrittenReviewService(r repo.WrittenReviewRepo, m MediaCleaner, log *zap.Logger) *WrittenReviewService {
	return NewCatalog("WrittenReviewService", r, domain.ToggleStatuses, m, log)
}

func NewCertificateService(r repo.CertificateRepo, m MediaCleaner, log *zap.Logger) *CertificateService {
	return NewCatalog("CertificateService", r, domain.ToggleStatuses, m, log)
}

func NewDestinationService(r repo.DestinationRepo, m MediaCleaner, log *zap.Logger) *DestinationService {
	return NewCatalog("DestinationService", r, domain.ToggleStatuses, m, log)
}

func NewDriverService(r repo.DriverRepo, m MediaCleaner, log *zap.Logger) *DriverService {
	return NewCatalog("DriverService", r, domain.ToggleStatuses, m, log)
}

func NewFAQService(r repo.FAQRepo, m MediaCleaner, log *zap.Logger) *FAQService {
	return NewCatalog("FAQService", r, domain.ToggleStatuses, m, log)
}

func NewBannerService(r repo.BannerRepo, m MediaCleaner, log *zap.Logger) *BannerService {
	return NewCatalog("BannerService", r, domain.ToggleStatuses, m, log)
}

func NewBrandingPartnerService(r repo.BrandingPartnerRepo, m MediaCleaner, log *zap.Logger) *BrandingPartnerService {
	return NewCatalog("BrandingPartnerService", r, domain.ToggleStatuses, m, log)
}

func NewHotelPartnerService(r repo.HotelPartnerRepo, m MediaCleaner, log *zap.Logger) *HotelPartnerService {
	return NewCatalog("HotelPartnerService", r, domain.ToggleStatuses, m, log)
}

func NewTeamService(r repo.TeamRepo, m MediaCleaner, log *zap.Logger) *TeamService {
	return NewCatalog("TeamService", r, domain.ToggleStatuses, m, log)
}

// SettingsService manages product page settings, which the site also reads
// by page key.
type SettingsService struct {
	*Catalog[domain.ProductPageSettings, domain.ProductPageSettingsPatch]
	settings repo.SettingsRepo
}

// NewSettingsService constructs a SettingsService backed by the provided SettingsRepo.
func NewSettingsService(r repo.SettingsRepo, m MediaCleaner, log *zap.Logger) *SettingsService {
	return &SettingsService{
		Catalog:  NewCatalog("SettingsService", repo.Repository[domain.ProductPageSettings, domain.ProductPageSettingsPatch](r), domain.ToggleStatuses, m, log),
		settings: r,
	}
}

// GetByPageKey returns the settings for one page. Inactive settings are
// hidden from the public site.
func (s *SettingsService) GetByPageKey(ctx context.Context, pageKey string, public bool) (domain.ProductPageSettings, error) {
	result, err := s.settings.FindByPageKey(ctx, pageKey)
	if err != nil {
		return domain.ProductPageSettings{}, fmt.Errorf("service.SettingsService.GetByPageKey: %w", err)
	}
	if public && !domain.ToggleStatuses.IsVisible(result.Status) {
		return domain.ProductPageSettings{}, fmt.Errorf("service.SettingsService.GetByPageKey: %w", domain.ErrNotFound)
	}
	return result, nil
}
