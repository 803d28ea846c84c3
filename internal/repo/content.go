package repo

import "github.com/pkordes/travel-agency/backend/internal/domain"

// Site content entities with the plain active/inactive lifecycle.
type (
	CertificateRepo     = Repository[domain.Certificate, domain.CertificatePatch]
	DestinationRepo     = Repository[domain.Destination, domain.DestinationPatch]
	DriverRepo          = Repository[domain.Driver, domain.DriverPatch]
	FAQRepo             = Repository[domain.FAQ, domain.FAQPatch]
	BannerRepo          = Repository[domain.Banner, domain.BannerPatch]
	BrandingPartnerRepo = Repository[domain.BrandingPartner, domain.BrandingPartnerPatch]
	HotelPartnerRepo    = Repository[domain.HotelPartner, domain.HotelPartnerPatch]
	TeamRepo            = Repository[domain.TeamMember, domain.TeamMemberPatch]
)

func NewCertificateRepo(db db) CertificateRepo { return newTable(db, certificateEntity) }
func NewDestinationRepo(db db) DestinationRepo { return newTable(db, destinationEntity) }
func NewDriverRepo(db db) DriverRepo           { return newTable(db, driverEntity) }
func NewFAQRepo(db db) FAQRepo                 { return newTable(db, faqEntity) }
func NewBannerRepo(db db) BannerRepo           { return newTable(db, bannerEntity) }
func NewBrandingPartnerRepo(db db) BrandingPartnerRepo {
	return newTable(db, brandingPartnerEntity)
}
func NewHotelPartnerRepo(db db) HotelPartnerRepo { return newTable(db, hotelPartnerEntity) }
func NewTeamRepo(db db) TeamRepo                 { return newTable(db, teamEntity) }

var certificateEntity = entity[domain.Certificate, domain.CertificatePatch]{
	name:  "CertificateRepo",
	table: "certificates",
	columns: []string{
		"id", "title", "issuer", "description", "image_url", "image_public_id", "issued_at",
		"status", "display_order", "created_at", "updated_at",
	},
	scan: func(s scanner) (domain.Certificate, error) {
		var c domain.Certificate
		err := s.Scan(&c.ID, &c.Title, &c.Issuer, &c.Description, &c.ImageURL, &c.ImagePublicID,
			&c.IssuedAt, &c.Status, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	},
	insert: func(c domain.Certificate) ([]field, error) {
		var s fieldSet
		s.add("title", c.Title)
		s.add("issuer", c.Issuer)
		s.add("description", c.Description)
		s.add("image_url", c.ImageURL)
		s.add("image_public_id", c.ImagePublicID)
		s.add("issued_at", c.IssuedAt)
		s.add("status", c.Status)
		s.add("display_order", c.DisplayOrder)
		return s.result()
	},
	patch: func(p domain.CertificatePatch) ([]field, error) {
		var s fieldSet
		opt(&s, "title", p.Title)
		opt(&s, "issuer", p.Issuer)
		opt(&s, "description", p.Description)
		opt(&s, "image_url", p.ImageURL)
		opt(&s, "image_public_id", p.ImagePublicID)
		opt(&s, "issued_at", p.IssuedAt)
		opt(&s, "status", p.Status)
		opt(&s, "display_order", p.DisplayOrder)
		return s.result()
	},
	filters:  []Filter{{Key: "issuer", Column: "issuer", Op: OpContains}},
	search:   []string{"title", "issuer"},
	statuses: domain.ToggleStatuses,
	orderBy:  "display_order ASC, id ASC",
	touch:    true,
}

var destinationEntity = entity[domain.Destination, domain.DestinationPatch]{
	name:  "DestinationRepo",
	table: "destinations",
	columns: []string{
		"id", "name", "region", "description", "best_time_to_visit", "image_url",
		"image_public_id", "gallery", "highlights", "featured", "status", "display_order",
		"created_at", "updated_at",
	},
	scan: func(s scanner) (domain.Destination, error) {
		var (
			d                   domain.Destination
			gallery, highlights []byte
		)
		err := s.Scan(&d.ID, &d.Name, &d.Region, &d.Description, &d.BestTimeToVisit, &d.ImageURL,
			&d.ImagePublicID, &gallery, &highlights, &d.Featured, &d.Status, &d.DisplayOrder,
			&d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return domain.Destination{}, err
		}
		d.Gallery = decodeList[domain.MediaItem](gallery)
		d.Highlights = decodeList[string](highlights)
		return d, nil
	},
	insert: func(d domain.Destination) ([]field, error) {
		var s fieldSet
		s.add("name", d.Name)
		s.add("region", d.Region)
		s.add("description", d.Description)
		s.add("best_time_to_visit", d.BestTimeToVisit)
		s.add("image_url", d.ImageURL)
		s.add("image_public_id", d.ImagePublicID)
		listOf(&s, "gallery", d.Gallery)
		listOf(&s, "highlights", d.Highlights)
		s.add("featured", d.Featured)
		s.add("status", d.Status)
		s.add("display_order", d.DisplayOrder)
		return s.result()
	},
	patch: func(p domain.DestinationPatch) ([]field, error) {
		var s fieldSet
		opt(&s, "name", p.Name)
		opt(&s, "region", p.Region)
		opt(&s, "description", p.Description)
		opt(&s, "best_time_to_visit", p.BestTimeToVisit)
		opt(&s, "image_url", p.ImageURL)
		opt(&s, "image_public_id", p.ImagePublicID)
		optList(&s, "gallery", p.Gallery)
		optList(&s, "highlights", p.Highlights)
		opt(&s, "featured", p.Featured)
		opt(&s, "status", p.Status)
		opt(&s, "display_order", p.DisplayOrder)
		return s.result()
	},
	filters: []Filter{
		{Key: "region", Column: "region", Op: OpEqual},
		{Key: "featured", Column: "featured", Op: OpEqual, Cast: "boolean"},
	},
	search:   []string{"name", "description"},
	statuses: domain.ToggleStatuses,
	orderBy:  "display_order ASC, id ASC",
	touch:    true,
}

var driverEntity = entity[domain.Driver, domain.DriverPatch]{
	name:  "DriverRepo",
	table: "drivers",
	columns: []string{
		"id", "name", "phone", "location", "vehicle_type", "vehicle_number", "experience_years",
		"languages", "photo_url", "photo_public_id", "status", "created_by", "created_at", "updated_at",
	},
	scan: func(s scanner) (domain.Driver, error) {
		var (
			d         domain.Driver
			languages []byte
		)
		err := s.Scan(&d.ID, &d.Name, &d.Phone, &d.Location, &d.VehicleType, &d.VehicleNumber,
			&d.ExperienceYears, &languages, &d.PhotoURL, &d.PhotoPublicID, &d.Status, &d.CreatedBy,
			&d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return domain.Driver{}, err
		}
		d.Languages = decodeList[string](languages)
		return d, nil
	},
	insert: func(d domain.Driver) ([]field, error) {
		var s fieldSet
		s.add("name", d.Name)
		s.add("phone", d.Phone)
		s.add("location", d.Location)
		s.add("vehicle_type", d.VehicleType)
		s.add("vehicle_number", d.VehicleNumber)
		s.add("experience_years", d.ExperienceYears)
		listOf(&s, "languages", d.Languages)
		s.add("photo_url", d.PhotoURL)
		s.add("photo_public_id", d.PhotoPublicID)
		s.add("status", d.Status)
		s.add("created_by", d.CreatedBy)
		return s.result()
	},
	patch: func(p domain.DriverPatch) ([]field, error) {
		var s fieldSet
		opt(&s, "name", p.Name)
		opt(&s, "phone", p.Phone)
		opt(&s, "location", p.Location)
		opt(&s, "vehicle_type", p.VehicleType)
		opt(&s, "vehicle_number", p.VehicleNumber)
		opt(&s, "experience_years", p.ExperienceYears)
		optList(&s, "languages", p.Languages)
		opt(&s, "photo_url", p.PhotoURL)
		opt(&s, "photo_public_id", p.PhotoPublicID)
		opt(&s, "status", p.Status)
		return s.result()
	},
	filters: []Filter{
		{Key: "vehicleType", Column: "vehicle_type", Op: OpEqual},
		{Key: "location", Column: "location", Op: OpContains},
	},
	search:   []string{"name", "vehicle_number"},
	statuses: domain.ToggleStatuses,
	orderBy:  "created_at DESC, id DESC",
	touch:    true,
}

var faqEntity = entity[domain.FAQ, domain.FAQPatch]{
	name:    "FAQRepo",
	table:   "faqs",
	columns: []string{"id", "question", "answer", "category", "status", "display_order", "created_at", "updated_at"},
	scan: func(s scanner) (domain.FAQ, error) {
		var f domain.FAQ
		err := s.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.Status, &f.DisplayOrder, &f.CreatedAt, &f.UpdatedAt)
		return f, err
	},
	insert: func(f domain.FAQ) ([]field, error) {
		var s fieldSet
		s.add("question", f.Question)
		s.add("answer", f.Answer)
		s.add("category", f.Category)
		s.add("status", f.Status)
		s.add("display_order", f.DisplayOrder)
		return s.result()
	},
	patch: func(p domain.FAQPatch) ([]field, error) {
		var s fieldSet
		opt(&s, "question", p.Question)
		opt(&s, "answer", p.Answer)
		opt(&s, "category", p.Category)
		opt(&s, "status", p.Status)
		opt(&s, "display_order", p.DisplayOrder)
		return s.result()
	},
	filters:  []Filter{{Key: "category", Column: "category", Op: OpEqual}},
	search:   []string{"question", "answer"},
	statuses: domain.ToggleStatuses,
	orderBy:  "display_order ASC, id ASC",
	touch:    true,
}

var bannerEntity = entity[domain.Banner, domain.BannerPatch]{
	name:  "BannerRepo",
	table: "banners",
	columns: []string{
		"id", "title", "subtitle", "page", "media_type", "media_url", "media_public_id",
		"link_url", "button_text", "status", "display_order", "created_at", "updated_at",
	},
	scan: func(s scanner) (domain.Banner, error) {
		var b domain.Banner
		err := s.Scan(&b.ID, &b.Title, &b.Subtitle, &b.Page, &b.MediaType, &b.MediaURL, &b.MediaPublicID,
			&b.LinkURL, &b.ButtonText, &b.Status, &b.DisplayOrder, &b.CreatedAt, &b.UpdatedAt)
		return b, err
	},
	insert: func(b domain.Banner) ([]field, error) {
		var s fieldSet
		s.add("title", b.Title)
		s.add("subtitle", b.Subtitle)
		s.add("page", b.Page)
		mediaType := b.MediaType
		if mediaType == "" {
			mediaType = domain.MediaImage
		}
		s.add("media_type", mediaType)
		s.add("media_url", b.MediaURL)
		s.add("media_public_id", b.MediaPublicID)
		s.add("link_url", b.LinkURL)
		s.add("button_text", b.ButtonText)
		s.add("status", b.Status)
		s.add("display_order", b.DisplayOrder)
		return s.result()
	},
	patch: func(p domain.BannerPatch) ([]field, error) {
		var s fieldSet
		opt(&s, "title", p.Title)
		opt(&s, "subtitle", p.Subtitle)
		opt(&s, "page", p.Page)
		opt(&s, "media_type", p.MediaType)
		opt(&s, "media_url", p.MediaURL)
		opt(&s, "media_public_id", p.MediaPublicID)
		opt(&s, "link_url", p.LinkURL)
		opt(&s, "button_text", p.ButtonText)
		opt(&s, "status", p.Status)
		opt(&s, "display_order", p.DisplayOrder)
		return s.result()
	},
	filters: []Filter{
		{Key: "page", Column: "page", Op: OpEqual},
		{Key: "mediaType", Column: "media_type", Op: OpEqual},
	},
	search:   []string{"title", "subtitle"},
	statuses: domain.ToggleStatuses,
	orderBy:  "display_order ASC, id ASC",
	touch:    true,
}

var brandingPartnerEntity = entity[domain.BrandingPartner, domain.BrandingPartnerPatch]{
	name:  "BrandingPartnerRepo",
	table: "branding_partners",
	columns: []string{
		"id", "name", "logo_url", "logo_public_id", "website_url", "status", "display_order",
		"created_at", "updated_at",
	},
	scan: func(s scanner) (domain.BrandingPartner, error) {
		var b domain.BrandingPartner
		err := s.Scan(&b.ID, &b.Name, &b.LogoURL, &b.LogoPublicID, &b.WebsiteURL, &b.Status,
			&b.DisplayOrder, &b.CreatedAt, &b.UpdatedAt)
		return b, err
	},
	insert: func(b domain.BrandingPartner) ([]field, error) {
		var s fieldSet
		s.add("name", b.Name)
		s.add("logo_url", b.LogoURL)
		s.add("logo_public_id", b.LogoPublicID)
		s.add("website_url", b.WebsiteURL)
		s.add("status", b.Status)
		s.add("display_order", b.DisplayOrder)
		return s.result()
	},
	patch: func(p domain.BrandingPartnerPatch) ([]field, error) {
		var s fieldSet
		opt(&s, "name", p.Name)
		opt(&s, "logo_url", p.LogoURL)
		opt(&s, "logo_public_id", p.LogoPublicID)
		opt(&s, "website_url", p.WebsiteURL)
		opt(&s, "status", p.Status)
		opt(&s, "display_order", p.DisplayOrder)
		return s.result()
	},
	search:   []string{"name"},
	statuses: domain.ToggleStatuses,
	orderBy:  "display_order ASC, id ASC",
	touch:    true,
}

var hotelPartnerEntity = entity[domain.HotelPartner, domain.HotelPartnerPatch]{
	name:  "HotelPartnerRepo",
	table: "hotel_partners",
	columns: []string{
		"id", "name", "location", "description", "star_rating", "amenities", "image_url",
		"image_public_id", "website_url", "status", "display_order", "created_at", "updated_at",
	},
	scan: func(s scanner) (domain.HotelPartner, error) {
		var (
			h         domain.HotelPartner
			amenities []byte
		)
		err := s.Scan(&h.ID, &h.Name, &h.Location, &h.Description, &h.StarRating, &amenities,
			&h.ImageURL, &h.ImagePublicID, &h.WebsiteURL, &h.Status, &h.DisplayOrder,
			&h.CreatedAt, &h.UpdatedAt)
		if err != nil {
			return domain.HotelPartner{}, err
		}
		h.Amenities = decodeList[string](amenities)
		return h, nil
	},
	insert: func(h domain.HotelPartner) ([]field, error) {
		var s fieldSet
		s.add("name", h.Name)
		s.add("location", h.Location)
		s.add("description", h.Description)
		s.add("star_rating", h.StarRating)
		listOf(&s, "amenities", h.Amenities)
		s.add("image_url", h.ImageURL)
		s.add("image_public_id", h.ImagePublicID)
		s.add("website_url", h.WebsiteURL)
		s.add("status", h.Status)
		s.add("display_order", h.DisplayOrder)
		return s.result()
	},
	patch: func(p domain.HotelPartnerPatch) ([]field, error) {
		var s fieldSet
		opt(&s, "name", p.Name)
		opt(&s, "location", p.Location)
		opt(&s, "description", p.Description)
		opt(&s, "star_rating", p.StarRating)
		optList(&s, "amenities", p.Amenities)
		opt(&s, "image_url", p.ImageURL)
		opt(&s, "image_public_id", p.ImagePublicID)
		opt(&s, "website_url", p.WebsiteURL)
		opt(&s, "status", p.Status)
		opt(&s, "display_order", p.DisplayOrder)
		return s.result()
	},
	filters:  []Filter{{Key: "location", Column: "location", Op: OpContains}},
	search:   []string{"name", "location"},
	statuses: domain.ToggleStatuses,
	orderBy:  "display_order ASC, id ASC",
	touch:    true,
}

var teamEntity = entity[domain.TeamMember, domain.TeamMemberPatch]{
	name:  "TeamRepo",
	table: "team_members",
	columns: []string{
		"id", "name", "designation", "department", "bio", "photo_url", "photo_public_id",
		"social_links", "status", "display_order", "created_at", "updated_at",
	},
	scan: func(s scanner) (domain.TeamMember, error) {
		var (
			m     domain.TeamMember
			links []byte
		)
		err := s.Scan(&m.ID, &m.Name, &m.Designation, &m.Department, &m.Bio, &m.PhotoURL,
			&m.PhotoPublicID, &links, &m.Status, &m.DisplayOrder, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return domain.TeamMember{}, err
		}
		m.SocialLinks = decodeMap[string](links)
		return m, nil
	},
	insert: func(m domain.TeamMember) ([]field, error) {
		var s fieldSet
		s.add("name", m.Name)
		s.add("designation", m.Designation)
		s.add("department", m.Department)
		s.add("bio", m.Bio)
		s.add("photo_url", m.PhotoURL)
		s.add("photo_public_id", m.PhotoPublicID)
		mapOf(&s, "social_links", m.SocialLinks)
		s.add("status", m.Status)
		s.add("display_order", m.DisplayOrder)
		return s.result()
	},
	patch: func(p domain.TeamMemberPatch) ([]field, error) {
		var s fieldSet
		opt(&s, "name", p.Name)
		opt(&s, "designation", p.Designation)
		opt(&s, "department", p.Department)
		opt(&s, "bio", p.Bio)
		opt(&s, "photo_url", p.PhotoURL)
		opt(&s, "photo_public_id", p.PhotoPublicID)
		optMap(&s, "social_links", p.SocialLinks)
		opt(&s, "status", p.Status)
		opt(&s, "display_order", p.DisplayOrder)
		return s.result()
	},
	filters:  []Filter{{Key: "department", Column: "department", Op: OpEqual}},
	search:   []string{"name", "designation"},
	statuses: domain.ToggleStatuses,
	orderBy:  "display_order ASC, id ASC",
	touch:    true,
}
