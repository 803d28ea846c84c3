// Package handler implements the HTTP handlers for the travel agency API.
// Every entity is served by the same generic resource routes (resource.go);
// entity-specific routes live in their own files. All handlers share the
// Server struct so they can reach its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/middleware"
	"github.com/pkordes/travel-agency/backend/internal/service"
)

// Resource defines the operations the generic resource routes depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type Resource[T any, P any] interface {
	Create(ctx context.Context, v T) (T, error)
	Get(ctx context.Context, id int64) (T, error)
	GetVisible(ctx context.Context, id int64) (T, error)
	List(ctx context.Context, q domain.ListQuery) ([]T, error)
	ListVisible(ctx context.Context, q domain.ListQuery) ([]T, error)
	Update(ctx context.Context, id int64, p P) (T, error)
	Delete(ctx context.Context, id int64) (T, error)
}

// TripServicer adds slug lookups to the trip resource.
type TripServicer interface {
	Resource[domain.Trip, domain.TripPatch]
	GetBySlug(ctx context.Context, slug string, public bool) (domain.Trip, error)
}

// BlogServicer adds slug lookups to the blog resource.
type BlogServicer interface {
	Resource[domain.Blog, domain.BlogPatch]
	GetBySlug(ctx context.Context, slug string, public bool) (domain.Blog, error)
}

// ReviewServicer accepts reviews from anonymous visitors.
type ReviewServicer interface {
	Resource[domain.Review, domain.ReviewPatch]
	Submit(ctx context.Context, r domain.Review) (domain.Review, error)
}

// EnquiryServicer accepts enquiries from anonymous visitors.
type EnquiryServicer interface {
	Resource[domain.Enquiry, domain.EnquiryPatch]
	Submit(ctx context.Context, e domain.Enquiry) (domain.Enquiry, error)
}

// SettingsServicer adds page-key lookups to the product page settings.
type SettingsServicer interface {
	Resource[domain.ProductPageSettings, domain.ProductPageSettingsPatch]
	GetByPageKey(ctx context.Context, pageKey string, public bool) (domain.ProductPageSettings, error)
}

// AuthServicer is the login and password reset flow.
type AuthServicer interface {
	Login(ctx context.Context, email, password string) (service.Session, error)
	Me(ctx context.Context, userID int64) (domain.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

// ExportServicer produces the flat enquiry export.
type ExportServicer interface {
	Enquiries(ctx context.Context, q domain.ListQuery) ([]domain.EnquiryExportRow, error)
}

// Pinger reports whether the database is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps holds everything the Server needs. Wire it in main.go.
type Deps struct {
	Trips            TripServicer
	Blogs            BlogServicer
	Reviews          ReviewServicer
	WrittenReviews   Resource[domain.WrittenReview, domain.WrittenReviewPatch]
	Certificates     Resource[domain.Certificate, domain.CertificatePatch]
	Destinations     Resource[domain.Destination, domain.DestinationPatch]
	Drivers          Resource[domain.Driver, domain.DriverPatch]
	Enquiries        EnquiryServicer
	FAQs             Resource[domain.FAQ, domain.FAQPatch]
	Banners          Resource[domain.Banner, domain.BannerPatch]
	BrandingPartners Resource[domain.BrandingPartner, domain.BrandingPartnerPatch]
	HotelPartners    Resource[domain.HotelPartner, domain.HotelPartnerPatch]
	Team             Resource[domain.TeamMember, domain.TeamMemberPatch]
	Users            Resource[domain.User, domain.UserPatch]
	Settings         SettingsServicer
	Auth             AuthServicer
	Export           ExportServicer
	DB               Pinger

	Tokens  middleware.TokenParser
	Limiter *middleware.RateLimiter // nil disables rate limiting

	Log *zap.Logger
	// Production hides error details from response bodies.
	Production bool
}

// Server serves every API endpoint. Methods are in domain-specific files
// but all operate on this struct.
type Server struct {
	d       Deps
	log     *zap.Logger
	admin   func(http.Handler) http.Handler
	authed  func(http.Handler) http.Handler
	limiter *middleware.RateLimiter
}

// NewServer constructs the Server with all its dependencies.
func NewServer(d Deps) *Server {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		d:       d,
		log:     log,
		admin:   middleware.RequireAdmin(d.Tokens),
		authed:  middleware.RequireAuth(d.Tokens),
		limiter: d.Limiter,
	}
}

// Register mounts every route on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", s.authRoutes)

		r.Route("/trips", func(r chi.Router) {
			r.Get("/slug/{slug}", s.GetTripBySlug)
			mount(s, r, resource[domain.Trip, domain.TripPatch]{
				svc: s.d.Trips, label: "Trip", singular: "trip", plural: "trips", public: true,
			})
		})
		r.Route("/blogs", func(r chi.Router) {
			r.Get("/slug/{slug}", s.GetBlogBySlug)
			mount(s, r, resource[domain.Blog, domain.BlogPatch]{
				svc: s.d.Blogs, label: "Blog", singular: "blog", plural: "blogs", public: true,
			})
		})
		r.Route("/reviews", func(r chi.Router) {
			mount(s, r, resource[domain.Review, domain.ReviewPatch]{
				svc: s.d.Reviews, label: "Review", singular: "review", plural: "reviews", public: true,
				submit: s.submitReview, limitKey: "reviews", redact: domain.Review.Public,
			})
		})
		r.Route("/enquiries", func(r chi.Router) {
			r.With(s.admin).Get("/export", s.GetEnquiryExport)
			mount(s, r, resource[domain.Enquiry, domain.EnquiryPatch]{
				svc: s.d.Enquiries, label: "Enquiry", singular: "enquiry", plural: "enquiries",
				submit: s.submitEnquiry, limitKey: "enquiries",
			})
		})
		r.Route("/product-page-settings", func(r chi.Router) {
			r.Get("/key/{pageKey}", s.GetSettingsByPageKey)
			mount(s, r, resource[domain.ProductPageSettings, domain.ProductPageSettingsPatch]{
				svc: s.d.Settings, label: "Page settings", singular: "settings", plural: "settings", public: true,
			})
		})
		r.Route("/users", func(r chi.Router) {
			mount(s, r, resource[domain.User, domain.UserPatch]{
				svc: s.d.Users, label: "User", singular: "user", plural: "users",
			})
		})

		r.Route("/written-reviews", func(r chi.Router) {
			mount(s, r, resource[domain.WrittenReview, domain.WrittenReviewPatch]{
				svc: s.d.WrittenReviews, label: "Written review", singular: "writtenReview", plural: "writtenReviews", public: true,
			})
		})
		r.Route("/certificates", func(r chi.Router) {
			mount(s, r, resource[domain.Certificate, domain.CertificatePatch]{
				svc: s.d.Certificates, label: "Certificate", singular: "certificate", plural: "certificates", public: true,
			})
		})
		r.Route("/destinations", func(r chi.Router) {
			mount(s, r, resource[domain.Destination, domain.DestinationPatch]{
				svc: s.d.Destinations, label: "Destination", singular: "destination", plural: "destinations", public: true,
			})
		})
		r.Route("/drivers", func(r chi.Router) {
			mount(s, r, resource[domain.Driver, domain.DriverPatch]{
				svc: s.d.Drivers, label: "Driver", singular: "driver", plural: "drivers", public: true,
			})
		})
		r.Route("/faqs", func(r chi.Router) {
			mount(s, r, resource[domain.FAQ, domain.FAQPatch]{
				svc: s.d.FAQs, label: "FAQ", singular: "faq", plural: "faqs", public: true,
			})
		})
		r.Route("/banners", func(r chi.Router) {
			mount(s, r, resource[domain.Banner, domain.BannerPatch]{
				svc: s.d.Banners, label: "Banner", singular: "banner", plural: "banners", public: true,
			})
		})
		r.Route("/branding-partners", func(r chi.Router) {
			mount(s, r, resource[domain.BrandingPartner, domain.BrandingPartnerPatch]{
				svc: s.d.BrandingPartners, label: "Branding partner", singular: "brandingPartner", plural: "brandingPartners", public: true,
			})
		})
		r.Route("/hotel-partners", func(r chi.Router) {
			mount(s, r, resource[domain.HotelPartner, domain.HotelPartnerPatch]{
				svc: s.d.HotelPartners, label: "Hotel partner", singular: "hotelPartner", plural: "hotelPartners", public: true,
			})
		})
		r.Route("/team", func(r chi.Router) {
			mount(s, r, resource[domain.TeamMember, domain.TeamMemberPatch]{
				svc: s.d.Team, label: "Team member", singular: "teamMember", plural: "teamMembers", public: true,
			})
		})
	})
}

func (s *Server) submitReview(ctx context.Context, r domain.Review) (domain.Review, error) {
	return s.d.Reviews.Submit(ctx, r)
}

func (s *Server) submitEnquiry(ctx context.Context, e domain.Enquiry) (domain.Enquiry, error) {
	return s.d.Enquiries.Submit(ctx, e)
}
