// Command seed fills a development database with fake trips, blog posts,
// FAQs and approved reviews. Records go through the services, so slugs and
// validation behave exactly as they do behind the API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/observability"
	"github.com/pkordes/travel-agency/backend/internal/repo"
	"github.com/pkordes/travel-agency/backend/internal/service"
)

var (
	categories   = []string{"Trekking", "Heritage", "Wildlife", "Beach", "Pilgrimage"}
	difficulties = []string{"easy", "moderate", "challenging"}
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		dsn  = flag.String("dsn", os.Getenv("DATABASE_URL"), "Postgres connection string")
		n    = flag.Int("n", 10, "records to create per entity")
		seed = flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	)
	flag.Parse()
	if *dsn == "" {
		return errors.New("DATABASE_URL or -dsn is required")
	}
	if *n < 1 {
		return fmt.Errorf("-n must be at least 1, got %d", *n)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	gofakeit.Seed(*seed)

	logger, err := observability.NewLogger("info", "development")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, *dsn)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	s := seeder{
		trips:   service.NewTripService(repo.NewTripRepo(pool), nil, logger),
		blogs:   service.NewBlogService(repo.NewBlogRepo(pool), nil, logger, nil),
		faqs:    service.NewFAQService(repo.NewFAQRepo(pool), nil, logger),
		reviews: service.NewReviewService(repo.NewReviewRepo(pool), logger),
		log:     logger,
	}
	if err := s.run(ctx, *n); err != nil {
		return err
	}
	logger.Info("seed complete", zap.Int("perEntity", *n), zap.Int64("seed", *seed))
	return nil
}

type seeder struct {
	trips   *service.TripService
	blogs   *service.BlogService
	faqs    *service.FAQService
	reviews *service.ReviewService
	log     *zap.Logger
}

func (s seeder) run(ctx context.Context, n int) error {
	var tripIDs []int64
	for i := 0; i < n; i++ {
		t, err := s.trips.Create(ctx, fakeTrip(i))
		if skip(s.log, "trip", err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("create trip: %w", err)
		}
		tripIDs = append(tripIDs, t.ID)
	}

	for i := 0; i < n; i++ {
		_, err := s.blogs.Create(ctx, fakeBlog())
		if skip(s.log, "blog", err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("create blog: %w", err)
		}
	}

	for i := 0; i < n; i++ {
		if _, err := s.faqs.Create(ctx, fakeFAQ(i)); err != nil {
			return fmt.Errorf("create faq: %w", err)
		}
	}

	for i := 0; i < n; i++ {
		r := fakeReview()
		if len(tripIDs) > 0 {
			id := tripIDs[gofakeit.Number(0, len(tripIDs)-1)]
			r.TripID = &id
		}
		if _, err := s.reviews.Create(ctx, r); err != nil {
			return fmt.Errorf("create review: %w", err)
		}
	}
	return nil
}

// skip reports whether err is a slug collision, which is expected now and
// then with generated titles.
func skip(log *zap.Logger, entity string, err error) bool {
	if errors.Is(err, domain.ErrConflict) {
		log.Warn("skipping duplicate", zap.String("entity", entity), zap.Error(err))
		return true
	}
	return false
}

func fakeTrip(i int) domain.Trip {
	days := gofakeit.Number(2, 7)
	itinerary := make([]domain.ItineraryDay, days)
	for d := range itinerary {
		itinerary[d] = domain.ItineraryDay{
			Day:         d + 1,
			Title:       gofakeit.Sentence(3),
			Description: gofakeit.Paragraph(1, 2, 12, " "),
			Meals:       []string{"breakfast", "dinner"},
		}
	}
	group := gofakeit.Number(6, 20)
	return domain.Trip{
		Title:            fmt.Sprintf("%s %s Tour", gofakeit.City(), gofakeit.Adjective()),
		ShortDescription: gofakeit.Sentence(12),
		Description:      gofakeit.Paragraph(2, 4, 15, "\n\n"),
		Category:         gofakeit.RandomString(categories),
		Location:         gofakeit.Country(),
		Duration:         fmt.Sprintf("%d days", days),
		Difficulty:       gofakeit.RandomString(difficulties),
		Price:            gofakeit.Price(300, 4000),
		MaxGroupSize:     &group,
		ImageURL:         fmt.Sprintf("https://picsum.photos/seed/%s/1200/800", gofakeit.UUID()),
		Itinerary:        itinerary,
		Inclusions:       []string{"Accommodation", "Local guide", "Transfers"},
		Exclusions:       []string{"Flights", "Travel insurance"},
		Highlights:       []string{gofakeit.Sentence(4), gofakeit.Sentence(4)},
		Featured:         i%4 == 0,
		Status:           domain.StatusActive,
		DisplayOrder:     i,
	}
}

func fakeBlog() domain.Blog {
	return domain.Blog{
		Title:         gofakeit.Sentence(6),
		Excerpt:       gofakeit.Sentence(20),
		Content:       gofakeit.Paragraph(4, 5, 18, "\n\n"),
		Category:      gofakeit.RandomString(categories),
		Tags:          []string{gofakeit.Word(), gofakeit.Word()},
		CoverImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/1200/630", gofakeit.UUID()),
		Author:        gofakeit.Name(),
		Status:        domain.StatusPublished,
	}
}

func fakeFAQ(i int) domain.FAQ {
	return domain.FAQ{
		Question:     gofakeit.Question(),
		Answer:       gofakeit.Paragraph(1, 3, 12, " "),
		Category:     gofakeit.RandomString(categories),
		Status:       domain.StatusActive,
		DisplayOrder: i,
	}
}

func fakeReview() domain.Review {
	return domain.Review{
		Name:    gofakeit.Name(),
		Email:   gofakeit.Email(),
		Rating:  gofakeit.Number(3, 5),
		Comment: gofakeit.Paragraph(1, 3, 14, " "),
		Status:  domain.StatusApproved,
	}
}
