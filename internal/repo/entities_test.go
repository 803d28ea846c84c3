package repo_test

import (
	"context"
	"testing"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/repo"
	"github.com/pkordes/travel-agency/backend/testutil"
)

// assertRoundTrip creates v, reads it back by id, deletes it, and checks the
// three results agree.
func assertRoundTrip[T domain.Record, P any](t *testing.T, r repo.Repository[T, P], v T) T {
	t.Helper()
	ctx := context.Background()

	created, err := r.Create(ctx, v)
	require.NoError(t, err)
	assert.NotZero(t, created.RecordID())

	got, err := r.FindByID(ctx, created.RecordID())
	require.NoError(t, err)
	assert.Equal(t, created, got)

	var empty P
	same, err := r.Update(ctx, created.RecordID(), empty)
	require.NoError(t, err)
	assert.Equal(t, created, same, "empty patch is a read-through")

	deleted, err := r.Delete(ctx, created.RecordID())
	require.NoError(t, err)
	assert.Equal(t, created, deleted)
	return created
}

func TestRoundTrip_AllEntities(t *testing.T) {
	tx := testutil.NewTx(t)

	t.Run("blog", func(t *testing.T) {
		got := assertRoundTrip[domain.Blog, domain.BlogPatch](t, repo.NewBlogRepo(tx), domain.Blog{
			Title: "Ten days in Ladakh", Slug: "ten-days-in-ladakh", Tags: []string{"ladakh", "roadtrip"},
		})
		assert.Equal(t, domain.StatusDraft, got.Status)
		assert.Nil(t, got.PublishedAt)
	})

	t.Run("review", func(t *testing.T) {
		got := assertRoundTrip(t, repo.NewReviewRepo(tx), domain.Review{Name: "Asha", Rating: 5, Comment: "Superb"})
		assert.Equal(t, domain.StatusPending, got.Status)
	})

	t.Run("written review", func(t *testing.T) {
		assertRoundTrip(t, repo.NewWrittenReviewRepo(tx), domain.WrittenReview{ReviewerName: "Ravi", Content: "Loved it"})
	})

	t.Run("certificate", func(t *testing.T) {
		issued := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
		got := assertRoundTrip(t, repo.NewCertificateRepo(tx), domain.Certificate{Title: "Adventure Tour Operator", IssuedAt: &issued})
		require.NotNil(t, got.IssuedAt)
		assert.True(t, got.IssuedAt.Equal(issued))
	})

	t.Run("destination", func(t *testing.T) {
		got := assertRoundTrip(t, repo.NewDestinationRepo(tx), domain.Destination{
			Name: "Spiti", Highlights: []string{"Key", "Chandratal"},
		})
		assert.Equal(t, []domain.MediaItem{}, got.Gallery)
	})

	t.Run("driver", func(t *testing.T) {
		assertRoundTrip(t, repo.NewDriverRepo(tx), domain.Driver{Name: "Sonam", Languages: []string{"hi", "en"}})
	})

	t.Run("enquiry", func(t *testing.T) {
		travellers := 4
		got := assertRoundTrip(t, repo.NewEnquiryRepo(tx), domain.Enquiry{
			Name: "Meera", Email: "meera@example.com", Travellers: &travellers,
			TravelDate: &openapi_types.Date{Time: time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC)},
		})
		assert.Equal(t, domain.StatusNew, got.Status)
		assert.Equal(t, "website", got.Source)
		require.NotNil(t, got.TravelDate)
		assert.Equal(t, "2025-10-02", got.TravelDate.Time.Format("2006-01-02"))
	})

	t.Run("faq", func(t *testing.T) {
		assertRoundTrip(t, repo.NewFAQRepo(tx), domain.FAQ{Question: "Do you provide oxygen?", Answer: "Yes"})
	})

	t.Run("banner", func(t *testing.T) {
		got := assertRoundTrip(t, repo.NewBannerRepo(tx), domain.Banner{Page: "home", MediaURL: "https://cdn.example.com/hero.mp4"})
		assert.Equal(t, domain.MediaImage, got.MediaType)
	})

	t.Run("branding partner", func(t *testing.T) {
		assertRoundTrip(t, repo.NewBrandingPartnerRepo(tx), domain.BrandingPartner{Name: "Outlook Traveller"})
	})

	t.Run("hotel partner", func(t *testing.T) {
		stars := 4
		assertRoundTrip(t, repo.NewHotelPartnerRepo(tx), domain.HotelPartner{Name: "Snow Lion", StarRating: &stars, Amenities: []string{"wifi"}})
	})

	t.Run("team", func(t *testing.T) {
		got := assertRoundTrip(t, repo.NewTeamRepo(tx), domain.TeamMember{
			Name: "Tashi", SocialLinks: map[string]string{"instagram": "https://instagram.com/tashi"},
		})
		assert.Equal(t, "https://instagram.com/tashi", got.SocialLinks["instagram"])
	})

	t.Run("settings", func(t *testing.T) {
		got := assertRoundTrip[domain.ProductPageSettings, domain.ProductPageSettingsPatch](t, repo.NewSettingsRepo(tx), domain.ProductPageSettings{
			PageKey:  "treks",
			Sections: []domain.PageSection{{Type: "grid", Title: "Popular"}},
			Extra:    map[string]any{"showFilters": true},
		})
		assert.Equal(t, true, got.Extra["showFilters"])
	})

	t.Run("user", func(t *testing.T) {
		got := assertRoundTrip[domain.User, domain.UserPatch](t, repo.NewUserRepo(tx), domain.User{Name: "Ops", Email: "ops@example.com", PasswordHash: "x"})
		assert.Equal(t, domain.RoleAdmin, got.Role)
	})
}

func TestUserRepo_FindByEmailAndConflict(t *testing.T) {
	r := repo.NewUserRepo(testutil.NewTx(t))
	ctx := context.Background()

	u, err := r.Create(ctx, domain.User{Name: "Owner", Email: "owner@example.com", PasswordHash: "hash", Role: domain.RoleMainAdmin})
	require.NoError(t, err)

	got, err := r.FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)

	_, err = r.Create(ctx, domain.User{Name: "Other", Email: "owner@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSettingsRepo_FindByPageKey(t *testing.T) {
	r := repo.NewSettingsRepo(testutil.NewTx(t))
	ctx := context.Background()

	_, err := r.Create(ctx, domain.ProductPageSettings{PageKey: "tours", HeroTitle: "Tours"})
	require.NoError(t, err)

	got, err := r.FindByPageKey(ctx, "tours")
	require.NoError(t, err)
	assert.Equal(t, "Tours", got.HeroTitle)
	assert.Equal(t, []domain.PageSection{}, got.Sections)

	_, err = r.FindByPageKey(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOtpRepo_Lifecycle(t *testing.T) {
	r := repo.NewOtpRepo(testutil.NewTx(t))
	ctx := context.Background()
	now := time.Now()

	old, err := r.Create(ctx, domain.Otp{Email: "a@example.com", CodeHash: "h1", Purpose: domain.PurposePasswordReset, ExpiresAt: now.Add(domain.OTPTTL)})
	require.NoError(t, err)

	require.NoError(t, r.InvalidateAll(ctx, "a@example.com", domain.PurposePasswordReset, now))

	_, err = r.FindLatestActive(ctx, "a@example.com", domain.PurposePasswordReset, now)
	assert.ErrorIs(t, err, domain.ErrNotFound, "invalidated codes are not active")

	fresh, err := r.Create(ctx, domain.Otp{Email: "a@example.com", CodeHash: "h2", Purpose: domain.PurposePasswordReset, ExpiresAt: now.Add(domain.OTPTTL)})
	require.NoError(t, err)

	got, err := r.FindLatestActive(ctx, "a@example.com", domain.PurposePasswordReset, now)
	require.NoError(t, err)
	assert.Equal(t, fresh.ID, got.ID)
	assert.Equal(t, "h2", got.CodeHash)

	n, err := r.IncrementAttempts(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	removed, err := r.DeleteExpired(ctx, now.Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	_, err = r.FindByID(ctx, old.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrphanRepo(t *testing.T) {
	r := repo.NewOrphanRepo(testutil.NewTx(t))
	ctx := context.Background()

	require.NoError(t, r.Record(ctx, "trips/a", "timeout"))
	require.NoError(t, r.Record(ctx, "trips/b", "timeout"))

	due, err := r.ListDue(ctx, domain.MaxOrphanAttempts, 10)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "trips/a", due[0].MediaKey)

	for i := 0; i < domain.MaxOrphanAttempts; i++ {
		require.NoError(t, r.Fail(ctx, due[1].ID, "still failing"))
	}
	require.NoError(t, r.Resolve(ctx, due[0].ID))

	due, err = r.ListDue(ctx, domain.MaxOrphanAttempts, 10)
	require.NoError(t, err)
	assert.Empty(t, due)

	exhausted, err := r.CountExhausted(ctx, domain.MaxOrphanAttempts)
	require.NoError(t, err)
	assert.Equal(t, 1, exhausted)

	assert.ErrorIs(t, r.Resolve(ctx, 999999999), domain.ErrNotFound)
}
