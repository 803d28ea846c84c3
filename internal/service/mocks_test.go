package service_test

import (
	"context"
	"time"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// mockRepo is a hand-written test double for repo.Repository.
// Each method is a function field; set only the ones your test needs.
type mockRepo[T any, P any] struct {
	create   func(ctx context.Context, v T) (T, error)
	findByID func(ctx context.Context, id int64) (T, error)
	findAll  func(ctx context.Context, q domain.ListQuery) ([]T, error)
	update   func(ctx context.Context, id int64, p P) (T, error)
	delete   func(ctx context.Context, id int64) (T, error)
}

func (m *mockRepo[T, P]) Create(ctx context.Context, v T) (T, error) { return m.create(ctx, v) }
func (m *mockRepo[T, P]) FindByID(ctx context.Context, id int64) (T, error) {
	return m.findByID(ctx, id)
}
func (m *mockRepo[T, P]) FindAll(ctx context.Context, q domain.ListQuery) ([]T, error) {
	return m.findAll(ctx, q)
}
func (m *mockRepo[T, P]) Update(ctx context.Context, id int64, p P) (T, error) {
	return m.update(ctx, id, p)
}
func (m *mockRepo[T, P]) Delete(ctx context.Context, id int64) (T, error) { return m.delete(ctx, id) }

type mockTripRepo struct {
	mockRepo[domain.Trip, domain.TripPatch]
	findBySlug func(ctx context.Context, slug string) (domain.Trip, error)
}

func (m *mockTripRepo) FindBySlug(ctx context.Context, slug string) (domain.Trip, error) {
	return m.findBySlug(ctx, slug)
}

type mockBlogRepo struct {
	mockRepo[domain.Blog, domain.BlogPatch]
	findBySlug func(ctx context.Context, slug string) (domain.Blog, error)
}

func (m *mockBlogRepo) FindBySlug(ctx context.Context, slug string) (domain.Blog, error) {
	return m.findBySlug(ctx, slug)
}

type mockUserRepo struct {
	mockRepo[domain.User, domain.UserPatch]
	findByEmail func(ctx context.Context, email string) (domain.User, error)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.findByEmail(ctx, email)
}

type mockOtpRepo struct {
	mockRepo[domain.Otp, domain.OtpPatch]
	findLatestActive  func(ctx context.Context, email, purpose string, now time.Time) (domain.Otp, error)
	incrementAttempts func(ctx context.Context, id int64) (int, error)
	invalidateAll     func(ctx context.Context, email, purpose string, now time.Time) error
	deleteExpired     func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockOtpRepo) FindLatestActive(ctx context.Context, email, purpose string, now time.Time) (domain.Otp, error) {
	return m.findLatestActive(ctx, email, purpose, now)
}
func (m *mockOtpRepo) IncrementAttempts(ctx context.Context, id int64) (int, error) {
	return m.incrementAttempts(ctx, id)
}
func (m *mockOtpRepo) InvalidateAll(ctx context.Context, email, purpose string, now time.Time) error {
	return m.invalidateAll(ctx, email, purpose, now)
}
func (m *mockOtpRepo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	return m.deleteExpired(ctx, cutoff)
}

type mockSettingsRepo struct {
	mockRepo[domain.ProductPageSettings, domain.ProductPageSettingsPatch]
	findByPageKey func(ctx context.Context, key string) (domain.ProductPageSettings, error)
}

func (m *mockSettingsRepo) FindByPageKey(ctx context.Context, key string) (domain.ProductPageSettings, error) {
	return m.findByPageKey(ctx, key)
}

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.TripRepo     = (*mockTripRepo)(nil)
	_ repo.BlogRepo     = (*mockBlogRepo)(nil)
	_ repo.UserRepo     = (*mockUserRepo)(nil)
	_ repo.OtpRepo      = (*mockOtpRepo)(nil)
	_ repo.SettingsRepo = (*mockSettingsRepo)(nil)
	_ repo.EnquiryRepo  = (*mockRepo[domain.Enquiry, domain.EnquiryPatch])(nil)
)

// echoCreate returns the record it is given after applying set.
func echoCreate[T any](set func(*T)) func(context.Context, T) (T, error) {
	return func(_ context.Context, v T) (T, error) {
		if set != nil {
			set(&v)
		}
		return v, nil
	}
}

// recordingCleaner captures every Cleanup call.
type recordingCleaner struct {
	calls   [][]string
	ctxErrs []error
}

func (c *recordingCleaner) Cleanup(ctx context.Context, keys []string) {
	c.calls = append(c.calls, keys)
	c.ctxErrs = append(c.ctxErrs, ctx.Err())
}

func (c *recordingCleaner) all() []string {
	var out []string
	for _, k := range c.calls {
		out = append(out, k...)
	}
	return out
}
