package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-agency/backend/internal/auth"
	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/handler"
	"github.com/pkordes/travel-agency/backend/internal/service"
)

// mockResource is a test double for handler.Resource.
// Set only the method fields your test needs.
type mockResource[T any, P any] struct {
	create      func(ctx context.Context, v T) (T, error)
	get         func(ctx context.Context, id int64) (T, error)
	getVisible  func(ctx context.Context, id int64) (T, error)
	list        func(ctx context.Context, q domain.ListQuery) ([]T, error)
	listVisible func(ctx context.Context, q domain.ListQuery) ([]T, error)
	update      func(ctx context.Context, id int64, p P) (T, error)
	delete      func(ctx context.Context, id int64) (T, error)
}

func (m *mockResource[T, P]) Create(ctx context.Context, v T) (T, error) { return m.create(ctx, v) }
func (m *mockResource[T, P]) Get(ctx context.Context, id int64) (T, error) {
	return m.get(ctx, id)
}
func (m *mockResource[T, P]) GetVisible(ctx context.Context, id int64) (T, error) {
	return m.getVisible(ctx, id)
}
func (m *mockResource[T, P]) List(ctx context.Context, q domain.ListQuery) ([]T, error) {
	return m.list(ctx, q)
}
func (m *mockResource[T, P]) ListVisible(ctx context.Context, q domain.ListQuery) ([]T, error) {
	return m.listVisible(ctx, q)
}
func (m *mockResource[T, P]) Update(ctx context.Context, id int64, p P) (T, error) {
	return m.update(ctx, id, p)
}
func (m *mockResource[T, P]) Delete(ctx context.Context, id int64) (T, error) {
	return m.delete(ctx, id)
}

type mockTripServicer struct {
	mockResource[domain.Trip, domain.TripPatch]
	getBySlug func(ctx context.Context, slug string, public bool) (domain.Trip, error)
}

func (m *mockTripServicer) GetBySlug(ctx context.Context, slug string, public bool) (domain.Trip, error) {
	return m.getBySlug(ctx, slug, public)
}

type mockEnquiryServicer struct {
	mockResource[domain.Enquiry, domain.EnquiryPatch]
	submit func(ctx context.Context, e domain.Enquiry) (domain.Enquiry, error)
}

func (m *mockEnquiryServicer) Submit(ctx context.Context, e domain.Enquiry) (domain.Enquiry, error) {
	return m.submit(ctx, e)
}

type mockSettingsServicer struct {
	mockResource[domain.ProductPageSettings, domain.ProductPageSettingsPatch]
	getByPageKey func(ctx context.Context, key string, public bool) (domain.ProductPageSettings, error)
}

func (m *mockSettingsServicer) GetByPageKey(ctx context.Context, key string, public bool) (domain.ProductPageSettings, error) {
	return m.getByPageKey(ctx, key, public)
}

type mockAuthServicer struct {
	login         func(ctx context.Context, email, password string) (service.Session, error)
	me            func(ctx context.Context, userID int64) (domain.User, error)
	requestReset  func(ctx context.Context, email string) error
	resetPassword func(ctx context.Context, email, code, newPassword string) error
}

func (m *mockAuthServicer) Login(ctx context.Context, email, password string) (service.Session, error) {
	return m.login(ctx, email, password)
}
func (m *mockAuthServicer) Me(ctx context.Context, userID int64) (domain.User, error) {
	return m.me(ctx, userID)
}
func (m *mockAuthServicer) RequestPasswordReset(ctx context.Context, email string) error {
	return m.requestReset(ctx, email)
}
func (m *mockAuthServicer) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	return m.resetPassword(ctx, email, code, newPassword)
}

type mockExportServicer struct {
	enquiries func(ctx context.Context, q domain.ListQuery) ([]domain.EnquiryExportRow, error)
}

func (m *mockExportServicer) Enquiries(ctx context.Context, q domain.ListQuery) ([]domain.EnquiryExportRow, error) {
	return m.enquiries(ctx, q)
}

type mockPinger struct {
	err error
}

func (m mockPinger) Ping(context.Context) error { return m.err }

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.TripServicer     = (*mockTripServicer)(nil)
	_ handler.EnquiryServicer  = (*mockEnquiryServicer)(nil)
	_ handler.SettingsServicer = (*mockSettingsServicer)(nil)
	_ handler.AuthServicer     = (*mockAuthServicer)(nil)
	_ handler.ExportServicer   = (*mockExportServicer)(nil)
	_ handler.Pinger           = mockPinger{}
)

// ---- helpers ---------------------------------------------------------------

var testTokens = auth.NewTokens("handler-test-secret", time.Hour)

// newHTTPHandler wires a Server into a chi router, mirroring main.go.
func newHTTPHandler(d handler.Deps) http.Handler {
	d.Tokens = testTokens
	r := chi.NewRouter()
	handler.NewServer(d).Register(r)
	return r
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	token, err := testTokens.Issue(1, role)
	require.NoError(t, err)
	return "Bearer " + token
}

// do sends a request and returns the recorder. authz may be empty.
func do(t *testing.T, h http.Handler, method, target, authz string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func decodeField[V any](t *testing.T, body map[string]json.RawMessage, key string) V {
	t.Helper()
	raw, ok := body[key]
	require.True(t, ok, "missing key %q", key)
	var v V
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:        7,
		Title:     "Spiti Valley Trek",
		Slug:      "spiti-valley-trek",
		Price:     1200,
		Status:    domain.StatusActive,
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

type mockReviewServicer struct {
	mockResource[domain.Review, domain.ReviewPatch]
	submit func(ctx context.Context, r domain.Review) (domain.Review, error)
}

func (m *mockReviewServicer) Submit(ctx context.Context, r domain.Review) (domain.Review, error) {
	return m.submit(ctx, r)
}

var _ handler.ReviewServicer = (*mockReviewServicer)(nil)
