package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/auth"
	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/service"
)

func ptr[T any](v T) *T { return &v }

type destRepo = mockRepo[domain.Destination, domain.DestinationPatch]

func destination() domain.Destination {
	return domain.Destination{
		ID:            3,
		Name:          "Spiti Valley",
		Status:        domain.StatusActive,
		ImagePublicID: "dest/cover",
		Gallery: []domain.MediaItem{
			{URL: "https://cdn.example.com/a.jpg", PublicID: "dest/a"},
			{URL: "https://cdn.example.com/b.jpg", PublicID: "dest/b"},
		},
	}
}

func TestCatalog_Create_ValidatesStructTags(t *testing.T) {
	r := &destRepo{create: echoCreate[domain.Destination](nil)}
	svc := service.NewDestinationService(r, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), domain.Destination{Name: ""})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "name is required")
}

func TestCatalog_Create_NestedFieldNamedByJSONPath(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{}, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), domain.Trip{
		Title:     "Kedarkantha",
		Itinerary: []domain.ItineraryDay{{Day: 1, Title: ""}},
	})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "itinerary[0].title is required")
}

func TestCatalog_Create_RejectsUnknownStatus(t *testing.T) {
	r := &destRepo{create: echoCreate[domain.Destination](nil)}
	svc := service.NewDestinationService(r, nil, zap.NewNop())

	d := destination()
	d.Status = domain.StatusPublished

	_, err := svc.Create(context.Background(), d)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalog_Create_EmptyStatusLeftForDefault(t *testing.T) {
	var got domain.Destination
	r := &destRepo{create: func(_ context.Context, d domain.Destination) (domain.Destination, error) {
		got = d
		return d, nil
	}}
	svc := service.NewDestinationService(r, nil, zap.NewNop())

	d := destination()
	d.Status = ""
	_, err := svc.Create(context.Background(), d)

	require.NoError(t, err)
	assert.Empty(t, got.Status)
}

func TestCatalog_Create_SetsCreatedByFromCaller(t *testing.T) {
	var got domain.Driver
	r := &mockRepo[domain.Driver, domain.DriverPatch]{create: func(_ context.Context, d domain.Driver) (domain.Driver, error) {
		got = d
		return d, nil
	}}
	svc := service.NewDriverService(r, nil, zap.NewNop())
	ctx := auth.WithIdentity(context.Background(), auth.Identity{UserID: 9, Role: domain.RoleAdmin})

	_, err := svc.Create(ctx, domain.Driver{Name: "Tenzin"})

	require.NoError(t, err)
	require.NotNil(t, got.CreatedBy)
	assert.Equal(t, int64(9), *got.CreatedBy)
}

func TestCatalog_Create_WrapsRepoError(t *testing.T) {
	r := &destRepo{create: func(context.Context, domain.Destination) (domain.Destination, error) {
		return domain.Destination{}, domain.ErrConflict
	}}
	svc := service.NewDestinationService(r, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), destination())

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "service.DestinationService.Create")
}

func TestCatalog_GetVisible_HiddenIsNotFound(t *testing.T) {
	d := destination()
	d.Status = domain.StatusInactive
	r := &destRepo{findByID: func(context.Context, int64) (domain.Destination, error) { return d, nil }}
	svc := service.NewDestinationService(r, nil, zap.NewNop())

	_, err := svc.GetVisible(context.Background(), d.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := svc.Get(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)
}

func TestCatalog_ListVisibility(t *testing.T) {
	var seen []domain.ListQuery
	r := &destRepo{findAll: func(_ context.Context, q domain.ListQuery) ([]domain.Destination, error) {
		seen = append(seen, q)
		return []domain.Destination{}, nil
	}}
	svc := service.NewDestinationService(r, nil, zap.NewNop())

	_, err := svc.ListVisible(context.Background(), domain.ListQuery{IncludeHidden: true, Status: domain.StatusInactive})
	require.NoError(t, err)
	_, err = svc.List(context.Background(), domain.ListQuery{})
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.False(t, seen[0].IncludeHidden, "public list can never include hidden records")
	assert.Equal(t, domain.StatusInactive, seen[0].Status)
	assert.True(t, seen[1].IncludeHidden)
}

func TestCatalog_Update_RejectsEmptyRequiredField(t *testing.T) {
	svc := service.NewDestinationService(&destRepo{}, nil, zap.NewNop())

	_, err := svc.Update(context.Background(), 3, domain.DestinationPatch{Name: ptr("")})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalog_Update_RejectsUnknownStatus(t *testing.T) {
	svc := service.NewDestinationService(&destRepo{}, nil, zap.NewNop())

	_, err := svc.Update(context.Background(), 3, domain.DestinationPatch{Status: ptr("deleted")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Update(context.Background(), 3, domain.DestinationPatch{Status: ptr("")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalog_Update_NotFound(t *testing.T) {
	r := &destRepo{findByID: func(context.Context, int64) (domain.Destination, error) {
		return domain.Destination{}, domain.ErrNotFound
	}}
	svc := service.NewDestinationService(r, nil, zap.NewNop())

	_, err := svc.Update(context.Background(), 3, domain.DestinationPatch{Region: ptr("Himachal")})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_Update_RemovesDroppedMedia(t *testing.T) {
	before := destination()
	after := before
	after.ImagePublicID = "dest/cover-2"
	after.Gallery = before.Gallery[:1]

	r := &destRepo{
		findByID: func(context.Context, int64) (domain.Destination, error) { return before, nil },
		update: func(context.Context, int64, domain.DestinationPatch) (domain.Destination, error) {
			return after, nil
		},
	}
	cleaner := &recordingCleaner{}
	svc := service.NewDestinationService(r, cleaner, zap.NewNop())

	_, err := svc.Update(context.Background(), before.ID, domain.DestinationPatch{
		ImagePublicID: ptr("dest/cover-2"),
		Gallery:       &after.Gallery,
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"dest/cover", "dest/b"}, cleaner.all())
}

func TestCatalog_Update_NoMediaChangeNoCleanup(t *testing.T) {
	d := destination()
	r := &destRepo{
		findByID: func(context.Context, int64) (domain.Destination, error) { return d, nil },
		update:   func(context.Context, int64, domain.DestinationPatch) (domain.Destination, error) { return d, nil },
	}
	cleaner := &recordingCleaner{}
	svc := service.NewDestinationService(r, cleaner, zap.NewNop())

	_, err := svc.Update(context.Background(), d.ID, domain.DestinationPatch{Region: ptr("Himachal")})

	require.NoError(t, err)
	assert.Empty(t, cleaner.calls)
}

func TestCatalog_Delete_RemovesAllMediaOfPreImage(t *testing.T) {
	d := destination()
	r := &destRepo{delete: func(context.Context, int64) (domain.Destination, error) { return d, nil }}
	cleaner := &recordingCleaner{}
	svc := service.NewDestinationService(r, cleaner, zap.NewNop())

	got, err := svc.Delete(context.Background(), d.ID)

	require.NoError(t, err)
	assert.Equal(t, d.Name, got.Name)
	assert.ElementsMatch(t, []string{"dest/cover", "dest/a", "dest/b"}, cleaner.all())
}

// The row is already gone when the client hangs up, so its media must still
// be handed to the cleaner with a live context.
func TestCatalog_Delete_CanceledRequestStillCleansUp(t *testing.T) {
	d := domain.Destination{ID: 4, Name: "Kaza", ImagePublicID: "dest/kaza"}
	r := &destRepo{delete: func(context.Context, int64) (domain.Destination, error) { return d, nil }}
	cleaner := &recordingCleaner{}
	svc := service.NewDestinationService(r, cleaner, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Delete(ctx, d.ID)

	require.NoError(t, err)
	assert.Equal(t, []string{"dest/kaza"}, cleaner.all())
	require.Len(t, cleaner.ctxErrs, 1)
	assert.NoError(t, cleaner.ctxErrs[0])
}

func TestCatalog_Delete_ErrorSkipsCleanup(t *testing.T) {
	r := &destRepo{delete: func(context.Context, int64) (domain.Destination, error) {
		return domain.Destination{}, errors.New("connection reset")
	}}
	cleaner := &recordingCleaner{}
	svc := service.NewDestinationService(r, cleaner, zap.NewNop())

	_, err := svc.Delete(context.Background(), 3)

	require.Error(t, err)
	assert.Empty(t, cleaner.calls)
}

func TestCatalog_Delete_WithoutMediaOwner(t *testing.T) {
	r := &mockRepo[domain.FAQ, domain.FAQPatch]{delete: func(context.Context, int64) (domain.FAQ, error) {
		return domain.FAQ{ID: 1, Question: "Q?"}, nil
	}}
	cleaner := &recordingCleaner{}
	svc := service.NewFAQService(r, cleaner, zap.NewNop())

	_, err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, cleaner.calls)
}
