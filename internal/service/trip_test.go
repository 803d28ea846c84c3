package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/service"
)

func tripRepoEcho() *mockTripRepo {
	r := &mockTripRepo{}
	r.create = echoCreate(func(t *domain.Trip) { t.ID = 1 })
	r.update = func(_ context.Context, id int64, p domain.TripPatch) (domain.Trip, error) {
		t := domain.Trip{ID: id, Title: "Old Title", Slug: "old-title"}
		if p.Slug != nil {
			t.Slug = *p.Slug
		}
		return t, nil
	}
	r.findByID = func(_ context.Context, id int64) (domain.Trip, error) {
		return domain.Trip{ID: id, Title: "Old Title", Slug: "old-title", Status: domain.StatusActive}, nil
	}
	return r
}

func TestTripService_Create_DerivesSlug(t *testing.T) {
	svc := service.NewTripService(tripRepoEcho(), nil, zap.NewNop())

	got, err := svc.Create(context.Background(), domain.Trip{Title: "Spiti Valley Trek"})

	require.NoError(t, err)
	assert.Equal(t, "spiti-valley-trek", got.Slug)
}

func TestTripService_Create_NormalisesSuppliedSlug(t *testing.T) {
	svc := service.NewTripService(tripRepoEcho(), nil, zap.NewNop())

	got, err := svc.Create(context.Background(), domain.Trip{Title: "Anything", Slug: "  My Custom__Slug "})

	require.NoError(t, err)
	assert.Equal(t, "my-custom-slug", got.Slug)
}

func TestTripService_Create_UnsluggableTitle(t *testing.T) {
	svc := service.NewTripService(tripRepoEcho(), nil, zap.NewNop())

	_, err := svc.Create(context.Background(), domain.Trip{Title: "!!!"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Update_TitleChangeRegeneratesSlug(t *testing.T) {
	var sent domain.TripPatch
	r := tripRepoEcho()
	r.update = func(_ context.Context, _ int64, p domain.TripPatch) (domain.Trip, error) {
		sent = p
		return domain.Trip{}, nil
	}
	svc := service.NewTripService(r, nil, zap.NewNop())

	_, err := svc.Update(context.Background(), 1, domain.TripPatch{Title: ptr("Hampta Pass")})

	require.NoError(t, err)
	require.NotNil(t, sent.Slug)
	assert.Equal(t, "hampta-pass", *sent.Slug)
}

func TestTripService_Update_SameTitleKeepsSlug(t *testing.T) {
	var sent domain.TripPatch
	r := tripRepoEcho()
	r.update = func(_ context.Context, _ int64, p domain.TripPatch) (domain.Trip, error) {
		sent = p
		return domain.Trip{}, nil
	}
	svc := service.NewTripService(r, nil, zap.NewNop())

	_, err := svc.Update(context.Background(), 1, domain.TripPatch{Title: ptr("Old Title")})

	require.NoError(t, err)
	assert.Nil(t, sent.Slug)
}

func TestTripService_Update_SuppliedSlugWins(t *testing.T) {
	var sent domain.TripPatch
	r := tripRepoEcho()
	r.update = func(_ context.Context, _ int64, p domain.TripPatch) (domain.Trip, error) {
		sent = p
		return domain.Trip{}, nil
	}
	svc := service.NewTripService(r, nil, zap.NewNop())

	_, err := svc.Update(context.Background(), 1, domain.TripPatch{Title: ptr("New"), Slug: ptr("Chosen Slug")})

	require.NoError(t, err)
	assert.Equal(t, "chosen-slug", *sent.Slug)
}

func TestTripService_GetBySlug(t *testing.T) {
	r := tripRepoEcho()
	r.findBySlug = func(_ context.Context, slug string) (domain.Trip, error) {
		return domain.Trip{ID: 2, Slug: slug, Status: domain.StatusDraft}, nil
	}
	svc := service.NewTripService(r, nil, zap.NewNop())

	_, err := svc.GetBySlug(context.Background(), "draft-trip", true)
	assert.ErrorIs(t, err, domain.ErrNotFound, "drafts are hidden from the public")

	got, err := svc.GetBySlug(context.Background(), "draft-trip", false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)
}
