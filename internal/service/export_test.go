package service_test

import (
	"context"
	"testing"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/service"
)

func TestExportService_Enquiries(t *testing.T) {
	trip7, trip8 := int64(7), int64(8)
	var listed domain.ListQuery
	enquiries := &enquiryRepo{findAll: func(_ context.Context, q domain.ListQuery) ([]domain.Enquiry, error) {
		listed = q
		return []domain.Enquiry{
			{ID: 1, Name: "A", TripID: &trip7, TravelDate: &openapi_types.Date{Time: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)}},
			{ID: 2, Name: "B", TripID: &trip7},
			{ID: 3, Name: "C", TripID: &trip8},
			{ID: 4, Name: "D"},
		}, nil
	}}
	lookups := 0
	trips := &mockTripRepo{}
	trips.findByID = func(_ context.Context, id int64) (domain.Trip, error) {
		lookups++
		if id == trip8 {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{ID: id, Title: "Hampta Pass"}, nil
	}

	rows, err := service.NewExportService(enquiries, trips).Enquiries(context.Background(), domain.ListQuery{})

	require.NoError(t, err)
	assert.True(t, listed.IncludeHidden)
	require.Len(t, rows, 4)
	assert.Equal(t, "Hampta Pass", rows[0].TripTitle)
	assert.Equal(t, "2025-05-01", rows[0].TravelDate)
	assert.Equal(t, "Hampta Pass", rows[1].TripTitle)
	assert.Empty(t, rows[2].TripTitle, "deleted trip leaves the title blank")
	assert.Empty(t, rows[3].TripTitle)
	assert.Equal(t, 2, lookups, "each trip is looked up once")
}
