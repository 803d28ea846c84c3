package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/service"
)

type enquiryRepo = mockRepo[domain.Enquiry, domain.EnquiryPatch]

type mockNotifier struct {
	sent []domain.Enquiry
	err  error
}

func (m *mockNotifier) NewEnquiry(_ context.Context, e domain.Enquiry) error {
	m.sent = append(m.sent, e)
	return m.err
}

type countingSources map[string]int

func (c countingSources) EnquiryReceived(source string) { c[source]++ }

func storingEnquiryRepo(stored *domain.Enquiry) *enquiryRepo {
	return &enquiryRepo{create: func(_ context.Context, e domain.Enquiry) (domain.Enquiry, error) {
		*stored = e
		e.ID = 31
		if e.Source == "" {
			e.Source = "website"
		}
		return e, nil
	}}
}

func TestEnquiryService_Submit_ForcesNewStatus(t *testing.T) {
	var stored domain.Enquiry
	notifier := &mockNotifier{}
	counts := countingSources{}
	svc := service.NewEnquiryService(storingEnquiryRepo(&stored), notifier, counts, zap.NewNop())

	got, err := svc.Submit(context.Background(), domain.Enquiry{
		Name: "Ravi", Email: "Ravi@Example.com", Status: domain.StatusConverted, Notes: "VIP",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusNew, stored.Status)
	assert.Empty(t, stored.Notes, "public callers cannot write staff notes")
	assert.Equal(t, "ravi@example.com", stored.Email)
	assert.Equal(t, int64(31), got.ID)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, int64(31), notifier.sent[0].ID)
	assert.Equal(t, 1, counts["website"])
}

func TestEnquiryService_Submit_NotificationFailureIsLogged(t *testing.T) {
	var stored domain.Enquiry
	core, logs := observer.New(zap.WarnLevel)
	svc := service.NewEnquiryService(storingEnquiryRepo(&stored), &mockNotifier{err: errors.New("smtp down")}, countingSources{}, zap.New(core))

	_, err := svc.Submit(context.Background(), domain.Enquiry{Name: "Ravi", Email: "ravi@example.com"})

	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("enquiry notification failed").Len())
}

func TestEnquiryService_Submit_InvalidIsNotNotified(t *testing.T) {
	notifier := &mockNotifier{}
	counts := countingSources{}
	svc := service.NewEnquiryService(&enquiryRepo{}, notifier, counts, zap.NewNop())

	_, err := svc.Submit(context.Background(), domain.Enquiry{Name: "Ravi", Email: "not-an-email"})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, notifier.sent)
	assert.Empty(t, counts)
}

func TestReviewService_Submit_AwaitsModeration(t *testing.T) {
	var stored domain.Review
	r := &mockRepo[domain.Review, domain.ReviewPatch]{create: func(_ context.Context, v domain.Review) (domain.Review, error) {
		stored = v
		return v, nil
	}}
	svc := service.NewReviewService(r, zap.NewNop())

	_, err := svc.Submit(context.Background(), domain.Review{
		Name: "Kiran", Rating: 5, Comment: "Superb guides", Status: domain.StatusApproved,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestReviewService_Submit_RatingOutOfRange(t *testing.T) {
	svc := service.NewReviewService(&mockRepo[domain.Review, domain.ReviewPatch]{}, zap.NewNop())

	for _, rating := range []int{0, 6} {
		_, err := svc.Submit(context.Background(), domain.Review{Name: "Kiran", Rating: rating, Comment: "ok"})
		assert.ErrorIs(t, err, domain.ErrValidation, "rating %d", rating)
	}
}
