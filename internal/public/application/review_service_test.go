package application

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoshloop/hoshloop-services/api/internal/public/domain"
)

type fakeSubmissionReader struct {
	responses map[string]*StoredResponse
}

func (f *fakeSubmissionReader) FindResponse(_ context.Context, responseID string) (*StoredResponse, error) {
	response, ok := f.responses[responseID]
	if !ok {
		return nil, ErrNotFound
	}
	return response, nil
}

func reviewFixture() (ReviewService, *fakeRestaurantRepository) {
	forms, restaurants, _ := wizardFixture()
	restaurants.profile.GooglePlaceID = "restaurant-place"
	reader := &fakeSubmissionReader{responses: map[string]*StoredResponse{
		"resp-1": {
			ID:           "resp-1",
			FormID:       "form-1",
			RestaurantID: "rest-1",
			Answers: map[string]domain.Answer{
				"q1": domain.RatingAnswer{Stars: 5},
				"q3": domain.TextAnswer{Text: "Wonderful staff."},
			},
		},
	}}
	return NewReviewService(reader, forms, restaurants, domain.ReviewHandoff{}), restaurants
}

func TestComposeForResponse(t *testing.T) {
	service, _ := reviewFixture()

	draft, err := service.ComposeForResponse(context.Background(), "resp-1")
	require.NoError(t, err)
	assert.Contains(t, draft, "Trattoria Lumen")
	assert.Contains(t, draft, "Wonderful staff.")

	// Same response, same draft.
	again, err := service.ComposeForResponse(context.Background(), "resp-1")
	require.NoError(t, err)
	assert.Equal(t, draft, again)

	_, err = service.ComposeForResponse(context.Background(), "resp-ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHandoffLinkUsesRestaurantPlace(t *testing.T) {
	service, _ := reviewFixture()

	link, err := service.HandoffLink(context.Background(), "resp-1", "Edited by the customer.")
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "restaurant-place", parsed.Query().Get("placeid"))
	assert.Equal(t, "Edited by the customer.", parsed.Query().Get("review"))
}

func TestHandoffLinkFallsBackWithoutPlace(t *testing.T) {
	service, restaurants := reviewFixture()
	restaurants.profile.GooglePlaceID = ""

	link, err := service.HandoffLink(context.Background(), "resp-1", "Still worth sharing.")
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, domain.SamplePlaceID, parsed.Query().Get("placeid"))
}

func TestHandoffLinkEmptyDraft(t *testing.T) {
	service, _ := reviewFixture()

	_, err := service.HandoffLink(context.Background(), "resp-1", "  ")
	assert.ErrorIs(t, err, domain.ErrEmptyDraft)
}
