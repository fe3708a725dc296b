package application

import (
	"context"

	"github.com/hoshloop/hoshloop-services/api/internal/public/domain"
)

type reviewService struct {
	responses   SubmissionReader
	forms       FormRepository
	restaurants RestaurantRepository
	handoff     domain.ReviewHandoff
}

// NewReviewService builds the composer/handoff use-cases over stored
// responses.
func NewReviewService(responses SubmissionReader, forms FormRepository, restaurants RestaurantRepository, handoff domain.ReviewHandoff) ReviewService {
	return &reviewService{
		responses:   responses,
		forms:       forms,
		restaurants: restaurants,
		handoff:     handoff,
	}
}

// ComposeForResponse regenerates the deterministic draft review for a
// stored submission.
func (s *reviewService) ComposeForResponse(ctx context.Context, responseID string) (string, error) {
	response, questions, restaurant, err := s.load(ctx, responseID)
	if err != nil {
		return "", err
	}
	return domain.ComposeReview(restaurant.Name, questions, response.Answers), nil
}

// HandoffLink builds the external write-review URL carrying the (possibly
// customer-edited) draft.
func (s *reviewService) HandoffLink(ctx context.Context, responseID, draft string) (string, error) {
	_, _, restaurant, err := s.load(ctx, responseID)
	if err != nil {
		return "", err
	}
	return s.handoff.Link(restaurant.GooglePlaceID, draft)
}

func (s *reviewService) load(ctx context.Context, responseID string) (*StoredResponse, []domain.Question, *domain.RestaurantProfile, error) {
	response, err := s.responses.FindResponse(ctx, responseID)
	if err != nil {
		return nil, nil, nil, err
	}
	_, questions, err := s.forms.FindByID(ctx, response.FormID)
	if err != nil {
		return nil, nil, nil, err
	}
	restaurant, err := s.restaurants.FindProfile(ctx, response.RestaurantID)
	if err != nil {
		return nil, nil, nil, err
	}
	return response, questions, restaurant, nil
}
