package application

import (
	"context"
	"time"

	admindomain "github.com/hoshloop/hoshloop-services/api/internal/admin/domain"
)

type formService struct {
	forms FormRepository
	now   func() time.Time
}

// NewFormService builds the form/question authoring service.
func NewFormService(forms FormRepository) FormService {
	return &formService{forms: forms, now: time.Now}
}

func (s *formService) List(ctx context.Context, restaurantID string) ([]admindomain.FeedbackForm, error) {
	return s.forms.ListByRestaurant(ctx, restaurantID)
}

// ownedForm loads a form and enforces tenancy in one place.
func (s *formService) ownedForm(ctx context.Context, formID, restaurantID string) (*admindomain.FeedbackForm, error) {
	form, err := s.forms.FindByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form.RestaurantID != restaurantID {
		return nil, ErrNotFound
	}
	return form, nil
}

func (s *formService) Detail(ctx context.Context, formID, restaurantID string) (*admindomain.FeedbackForm, []admindomain.Question, error) {
	form, err := s.ownedForm(ctx, formID, restaurantID)
	if err != nil {
		return nil, nil, err
	}
	questions, err := s.forms.Questions(ctx, form.ID)
	if err != nil {
		return nil, nil, err
	}
	return form, questions, nil
}

func (s *formService) Create(ctx context.Context, restaurantID string, cmd UpsertFormCommand) (*admindomain.FeedbackForm, error) {
	form, err := admindomain.NewFeedbackForm(restaurantID, cmd.Name, cmd.Description, cmd.ThankYouMessage)
	if err != nil {
		return nil, err
	}
	if cmd.Active != nil {
		form.Active = *cmd.Active
	}
	now := s.now().UTC()
	form.CreatedAt = now
	form.UpdatedAt = now

	if err := s.forms.Create(ctx, form); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *formService) Update(ctx context.Context, formID, restaurantID string, cmd UpsertFormCommand) (*admindomain.FeedbackForm, error) {
	form, err := s.ownedForm(ctx, formID, restaurantID)
	if err != nil {
		return nil, err
	}

	updated, err := admindomain.NewFeedbackForm(form.RestaurantID, cmd.Name, cmd.Description, cmd.ThankYouMessage)
	if err != nil {
		return nil, err
	}
	form.Name = updated.Name
	form.Description = updated.Description
	form.ThankYouMessage = updated.ThankYouMessage
	if cmd.Active != nil {
		form.Active = *cmd.Active
	}
	form.UpdatedAt = s.now().UTC()

	if err := s.forms.Update(ctx, form); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *formService) AddQuestion(ctx context.Context, formID, restaurantID string, cmd UpsertQuestionCommand) (*admindomain.Question, error) {
	form, err := s.ownedForm(ctx, formID, restaurantID)
	if err != nil {
		return nil, err
	}

	order := 0
	if cmd.Order != nil {
		order = *cmd.Order
	} else {
		existing, err := s.forms.Questions(ctx, form.ID)
		if err != nil {
			return nil, err
		}
		order = len(existing)
	}

	question, err := admindomain.NewQuestion(form.ID, cmd.Text, cmd.Description, cmd.Type, cmd.Required, cmd.Options, cmd.MaxRating, cmd.Placeholder, order)
	if err != nil {
		return nil, err
	}
	if err := s.forms.AddQuestion(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// ownedQuestion checks question, form, and tenant linkage together.
func (s *formService) ownedQuestion(ctx context.Context, formID, questionID, restaurantID string) (*admindomain.Question, error) {
	if _, err := s.ownedForm(ctx, formID, restaurantID); err != nil {
		return nil, err
	}
	question, err := s.forms.FindQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.FormID != formID {
		return nil, ErrNotFound
	}
	return question, nil
}

func (s *formService) UpdateQuestion(ctx context.Context, formID, questionID, restaurantID string, cmd UpsertQuestionCommand) (*admindomain.Question, error) {
	existing, err := s.ownedQuestion(ctx, formID, questionID, restaurantID)
	if err != nil {
		return nil, err
	}

	order := existing.Order
	if cmd.Order != nil {
		order = *cmd.Order
	}
	question, err := admindomain.NewQuestion(formID, cmd.Text, cmd.Description, cmd.Type, cmd.Required, cmd.Options, cmd.MaxRating, cmd.Placeholder, order)
	if err != nil {
		return nil, err
	}
	question.ID = existing.ID

	if err := s.forms.UpdateQuestion(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *formService) DeleteQuestion(ctx context.Context, formID, questionID, restaurantID string) error {
	if _, err := s.ownedQuestion(ctx, formID, questionID, restaurantID); err != nil {
		return err
	}
	return s.forms.DeleteQuestion(ctx, questionID)
}
