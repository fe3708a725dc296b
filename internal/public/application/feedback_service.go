package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hoshloop/hoshloop-services/api/internal/public/domain"
)

type formQueryService struct {
	forms FormRepository
}

// NewFormQueryService builds the customer form reader.
func NewFormQueryService(forms FormRepository) FormQueryService {
	return &formQueryService{forms: forms}
}

func (s *formQueryService) Form(ctx context.Context, formID string) (*domain.Form, []domain.Question, error) {
	form, questions, err := s.forms.FindByID(ctx, formID)
	if err != nil {
		return nil, nil, err
	}
	if !form.Active {
		return nil, nil, ErrNotFound
	}
	return form, questions, nil
}

type feedbackCommandService struct {
	forms  FormRepository
	sink   SubmissionSink
	visits VisitRepository
	now    func() time.Time
}

// NewFeedbackCommandService builds the submission/check-in service.
func NewFeedbackCommandService(forms FormRepository, sink SubmissionSink, visits VisitRepository) FeedbackCommandService {
	return &feedbackCommandService{
		forms:  forms,
		sink:   sink,
		visits: visits,
		now:    time.Now,
	}
}

// Submit validates a raw answer map against the form and persists it.
// Every required question must carry a usable answer; answers keyed by ids
// outside the form are rejected.
func (s *feedbackCommandService) Submit(ctx context.Context, cmd SubmitFeedbackCommand) (string, error) {
	form, questions, err := s.forms.FindByID(ctx, cmd.FormID)
	if err != nil {
		return "", err
	}

	answers, err := ParseAnswers(questions, cmd.RawAnswers)
	if err != nil {
		return "", err
	}

	if missing := domain.MissingRequired(questions, answers); len(missing) > 0 {
		return "", fmt.Errorf("question %q requires an answer", missing[0].Text)
	}

	restaurantID := strings.TrimSpace(cmd.RestaurantID)
	if restaurantID == "" {
		restaurantID = form.RestaurantID
	}

	return s.sink.Store(ctx, Submission{
		FormID:        form.ID,
		RestaurantID:  restaurantID,
		VisitID:       strings.TrimSpace(cmd.VisitID),
		CustomerPhone: strings.TrimSpace(cmd.CustomerPhone),
		Answers:       answers,
		SubmittedAt:   s.now().UTC(),
	})
}

// CheckIn records a customer phone check-in and returns the visit id.
func (s *feedbackCommandService) CheckIn(ctx context.Context, visit Visit) (string, error) {
	visit.CustomerPhone = strings.TrimSpace(visit.CustomerPhone)
	if visit.CustomerPhone == "" {
		return "", fmt.Errorf("phone number is required")
	}
	if strings.TrimSpace(visit.RestaurantID) == "" {
		return "", fmt.Errorf("restaurant id is required")
	}
	if visit.CheckedInAt.IsZero() {
		visit.CheckedInAt = s.now().UTC()
	}
	return s.visits.Create(ctx, visit)
}

// ParseAnswers converts a decoded JSON answer map into typed answers,
// validating each against its source question.
func ParseAnswers(questions []domain.Question, raw map[string]any) (map[string]domain.Answer, error) {
	byID := make(map[string]domain.Question, len(questions))
	for _, question := range questions {
		byID[question.ID] = question
	}

	answers := make(map[string]domain.Answer, len(raw))
	for questionID, value := range raw {
		question, ok := byID[questionID]
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownQuestion, questionID)
		}
		answer, err := domain.ParseAnswer(question, value)
		if err != nil {
			return nil, err
		}
		if err := question.ValidateAnswer(answer); err != nil {
			return nil, err
		}
		answers[questionID] = answer
	}
	return answers, nil
}
