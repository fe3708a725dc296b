package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoshloop/hoshloop-services/api/internal/public/domain"
)

type fakeVisitRepository struct {
	visits []Visit
}

func (f *fakeVisitRepository) Create(_ context.Context, visit Visit) (string, error) {
	f.visits = append(f.visits, visit)
	return "visit-1", nil
}

func TestSubmitStoresTypedAnswers(t *testing.T) {
	forms, _, sink := wizardFixture()
	visits := &fakeVisitRepository{}
	service := NewFeedbackCommandService(forms, sink, visits)

	responseID, err := service.Submit(context.Background(), SubmitFeedbackCommand{
		FormID: "form-1",
		RawAnswers: map[string]any{
			"q1": float64(4),
			"q2": "Pizza",
			"q3": "All good.",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "resp-1", responseID)

	require.Len(t, sink.stored, 1)
	stored := sink.stored[0]
	assert.Equal(t, "form-1", stored.FormID)
	// The restaurant id defaults to the form's owner when omitted.
	assert.Equal(t, "rest-1", stored.RestaurantID)
	assert.Equal(t, domain.RatingAnswer{Stars: 4}, stored.Answers["q1"])
	assert.Equal(t, domain.ChoiceAnswer{Option: "Pizza"}, stored.Answers["q2"])
}

func TestSubmitRejectsMissingRequiredAnswer(t *testing.T) {
	forms, _, sink := wizardFixture()
	service := NewFeedbackCommandService(forms, sink, &fakeVisitRepository{})

	_, err := service.Submit(context.Background(), SubmitFeedbackCommand{
		FormID:     "form-1",
		RawAnswers: map[string]any{"q3": "only optional"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires an answer")
	assert.Empty(t, sink.stored)
}

func TestSubmitRejectsForeignQuestionID(t *testing.T) {
	forms, _, sink := wizardFixture()
	service := NewFeedbackCommandService(forms, sink, &fakeVisitRepository{})

	_, err := service.Submit(context.Background(), SubmitFeedbackCommand{
		FormID: "form-1",
		RawAnswers: map[string]any{
			"q1":        float64(4),
			"q-foreign": "sneaky",
		},
	})
	assert.ErrorIs(t, err, domain.ErrUnknownQuestion)
	assert.Empty(t, sink.stored)
}

func TestSubmitRejectsInvalidOption(t *testing.T) {
	forms, _, sink := wizardFixture()
	service := NewFeedbackCommandService(forms, sink, &fakeVisitRepository{})

	_, err := service.Submit(context.Background(), SubmitFeedbackCommand{
		FormID: "form-1",
		RawAnswers: map[string]any{
			"q1": float64(4),
			"q2": "Burger",
		},
	})
	require.Error(t, err)
	assert.Empty(t, sink.stored)
}

func TestSubmitUnknownForm(t *testing.T) {
	forms, _, sink := wizardFixture()
	service := NewFeedbackCommandService(forms, sink, &fakeVisitRepository{})

	_, err := service.Submit(context.Background(), SubmitFeedbackCommand{
		FormID:     "form-ghost",
		RawAnswers: map[string]any{},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckInValidatesAndStamps(t *testing.T) {
	forms, _, sink := wizardFixture()
	visits := &fakeVisitRepository{}
	service := NewFeedbackCommandService(forms, sink, visits)
	ctx := context.Background()

	visitID, err := service.CheckIn(ctx, Visit{
		RestaurantID:  "rest-1",
		TableToken:    "tok-1",
		CustomerPhone: " +1 555 0100 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "visit-1", visitID)

	require.Len(t, visits.visits, 1)
	recorded := visits.visits[0]
	assert.Equal(t, "+1 555 0100", recorded.CustomerPhone)
	assert.False(t, recorded.CheckedInAt.IsZero())

	_, err = service.CheckIn(ctx, Visit{RestaurantID: "rest-1"})
	assert.Error(t, err)

	_, err = service.CheckIn(ctx, Visit{CustomerPhone: "+1 555 0100"})
	assert.Error(t, err)
}

func TestFormQueryServiceHidesInactiveForms(t *testing.T) {
	forms, _, _ := wizardFixture()
	service := NewFormQueryService(forms)

	form, questions, err := service.Form(context.Background(), "form-1")
	require.NoError(t, err)
	assert.Equal(t, "Dinner feedback", form.Name)
	assert.Len(t, questions, 3)

	forms.form.Active = false
	_, _, err = service.Form(context.Background(), "form-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
