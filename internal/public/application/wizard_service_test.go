package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoshloop/hoshloop-services/api/internal/public/domain"
)

type fakeFormRepository struct {
	form      *domain.Form
	questions []domain.Question
	err       error
}

func (f *fakeFormRepository) FindByID(_ context.Context, formID string) (*domain.Form, []domain.Question, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	if f.form == nil || f.form.ID != formID {
		return nil, nil, ErrNotFound
	}
	return f.form, f.questions, nil
}

type fakeRestaurantRepository struct {
	profile *domain.RestaurantProfile
}

func (f *fakeRestaurantRepository) FindProfile(_ context.Context, restaurantID string) (*domain.RestaurantProfile, error) {
	if f.profile == nil || f.profile.ID != restaurantID {
		return nil, ErrNotFound
	}
	return f.profile, nil
}

type fakeSink struct {
	stored  []Submission
	nextID  string
	failSet []error
}

func (f *fakeSink) Store(_ context.Context, submission Submission) (string, error) {
	if len(f.failSet) > 0 {
		err := f.failSet[0]
		f.failSet = f.failSet[1:]
		return "", err
	}
	f.stored = append(f.stored, submission)
	if f.nextID == "" {
		return "resp-1", nil
	}
	return f.nextID, nil
}

func wizardFixture() (*fakeFormRepository, *fakeRestaurantRepository, *fakeSink) {
	forms := &fakeFormRepository{
		form: &domain.Form{ID: "form-1", RestaurantID: "rest-1", Name: "Dinner feedback", Active: true},
		questions: []domain.Question{
			{ID: "q1", Text: "How would you rate the food?", Type: domain.TypeRating, Required: true, Order: 0},
			{ID: "q2", Text: "Which dish did you enjoy most?", Type: domain.TypeDropdown, Options: []string{"Pizza", "Pasta"}, Order: 1},
			{ID: "q3", Text: "Anything else?", Type: domain.TypeText, Order: 2},
		},
	}
	restaurants := &fakeRestaurantRepository{
		profile: &domain.RestaurantProfile{ID: "rest-1", Name: "Trattoria Lumen"},
	}
	return forms, restaurants, &fakeSink{}
}

func TestWizardFullWalkSubmits(t *testing.T) {
	forms, restaurants, sink := wizardFixture()
	wizard := NewWizardService(forms, restaurants, sink, time.Hour)
	ctx := context.Background()

	session, err := wizard.Start(ctx, "form-1", "visit-7", " +1 555 0100 ")
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)
	assert.Equal(t, "visit-7", session.VisitID)
	assert.Equal(t, "+1 555 0100", session.CustomerPhone)

	require.NoError(t, wizard.SetAnswer(session.ID, "q1", float64(5)))
	result, err := wizard.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, result.Submitted)

	require.NoError(t, wizard.SetAnswer(session.ID, "q2", "Pasta"))
	result, err = wizard.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, result.Submitted)

	require.NoError(t, wizard.SetAnswer(session.ID, "q3", "Lovely evening."))
	result, err = wizard.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, result.Submitted)
	assert.Equal(t, "resp-1", result.ResponseID)

	require.Len(t, sink.stored, 1)
	stored := sink.stored[0]
	assert.Equal(t, "form-1", stored.FormID)
	assert.Equal(t, "rest-1", stored.RestaurantID)
	assert.Equal(t, "visit-7", stored.VisitID)
	assert.Equal(t, domain.RatingAnswer{Stars: 5}, stored.Answers["q1"])
	assert.Equal(t, domain.ChoiceAnswer{Option: "Pasta"}, stored.Answers["q2"])
	assert.Equal(t, domain.TextAnswer{Text: "Lovely evening."}, stored.Answers["q3"])
	assert.False(t, stored.SubmittedAt.IsZero())

	refreshed, err := wizard.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateCompleted, refreshed.State())
	assert.Equal(t, "resp-1", refreshed.ResponseID())
}

func TestWizardStartRejectsInactiveForm(t *testing.T) {
	forms, restaurants, sink := wizardFixture()
	forms.form.Active = false
	wizard := NewWizardService(forms, restaurants, sink, time.Hour)

	_, err := wizard.Start(context.Background(), "form-1", "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWizardUnknownSession(t *testing.T) {
	forms, restaurants, sink := wizardFixture()
	wizard := NewWizardService(forms, restaurants, sink, time.Hour)

	_, err := wizard.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = wizard.Advance(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, wizard.SetAnswer("missing", "q1", 5), ErrNotFound)
	assert.ErrorIs(t, wizard.Retreat("missing"), ErrNotFound)
}

func TestWizardValidationErrorDoesNotTouchSink(t *testing.T) {
	forms, restaurants, sink := wizardFixture()
	wizard := NewWizardService(forms, restaurants, sink, time.Hour)
	ctx := context.Background()

	session, err := wizard.Start(ctx, "form-1", "", "")
	require.NoError(t, err)

	_, err = wizard.Advance(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrAnswerRequired)

	assert.Error(t, wizard.SetAnswer(session.ID, "q1", 9))
	assert.ErrorIs(t, wizard.SetAnswer(session.ID, "q-unknown", 3), domain.ErrUnknownQuestion)
	assert.Empty(t, sink.stored)
}

func TestWizardFailedSubmissionAllowsRetry(t *testing.T) {
	forms, restaurants, sink := wizardFixture()
	sink.failSet = []error{errors.New("mongo unavailable")}
	wizard := NewWizardService(forms, restaurants, sink, time.Hour)
	ctx := context.Background()

	session, err := wizard.Start(ctx, "form-1", "", "")
	require.NoError(t, err)

	require.NoError(t, wizard.SetAnswer(session.ID, "q1", 4))
	for i := 0; i < 2; i++ {
		_, err := wizard.Advance(ctx, session.ID)
		require.NoError(t, err)
	}

	_, err = wizard.Advance(ctx, session.ID)
	require.Error(t, err)

	// The failure reverted the session; answers survive and a retry succeeds.
	reverted, err := wizard.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateInProgress, reverted.State())
	answer, ok := reverted.Answer("q1")
	require.True(t, ok)
	assert.Equal(t, domain.RatingAnswer{Stars: 4}, answer)

	result, err := wizard.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, result.Submitted)
	require.Len(t, sink.stored, 1)
}

func TestWizardCompletedSessionRejectsSecondSubmit(t *testing.T) {
	forms, restaurants, sink := wizardFixture()
	wizard := NewWizardService(forms, restaurants, sink, time.Hour)
	ctx := context.Background()

	session, err := wizard.Start(ctx, "form-1", "", "")
	require.NoError(t, err)
	require.NoError(t, wizard.SetAnswer(session.ID, "q1", 5))
	for i := 0; i < 2; i++ {
		_, err := wizard.Advance(ctx, session.ID)
		require.NoError(t, err)
	}
	result, err := wizard.Advance(ctx, session.ID)
	require.NoError(t, err)
	require.True(t, result.Submitted)

	_, err = wizard.Advance(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionCompleted)
	assert.Len(t, sink.stored, 1)
}

func TestWizardRetreatKeepsAnswers(t *testing.T) {
	forms, restaurants, sink := wizardFixture()
	wizard := NewWizardService(forms, restaurants, sink, time.Hour)
	ctx := context.Background()

	session, err := wizard.Start(ctx, "form-1", "", "")
	require.NoError(t, err)
	require.NoError(t, wizard.SetAnswer(session.ID, "q1", 3))
	_, err = wizard.Advance(ctx, session.ID)
	require.NoError(t, err)

	require.NoError(t, wizard.Retreat(session.ID))

	current, err := wizard.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "q1", current.Current().ID)
	answer, ok := current.Answer("q1")
	require.True(t, ok)
	assert.Equal(t, domain.RatingAnswer{Stars: 3}, answer)
}

func TestWizardSessionExpiry(t *testing.T) {
	forms, restaurants, sink := wizardFixture()
	wizard := NewWizardService(forms, restaurants, sink, time.Minute)

	clock := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	wizard.now = func() time.Time { return clock }

	session, err := wizard.Start(context.Background(), "form-1", "", "")
	require.NoError(t, err)

	// Access before the deadline refreshes it.
	clock = clock.Add(45 * time.Second)
	_, err = wizard.Get(session.ID)
	require.NoError(t, err)

	clock = clock.Add(45 * time.Second)
	_, err = wizard.Get(session.ID)
	require.NoError(t, err)

	clock = clock.Add(2 * time.Minute)
	_, err = wizard.Get(session.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWizardComposeDraft(t *testing.T) {
	forms, restaurants, sink := wizardFixture()
	wizard := NewWizardService(forms, restaurants, sink, time.Hour)
	ctx := context.Background()

	session, err := wizard.Start(ctx, "form-1", "", "")
	require.NoError(t, err)
	require.NoError(t, wizard.SetAnswer(session.ID, "q1", 5))
	require.NoError(t, wizard.SetAnswer(session.ID, "q3", "The pasta was perfect."))

	draft, err := wizard.ComposeDraft(session.ID)
	require.NoError(t, err)
	assert.Contains(t, draft, "Trattoria Lumen")
	assert.Contains(t, draft, "The pasta was perfect.")
}
