package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wizardQuestions() []Question {
	return []Question{
		{ID: "q1", Text: "How would you rate the food?", Type: TypeRating, Required: true, Order: 0},
		{ID: "q2", Text: "Which dish did you enjoy most?", Type: TypeDropdown, Options: []string{"Pizza", "Pasta"}, Order: 1},
		{ID: "q3", Text: "Anything else?", Type: TypeText, Order: 2},
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	session, err := NewSession("sess-1", Form{ID: "form-1"}, RestaurantProfile{ID: "rest-1"}, wizardQuestions())
	require.NoError(t, err)
	return session
}

func TestNewSessionRejectsEmptyForm(t *testing.T) {
	_, err := NewSession("sess-1", Form{ID: "form-1"}, RestaurantProfile{}, nil)
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestSessionStartsAtFirstQuestion(t *testing.T) {
	session := newTestSession(t)

	assert.Equal(t, StateInProgress, session.State())
	assert.Equal(t, 0, session.Step())
	assert.Equal(t, "q1", session.Current().ID)

	current, total := session.Progress()
	assert.Equal(t, 1, current)
	assert.Equal(t, 3, total)
}

func TestSessionAdvanceRequiresAnswer(t *testing.T) {
	session := newTestSession(t)

	_, err := session.Advance()
	assert.ErrorIs(t, err, ErrAnswerRequired)
	assert.Equal(t, 0, session.Step())
}

func TestSessionAdvanceRejectsEmptyRequiredAnswer(t *testing.T) {
	questions := []Question{
		{ID: "q1", Text: "Final thoughts?", Type: TypeText, Required: true},
		{ID: "q2", Text: "More?", Type: TypeText},
	}
	session, err := NewSession("sess-1", Form{}, RestaurantProfile{}, questions)
	require.NoError(t, err)

	require.NoError(t, session.SetAnswer("q1", TextAnswer{Text: "   "}))
	_, err = session.Advance()
	assert.ErrorIs(t, err, ErrAnswerRequired)
}

func TestSessionOptionalQuestionAdvancesUnanswered(t *testing.T) {
	session := newTestSession(t)
	require.NoError(t, session.SetAnswer("q1", RatingAnswer{Stars: 4}))

	submit, err := session.Advance()
	require.NoError(t, err)
	assert.False(t, submit)
	assert.Equal(t, "q2", session.Current().ID)

	// q2 is optional: skipping straight past it is allowed.
	submit, err = session.Advance()
	require.NoError(t, err)
	assert.False(t, submit)
	assert.Equal(t, "q3", session.Current().ID)
}

func TestSessionLastStepAdvanceRequestsSubmit(t *testing.T) {
	session := newTestSession(t)
	require.NoError(t, session.SetAnswer("q1", RatingAnswer{Stars: 5}))

	for i := 0; i < 2; i++ {
		submit, err := session.Advance()
		require.NoError(t, err)
		require.False(t, submit)
	}

	submit, err := session.Advance()
	require.NoError(t, err)
	assert.True(t, submit)
	assert.Equal(t, StateSubmitting, session.State())
}

func TestSessionSubmittingBlocksMutations(t *testing.T) {
	session := newTestSession(t)
	require.NoError(t, session.SetAnswer("q1", RatingAnswer{Stars: 5}))
	for i := 0; i < 3; i++ {
		_, err := session.Advance()
		require.NoError(t, err)
	}
	require.Equal(t, StateSubmitting, session.State())

	_, err := session.Advance()
	assert.ErrorIs(t, err, ErrSessionBusy)
	assert.ErrorIs(t, session.Retreat(), ErrSessionBusy)
	assert.ErrorIs(t, session.SetAnswer("q3", TextAnswer{Text: "late"}), ErrSessionBusy)
}

func TestSessionFailRevertsAndPreservesAnswers(t *testing.T) {
	session := newTestSession(t)
	require.NoError(t, session.SetAnswer("q1", RatingAnswer{Stars: 5}))
	require.NoError(t, session.SetAnswer("q3", TextAnswer{Text: "Great night."}))
	for i := 0; i < 3; i++ {
		_, err := session.Advance()
		require.NoError(t, err)
	}

	require.NoError(t, session.Fail())

	assert.Equal(t, StateInProgress, session.State())
	assert.Equal(t, "q3", session.Current().ID)
	answer, ok := session.Answer("q1")
	require.True(t, ok)
	assert.Equal(t, RatingAnswer{Stars: 5}, answer)

	// Retrying the submission works after a failure.
	submit, err := session.Advance()
	require.NoError(t, err)
	assert.True(t, submit)
}

func TestSessionCompleteRecordsResponseAndLocks(t *testing.T) {
	session := newTestSession(t)
	require.NoError(t, session.SetAnswer("q1", RatingAnswer{Stars: 5}))
	for i := 0; i < 3; i++ {
		_, err := session.Advance()
		require.NoError(t, err)
	}

	require.NoError(t, session.Complete("resp-42"))

	assert.Equal(t, StateCompleted, session.State())
	assert.Equal(t, "resp-42", session.ResponseID())

	_, err := session.Advance()
	assert.ErrorIs(t, err, ErrSessionCompleted)
	assert.ErrorIs(t, session.SetAnswer("q1", RatingAnswer{Stars: 1}), ErrSessionCompleted)
}

func TestSessionCompleteOutsideSubmittingFails(t *testing.T) {
	session := newTestSession(t)
	assert.Error(t, session.Complete("resp-1"))
	assert.Error(t, session.Fail())
}

func TestSessionRetreatStopsAtFirstQuestion(t *testing.T) {
	session := newTestSession(t)
	require.NoError(t, session.Retreat())
	assert.Equal(t, 0, session.Step())

	require.NoError(t, session.SetAnswer("q1", RatingAnswer{Stars: 3}))
	_, err := session.Advance()
	require.NoError(t, err)
	require.NoError(t, session.Retreat())
	assert.Equal(t, "q1", session.Current().ID)
}

func TestSessionSetAnswerRejectsForeignQuestion(t *testing.T) {
	session := newTestSession(t)
	err := session.SetAnswer("q-elsewhere", TextAnswer{Text: "hi"})
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestSessionSetAnswerOverwrites(t *testing.T) {
	session := newTestSession(t)
	require.NoError(t, session.SetAnswer("q1", RatingAnswer{Stars: 2}))
	require.NoError(t, session.SetAnswer("q1", RatingAnswer{Stars: 4}))

	answer, ok := session.Answer("q1")
	require.True(t, ok)
	assert.Equal(t, RatingAnswer{Stars: 4}, answer)
}

func TestMissingRequired(t *testing.T) {
	questions := []Question{
		{ID: "q1", Type: TypeRating, Required: true},
		{ID: "q2", Type: TypeText, Required: true},
		{ID: "q3", Type: TypeText},
	}

	missing := MissingRequired(questions, map[string]Answer{
		"q1": RatingAnswer{Stars: 4},
		"q2": TextAnswer{Text: "  "},
	})

	require.Len(t, missing, 1)
	assert.Equal(t, "q2", missing[0].ID)

	assert.Empty(t, MissingRequired(questions, map[string]Answer{
		"q1": RatingAnswer{Stars: 4},
		"q2": TextAnswer{Text: "ok"},
	}))
}
