package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionType(t *testing.T) {
	for raw, want := range map[string]QuestionType{
		"rating":         TypeRating,
		" Text ":         TypeText,
		"MULTIPLECHOICE": TypeMultipleChoice,
		"checkbox":       TypeCheckbox,
		"dropdown":       TypeDropdown,
	} {
		got, err := ParseQuestionType(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}

	_, err := ParseQuestionType("slider")
	assert.ErrorIs(t, err, ErrUnknownQuestionType)
}

func TestQuestionTypeHasOptions(t *testing.T) {
	assert.True(t, TypeMultipleChoice.HasOptions())
	assert.True(t, TypeCheckbox.HasOptions())
	assert.True(t, TypeDropdown.HasOptions())
	assert.False(t, TypeRating.HasOptions())
	assert.False(t, TypeText.HasOptions())
}

func TestQuestionMaxRatingDefault(t *testing.T) {
	assert.Equal(t, DefaultMaxRating, Question{Type: TypeRating}.MaxRating())
	assert.Equal(t, 10, Question{Type: TypeRating, Settings: QuestionSettings{MaxRating: 10}}.MaxRating())
}

func TestValidateRatingAnswer(t *testing.T) {
	question := Question{ID: "q1", Type: TypeRating}

	assert.NoError(t, question.ValidateAnswer(RatingAnswer{Stars: 1}))
	assert.NoError(t, question.ValidateAnswer(RatingAnswer{Stars: 5}))
	assert.Error(t, question.ValidateAnswer(RatingAnswer{Stars: 0}))
	assert.Error(t, question.ValidateAnswer(RatingAnswer{Stars: 6}))
	assert.Error(t, question.ValidateAnswer(TextAnswer{Text: "five"}))
	assert.Error(t, question.ValidateAnswer(nil))

	wide := Question{ID: "q2", Type: TypeRating, Settings: QuestionSettings{MaxRating: 10}}
	assert.NoError(t, wide.ValidateAnswer(RatingAnswer{Stars: 10}))
	assert.Error(t, wide.ValidateAnswer(RatingAnswer{Stars: 11}))
}

func TestValidateTextAnswer(t *testing.T) {
	question := Question{ID: "q1", Type: TypeText}
	assert.NoError(t, question.ValidateAnswer(TextAnswer{Text: "anything"}))
	assert.NoError(t, question.ValidateAnswer(TextAnswer{}))
	assert.Error(t, question.ValidateAnswer(RatingAnswer{Stars: 3}))
}

func TestValidateChoiceAnswer(t *testing.T) {
	question := Question{ID: "q1", Type: TypeDropdown, Options: []string{"Pizza", "Pasta"}}

	assert.NoError(t, question.ValidateAnswer(ChoiceAnswer{Option: "Pizza"}))
	assert.Error(t, question.ValidateAnswer(ChoiceAnswer{Option: "Burger"}))
	// Clearing a selection is valid; required-ness is enforced separately.
	assert.NoError(t, question.ValidateAnswer(ChoiceAnswer{}))
	assert.Error(t, question.ValidateAnswer(MultiChoiceAnswer{Options: []string{"Pizza"}}))
}

func TestValidateCheckboxAnswer(t *testing.T) {
	question := Question{ID: "q1", Type: TypeCheckbox, Options: []string{"a", "b", "c"}}

	assert.NoError(t, question.ValidateAnswer(MultiChoiceAnswer{Options: []string{"a", "c"}}))
	assert.NoError(t, question.ValidateAnswer(MultiChoiceAnswer{}))
	assert.Error(t, question.ValidateAnswer(MultiChoiceAnswer{Options: []string{"a", "z"}}))
	assert.Error(t, question.ValidateAnswer(ChoiceAnswer{Option: "a"}))
}
