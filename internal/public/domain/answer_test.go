package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerEmptiness(t *testing.T) {
	assert.False(t, RatingAnswer{Stars: 1}.IsEmpty())
	assert.False(t, RatingAnswer{}.IsEmpty())

	assert.True(t, TextAnswer{}.IsEmpty())
	assert.True(t, TextAnswer{Text: "  \t"}.IsEmpty())
	assert.False(t, TextAnswer{Text: "fine"}.IsEmpty())

	assert.True(t, ChoiceAnswer{}.IsEmpty())
	assert.False(t, ChoiceAnswer{Option: "Pizza"}.IsEmpty())

	assert.True(t, MultiChoiceAnswer{}.IsEmpty())
	assert.False(t, MultiChoiceAnswer{Options: []string{"a"}}.IsEmpty())
}

func TestNewMultiChoiceAnswerDeduplicates(t *testing.T) {
	answer := NewMultiChoiceAnswer([]string{"Date night", " Business ", "Date night", "", "Business"})
	assert.Equal(t, []string{"Date night", "Business"}, answer.Options)
	assert.True(t, answer.Contains("Business"))
	assert.False(t, answer.Contains("Family"))
}

func TestParseAnswerRating(t *testing.T) {
	question := Question{ID: "q1", Type: TypeRating}

	answer, err := ParseAnswer(question, float64(4))
	require.NoError(t, err)
	assert.Equal(t, RatingAnswer{Stars: 4}, answer)

	answer, err = ParseAnswer(question, 3)
	require.NoError(t, err)
	assert.Equal(t, RatingAnswer{Stars: 3}, answer)

	_, err = ParseAnswer(question, 3.5)
	assert.Error(t, err)

	_, err = ParseAnswer(question, "four")
	assert.Error(t, err)
}

func TestParseAnswerText(t *testing.T) {
	question := Question{ID: "q1", Type: TypeText}

	answer, err := ParseAnswer(question, "tasty")
	require.NoError(t, err)
	assert.Equal(t, TextAnswer{Text: "tasty"}, answer)

	_, err = ParseAnswer(question, 12)
	assert.Error(t, err)
}

func TestParseAnswerChoice(t *testing.T) {
	for _, questionType := range []QuestionType{TypeMultipleChoice, TypeDropdown} {
		question := Question{ID: "q1", Type: questionType}

		answer, err := ParseAnswer(question, "  Pasta ")
		require.NoError(t, err)
		assert.Equal(t, ChoiceAnswer{Option: "Pasta"}, answer)

		_, err = ParseAnswer(question, []any{"Pasta"})
		assert.Error(t, err)
	}
}

func TestParseAnswerCheckbox(t *testing.T) {
	question := Question{ID: "q1", Type: TypeCheckbox}

	answer, err := ParseAnswer(question, []any{"a", "b", "a"})
	require.NoError(t, err)
	assert.Equal(t, MultiChoiceAnswer{Options: []string{"a", "b"}}, answer)

	answer, err = ParseAnswer(question, []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, MultiChoiceAnswer{Options: []string{"x"}}, answer)

	_, err = ParseAnswer(question, []any{"a", 5})
	assert.Error(t, err)

	_, err = ParseAnswer(question, "a")
	assert.Error(t, err)
}

func TestParseAnswerUnknownType(t *testing.T) {
	_, err := ParseAnswer(Question{Type: QuestionType("slider")}, 5)
	assert.ErrorIs(t, err, ErrUnknownQuestionType)
}

func TestMultiChoicePayloadIsCopy(t *testing.T) {
	answer := MultiChoiceAnswer{Options: []string{"a", "b"}}
	payload, ok := answer.Payload().([]string)
	require.True(t, ok)
	payload[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, answer.Options)
}
