package domain

import (
	"errors"
	"fmt"
	"strings"
)

// QuestionType tags the five supported question variants.
type QuestionType string

const (
	TypeRating         QuestionType = "rating"
	TypeText           QuestionType = "text"
	TypeMultipleChoice QuestionType = "multiplechoice"
	TypeCheckbox       QuestionType = "checkbox"
	TypeDropdown       QuestionType = "dropdown"
)

// ErrUnknownQuestionType rejects types outside the supported set.
var ErrUnknownQuestionType = errors.New("unknown question type")

// DefaultMaxRating applies when a rating question carries no explicit scale.
const DefaultMaxRating = 5

// ParseQuestionType validates a raw type tag.
func ParseQuestionType(value string) (QuestionType, error) {
	switch QuestionType(strings.TrimSpace(strings.ToLower(value))) {
	case TypeRating:
		return TypeRating, nil
	case TypeText:
		return TypeText, nil
	case TypeMultipleChoice:
		return TypeMultipleChoice, nil
	case TypeCheckbox:
		return TypeCheckbox, nil
	case TypeDropdown:
		return TypeDropdown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownQuestionType, value)
	}
}

// HasOptions reports whether the variant carries an option list.
func (t QuestionType) HasOptions() bool {
	switch t {
	case TypeMultipleChoice, TypeCheckbox, TypeDropdown:
		return true
	default:
		return false
	}
}

// QuestionSettings holds presentation hints that affect answer validation.
type QuestionSettings struct {
	MaxRating   int
	Placeholder string
}

// Question is the customer-facing view of a single form question. It is
// immutable for the duration of a submission session.
type Question struct {
	ID          string
	Text        string
	Description string
	Type        QuestionType
	Required    bool
	Options     []string
	Settings    QuestionSettings
	Order       int
}

// MaxRating returns the effective rating scale upper bound.
func (q Question) MaxRating() int {
	if q.Settings.MaxRating > 0 {
		return q.Settings.MaxRating
	}
	return DefaultMaxRating
}

// hasOption checks membership in the question's option list.
func (q Question) hasOption(value string) bool {
	for _, option := range q.Options {
		if option == value {
			return true
		}
	}
	return false
}

// ValidateAnswer checks that an answer's shape and content fit this
// question. The switch is exhaustive over the supported variants so an
// unhandled type surfaces as an error instead of passing silently.
func (q Question) ValidateAnswer(answer Answer) error {
	if answer == nil {
		return errors.New("answer is missing")
	}

	switch q.Type {
	case TypeRating:
		rating, ok := answer.(RatingAnswer)
		if !ok {
			return fmt.Errorf("question %q expects a rating", q.ID)
		}
		if rating.Stars < 1 || rating.Stars > q.MaxRating() {
			return fmt.Errorf("rating must be between 1 and %d", q.MaxRating())
		}
		return nil
	case TypeText:
		if _, ok := answer.(TextAnswer); !ok {
			return fmt.Errorf("question %q expects text", q.ID)
		}
		return nil
	case TypeMultipleChoice, TypeDropdown:
		choice, ok := answer.(ChoiceAnswer)
		if !ok {
			return fmt.Errorf("question %q expects a single choice", q.ID)
		}
		if choice.Option != "" && !q.hasOption(choice.Option) {
			return fmt.Errorf("option %q is not part of question %q", choice.Option, q.ID)
		}
		return nil
	case TypeCheckbox:
		multi, ok := answer.(MultiChoiceAnswer)
		if !ok {
			return fmt.Errorf("question %q expects a selection set", q.ID)
		}
		for _, option := range multi.Options {
			if !q.hasOption(option) {
				return fmt.Errorf("option %q is not part of question %q", option, q.ID)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownQuestionType, q.Type)
	}
}
