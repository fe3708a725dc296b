package domain

import (
	"fmt"
	"math"
	"strings"
)

// Answer is one captured answer value. Emptiness is defined per variant so
// that required-question validation never relies on zero-value coincidences.
type Answer interface {
	// IsEmpty reports whether the answer carries no usable content.
	IsEmpty() bool
	// Payload returns the JSON-friendly wire value of the answer.
	Payload() any
}

// RatingAnswer is an integer star rating. A committed rating is never
// empty: "unanswered" is the absence of the answer, not a sentinel value,
// so a future 0-based scale cannot collide with it.
type RatingAnswer struct {
	Stars int
}

func (RatingAnswer) IsEmpty() bool { return false }

func (a RatingAnswer) Payload() any { return a.Stars }

// TextAnswer is a free-form string answer.
type TextAnswer struct {
	Text string
}

func (a TextAnswer) IsEmpty() bool { return strings.TrimSpace(a.Text) == "" }

func (a TextAnswer) Payload() any { return a.Text }

// ChoiceAnswer is exactly one option, shared by the multiple-choice and
// dropdown variants.
type ChoiceAnswer struct {
	Option string
}

func (a ChoiceAnswer) IsEmpty() bool { return strings.TrimSpace(a.Option) == "" }

func (a ChoiceAnswer) Payload() any { return a.Option }

// MultiChoiceAnswer is a set of options for checkbox questions. Options are
// stored deduplicated in first-seen order; set semantics, order irrelevant.
type MultiChoiceAnswer struct {
	Options []string
}

func (a MultiChoiceAnswer) IsEmpty() bool { return len(a.Options) == 0 }

func (a MultiChoiceAnswer) Payload() any {
	return append([]string{}, a.Options...)
}

// Contains reports membership in the selection set.
func (a MultiChoiceAnswer) Contains(option string) bool {
	for _, existing := range a.Options {
		if existing == option {
			return true
		}
	}
	return false
}

// NewMultiChoiceAnswer deduplicates the raw selection into a set.
func NewMultiChoiceAnswer(options []string) MultiChoiceAnswer {
	answer := MultiChoiceAnswer{Options: make([]string, 0, len(options))}
	for _, option := range options {
		option = strings.TrimSpace(option)
		if option == "" || answer.Contains(option) {
			continue
		}
		answer.Options = append(answer.Options, option)
	}
	return answer
}

// ParseAnswer converts a decoded JSON value into the answer variant the
// question expects. It owns shape coercion only; ValidateAnswer owns range
// and option checks.
func ParseAnswer(question Question, raw any) (Answer, error) {
	switch question.Type {
	case TypeRating:
		stars, err := coerceInt(raw)
		if err != nil {
			return nil, fmt.Errorf("rating answer: %w", err)
		}
		return RatingAnswer{Stars: stars}, nil
	case TypeText:
		text, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("text answer must be a string, got %T", raw)
		}
		return TextAnswer{Text: text}, nil
	case TypeMultipleChoice, TypeDropdown:
		option, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("choice answer must be a string, got %T", raw)
		}
		return ChoiceAnswer{Option: strings.TrimSpace(option)}, nil
	case TypeCheckbox:
		options, err := coerceStringSlice(raw)
		if err != nil {
			return nil, fmt.Errorf("checkbox answer: %w", err)
		}
		return NewMultiChoiceAnswer(options), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuestionType, question.Type)
	}
}

func coerceInt(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("value %v is not a whole number", v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("value must be a number, got %T", raw)
	}
}

func coerceStringSlice(raw any) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("selection must be strings, got %T", item)
			}
			values = append(values, s)
		}
		return values, nil
	default:
		return nil, fmt.Errorf("value must be a string list, got %T", raw)
	}
}
