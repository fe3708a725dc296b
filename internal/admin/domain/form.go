package domain

import (
	"fmt"
	"strings"
	"time"
)

// Question type tags as stored and served. The authoring side owns the
// allowed set; the customer-facing context validates answers against it.
const (
	QuestionTypeRating         = "rating"
	QuestionTypeText           = "text"
	QuestionTypeMultipleChoice = "multiplechoice"
	QuestionTypeCheckbox       = "checkbox"
	QuestionTypeDropdown       = "dropdown"
)

var allowedQuestionTypes = []string{
	QuestionTypeRating,
	QuestionTypeText,
	QuestionTypeMultipleChoice,
	QuestionTypeCheckbox,
	QuestionTypeDropdown,
}

// MaxRatingCeiling bounds configurable rating scales.
const MaxRatingCeiling = 10

// FeedbackForm is an owner-authored, ordered collection of questions.
type FeedbackForm struct {
	ID              string
	RestaurantID    string
	Name            string
	Description     string
	ThankYouMessage string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Question is the authoring-side view of a single prompt.
type Question struct {
	ID          string
	FormID      string
	Text        string
	Description string
	Type        string
	Required    bool
	Options     OptionList
	MaxRating   int
	Placeholder string
	Order       int
}

// questionTypeHasOptions reports whether a type tag carries options.
func questionTypeHasOptions(questionType string) bool {
	switch questionType {
	case QuestionTypeMultipleChoice, QuestionTypeCheckbox, QuestionTypeDropdown:
		return true
	default:
		return false
	}
}

// NewQuestion validates authored question input. Options are mandatory for
// choice-type variants and forbidden elsewhere; rating scales default to 5.
func NewQuestion(formID, text, description, questionType string, required bool, options []string, maxRating int, placeholder string, order int) (*Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("question text is required")
	}

	questionType = strings.TrimSpace(strings.ToLower(questionType))
	valid := false
	for _, allowed := range allowedQuestionTypes {
		if allowed == questionType {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("unsupported question type: %q", questionType)
	}

	question := &Question{
		FormID:      formID,
		Text:        text,
		Description: strings.TrimSpace(description),
		Type:        questionType,
		Required:    required,
		Placeholder: strings.TrimSpace(placeholder),
		Order:       order,
	}

	if questionTypeHasOptions(questionType) {
		optionList, err := NewOptionList(options)
		if err != nil {
			return nil, err
		}
		question.Options = optionList
	} else if len(options) > 0 {
		return nil, fmt.Errorf("%s questions do not take options", questionType)
	}

	if questionType == QuestionTypeRating {
		if maxRating == 0 {
			maxRating = 5
		}
		if maxRating < 2 || maxRating > MaxRatingCeiling {
			return nil, fmt.Errorf("rating scale must be between 2 and %d", MaxRatingCeiling)
		}
		question.MaxRating = maxRating
	} else if maxRating != 0 {
		return nil, fmt.Errorf("%s questions do not take a rating scale", questionType)
	}

	return question, nil
}

// NewFeedbackForm validates authored form input.
func NewFeedbackForm(restaurantID, name, description, thankYouMessage string) (*FeedbackForm, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("form name is required")
	}
	if strings.TrimSpace(restaurantID) == "" {
		return nil, fmt.Errorf("restaurant id is required")
	}
	return &FeedbackForm{
		RestaurantID:    strings.TrimSpace(restaurantID),
		Name:            name,
		Description:     strings.TrimSpace(description),
		ThankYouMessage: strings.TrimSpace(thankYouMessage),
		Active:          true,
	}, nil
}
