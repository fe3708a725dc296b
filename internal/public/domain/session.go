package domain

import (
	"errors"
	"fmt"
)

// SessionState is the wizard lifecycle state.
type SessionState string

const (
	// StateInProgress means the customer is walking the question list.
	StateInProgress SessionState = "in_progress"
	// StateSubmitting means a submission is in flight; navigation and
	// answer capture are blocked until it completes or fails.
	StateSubmitting SessionState = "submitting"
	// StateCompleted is terminal; the response identifier is recorded.
	StateCompleted SessionState = "completed"
)

var (
	// ErrAnswerRequired signals a required question without a usable answer.
	ErrAnswerRequired = errors.New("an answer is required to continue")
	// ErrUnknownQuestion rejects answers keyed by ids outside the form.
	ErrUnknownQuestion = errors.New("question is not part of this form")
	// ErrSessionBusy rejects mutations while a submission is in flight.
	ErrSessionBusy = errors.New("submission already in progress")
	// ErrSessionCompleted rejects mutations after successful submission.
	ErrSessionCompleted = errors.New("session already completed")
	// ErrNoQuestions rejects building a session over an empty form.
	ErrNoQuestions = errors.New("form has no questions")
)

// Session drives one customer through a form's questions in fixed order.
// It is the single owner of the step index and the answer map; callers
// serialize access (one customer, one session, one event at a time).
type Session struct {
	ID            string
	Form          Form
	Restaurant    RestaurantProfile
	VisitID       string
	CustomerPhone string

	questions  []Question
	step       int
	answers    map[string]Answer
	state      SessionState
	responseID string
}

// NewSession builds an in-progress session positioned at the first question.
func NewSession(id string, form Form, restaurant RestaurantProfile, questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		ID:         id,
		Form:       form,
		Restaurant: restaurant,
		questions:  append([]Question{}, questions...),
		answers:    make(map[string]Answer),
		state:      StateInProgress,
	}, nil
}

// State returns the current lifecycle state.
func (s *Session) State() SessionState { return s.state }

// Step returns the 0-based index of the question on display.
func (s *Session) Step() int { return s.step }

// Questions returns the ordered question list.
func (s *Session) Questions() []Question {
	return append([]Question{}, s.questions...)
}

// Current returns the question at the current step.
func (s *Session) Current() Question { return s.questions[s.step] }

// Progress reports the 1-based position and the total count.
func (s *Session) Progress() (current, total int) {
	return s.step + 1, len(s.questions)
}

// ResponseID returns the stored identifier after completion.
func (s *Session) ResponseID() string { return s.responseID }

// Answer returns the captured answer for a question, if any.
func (s *Session) Answer(questionID string) (Answer, bool) {
	answer, ok := s.answers[questionID]
	return answer, ok
}

// Answers returns a copy of the answer map keyed by question id.
func (s *Session) Answers() map[string]Answer {
	copied := make(map[string]Answer, len(s.answers))
	for id, answer := range s.answers {
		copied[id] = answer
	}
	return copied
}

// SetAnswer captures or overwrites the answer for a question. Only ids
// present in the question list are accepted.
func (s *Session) SetAnswer(questionID string, answer Answer) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}

	question, ok := s.questionByID(questionID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownQuestion, questionID)
	}
	if err := question.ValidateAnswer(answer); err != nil {
		return err
	}

	s.answers[questionID] = answer
	return nil
}

// Advance validates the current question and moves forward. At the last
// step it transitions to Submitting and reports submit=true; the caller
// performs the actual submission and settles it with Complete or Fail.
// Re-invoking Advance while Submitting returns ErrSessionBusy, so rapid
// repeat clicks cannot start a second submission.
func (s *Session) Advance() (submit bool, err error) {
	if err := s.ensureMutable(); err != nil {
		return false, err
	}

	current := s.Current()
	if current.Required {
		answer, ok := s.answers[current.ID]
		if !ok || answer.IsEmpty() {
			return false, ErrAnswerRequired
		}
	}

	if s.step < len(s.questions)-1 {
		s.step++
		return false, nil
	}

	s.state = StateSubmitting
	return true, nil
}

// Retreat steps back one question. Moving backward never loses captured
// answers and needs no validation.
func (s *Session) Retreat() error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if s.step > 0 {
		s.step--
	}
	return nil
}

// Complete settles an in-flight submission successfully.
func (s *Session) Complete(responseID string) error {
	if s.state != StateSubmitting {
		return fmt.Errorf("cannot complete session in state %q", s.state)
	}
	s.state = StateCompleted
	s.responseID = responseID
	return nil
}

// Fail reverts an in-flight submission to InProgress at the last question,
// preserving every captured answer so the customer can retry.
func (s *Session) Fail() error {
	if s.state != StateSubmitting {
		return fmt.Errorf("cannot fail session in state %q", s.state)
	}
	s.state = StateInProgress
	return nil
}

func (s *Session) ensureMutable() error {
	switch s.state {
	case StateSubmitting:
		return ErrSessionBusy
	case StateCompleted:
		return ErrSessionCompleted
	default:
		return nil
	}
}

func (s *Session) questionByID(id string) (Question, bool) {
	for _, question := range s.questions {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}

// MissingRequired lists required questions without a usable answer, in
// question order. Used by the direct submission path which skips the
// step-by-step wizard.
func MissingRequired(questions []Question, answers map[string]Answer) []Question {
	missing := make([]Question, 0)
	for _, question := range questions {
		if !question.Required {
			continue
		}
		answer, ok := answers[question.ID]
		if !ok || answer == nil || answer.IsEmpty() {
			missing = append(missing, question)
		}
	}
	return missing
}
