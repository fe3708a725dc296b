package application

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hoshloop/hoshloop-services/api/internal/public/domain"
)

// AdvanceResult reports what a wizard advance produced.
type AdvanceResult struct {
	// Submitted is true when the advance crossed the last step and the
	// accumulated answers were persisted.
	Submitted  bool
	ResponseID string
}

// WizardService drives server-held feedback sessions through their steps.
type WizardService struct {
	forms       FormRepository
	restaurants RestaurantRepository
	sink        SubmissionSink
	ttl         time.Duration
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	mu       sync.Mutex
	session  *domain.Session
	deadline time.Time
}

// NewWizardService builds the wizard with an empty in-memory session store.
// Sessions are process-local by design: each customer visit owns exactly
// one, and nothing is shared across sessions.
func NewWizardService(forms FormRepository, restaurants RestaurantRepository, sink SubmissionSink, ttl time.Duration) *WizardService {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &WizardService{
		forms:       forms,
		restaurants: restaurants,
		sink:        sink,
		ttl:         ttl,
		now:         time.Now,
		sessions:    make(map[string]*sessionEntry),
	}
}

// Start loads the form and restaurant and opens a new session at step 0.
func (s *WizardService) Start(ctx context.Context, formID, visitID, customerPhone string) (*domain.Session, error) {
	form, questions, err := s.forms.FindByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if !form.Active {
		return nil, ErrNotFound
	}

	restaurant, err := s.restaurants.FindProfile(ctx, form.RestaurantID)
	if err != nil {
		return nil, err
	}

	session, err := domain.NewSession(uuid.NewString(), *form, *restaurant, questions)
	if err != nil {
		return nil, err
	}
	session.VisitID = strings.TrimSpace(visitID)
	session.CustomerPhone = strings.TrimSpace(customerPhone)

	now := s.now()
	s.mu.Lock()
	s.evictExpiredLocked(now)
	s.sessions[session.ID] = &sessionEntry{session: session, deadline: now.Add(s.ttl)}
	s.mu.Unlock()

	return session, nil
}

// Get returns a live session by id.
func (s *WizardService) Get(sessionID string) (*domain.Session, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.session, nil
}

// SetAnswer parses the raw value against the addressed question and commits
// it to the session's answer map.
func (s *WizardService) SetAnswer(sessionID, questionID string, raw any) error {
	entry, err := s.entry(sessionID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	question, found := questionInSession(entry.session, questionID)
	if !found {
		return domain.ErrUnknownQuestion
	}
	answer, err := domain.ParseAnswer(question, raw)
	if err != nil {
		return err
	}
	return entry.session.SetAnswer(questionID, answer)
}

// Advance validates the current step and moves forward; crossing the last
// step submits the accumulated answers. A failed submission reverts the
// session to its pre-submission state so the customer can retry, and the
// Submitting state makes a second in-flight submission impossible.
func (s *WizardService) Advance(ctx context.Context, sessionID string) (AdvanceResult, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return AdvanceResult{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	session := entry.session
	submit, err := session.Advance()
	if err != nil {
		return AdvanceResult{}, err
	}
	if !submit {
		return AdvanceResult{}, nil
	}

	responseID, err := s.sink.Store(ctx, Submission{
		FormID:        session.Form.ID,
		RestaurantID:  session.Form.RestaurantID,
		VisitID:       session.VisitID,
		CustomerPhone: session.CustomerPhone,
		Answers:       session.Answers(),
		SubmittedAt:   s.now().UTC(),
	})
	if err != nil {
		if failErr := session.Fail(); failErr != nil {
			return AdvanceResult{}, failErr
		}
		return AdvanceResult{}, err
	}

	if err := session.Complete(responseID); err != nil {
		return AdvanceResult{}, err
	}
	return AdvanceResult{Submitted: true, ResponseID: responseID}, nil
}

// Retreat steps the session back one question.
func (s *WizardService) Retreat(sessionID string) error {
	entry, err := s.entry(sessionID)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.session.Retreat()
}

// ComposeDraft runs the review composer over a completed session.
func (s *WizardService) ComposeDraft(sessionID string) (string, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return "", err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	session := entry.session
	return domain.ComposeReview(session.Restaurant.Name, session.Questions(), session.Answers()), nil
}

func (s *WizardService) entry(sessionID string) (*sessionEntry, error) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked(now)
	entry, ok := s.sessions[strings.TrimSpace(sessionID)]
	if !ok {
		return nil, ErrNotFound
	}
	entry.deadline = now.Add(s.ttl)
	return entry, nil
}

func (s *WizardService) evictExpiredLocked(now time.Time) {
	for id, entry := range s.sessions {
		if now.After(entry.deadline) {
			delete(s.sessions, id)
		}
	}
}

func questionInSession(session *domain.Session, questionID string) (domain.Question, bool) {
	for _, question := range session.Questions() {
		if question.ID == questionID {
			return question, true
		}
	}
	return domain.Question{}, false
}
