package application

import (
	"context"
	"errors"
	"time"

	"github.com/hoshloop/hoshloop-services/api/internal/public/domain"
)

// ErrNotFound is returned by repositories when the target does not exist
// or belongs to another tenant.
var ErrNotFound = errors.New("not found")

// FormRepository reads customer-facing forms with their ordered questions.
type FormRepository interface {
	FindByID(ctx context.Context, formID string) (*domain.Form, []domain.Question, error)
}

// RestaurantRepository reads public restaurant profiles.
type RestaurantRepository interface {
	FindProfile(ctx context.Context, restaurantID string) (*domain.RestaurantProfile, error)
}

// MenuRepository reads the publicly visible parts of a menu.
type MenuRepository interface {
	ActiveCategories(ctx context.Context, restaurantID string) ([]domain.MenuCategory, error)
	AvailableItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
}

// Submission is a finalized answer set ready for persistence.
type Submission struct {
	FormID        string
	RestaurantID  string
	VisitID       string
	CustomerPhone string
	Answers       map[string]domain.Answer
	SubmittedAt   time.Time
}

// StoredResponse is a persisted submission read back for review composition.
type StoredResponse struct {
	ID            string
	FormID        string
	RestaurantID  string
	VisitID       string
	CustomerPhone string
	Answers       map[string]domain.Answer
	SubmittedAt   time.Time
}

// SubmissionSink persists finalized submissions and returns their identifier.
type SubmissionSink interface {
	Store(ctx context.Context, submission Submission) (string, error)
}

// SubmissionReader loads stored responses by identifier.
type SubmissionReader interface {
	FindResponse(ctx context.Context, responseID string) (*StoredResponse, error)
}

// Visit records a customer check-in at a restaurant.
type Visit struct {
	RestaurantID  string
	TableToken    string
	CustomerPhone string
	CheckedInAt   time.Time
}

// VisitRepository persists customer check-ins.
type VisitRepository interface {
	Create(ctx context.Context, visit Visit) (string, error)
}

// FormQueryService serves the customer form-loading use-case.
type FormQueryService interface {
	Form(ctx context.Context, formID string) (*domain.Form, []domain.Question, error)
}

// MenuQueryService serves public menu reads.
type MenuQueryService interface {
	Categories(ctx context.Context, restaurantID string) ([]domain.MenuCategory, error)
	Items(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
}

// RestaurantQueryService serves public restaurant reads.
type RestaurantQueryService interface {
	Profile(ctx context.Context, restaurantID string) (*domain.RestaurantProfile, error)
}

// SubmitFeedbackCommand captures a direct (non-wizard) submission.
type SubmitFeedbackCommand struct {
	FormID        string
	RestaurantID  string
	VisitID       string
	CustomerPhone string
	// RawAnswers is the decoded JSON answer map keyed by question id.
	RawAnswers map[string]any
}

// FeedbackCommandService handles submissions and check-ins.
type FeedbackCommandService interface {
	Submit(ctx context.Context, cmd SubmitFeedbackCommand) (string, error)
	CheckIn(ctx context.Context, visit Visit) (string, error)
}

// ReviewService composes draft reviews and builds handoff links.
type ReviewService interface {
	ComposeForResponse(ctx context.Context, responseID string) (string, error)
	HandoffLink(ctx context.Context, responseID, draft string) (string, error)
}
