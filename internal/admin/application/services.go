package application

import (
	"context"
	"errors"
	"time"

	admindomain "github.com/hoshloop/hoshloop-services/api/internal/admin/domain"
)

// ErrNotFound covers missing records and cross-tenant access alike, so a
// tenant cannot probe for other tenants' identifiers.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken rejects duplicate owner registrations.
var ErrEmailTaken = errors.New("email is already registered")

// ErrInvalidCredentials covers unknown emails and wrong passwords alike.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Paging controls pagination.
type Paging struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// AccountRepository persists owner accounts.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*admindomain.Account, error)
	FindByID(ctx context.Context, id string) (*admindomain.Account, error)
	Create(ctx context.Context, account *admindomain.Account) error
}

// RestaurantRepository persists restaurant tenants.
type RestaurantRepository interface {
	FindByID(ctx context.Context, id string) (*admindomain.Restaurant, error)
	Create(ctx context.Context, restaurant *admindomain.Restaurant) error
	Update(ctx context.Context, restaurant *admindomain.Restaurant) error
}

// FormRepository persists forms and their questions.
type FormRepository interface {
	ListByRestaurant(ctx context.Context, restaurantID string) ([]admindomain.FeedbackForm, error)
	FindByID(ctx context.Context, formID string) (*admindomain.FeedbackForm, error)
	Create(ctx context.Context, form *admindomain.FeedbackForm) error
	Update(ctx context.Context, form *admindomain.FeedbackForm) error
	Questions(ctx context.Context, formID string) ([]admindomain.Question, error)
	FindQuestion(ctx context.Context, questionID string) (*admindomain.Question, error)
	AddQuestion(ctx context.Context, question *admindomain.Question) error
	UpdateQuestion(ctx context.Context, question *admindomain.Question) error
	DeleteQuestion(ctx context.Context, questionID string) error
}

// AnswerRecord is one stored answer inside a response, kept loosely typed
// for aggregation: Value is an int for ratings, a string for text and
// single-choice answers, and a []string for checkbox sets.
type AnswerRecord struct {
	QuestionID string
	Type       string
	Value      any
}

// ResponseRecord is a stored submission as the owner sees it.
type ResponseRecord struct {
	ID            string
	FormID        string
	RestaurantID  string
	VisitID       string
	CustomerPhone string
	Answers       []AnswerRecord
	SubmittedAt   time.Time
}

// ResponseRepository reads stored submissions for analytics and listings.
type ResponseRepository interface {
	ListByForm(ctx context.Context, formID string, paging Paging) ([]ResponseRecord, int, error)
	ListByRestaurant(ctx context.Context, restaurantID string, paging Paging) ([]ResponseRecord, int, error)
	FindByID(ctx context.Context, responseID string) (*ResponseRecord, error)
}

// MenuRepository persists categories and items.
type MenuRepository interface {
	Categories(ctx context.Context, restaurantID string) ([]admindomain.MenuCategory, error)
	FindCategory(ctx context.Context, categoryID string) (*admindomain.MenuCategory, error)
	CreateCategory(ctx context.Context, category *admindomain.MenuCategory) error
	UpdateCategory(ctx context.Context, category *admindomain.MenuCategory) error
	DeleteCategory(ctx context.Context, categoryID string) error
	Items(ctx context.Context, restaurantID string) ([]admindomain.MenuItem, error)
	FindItem(ctx context.Context, itemID string) (*admindomain.MenuItem, error)
	CreateItem(ctx context.Context, item *admindomain.MenuItem) error
	UpdateItem(ctx context.Context, item *admindomain.MenuItem) error
	DeleteItem(ctx context.Context, itemID string) error
}

// TableRepository persists tables.
type TableRepository interface {
	ListByRestaurant(ctx context.Context, restaurantID string) ([]admindomain.Table, error)
	FindByID(ctx context.Context, tableID string) (*admindomain.Table, error)
	Create(ctx context.Context, table *admindomain.Table) error
	Delete(ctx context.Context, tableID string) error
}

// PasswordHasher hashes and verifies owner passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer mints bearer tokens for owner accounts.
type TokenIssuer interface {
	Issue(accountID, email, name, restaurantID string) (string, error)
}

// RegisterCommand creates a restaurant tenant together with its owner.
type RegisterCommand struct {
	RestaurantName string
	OwnerName      string
	Email          string
	Password       string
}

// AuthResult is a logged-in owner with a fresh token.
type AuthResult struct {
	Token      string
	Account    admindomain.Account
	Restaurant admindomain.Restaurant
}

// AuthService owns owner registration and login.
type AuthService interface {
	Register(ctx context.Context, cmd RegisterCommand) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Current(ctx context.Context, accountID string) (*admindomain.Account, *admindomain.Restaurant, error)
}

// UpdateRestaurantCommand carries general-settings changes.
type UpdateRestaurantCommand struct {
	Name          *string
	Description   *string
	Address       *string
	Phone         *string
	GooglePlaceID *string
}

// RestaurantService owns tenant settings.
type RestaurantService interface {
	Get(ctx context.Context, restaurantID, requesterRestaurantID string) (*admindomain.Restaurant, error)
	UpdateGeneral(ctx context.Context, restaurantID, requesterRestaurantID string, cmd UpdateRestaurantCommand) (*admindomain.Restaurant, error)
	UpdateAppearance(ctx context.Context, restaurantID, requesterRestaurantID string, appearance map[string]string) (*admindomain.Restaurant, error)
}

// UpsertFormCommand carries form create/update input.
type UpsertFormCommand struct {
	Name            string
	Description     string
	ThankYouMessage string
	Active          *bool
}

// UpsertQuestionCommand carries question create/update input.
type UpsertQuestionCommand struct {
	Text        string
	Description string
	Type        string
	Required    bool
	Options     []string
	MaxRating   int
	Placeholder string
	Order       *int
}

// FormService owns form and question authoring.
type FormService interface {
	List(ctx context.Context, restaurantID string) ([]admindomain.FeedbackForm, error)
	Detail(ctx context.Context, formID, restaurantID string) (*admindomain.FeedbackForm, []admindomain.Question, error)
	Create(ctx context.Context, restaurantID string, cmd UpsertFormCommand) (*admindomain.FeedbackForm, error)
	Update(ctx context.Context, formID, restaurantID string, cmd UpsertFormCommand) (*admindomain.FeedbackForm, error)
	AddQuestion(ctx context.Context, formID, restaurantID string, cmd UpsertQuestionCommand) (*admindomain.Question, error)
	UpdateQuestion(ctx context.Context, formID, questionID, restaurantID string, cmd UpsertQuestionCommand) (*admindomain.Question, error)
	DeleteQuestion(ctx context.Context, formID, questionID, restaurantID string) error
}

// UpsertCategoryCommand carries category input.
type UpsertCategoryCommand struct {
	Name        string
	Description string
	Order       *int
	Active      *bool
}

// UpsertItemCommand carries item input.
type UpsertItemCommand struct {
	CategoryID  string
	Name        string
	Description string
	PriceCents  *int
	Tags        []string
	Active      *bool
}

// MenuService owns menu authoring.
type MenuService interface {
	Categories(ctx context.Context, restaurantID string) ([]admindomain.MenuCategory, error)
	Items(ctx context.Context, restaurantID string) ([]admindomain.MenuItem, error)
	CreateCategory(ctx context.Context, restaurantID string, cmd UpsertCategoryCommand) (*admindomain.MenuCategory, error)
	UpdateCategory(ctx context.Context, categoryID, restaurantID string, cmd UpsertCategoryCommand) (*admindomain.MenuCategory, error)
	SetCategoryVisibility(ctx context.Context, categoryID, restaurantID string, active bool) (*admindomain.MenuCategory, error)
	DeleteCategory(ctx context.Context, categoryID, restaurantID string) error
	CreateItem(ctx context.Context, restaurantID string, cmd UpsertItemCommand) (*admindomain.MenuItem, error)
	UpdateItem(ctx context.Context, itemID, restaurantID string, cmd UpsertItemCommand) (*admindomain.MenuItem, error)
	SetItemAvailability(ctx context.Context, itemID, restaurantID string, active bool) (*admindomain.MenuItem, error)
	DeleteItem(ctx context.Context, itemID, restaurantID string) error
}

// TableService owns table management.
type TableService interface {
	Create(ctx context.Context, restaurantID, name string) (*admindomain.Table, error)
	List(ctx context.Context, restaurantID string) ([]admindomain.Table, error)
	Get(ctx context.Context, tableID, restaurantID string) (*admindomain.Table, error)
	Delete(ctx context.Context, tableID, restaurantID string) error
}
