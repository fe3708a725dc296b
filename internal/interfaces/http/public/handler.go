package public

import (
	"log"

	"github.com/go-chi/chi/v5"
	publicapp "github.com/hoshloop/hoshloop-services/api/internal/public/application"
)

// Handler wires customer-facing HTTP endpoints to application services.
type Handler struct {
	logger      *log.Logger
	forms       publicapp.FormQueryService
	menu        publicapp.MenuQueryService
	restaurants publicapp.RestaurantQueryService
	feedback    publicapp.FeedbackCommandService
	wizard      *publicapp.WizardService
	reviews     publicapp.ReviewService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger      *log.Logger
	Forms       publicapp.FormQueryService
	Menu        publicapp.MenuQueryService
	Restaurants publicapp.RestaurantQueryService
	Feedback    publicapp.FeedbackCommandService
	Wizard      *publicapp.WizardService
	Reviews     publicapp.ReviewService
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:      cfg.Logger,
		forms:       cfg.Forms,
		menu:        cfg.Menu,
		restaurants: cfg.Restaurants,
		feedback:    cfg.Feedback,
		wizard:      cfg.Wizard,
		reviews:     cfg.Reviews,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/restaurants/{id}/public", h.restaurantPublicHandler())
	r.Get("/menu/restaurants/{id}/categories/public", h.menuCategoriesHandler())
	r.Get("/menu/restaurants/{id}/items/public", h.menuItemsHandler())

	r.Get("/feedback/forms/{formID}", h.formDetailHandler())
	r.Post("/feedback/forms/{formID}/submit", h.submitHandler())

	r.Post("/feedback/forms/{formID}/sessions", h.sessionCreateHandler())
	r.Get("/feedback/sessions/{sessionID}", h.sessionDetailHandler())
	r.Put("/feedback/sessions/{sessionID}/answers/{questionID}", h.sessionAnswerHandler())
	r.Post("/feedback/sessions/{sessionID}/advance", h.sessionAdvanceHandler())
	r.Post("/feedback/sessions/{sessionID}/retreat", h.sessionRetreatHandler())

	r.Post("/feedback/responses/{responseID}/review", h.reviewComposeHandler())
	r.Post("/feedback/responses/{responseID}/review-link", h.reviewLinkHandler())

	r.Post("/auth/customer/phone", h.phoneCheckInHandler())
}
