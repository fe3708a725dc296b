package admin

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	adminapp "github.com/hoshloop/hoshloop-services/api/internal/admin/application"
)

// Handler wires owner-facing HTTP endpoints to application services.
type Handler struct {
	logger      *log.Logger
	auth        adminapp.AuthService
	restaurants adminapp.RestaurantService
	forms       adminapp.FormService
	menu        adminapp.MenuService
	tables      adminapp.TableService
	analytics   adminapp.AnalyticsService
	// feedbackURL builds the customer entry URL a table's QR code encodes.
	feedbackURL func(restaurantID, tableToken string) string
}

// Config provides dependencies for Handler.
type Config struct {
	Logger      *log.Logger
	Auth        adminapp.AuthService
	Restaurants adminapp.RestaurantService
	Forms       adminapp.FormService
	Menu        adminapp.MenuService
	Tables      adminapp.TableService
	Analytics   adminapp.AnalyticsService
	FeedbackURL func(restaurantID, tableToken string) string
}

// NewHandler constructs an owner HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:      cfg.Logger,
		auth:        cfg.Auth,
		restaurants: cfg.Restaurants,
		forms:       cfg.Forms,
		menu:        cfg.Menu,
		tables:      cfg.Tables,
		analytics:   cfg.Analytics,
		feedbackURL: cfg.FeedbackURL,
	}
}

// Register mounts owner routes onto the router. Registration and login stay
// open; everything else requires a bearer token.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/auth/register", h.registerHandler())
	r.Post("/auth/login", h.loginHandler())

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/auth/me", h.meHandler())
		r.Get("/auth/logout", h.logoutHandler())

		r.Get("/restaurants/current", h.restaurantCurrentHandler())
		r.Get("/restaurants/{id}", h.restaurantDetailHandler())
		r.Put("/restaurants/{id}", h.restaurantUpdateHandler())
		r.Put("/restaurants/{id}/general", h.restaurantUpdateHandler())
		r.Put("/restaurants/{id}/appearance", h.restaurantAppearanceHandler())

		r.Get("/feedback/restaurants/{id}/forms", h.formListHandler())
		r.Post("/feedback/restaurants/{id}/forms", h.formCreateHandler())
		r.Get("/feedback/forms/{formID}", h.formDetailHandler())
		r.Put("/feedback/forms/{formID}", h.formUpdateHandler())
		r.Post("/feedback/forms/{formID}/questions", h.questionCreateHandler())
		r.Put("/feedback/forms/{formID}/questions/{questionID}", h.questionUpdateHandler())
		r.Delete("/feedback/forms/{formID}/questions/{questionID}", h.questionDeleteHandler())
		r.Get("/feedback/restaurants/{id}/responses", h.restaurantResponsesHandler())

		r.Get("/analytics/forms/{formID}/analytics", h.formAnalyticsHandler())
		r.Get("/analytics/forms/{formID}/responses", h.formResponsesHandler())
		r.Get("/analytics/forms/{formID}/export", h.formExportHandler())
		r.Get("/analytics/questions/{questionID}", h.questionDetailHandler())
		r.Get("/analytics/questions/{questionID}/analytics", h.questionAnalyticsHandler())
		r.Get("/analytics/questions/{questionID}/responses", h.questionResponsesHandler())
		r.Get("/analytics/responses/{responseID}", h.responseDetailHandler())

		r.Get("/menu/restaurants/{id}/categories", h.categoryListHandler())
		r.Post("/menu/categories", h.categoryCreateHandler())
		r.Put("/menu/categories/{id}", h.categoryUpdateHandler())
		r.Patch("/menu/categories/{id}/visibility", h.categoryVisibilityHandler())
		r.Delete("/menu/categories/{id}", h.categoryDeleteHandler())
		r.Get("/menu/restaurants/{id}/items", h.itemListHandler())
		r.Post("/menu/items", h.itemCreateHandler())
		r.Put("/menu/items/{id}", h.itemUpdateHandler())
		r.Patch("/menu/items/{id}/availability", h.itemAvailabilityHandler())
		r.Delete("/menu/items/{id}", h.itemDeleteHandler())

		r.Post("/tables", h.tableCreateHandler())
		r.Get("/tables/restaurant/{id}", h.tableListHandler())
		r.Delete("/tables/{id}", h.tableDeleteHandler())
		r.Get("/tables/{id}/qrcode.png", h.tableQRCodeHandler())
	})
}
