package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	adminapp "github.com/hoshloop/hoshloop-services/api/internal/admin/application"
	"github.com/hoshloop/hoshloop-services/api/internal/auth"
	"github.com/hoshloop/hoshloop-services/api/internal/config"
	mongodoc "github.com/hoshloop/hoshloop-services/api/internal/infrastructure/mongo"
	adminhttp "github.com/hoshloop/hoshloop-services/api/internal/interfaces/http/admin"
	commonhttp "github.com/hoshloop/hoshloop-services/api/internal/interfaces/http/common"
	publichttp "github.com/hoshloop/hoshloop-services/api/internal/interfaces/http/public"
	publicapp "github.com/hoshloop/hoshloop-services/api/internal/public/application"
	publicdomain "github.com/hoshloop/hoshloop-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Server is the composition root: it resolves repositories and application
// services, mounts the public and admin handlers, and owns the HTTP
// lifecycle.
type Server struct {
	logger   *log.Logger
	client   *mongo.Client
	database *mongo.Database

	tokens *auth.TokenManager

	authService        adminapp.AuthService
	restaurantService  adminapp.RestaurantService
	formService        adminapp.FormService
	menuService        adminapp.MenuService
	tableService       adminapp.TableService
	analyticsService   adminapp.AnalyticsService
	formQueries        publicapp.FormQueryService
	menuQueries        publicapp.MenuQueryService
	restaurantQueries  publicapp.RestaurantQueryService
	feedbackCommands   publicapp.FeedbackCommandService
	wizardService      *publicapp.WizardService
	reviewService      publicapp.ReviewService
	feedbackURLBuilder func(restaurantID, tableToken string) string

	addr           string
	allowedOrigins []string
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:      s.logger,
		Forms:       s.formQueries,
		Menu:        s.menuQueries,
		Restaurants: s.restaurantQueries,
		Feedback:    s.feedbackCommands,
		Wizard:      s.wizardService,
		Reviews:     s.reviewService,
	})
	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:      s.logger,
		Auth:        s.authService,
		Restaurants: s.restaurantService,
		Forms:       s.formService,
		Menu:        s.menuService,
		Tables:      s.tableService,
		Analytics:   s.analyticsService,
		FeedbackURL: s.feedbackURLBuilder,
	})

	router.Route("/api", func(r chi.Router) {
		publicHandler.Register(r)
		adminHandler.Register(r, s.authMiddleware)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP server listening on %s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// withCORS grants the configured origins access; "*" opens all of them.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler reports Mongo reachability for monitoring probes.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			commonhttp.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// authMiddleware verifies the bearer token and stores the owner identity in
// the request context. Both handler sets reach it through the Server so the
// token rules live in one place.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "a bearer token is required")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "access token is empty")
			return
		}

		claims, err := s.tokens.Parse(tokenString)
		if err != nil {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, err.Error())
			return
		}

		user := commonhttp.AuthenticatedUser{
			ID:           claims.Subject,
			Email:        claims.Email,
			Name:         claims.Name,
			RestaurantID: claims.RestaurantID,
		}

		ctx := commonhttp.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// shutdown disconnects the Mongo client with a bounded timeout.
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("mongo disconnect failed: %v", err)
	}
}

// waitForShutdown blocks on server failure or an OS signal and then drains
// in-flight requests before disconnecting.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("server stopped unexpectedly: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("signal %s received, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("server shutdown failed: %v", err)
		}
	}

	srv.shutdown(context.Background())
}

// New resolves every repository and application service from Config and a
// connected Mongo client.
func New(cfg config.Config, client *mongo.Client) *Server {
	srv := &Server{
		logger:         cfg.ServerLog,
		client:         client,
		database:       client.Database(cfg.MongoDatabase),
		tokens:         auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTTTL),
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}
	srv.feedbackURLBuilder = cfg.CustomerFeedbackURL

	restaurantRepo := mongodoc.NewRestaurantRepository(srv.database, cfg.RestaurantCollection)
	accountRepo := mongodoc.NewAccountRepository(srv.database, cfg.AccountCollection)
	formRepo := mongodoc.NewFormRepository(srv.database, cfg.FormCollection, cfg.QuestionCollection)
	publicFormRepo := mongodoc.NewPublicFormRepository(formRepo)
	responseRepo := mongodoc.NewResponseRepository(srv.database, cfg.ResponseCollection)
	menuRepo := mongodoc.NewMenuRepository(srv.database, cfg.MenuCategoryCollection, cfg.MenuItemCollection)
	tableRepo := mongodoc.NewTableRepository(srv.database, cfg.TableCollection)
	visitRepo := mongodoc.NewVisitRepository(srv.database, cfg.VisitCollection)

	hasher := auth.NewPasswordHasher(0)
	srv.authService = adminapp.NewAuthService(accountRepo, restaurantRepo, hasher, srv.tokens)
	srv.restaurantService = adminapp.NewRestaurantService(restaurantRepo)
	srv.formService = adminapp.NewFormService(formRepo)
	srv.menuService = adminapp.NewMenuService(menuRepo)
	srv.tableService = adminapp.NewTableService(tableRepo)
	srv.analyticsService = adminapp.NewAnalyticsService(formRepo, responseRepo)

	srv.formQueries = publicapp.NewFormQueryService(publicFormRepo)
	srv.menuQueries = publicapp.NewMenuQueryService(menuRepo)
	srv.restaurantQueries = publicapp.NewRestaurantQueryService(restaurantRepo)
	srv.feedbackCommands = publicapp.NewFeedbackCommandService(publicFormRepo, responseRepo, visitRepo)
	srv.wizardService = publicapp.NewWizardService(publicFormRepo, restaurantRepo, responseRepo, cfg.SessionTTL)

	handoff := publicdomain.ReviewHandoff{
		BaseURL:        cfg.GoogleReviewBaseURL,
		DefaultPlaceID: cfg.DefaultPlaceID,
	}
	srv.reviewService = publicapp.NewReviewService(responseRepo, publicFormRepo, restaurantRepo, handoff)

	return srv
}
