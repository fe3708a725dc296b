package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                   string
	MongoURI               string
	MongoDatabase          string
	RestaurantCollection   string
	AccountCollection      string
	FormCollection         string
	QuestionCollection     string
	ResponseCollection     string
	MenuCategoryCollection string
	MenuItemCollection     string
	TableCollection        string
	VisitCollection        string
	Timeout                time.Duration
	Timezone               string
	ServerLog              *log.Logger
	JWTSecret              []byte
	JWTIssuer              string
	JWTAudience            string
	JWTTTL                 time.Duration
	SessionTTL             time.Duration
	AllowedOrigins         []string
	CustomerBaseURL        string
	GoogleReviewBaseURL    string
	DefaultPlaceID         string
}

// fileConfig is the subset of Config that may be supplied through the
// optional YAML file referenced by HOSHLOOP_CONFIG. Environment variables
// win over file values.
type fileConfig struct {
	Addr            string   `yaml:"addr"`
	MongoURI        string   `yaml:"mongoUri"`
	MongoDatabase   string   `yaml:"mongoDatabase"`
	Timezone        string   `yaml:"timezone"`
	AllowedOrigins  []string `yaml:"allowedOrigins"`
	CustomerBaseURL string   `yaml:"customerBaseUrl"`
	DefaultPlaceID  string   `yaml:"defaultPlaceId"`
}

// Load reads the optional YAML overlay and environment variables and returns
// a fully populated Config.
func Load() Config {
	file := loadFile(strings.TrimSpace(os.Getenv("HOSHLOOP_CONFIG")))

	timeout := 10 * time.Second
	if v := strings.TrimSpace(os.Getenv("MONGO_CONNECT_TIMEOUT")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	jwtTTL := 24 * time.Hour
	if v := strings.TrimSpace(os.Getenv("AUTH_JWT_TTL")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			jwtTTL = parsed
		}
	}

	sessionTTL := 2 * time.Hour
	if v := strings.TrimSpace(os.Getenv("FEEDBACK_SESSION_TTL")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			sessionTTL = parsed
		}
	}

	jwtSecret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))
	if jwtSecret == "" {
		log.Fatal("AUTH_JWT_SECRET must be configured")
	}

	cfg := Config{
		Addr:                   envOrDefault("HTTP_ADDR", fallback(file.Addr, ":5000")),
		MongoURI:               envOrDefault("MONGO_URI", fallback(file.MongoURI, "mongodb://mongo:27017")),
		MongoDatabase:          envOrDefault("MONGO_DB", fallback(file.MongoDatabase, "hoshloop")),
		RestaurantCollection:   envOrDefault("RESTAURANT_COLLECTION", "restaurants"),
		AccountCollection:      envOrDefault("ACCOUNT_COLLECTION", "accounts"),
		FormCollection:         envOrDefault("FORM_COLLECTION", "feedback_forms"),
		QuestionCollection:     envOrDefault("QUESTION_COLLECTION", "feedback_questions"),
		ResponseCollection:     envOrDefault("RESPONSE_COLLECTION", "feedback_responses"),
		MenuCategoryCollection: envOrDefault("MENU_CATEGORY_COLLECTION", "menu_categories"),
		MenuItemCollection:     envOrDefault("MENU_ITEM_COLLECTION", "menu_items"),
		TableCollection:        envOrDefault("TABLE_COLLECTION", "tables"),
		VisitCollection:        envOrDefault("VISIT_COLLECTION", "visits"),
		Timeout:                timeout,
		Timezone:               envOrDefault("TIMEZONE", fallback(file.Timezone, "UTC")),
		ServerLog:              log.New(os.Stdout, "[hoshloop-api] ", log.LstdFlags|log.Lshortfile),
		JWTSecret:              []byte(jwtSecret),
		JWTIssuer:              envOrDefault("AUTH_JWT_ISSUER", "hoshloop-api"),
		JWTAudience:            strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE")),
		JWTTTL:                 jwtTTL,
		SessionTTL:             sessionTTL,
		AllowedOrigins:         parseList("API_ALLOWED_ORIGINS", fallbackList(file.AllowedOrigins, []string{"*"})),
		CustomerBaseURL:        envOrDefault("CUSTOMER_BASE_URL", fallback(file.CustomerBaseURL, "http://localhost:3000")),
		GoogleReviewBaseURL:    envOrDefault("GOOGLE_REVIEW_BASE_URL", "https://search.google.com/local/writereview"),
		DefaultPlaceID:         envOrDefault("GOOGLE_DEFAULT_PLACE_ID", file.DefaultPlaceID),
	}

	return cfg
}

// loadFile parses the YAML overlay when a path is configured. A missing or
// broken file is fatal only when the operator asked for it explicitly.
func loadFile(path string) fileConfig {
	var parsed fileConfig
	if path == "" {
		return parsed
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("config file %s could not be read: %v", path, err)
	}
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		log.Fatalf("config file %s could not be parsed: %v", path, err)
	}
	return parsed
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return def
}

func fallbackList(values, def []string) []string {
	if len(values) > 0 {
		return values
	}
	return def
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}

// CustomerFeedbackURL builds the URL a table QR code points at.
func (c Config) CustomerFeedbackURL(restaurantID, tableToken string) string {
	base := strings.TrimRight(strings.TrimSpace(c.CustomerBaseURL), "/")
	return fmt.Sprintf("%s/%s/feedback?table=%s", base, restaurantID, tableToken)
}
