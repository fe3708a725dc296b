package admin

import "time"

type registerRequest struct {
	RestaurantName string `json:"restaurantName"`
	OwnerName      string `json:"ownerName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	RestaurantID string `json:"restaurantId"`
}

type restaurantResponse struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	Address       string            `json:"address,omitempty"`
	Phone         string            `json:"phone,omitempty"`
	GooglePlaceID string            `json:"googlePlaceId,omitempty"`
	Appearance    map[string]string `json:"appearance,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

type authResponse struct {
	Token      string             `json:"token"`
	Account    accountResponse    `json:"account"`
	Restaurant restaurantResponse `json:"restaurant"`
}

type restaurantUpdateRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	GooglePlaceID *string `json:"googlePlaceId"`
}

type appearanceUpdateRequest struct {
	Appearance map[string]string `json:"appearance"`
}

type formRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	ThankYouMessage string `json:"thankYouMessage"`
	Active          *bool  `json:"active"`
}

type formResponse struct {
	ID              string    `json:"id"`
	RestaurantID    string    `json:"restaurantId"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	ThankYouMessage string    `json:"thankYouMessage,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type questionRequest struct {
	Text        string   `json:"text"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Options     []string `json:"options"`
	MaxRating   int      `json:"maxRating"`
	Placeholder string   `json:"placeholder"`
	Order       *int     `json:"order"`
}

type questionResponse struct {
	ID          string   `json:"id"`
	FormID      string   `json:"formId"`
	Text        string   `json:"text"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Options     []string `json:"options,omitempty"`
	MaxRating   int      `json:"maxRating,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Order       int      `json:"order"`
}

type formDetailResponse struct {
	Form      formResponse       `json:"form"`
	Questions []questionResponse `json:"questions"`
}

type answerResponse struct {
	QuestionID string `json:"questionId"`
	Type       string `json:"type"`
	Value      any    `json:"value"`
}

type responseResponse struct {
	ID            string           `json:"id"`
	FormID        string           `json:"formId"`
	RestaurantID  string           `json:"restaurantId"`
	VisitID       string           `json:"visitId,omitempty"`
	CustomerPhone string           `json:"customerPhone,omitempty"`
	Answers       []answerResponse `json:"answers"`
	SubmittedAt   time.Time        `json:"submittedAt"`
}

type responseListResponse struct {
	Items []responseResponse `json:"items"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
	Total int                `json:"total"`
}

type optionCountResponse struct {
	Option string `json:"option"`
	Count  int    `json:"count"`
}

type questionAnalyticsResponse struct {
	QuestionID    string                `json:"questionId"`
	Text          string                `json:"text"`
	Type          string                `json:"type"`
	AnswerCount   int                   `json:"answerCount"`
	AverageRating *float64              `json:"averageRating,omitempty"`
	Distribution  []optionCountResponse `json:"distribution,omitempty"`
	TextSamples   []string              `json:"textSamples,omitempty"`
}

type formAnalyticsResponse struct {
	FormID        string                      `json:"formId"`
	ResponseCount int                         `json:"responseCount"`
	AverageRating *float64                    `json:"averageRating,omitempty"`
	Questions     []questionAnalyticsResponse `json:"questions"`
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       *int   `json:"order"`
	Active      *bool  `json:"active"`
}

type categoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type itemRequest struct {
	CategoryID  string   `json:"categoryId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceCents  *int     `json:"priceCents"`
	Tags        []string `json:"tags"`
	Active      *bool    `json:"active"`
}

type itemResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"categoryId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int       `json:"priceCents"`
	Active      bool      `json:"active"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type visibilityRequest struct {
	Active bool `json:"active"`
}

type tableCreateRequest struct {
	Name string `json:"name"`
}

type tableResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	QRToken     string    `json:"qrToken"`
	FeedbackURL string    `json:"feedbackUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}
