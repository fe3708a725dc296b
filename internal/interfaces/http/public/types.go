package public

// questionResponse is the customer-facing shape of one form question.
type questionResponse struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Options     []string `json:"options,omitempty"`
	MaxRating   int      `json:"maxRating,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Order       int      `json:"order"`
}

type formResponse struct {
	ID              string `json:"id"`
	RestaurantID    string `json:"restaurantId"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	ThankYouMessage string `json:"thankYouMessage,omitempty"`
}

type formDetailResponse struct {
	Form      formResponse       `json:"form"`
	Questions []questionResponse `json:"questions"`
}

type restaurantPublicResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	Address        string            `json:"address,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	HasGooglePlace bool              `json:"hasGooglePlace"`
	Appearance     map[string]string `json:"appearance,omitempty"`
}

type menuCategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
}

type menuItemResponse struct {
	ID          string   `json:"id"`
	CategoryID  string   `json:"categoryId"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	PriceCents  int      `json:"priceCents"`
	Tags        []string `json:"tags,omitempty"`
}

// sessionResponse reflects the wizard position after every session call so
// clients never track state themselves.
type sessionResponse struct {
	SessionID  string           `json:"sessionId"`
	State      string           `json:"state"`
	Step       int              `json:"step"`
	TotalSteps int              `json:"totalSteps"`
	Question   questionResponse `json:"question"`
	Answer     any              `json:"answer,omitempty"`
	ResponseID string           `json:"responseId,omitempty"`
}

type sessionCreateRequest struct {
	CustomerVisitID string `json:"customerVisitId"`
	CustomerPhone   string `json:"customerPhone"`
}

type answerRequest struct {
	Value any `json:"value"`
}

type advanceResponse struct {
	Submitted  bool            `json:"submitted"`
	ResponseID string          `json:"responseId,omitempty"`
	Session    sessionResponse `json:"session"`
}

type submitRequest struct {
	Answers         map[string]any `json:"answers"`
	RestaurantID    string         `json:"restaurantId"`
	CustomerVisitID string         `json:"customerVisitId"`
	CustomerPhone   string         `json:"customerPhone"`
}

type submitResponse struct {
	ResponseID string `json:"responseId"`
}

type reviewResponse struct {
	Review string `json:"review"`
}

type reviewLinkRequest struct {
	Review string `json:"review"`
}

type reviewLinkResponse struct {
	URL string `json:"url"`
}

type phoneCheckInRequest struct {
	RestaurantID string `json:"restaurantId"`
	TableToken   string `json:"tableToken"`
	Phone        string `json:"phone"`
}

type phoneCheckInResponse struct {
	VisitID string `json:"visitId"`
}
