package domain

// Form is the customer-facing view of a feedback form.
type Form struct {
	ID              string
	RestaurantID    string
	Name            string
	Description     string
	ThankYouMessage string
	Active          bool
}

// RestaurantProfile is the public subset of a restaurant tenant.
type RestaurantProfile struct {
	ID            string
	Name          string
	Description   string
	Address       string
	Phone         string
	GooglePlaceID string
	Appearance    map[string]string
}

// MenuCategory is an active, publicly visible menu section.
type MenuCategory struct {
	ID           string
	RestaurantID string
	Name         string
	Description  string
	Order        int
}

// MenuItem is an available dish within a category.
type MenuItem struct {
	ID           string
	RestaurantID string
	CategoryID   string
	Name         string
	Description  string
	// PriceCents is the price in minor currency units.
	PriceCents int
	Tags       []string
}
