package domain

import "time"

// Restaurant is a tenant: one owner-managed venue with its menu, tables,
// and feedback forms.
type Restaurant struct {
	ID             string
	Name           string
	Description    string
	Address        string
	Phone          string
	GooglePlaceID  string
	Appearance     map[string]string
	OwnerAccountID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Account is an owner login bound to exactly one restaurant.
type Account struct {
	ID           string
	Email        Email
	PasswordHash string
	Name         string
	RestaurantID string
	CreatedAt    time.Time
}

// Visit is a recorded customer check-in.
type Visit struct {
	ID            string
	RestaurantID  string
	TableToken    string
	CustomerPhone string
	CheckedInAt   time.Time
}
