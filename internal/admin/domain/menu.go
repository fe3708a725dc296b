package domain

import (
	"fmt"
	"strings"
	"time"
)

// MenuCategory is an owner-managed menu section.
type MenuCategory struct {
	ID           string
	RestaurantID string
	Name         string
	Description  string
	Active       bool
	Order        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MenuItem is an owner-managed dish.
type MenuItem struct {
	ID           string
	RestaurantID string
	CategoryID   string
	Name         string
	Description  string
	// PriceCents is the price in minor currency units; prices never carry
	// fractions of a cent.
	PriceCents int
	Active     bool
	Tags       []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewMenuCategory validates a new menu section.
func NewMenuCategory(restaurantID, name, description string, order int) (*MenuCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	return &MenuCategory{
		RestaurantID: strings.TrimSpace(restaurantID),
		Name:         name,
		Description:  strings.TrimSpace(description),
		Active:       true,
		Order:        order,
	}, nil
}

// NewMenuItem validates a new dish.
func NewMenuItem(restaurantID, categoryID, name, description string, priceCents int, tags []string) (*MenuItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("item name is required")
	}
	if strings.TrimSpace(categoryID) == "" {
		return nil, fmt.Errorf("category id is required")
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}

	cleanTags := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			cleanTags = append(cleanTags, tag)
		}
	}

	return &MenuItem{
		RestaurantID: strings.TrimSpace(restaurantID),
		CategoryID:   strings.TrimSpace(categoryID),
		Name:         name,
		Description:  strings.TrimSpace(description),
		PriceCents:   priceCents,
		Active:       true,
		Tags:         cleanTags,
	}, nil
}
