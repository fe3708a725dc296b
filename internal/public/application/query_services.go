package application

import (
	"context"

	"github.com/hoshloop/hoshloop-services/api/internal/public/domain"
)

type menuQueryService struct {
	menu MenuRepository
}

// NewMenuQueryService builds the public menu reader.
func NewMenuQueryService(menu MenuRepository) MenuQueryService {
	return &menuQueryService{menu: menu}
}

func (s *menuQueryService) Categories(ctx context.Context, restaurantID string) ([]domain.MenuCategory, error) {
	return s.menu.ActiveCategories(ctx, restaurantID)
}

func (s *menuQueryService) Items(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	return s.menu.AvailableItems(ctx, restaurantID)
}

type restaurantQueryService struct {
	restaurants RestaurantRepository
}

// NewRestaurantQueryService builds the public restaurant reader.
func NewRestaurantQueryService(restaurants RestaurantRepository) RestaurantQueryService {
	return &restaurantQueryService{restaurants: restaurants}
}

func (s *restaurantQueryService) Profile(ctx context.Context, restaurantID string) (*domain.RestaurantProfile, error) {
	return s.restaurants.FindProfile(ctx, restaurantID)
}
