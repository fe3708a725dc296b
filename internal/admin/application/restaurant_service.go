package application

import (
	"context"
	"strings"
	"time"

	admindomain "github.com/hoshloop/hoshloop-services/api/internal/admin/domain"
)

type restaurantService struct {
	restaurants RestaurantRepository
	now         func() time.Time
}

// NewRestaurantService builds the tenant settings service.
func NewRestaurantService(restaurants RestaurantRepository) RestaurantService {
	return &restaurantService{restaurants: restaurants, now: time.Now}
}

// Get loads a restaurant the requester owns. Cross-tenant ids surface as
// ErrNotFound.
func (s *restaurantService) Get(ctx context.Context, restaurantID, requesterRestaurantID string) (*admindomain.Restaurant, error) {
	if restaurantID != requesterRestaurantID {
		return nil, ErrNotFound
	}
	return s.restaurants.FindByID(ctx, restaurantID)
}

func (s *restaurantService) UpdateGeneral(ctx context.Context, restaurantID, requesterRestaurantID string, cmd UpdateRestaurantCommand) (*admindomain.Restaurant, error) {
	restaurant, err := s.Get(ctx, restaurantID, requesterRestaurantID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		name, err := admindomain.NewRestaurantName(*cmd.Name)
		if err != nil {
			return nil, err
		}
		restaurant.Name = name.String()
	}
	if cmd.Description != nil {
		restaurant.Description = strings.TrimSpace(*cmd.Description)
	}
	if cmd.Address != nil {
		restaurant.Address = strings.TrimSpace(*cmd.Address)
	}
	if cmd.Phone != nil {
		restaurant.Phone = strings.TrimSpace(*cmd.Phone)
	}
	if cmd.GooglePlaceID != nil {
		restaurant.GooglePlaceID = strings.TrimSpace(*cmd.GooglePlaceID)
	}
	restaurant.UpdatedAt = s.now().UTC()

	if err := s.restaurants.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *restaurantService) UpdateAppearance(ctx context.Context, restaurantID, requesterRestaurantID string, appearance map[string]string) (*admindomain.Restaurant, error) {
	restaurant, err := s.Get(ctx, restaurantID, requesterRestaurantID)
	if err != nil {
		return nil, err
	}

	// Appearance is opaque to the service; the customer UI interprets it.
	cleaned := make(map[string]string, len(appearance))
	for key, value := range appearance {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		cleaned[key] = strings.TrimSpace(value)
	}
	restaurant.Appearance = cleaned
	restaurant.UpdatedAt = s.now().UTC()

	if err := s.restaurants.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}
