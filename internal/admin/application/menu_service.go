package application

import (
	"context"
	"strings"
	"time"

	admindomain "github.com/hoshloop/hoshloop-services/api/internal/admin/domain"
)

type menuService struct {
	menu MenuRepository
	now  func() time.Time
}

// NewMenuService builds the menu authoring service.
func NewMenuService(menu MenuRepository) MenuService {
	return &menuService{menu: menu, now: time.Now}
}

func (s *menuService) Categories(ctx context.Context, restaurantID string) ([]admindomain.MenuCategory, error) {
	return s.menu.Categories(ctx, restaurantID)
}

func (s *menuService) Items(ctx context.Context, restaurantID string) ([]admindomain.MenuItem, error) {
	return s.menu.Items(ctx, restaurantID)
}

func (s *menuService) CreateCategory(ctx context.Context, restaurantID string, cmd UpsertCategoryCommand) (*admindomain.MenuCategory, error) {
	order := 0
	if cmd.Order != nil {
		order = *cmd.Order
	} else {
		existing, err := s.menu.Categories(ctx, restaurantID)
		if err != nil {
			return nil, err
		}
		order = len(existing)
	}

	category, err := admindomain.NewMenuCategory(restaurantID, cmd.Name, cmd.Description, order)
	if err != nil {
		return nil, err
	}
	if cmd.Active != nil {
		category.Active = *cmd.Active
	}
	now := s.now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	if err := s.menu.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *menuService) ownedCategory(ctx context.Context, categoryID, restaurantID string) (*admindomain.MenuCategory, error) {
	category, err := s.menu.FindCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.RestaurantID != restaurantID {
		return nil, ErrNotFound
	}
	return category, nil
}

func (s *menuService) UpdateCategory(ctx context.Context, categoryID, restaurantID string, cmd UpsertCategoryCommand) (*admindomain.MenuCategory, error) {
	category, err := s.ownedCategory(ctx, categoryID, restaurantID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cmd.Name) != "" {
		category.Name = strings.TrimSpace(cmd.Name)
	}
	category.Description = strings.TrimSpace(cmd.Description)
	if cmd.Order != nil {
		category.Order = *cmd.Order
	}
	if cmd.Active != nil {
		category.Active = *cmd.Active
	}
	category.UpdatedAt = s.now().UTC()

	if err := s.menu.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *menuService) SetCategoryVisibility(ctx context.Context, categoryID, restaurantID string, active bool) (*admindomain.MenuCategory, error) {
	category, err := s.ownedCategory(ctx, categoryID, restaurantID)
	if err != nil {
		return nil, err
	}
	category.Active = active
	category.UpdatedAt = s.now().UTC()
	if err := s.menu.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *menuService) DeleteCategory(ctx context.Context, categoryID, restaurantID string) error {
	if _, err := s.ownedCategory(ctx, categoryID, restaurantID); err != nil {
		return err
	}
	return s.menu.DeleteCategory(ctx, categoryID)
}

func (s *menuService) CreateItem(ctx context.Context, restaurantID string, cmd UpsertItemCommand) (*admindomain.MenuItem, error) {
	if _, err := s.ownedCategory(ctx, cmd.CategoryID, restaurantID); err != nil {
		return nil, err
	}

	price := 0
	if cmd.PriceCents != nil {
		price = *cmd.PriceCents
	}
	item, err := admindomain.NewMenuItem(restaurantID, cmd.CategoryID, cmd.Name, cmd.Description, price, cmd.Tags)
	if err != nil {
		return nil, err
	}
	if cmd.Active != nil {
		item.Active = *cmd.Active
	}
	now := s.now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.menu.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *menuService) ownedItem(ctx context.Context, itemID, restaurantID string) (*admindomain.MenuItem, error) {
	item, err := s.menu.FindItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.RestaurantID != restaurantID {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *menuService) UpdateItem(ctx context.Context, itemID, restaurantID string, cmd UpsertItemCommand) (*admindomain.MenuItem, error) {
	item, err := s.ownedItem(ctx, itemID, restaurantID)
	if err != nil {
		return nil, err
	}

	categoryID := item.CategoryID
	if strings.TrimSpace(cmd.CategoryID) != "" {
		if _, err := s.ownedCategory(ctx, cmd.CategoryID, restaurantID); err != nil {
			return nil, err
		}
		categoryID = strings.TrimSpace(cmd.CategoryID)
	}

	price := item.PriceCents
	if cmd.PriceCents != nil {
		price = *cmd.PriceCents
	}
	name := item.Name
	if strings.TrimSpace(cmd.Name) != "" {
		name = cmd.Name
	}

	updated, err := admindomain.NewMenuItem(restaurantID, categoryID, name, cmd.Description, price, cmd.Tags)
	if err != nil {
		return nil, err
	}
	updated.ID = item.ID
	updated.Active = item.Active
	if cmd.Active != nil {
		updated.Active = *cmd.Active
	}
	updated.CreatedAt = item.CreatedAt
	updated.UpdatedAt = s.now().UTC()

	if err := s.menu.UpdateItem(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *menuService) SetItemAvailability(ctx context.Context, itemID, restaurantID string, active bool) (*admindomain.MenuItem, error) {
	item, err := s.ownedItem(ctx, itemID, restaurantID)
	if err != nil {
		return nil, err
	}
	item.Active = active
	item.UpdatedAt = s.now().UTC()
	if err := s.menu.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *menuService) DeleteItem(ctx context.Context, itemID, restaurantID string) error {
	if _, err := s.ownedItem(ctx, itemID, restaurantID); err != nil {
		return err
	}
	return s.menu.DeleteItem(ctx, itemID)
}
