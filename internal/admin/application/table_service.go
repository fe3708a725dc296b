package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	admindomain "github.com/hoshloop/hoshloop-services/api/internal/admin/domain"
)

type tableService struct {
	tables TableRepository
	now    func() time.Time
}

// NewTableService builds the table management service.
func NewTableService(tables TableRepository) TableService {
	return &tableService{tables: tables, now: time.Now}
}

// Create assigns a fresh QR token to the table; the token, not the table
// id, is what the printed QR code encodes.
func (s *tableService) Create(ctx context.Context, restaurantID, name string) (*admindomain.Table, error) {
	table, err := admindomain.NewTable(restaurantID, name)
	if err != nil {
		return nil, err
	}
	table.QRToken = uuid.NewString()
	table.CreatedAt = s.now().UTC()

	if err := s.tables.Create(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *tableService) List(ctx context.Context, restaurantID string) ([]admindomain.Table, error) {
	return s.tables.ListByRestaurant(ctx, restaurantID)
}

func (s *tableService) Get(ctx context.Context, tableID, restaurantID string) (*admindomain.Table, error) {
	table, err := s.tables.FindByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table.RestaurantID != restaurantID {
		return nil, ErrNotFound
	}
	return table, nil
}

func (s *tableService) Delete(ctx context.Context, tableID, restaurantID string) error {
	if _, err := s.Get(ctx, tableID, restaurantID); err != nil {
		return err
	}
	return s.tables.Delete(ctx, tableID)
}
