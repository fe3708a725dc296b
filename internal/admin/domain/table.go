package domain

import (
	"fmt"
	"strings"
	"time"
)

// Table is a physical table whose QR token routes customers into the
// feedback flow for this restaurant.
type Table struct {
	ID           string
	RestaurantID string
	Name         string
	QRToken      string
	CreatedAt    time.Time
}

// NewTable validates a new table. The QR token is assigned by the service
// layer so the domain stays free of identifier generation.
func NewTable(restaurantID, name string) (*Table, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("table name is required")
	}
	if strings.TrimSpace(restaurantID) == "" {
		return nil, fmt.Errorf("restaurant id is required")
	}
	return &Table{
		RestaurantID: strings.TrimSpace(restaurantID),
		Name:         name,
	}, nil
}
