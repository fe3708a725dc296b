package mongo

import (
	"context"
	"fmt"
	"strings"

	publicapp "github.com/hoshloop/hoshloop-services/api/internal/public/application"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// VisitRepository persists customer check-ins.
type VisitRepository struct {
	visits *mongo.Collection
}

// NewVisitRepository binds the visit collection.
func NewVisitRepository(db *mongo.Database, collection string) *VisitRepository {
	return &VisitRepository{visits: db.Collection(collection)}
}

// Create records a check-in and returns its identifier.
func (r *VisitRepository) Create(ctx context.Context, visit publicapp.Visit) (string, error) {
	restaurantObjectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(visit.RestaurantID))
	if err != nil {
		return "", fmt.Errorf("restaurant id is not valid: %w", err)
	}

	doc := VisitDocument{
		ID:            primitive.NewObjectID(),
		RestaurantID:  restaurantObjectID,
		TableToken:    visit.TableToken,
		CustomerPhone: visit.CustomerPhone,
		CheckedInAt:   visit.CheckedInAt,
	}
	if _, err := r.visits.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return doc.ID.Hex(), nil
}
