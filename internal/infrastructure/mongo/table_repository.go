package mongo

import (
	"context"
	"errors"
	"strings"

	adminapp "github.com/hoshloop/hoshloop-services/api/internal/admin/application"
	admindomain "github.com/hoshloop/hoshloop-services/api/internal/admin/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TableRepository persists tables and their QR tokens.
type TableRepository struct {
	tables *mongo.Collection
}

// NewTableRepository binds the table collection.
func NewTableRepository(db *mongo.Database, collection string) *TableRepository {
	return &TableRepository{tables: db.Collection(collection)}
}

// ListByRestaurant returns a tenant's tables in creation order.
func (r *TableRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]admindomain.Table, error) {
	restaurantObjectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(restaurantID))
	if err != nil {
		return nil, adminapp.ErrNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.tables.Find(ctx, bson.M{"restaurantId": restaurantObjectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []TableDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	tables := make([]admindomain.Table, 0, len(docs))
	for _, doc := range docs {
		tables = append(tables, mapTableDocument(doc))
	}
	return tables, nil
}

// FindByID loads one table.
func (r *TableRepository) FindByID(ctx context.Context, tableID string) (*admindomain.Table, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(tableID))
	if err != nil {
		return nil, adminapp.ErrNotFound
	}

	var doc TableDocument
	if err := r.tables.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, adminapp.ErrNotFound
		}
		return nil, err
	}
	table := mapTableDocument(doc)
	return &table, nil
}

// Create inserts a table and reflects the assigned id back.
func (r *TableRepository) Create(ctx context.Context, table *admindomain.Table) error {
	restaurantObjectID, err := primitive.ObjectIDFromHex(table.RestaurantID)
	if err != nil {
		return err
	}

	doc := TableDocument{
		ID:           primitive.NewObjectID(),
		RestaurantID: restaurantObjectID,
		Name:         table.Name,
		QRToken:      table.QRToken,
		CreatedAt:    table.CreatedAt,
	}
	if _, err := r.tables.InsertOne(ctx, doc); err != nil {
		return err
	}
	table.ID = doc.ID.Hex()
	return nil
}

// Delete removes a table.
func (r *TableRepository) Delete(ctx context.Context, tableID string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(tableID))
	if err != nil {
		return adminapp.ErrNotFound
	}
	result, err := r.tables.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return adminapp.ErrNotFound
	}
	return nil
}

func mapTableDocument(doc TableDocument) admindomain.Table {
	return admindomain.Table{
		ID:           doc.ID.Hex(),
		RestaurantID: doc.RestaurantID.Hex(),
		Name:         doc.Name,
		QRToken:      doc.QRToken,
		CreatedAt:    doc.CreatedAt,
	}
}
