package mongo

import (
	"context"
	"errors"
	"strings"

	adminapp "github.com/hoshloop/hoshloop-services/api/internal/admin/application"
	admindomain "github.com/hoshloop/hoshloop-services/api/internal/admin/domain"
	publicapp "github.com/hoshloop/hoshloop-services/api/internal/public/application"
	publicdomain "github.com/hoshloop/hoshloop-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MenuRepository persists categories and items for the authoring side and
// serves the active subset to customers.
type MenuRepository struct {
	categories *mongo.Collection
	items      *mongo.Collection
}

// NewMenuRepository binds the menu collections.
func NewMenuRepository(db *mongo.Database, categoryCollection, itemCollection string) *MenuRepository {
	return &MenuRepository{
		categories: db.Collection(categoryCollection),
		items:      db.Collection(itemCollection),
	}
}

// Categories returns all of a tenant's categories in display order.
func (r *MenuRepository) Categories(ctx context.Context, restaurantID string) ([]admindomain.MenuCategory, error) {
	docs, err := r.categoryDocs(ctx, restaurantID, bson.M{})
	if err != nil {
		return nil, err
	}
	categories := make([]admindomain.MenuCategory, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, mapCategoryDocument(doc))
	}
	return categories, nil
}

// FindCategory loads one category.
func (r *MenuRepository) FindCategory(ctx context.Context, categoryID string) (*admindomain.MenuCategory, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(categoryID))
	if err != nil {
		return nil, adminapp.ErrNotFound
	}

	var doc MenuCategoryDocument
	if err := r.categories.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, adminapp.ErrNotFound
		}
		return nil, err
	}
	category := mapCategoryDocument(doc)
	return &category, nil
}

// CreateCategory inserts a category and reflects the assigned id back.
func (r *MenuRepository) CreateCategory(ctx context.Context, category *admindomain.MenuCategory) error {
	restaurantObjectID, err := primitive.ObjectIDFromHex(category.RestaurantID)
	if err != nil {
		return err
	}

	doc := MenuCategoryDocument{
		ID:           primitive.NewObjectID(),
		RestaurantID: restaurantObjectID,
		Name:         category.Name,
		Description:  category.Description,
		Active:       category.Active,
		Order:        category.Order,
		CreatedAt:    category.CreatedAt,
		UpdatedAt:    category.UpdatedAt,
	}
	if _, err := r.categories.InsertOne(ctx, doc); err != nil {
		return err
	}
	category.ID = doc.ID.Hex()
	return nil
}

// UpdateCategory replaces the mutable fields of a category.
func (r *MenuRepository) UpdateCategory(ctx context.Context, category *admindomain.MenuCategory) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(category.ID))
	if err != nil {
		return adminapp.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        category.Name,
		"description": category.Description,
		"active":      category.Active,
		"order":       category.Order,
		"updatedAt":   category.UpdatedAt,
	}}
	result, err := r.categories.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return adminapp.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category and its items.
func (r *MenuRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(categoryID))
	if err != nil {
		return adminapp.ErrNotFound
	}
	result, err := r.categories.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return adminapp.ErrNotFound
	}
	_, err = r.items.DeleteMany(ctx, bson.M{"categoryId": objectID})
	return err
}

// Items returns all of a tenant's dishes.
func (r *MenuRepository) Items(ctx context.Context, restaurantID string) ([]admindomain.MenuItem, error) {
	docs, err := r.itemDocs(ctx, restaurantID, bson.M{})
	if err != nil {
		return nil, err
	}
	items := make([]admindomain.MenuItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, mapItemDocument(doc))
	}
	return items, nil
}

// FindItem loads one dish.
func (r *MenuRepository) FindItem(ctx context.Context, itemID string) (*admindomain.MenuItem, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(itemID))
	if err != nil {
		return nil, adminapp.ErrNotFound
	}

	var doc MenuItemDocument
	if err := r.items.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, adminapp.ErrNotFound
		}
		return nil, err
	}
	item := mapItemDocument(doc)
	return &item, nil
}

// CreateItem inserts a dish and reflects the assigned id back.
func (r *MenuRepository) CreateItem(ctx context.Context, item *admindomain.MenuItem) error {
	restaurantObjectID, err := primitive.ObjectIDFromHex(item.RestaurantID)
	if err != nil {
		return err
	}
	categoryObjectID, err := primitive.ObjectIDFromHex(item.CategoryID)
	if err != nil {
		return err
	}

	doc := MenuItemDocument{
		ID:           primitive.NewObjectID(),
		RestaurantID: restaurantObjectID,
		CategoryID:   categoryObjectID,
		Name:         item.Name,
		Description:  item.Description,
		PriceCents:   item.PriceCents,
		Active:       item.Active,
		Tags:         item.Tags,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
	if _, err := r.items.InsertOne(ctx, doc); err != nil {
		return err
	}
	item.ID = doc.ID.Hex()
	return nil
}

// UpdateItem replaces the mutable fields of a dish.
func (r *MenuRepository) UpdateItem(ctx context.Context, item *admindomain.MenuItem) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(item.ID))
	if err != nil {
		return adminapp.ErrNotFound
	}
	categoryObjectID, err := primitive.ObjectIDFromHex(item.CategoryID)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"categoryId":  categoryObjectID,
		"name":        item.Name,
		"description": item.Description,
		"priceCents":  item.PriceCents,
		"active":      item.Active,
		"tags":        item.Tags,
		"updatedAt":   item.UpdatedAt,
	}}
	result, err := r.items.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return adminapp.ErrNotFound
	}
	return nil
}

// DeleteItem removes a dish.
func (r *MenuRepository) DeleteItem(ctx context.Context, itemID string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(itemID))
	if err != nil {
		return adminapp.ErrNotFound
	}
	result, err := r.items.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return adminapp.ErrNotFound
	}
	return nil
}

// ActiveCategories returns only the categories customers may see. It backs
// the public MenuRepository port.
func (r *MenuRepository) ActiveCategories(ctx context.Context, restaurantID string) ([]publicdomain.MenuCategory, error) {
	docs, err := r.categoryDocs(ctx, restaurantID, bson.M{"active": true})
	if err != nil {
		if errors.Is(err, adminapp.ErrNotFound) {
			return nil, publicapp.ErrNotFound
		}
		return nil, err
	}

	categories := make([]publicdomain.MenuCategory, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, publicdomain.MenuCategory{
			ID:           doc.ID.Hex(),
			RestaurantID: doc.RestaurantID.Hex(),
			Name:         doc.Name,
			Description:  doc.Description,
			Order:        doc.Order,
		})
	}
	return categories, nil
}

// AvailableItems returns only the dishes customers may see.
func (r *MenuRepository) AvailableItems(ctx context.Context, restaurantID string) ([]publicdomain.MenuItem, error) {
	docs, err := r.itemDocs(ctx, restaurantID, bson.M{"active": true})
	if err != nil {
		if errors.Is(err, adminapp.ErrNotFound) {
			return nil, publicapp.ErrNotFound
		}
		return nil, err
	}

	items := make([]publicdomain.MenuItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, publicdomain.MenuItem{
			ID:           doc.ID.Hex(),
			RestaurantID: doc.RestaurantID.Hex(),
			CategoryID:   doc.CategoryID.Hex(),
			Name:         doc.Name,
			Description:  doc.Description,
			PriceCents:   doc.PriceCents,
			Tags:         doc.Tags,
		})
	}
	return items, nil
}

func (r *MenuRepository) categoryDocs(ctx context.Context, restaurantID string, extra bson.M) ([]MenuCategoryDocument, error) {
	restaurantObjectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(restaurantID))
	if err != nil {
		return nil, adminapp.ErrNotFound
	}

	filter := bson.M{"restaurantId": restaurantObjectID}
	for key, value := range extra {
		filter[key] = value
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.categories.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []MenuCategoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *MenuRepository) itemDocs(ctx context.Context, restaurantID string, extra bson.M) ([]MenuItemDocument, error) {
	restaurantObjectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(restaurantID))
	if err != nil {
		return nil, adminapp.ErrNotFound
	}

	filter := bson.M{"restaurantId": restaurantObjectID}
	for key, value := range extra {
		filter[key] = value
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.items.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []MenuItemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func mapCategoryDocument(doc MenuCategoryDocument) admindomain.MenuCategory {
	return admindomain.MenuCategory{
		ID:           doc.ID.Hex(),
		RestaurantID: doc.RestaurantID.Hex(),
		Name:         doc.Name,
		Description:  doc.Description,
		Active:       doc.Active,
		Order:        doc.Order,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func mapItemDocument(doc MenuItemDocument) admindomain.MenuItem {
	return admindomain.MenuItem{
		ID:           doc.ID.Hex(),
		RestaurantID: doc.RestaurantID.Hex(),
		CategoryID:   doc.CategoryID.Hex(),
		Name:         doc.Name,
		Description:  doc.Description,
		PriceCents:   doc.PriceCents,
		Active:       doc.Active,
		Tags:         doc.Tags,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}
