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
)

// RestaurantRepository serves both the admin aggregate and the public
// profile over one collection.
type RestaurantRepository struct {
	restaurants *mongo.Collection
}

// NewRestaurantRepository binds the restaurant collection.
func NewRestaurantRepository(db *mongo.Database, collection string) *RestaurantRepository {
	return &RestaurantRepository{restaurants: db.Collection(collection)}
}

// FindByID loads the admin aggregate.
func (r *RestaurantRepository) FindByID(ctx context.Context, id string) (*admindomain.Restaurant, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, adminapp.ErrNotFound
	}

	var doc RestaurantDocument
	if err := r.restaurants.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, adminapp.ErrNotFound
		}
		return nil, err
	}
	restaurant := mapRestaurantDocument(doc)
	return &restaurant, nil
}

// Create inserts the tenant and reflects the assigned id back.
func (r *RestaurantRepository) Create(ctx context.Context, restaurant *admindomain.Restaurant) error {
	doc := RestaurantDocument{
		ID:            primitive.NewObjectID(),
		Name:          restaurant.Name,
		Description:   restaurant.Description,
		Address:       restaurant.Address,
		Phone:         restaurant.Phone,
		GooglePlaceID: restaurant.GooglePlaceID,
		Appearance:    restaurant.Appearance,
		CreatedAt:     restaurant.CreatedAt,
		UpdatedAt:     restaurant.UpdatedAt,
	}
	if restaurant.OwnerAccountID != "" {
		ownerID, err := primitive.ObjectIDFromHex(restaurant.OwnerAccountID)
		if err != nil {
			return err
		}
		doc.OwnerAccountID = ownerID
	}

	if _, err := r.restaurants.InsertOne(ctx, doc); err != nil {
		return err
	}
	restaurant.ID = doc.ID.Hex()
	return nil
}

// Update replaces the mutable fields of the tenant.
func (r *RestaurantRepository) Update(ctx context.Context, restaurant *admindomain.Restaurant) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(restaurant.ID))
	if err != nil {
		return adminapp.ErrNotFound
	}

	update := bson.M{
		"name":          restaurant.Name,
		"description":   restaurant.Description,
		"address":       restaurant.Address,
		"phone":         restaurant.Phone,
		"googlePlaceId": restaurant.GooglePlaceID,
		"appearance":    restaurant.Appearance,
		"updatedAt":     restaurant.UpdatedAt,
	}
	if restaurant.OwnerAccountID != "" {
		ownerID, err := primitive.ObjectIDFromHex(restaurant.OwnerAccountID)
		if err != nil {
			return err
		}
		update["ownerAccountId"] = ownerID
	}

	result, err := r.restaurants.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return adminapp.ErrNotFound
	}
	return nil
}

// FindProfile loads the public subset of a restaurant.
func (r *RestaurantRepository) FindProfile(ctx context.Context, restaurantID string) (*publicdomain.RestaurantProfile, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(restaurantID))
	if err != nil {
		return nil, publicapp.ErrNotFound
	}

	var doc RestaurantDocument
	if err := r.restaurants.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, publicapp.ErrNotFound
		}
		return nil, err
	}

	return &publicdomain.RestaurantProfile{
		ID:            doc.ID.Hex(),
		Name:          doc.Name,
		Description:   doc.Description,
		Address:       doc.Address,
		Phone:         doc.Phone,
		GooglePlaceID: doc.GooglePlaceID,
		Appearance:    doc.Appearance,
	}, nil
}

func mapRestaurantDocument(doc RestaurantDocument) admindomain.Restaurant {
	restaurant := admindomain.Restaurant{
		ID:            doc.ID.Hex(),
		Name:          doc.Name,
		Description:   doc.Description,
		Address:       doc.Address,
		Phone:         doc.Phone,
		GooglePlaceID: doc.GooglePlaceID,
		Appearance:    doc.Appearance,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
	if !doc.OwnerAccountID.IsZero() {
		restaurant.OwnerAccountID = doc.OwnerAccountID.Hex()
	}
	return restaurant
}

// AccountRepository persists owner logins.
type AccountRepository struct {
	accounts *mongo.Collection
}

// NewAccountRepository binds the account collection.
func NewAccountRepository(db *mongo.Database, collection string) *AccountRepository {
	return &AccountRepository{accounts: db.Collection(collection)}
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*admindomain.Account, error) {
	var doc AccountDocument
	if err := r.accounts.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, adminapp.ErrNotFound
		}
		return nil, err
	}
	account := mapAccountDocument(doc)
	return &account, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*admindomain.Account, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, adminapp.ErrNotFound
	}

	var doc AccountDocument
	if err := r.accounts.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, adminapp.ErrNotFound
		}
		return nil, err
	}
	account := mapAccountDocument(doc)
	return &account, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *admindomain.Account) error {
	restaurantID, err := primitive.ObjectIDFromHex(account.RestaurantID)
	if err != nil {
		return err
	}

	doc := AccountDocument{
		ID:           primitive.NewObjectID(),
		Email:        account.Email.String(),
		PasswordHash: account.PasswordHash,
		Name:         account.Name,
		RestaurantID: restaurantID,
		CreatedAt:    account.CreatedAt,
	}
	if _, err := r.accounts.InsertOne(ctx, doc); err != nil {
		return err
	}
	account.ID = doc.ID.Hex()
	return nil
}

func mapAccountDocument(doc AccountDocument) admindomain.Account {
	email, _ := admindomain.NewEmail(doc.Email)
	return admindomain.Account{
		ID:           doc.ID.Hex(),
		Email:        email,
		PasswordHash: doc.PasswordHash,
		Name:         doc.Name,
		RestaurantID: doc.RestaurantID.Hex(),
		CreatedAt:    doc.CreatedAt,
	}
}
