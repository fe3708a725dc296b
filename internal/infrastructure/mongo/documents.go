package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RestaurantDocument is the Mongo schema of a restaurant tenant.
type RestaurantDocument struct {
	ID             primitive.ObjectID `bson:"_id"`
	Name           string             `bson:"name"`
	Description    string             `bson:"description,omitempty"`
	Address        string             `bson:"address,omitempty"`
	Phone          string             `bson:"phone,omitempty"`
	GooglePlaceID  string             `bson:"googlePlaceId,omitempty"`
	Appearance     map[string]string  `bson:"appearance,omitempty"`
	OwnerAccountID primitive.ObjectID `bson:"ownerAccountId,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

// AccountDocument is the Mongo schema of an owner login.
type AccountDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
	Name         string             `bson:"name,omitempty"`
	RestaurantID primitive.ObjectID `bson:"restaurantId"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// FormDocument is the Mongo schema of a feedback form.
type FormDocument struct {
	ID              primitive.ObjectID `bson:"_id"`
	RestaurantID    primitive.ObjectID `bson:"restaurantId"`
	Name            string             `bson:"name"`
	Description     string             `bson:"description,omitempty"`
	ThankYouMessage string             `bson:"thankYouMessage,omitempty"`
	Active          bool               `bson:"active"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

// QuestionDocument is the Mongo schema of one form question.
type QuestionDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	FormID      primitive.ObjectID `bson:"formId"`
	Text        string             `bson:"text"`
	Description string             `bson:"description,omitempty"`
	Type        string             `bson:"type"`
	Required    bool               `bson:"required"`
	Options     []string           `bson:"options,omitempty"`
	MaxRating   int                `bson:"maxRating,omitempty"`
	Placeholder string             `bson:"placeholder,omitempty"`
	Order       int                `bson:"order"`
}

// AnswerDocument is one answer embedded in a response. Exactly one of the
// value fields is set, selected by the type tag.
type AnswerDocument struct {
	QuestionID primitive.ObjectID `bson:"questionId"`
	Type       string             `bson:"type"`
	Rating     *int               `bson:"rating,omitempty"`
	Text       *string            `bson:"text,omitempty"`
	Options    []string           `bson:"options,omitempty"`
}

// ResponseDocument is the Mongo schema of a stored submission.
type ResponseDocument struct {
	ID            primitive.ObjectID  `bson:"_id"`
	FormID        primitive.ObjectID  `bson:"formId"`
	RestaurantID  primitive.ObjectID  `bson:"restaurantId"`
	VisitID       *primitive.ObjectID `bson:"visitId,omitempty"`
	CustomerPhone string              `bson:"customerPhone,omitempty"`
	Answers       []AnswerDocument    `bson:"answers"`
	SubmittedAt   time.Time           `bson:"submittedAt"`
}

// MenuCategoryDocument is the Mongo schema of a menu section.
type MenuCategoryDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	RestaurantID primitive.ObjectID `bson:"restaurantId"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description,omitempty"`
	Active       bool               `bson:"active"`
	Order        int                `bson:"order"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// MenuItemDocument is the Mongo schema of a dish.
type MenuItemDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	RestaurantID primitive.ObjectID `bson:"restaurantId"`
	CategoryID   primitive.ObjectID `bson:"categoryId"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description,omitempty"`
	PriceCents   int                `bson:"priceCents"`
	Active       bool               `bson:"active"`
	Tags         []string           `bson:"tags,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// TableDocument is the Mongo schema of a table with its QR token.
type TableDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	RestaurantID primitive.ObjectID `bson:"restaurantId"`
	Name         string             `bson:"name"`
	QRToken      string             `bson:"qrToken"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// VisitDocument is the Mongo schema of a customer check-in.
type VisitDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	RestaurantID  primitive.ObjectID `bson:"restaurantId"`
	TableToken    string             `bson:"tableToken,omitempty"`
	CustomerPhone string             `bson:"customerPhone"`
	CheckedInAt   time.Time          `bson:"checkedInAt"`
}
