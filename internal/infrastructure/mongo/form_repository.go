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

// FormRepository persists forms and questions for the authoring side and
// serves the customer-facing read model from the same collections.
type FormRepository struct {
	forms     *mongo.Collection
	questions *mongo.Collection
}

// NewFormRepository binds the form and question collections.
func NewFormRepository(db *mongo.Database, formCollection, questionCollection string) *FormRepository {
	return &FormRepository{
		forms:     db.Collection(formCollection),
		questions: db.Collection(questionCollection),
	}
}

// ListByRestaurant returns a tenant's forms, newest first.
func (r *FormRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]admindomain.FeedbackForm, error) {
	restaurantObjectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(restaurantID))
	if err != nil {
		return nil, adminapp.ErrNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.forms.Find(ctx, bson.M{"restaurantId": restaurantObjectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []FormDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	forms := make([]admindomain.FeedbackForm, 0, len(docs))
	for _, doc := range docs {
		forms = append(forms, mapFormDocument(doc))
	}
	return forms, nil
}

func (r *FormRepository) findFormDocument(ctx context.Context, formID string) (*FormDocument, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(formID))
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var doc FormDocument
	if err := r.forms.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindByID loads one form for authoring.
func (r *FormRepository) FindByID(ctx context.Context, formID string) (*admindomain.FeedbackForm, error) {
	doc, err := r.findFormDocument(ctx, formID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, adminapp.ErrNotFound
		}
		return nil, err
	}
	form := mapFormDocument(*doc)
	return &form, nil
}

// Create inserts a form and reflects the assigned id back.
func (r *FormRepository) Create(ctx context.Context, form *admindomain.FeedbackForm) error {
	restaurantObjectID, err := primitive.ObjectIDFromHex(form.RestaurantID)
	if err != nil {
		return err
	}

	doc := FormDocument{
		ID:              primitive.NewObjectID(),
		RestaurantID:    restaurantObjectID,
		Name:            form.Name,
		Description:     form.Description,
		ThankYouMessage: form.ThankYouMessage,
		Active:          form.Active,
		CreatedAt:       form.CreatedAt,
		UpdatedAt:       form.UpdatedAt,
	}
	if _, err := r.forms.InsertOne(ctx, doc); err != nil {
		return err
	}
	form.ID = doc.ID.Hex()
	return nil
}

// Update replaces the mutable fields of a form.
func (r *FormRepository) Update(ctx context.Context, form *admindomain.FeedbackForm) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(form.ID))
	if err != nil {
		return adminapp.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":            form.Name,
		"description":     form.Description,
		"thankYouMessage": form.ThankYouMessage,
		"active":          form.Active,
		"updatedAt":       form.UpdatedAt,
	}}
	result, err := r.forms.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return adminapp.ErrNotFound
	}
	return nil
}

// Questions returns a form's questions in display order.
func (r *FormRepository) Questions(ctx context.Context, formID string) ([]admindomain.Question, error) {
	formObjectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(formID))
	if err != nil {
		return nil, adminapp.ErrNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.questions.Find(ctx, bson.M{"formId": formObjectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []QuestionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	questions := make([]admindomain.Question, 0, len(docs))
	for _, doc := range docs {
		questions = append(questions, mapQuestionDocument(doc))
	}
	return questions, nil
}

// FindQuestion loads one question for authoring.
func (r *FormRepository) FindQuestion(ctx context.Context, questionID string) (*admindomain.Question, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(questionID))
	if err != nil {
		return nil, adminapp.ErrNotFound
	}

	var doc QuestionDocument
	if err := r.questions.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, adminapp.ErrNotFound
		}
		return nil, err
	}
	question := mapQuestionDocument(doc)
	return &question, nil
}

// AddQuestion inserts a question and reflects the assigned id back.
func (r *FormRepository) AddQuestion(ctx context.Context, question *admindomain.Question) error {
	formObjectID, err := primitive.ObjectIDFromHex(question.FormID)
	if err != nil {
		return err
	}

	doc := QuestionDocument{
		ID:          primitive.NewObjectID(),
		FormID:      formObjectID,
		Text:        question.Text,
		Description: question.Description,
		Type:        question.Type,
		Required:    question.Required,
		Options:     question.Options.Strings(),
		MaxRating:   question.MaxRating,
		Placeholder: question.Placeholder,
		Order:       question.Order,
	}
	if _, err := r.questions.InsertOne(ctx, doc); err != nil {
		return err
	}
	question.ID = doc.ID.Hex()
	return nil
}

// UpdateQuestion replaces the mutable fields of a question.
func (r *FormRepository) UpdateQuestion(ctx context.Context, question *admindomain.Question) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(question.ID))
	if err != nil {
		return adminapp.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"text":        question.Text,
		"description": question.Description,
		"type":        question.Type,
		"required":    question.Required,
		"options":     question.Options.Strings(),
		"maxRating":   question.MaxRating,
		"placeholder": question.Placeholder,
		"order":       question.Order,
	}}
	result, err := r.questions.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return adminapp.ErrNotFound
	}
	return nil
}

// DeleteQuestion removes a question.
func (r *FormRepository) DeleteQuestion(ctx context.Context, questionID string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(questionID))
	if err != nil {
		return adminapp.ErrNotFound
	}
	result, err := r.questions.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return adminapp.ErrNotFound
	}
	return nil
}

// FindPublicForm loads the customer-facing form with its ordered questions.
// It backs the public FormRepository port.
func (r *FormRepository) FindPublicForm(ctx context.Context, formID string) (*publicdomain.Form, []publicdomain.Question, error) {
	doc, err := r.findFormDocument(ctx, formID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, publicapp.ErrNotFound
		}
		return nil, nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.questions.Find(ctx, bson.M{"formId": doc.ID}, opts)
	if err != nil {
		return nil, nil, err
	}
	defer cursor.Close(ctx)

	var questionDocs []QuestionDocument
	if err := cursor.All(ctx, &questionDocs); err != nil {
		return nil, nil, err
	}

	form := &publicdomain.Form{
		ID:              doc.ID.Hex(),
		RestaurantID:    doc.RestaurantID.Hex(),
		Name:            doc.Name,
		Description:     doc.Description,
		ThankYouMessage: doc.ThankYouMessage,
		Active:          doc.Active,
	}

	questions := make([]publicdomain.Question, 0, len(questionDocs))
	for _, questionDoc := range questionDocs {
		questionType, err := publicdomain.ParseQuestionType(questionDoc.Type)
		if err != nil {
			return nil, nil, err
		}
		questions = append(questions, publicdomain.Question{
			ID:          questionDoc.ID.Hex(),
			Text:        questionDoc.Text,
			Description: questionDoc.Description,
			Type:        questionType,
			Required:    questionDoc.Required,
			Options:     questionDoc.Options,
			Settings: publicdomain.QuestionSettings{
				MaxRating:   questionDoc.MaxRating,
				Placeholder: questionDoc.Placeholder,
			},
			Order: questionDoc.Order,
		})
	}
	return form, questions, nil
}

// PublicFormRepository adapts FormRepository to the customer-facing port,
// whose FindByID signature differs from the authoring one.
type PublicFormRepository struct {
	inner *FormRepository
}

// NewPublicFormRepository wraps a form repository for public reads.
func NewPublicFormRepository(inner *FormRepository) *PublicFormRepository {
	return &PublicFormRepository{inner: inner}
}

func (r *PublicFormRepository) FindByID(ctx context.Context, formID string) (*publicdomain.Form, []publicdomain.Question, error) {
	return r.inner.FindPublicForm(ctx, formID)
}

func mapFormDocument(doc FormDocument) admindomain.FeedbackForm {
	return admindomain.FeedbackForm{
		ID:              doc.ID.Hex(),
		RestaurantID:    doc.RestaurantID.Hex(),
		Name:            doc.Name,
		Description:     doc.Description,
		ThankYouMessage: doc.ThankYouMessage,
		Active:          doc.Active,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}

func mapQuestionDocument(doc QuestionDocument) admindomain.Question {
	return admindomain.Question{
		ID:          doc.ID.Hex(),
		FormID:      doc.FormID.Hex(),
		Text:        doc.Text,
		Description: doc.Description,
		Type:        doc.Type,
		Required:    doc.Required,
		Options:     admindomain.OptionList(doc.Options),
		MaxRating:   doc.MaxRating,
		Placeholder: doc.Placeholder,
		Order:       doc.Order,
	}
}
