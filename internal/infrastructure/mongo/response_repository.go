package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	adminapp "github.com/hoshloop/hoshloop-services/api/internal/admin/application"
	publicapp "github.com/hoshloop/hoshloop-services/api/internal/public/application"
	publicdomain "github.com/hoshloop/hoshloop-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Answer shape tags inside a stored response. Choice answers keep their
// selection in the options array so single and multi select share one shape.
const (
	answerShapeRating      = "rating"
	answerShapeText        = "text"
	answerShapeChoice      = "choice"
	answerShapeMultiChoice = "multichoice"
)

// ResponseRepository persists customer submissions and serves them back to
// the owner side for listings, analytics, and export.
type ResponseRepository struct {
	responses *mongo.Collection
}

// NewResponseRepository binds the response collection.
func NewResponseRepository(db *mongo.Database, collection string) *ResponseRepository {
	return &ResponseRepository{responses: db.Collection(collection)}
}

// Store persists a finalized submission and returns its identifier.
func (r *ResponseRepository) Store(ctx context.Context, submission publicapp.Submission) (string, error) {
	formObjectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(submission.FormID))
	if err != nil {
		return "", fmt.Errorf("form id is not valid: %w", err)
	}
	restaurantObjectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(submission.RestaurantID))
	if err != nil {
		return "", fmt.Errorf("restaurant id is not valid: %w", err)
	}

	doc := ResponseDocument{
		ID:            primitive.NewObjectID(),
		FormID:        formObjectID,
		RestaurantID:  restaurantObjectID,
		CustomerPhone: submission.CustomerPhone,
		SubmittedAt:   submission.SubmittedAt,
	}
	if trimmed := strings.TrimSpace(submission.VisitID); trimmed != "" {
		visitObjectID, err := primitive.ObjectIDFromHex(trimmed)
		if err != nil {
			return "", fmt.Errorf("visit id is not valid: %w", err)
		}
		doc.VisitID = &visitObjectID
	}

	doc.Answers = make([]AnswerDocument, 0, len(submission.Answers))
	for questionID, answer := range submission.Answers {
		answerDoc, err := mapAnswerToDocument(questionID, answer)
		if err != nil {
			return "", err
		}
		doc.Answers = append(doc.Answers, answerDoc)
	}

	if _, err := r.responses.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return doc.ID.Hex(), nil
}

// FindResponse loads a stored submission for review composition.
func (r *ResponseRepository) FindResponse(ctx context.Context, responseID string) (*publicapp.StoredResponse, error) {
	doc, err := r.findDocument(ctx, responseID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, publicapp.ErrNotFound
		}
		return nil, err
	}

	answers := make(map[string]publicdomain.Answer, len(doc.Answers))
	for _, answerDoc := range doc.Answers {
		answer, err := mapDocumentToAnswer(answerDoc)
		if err != nil {
			return nil, err
		}
		answers[answerDoc.QuestionID.Hex()] = answer
	}

	stored := &publicapp.StoredResponse{
		ID:            doc.ID.Hex(),
		FormID:        doc.FormID.Hex(),
		RestaurantID:  doc.RestaurantID.Hex(),
		CustomerPhone: doc.CustomerPhone,
		Answers:       answers,
		SubmittedAt:   doc.SubmittedAt,
	}
	if doc.VisitID != nil {
		stored.VisitID = doc.VisitID.Hex()
	}
	return stored, nil
}

// ListByForm returns one page of a form's responses plus the total count.
func (r *ResponseRepository) ListByForm(ctx context.Context, formID string, paging adminapp.Paging) ([]adminapp.ResponseRecord, int, error) {
	formObjectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(formID))
	if err != nil {
		return nil, 0, adminapp.ErrNotFound
	}
	return r.list(ctx, bson.M{"formId": formObjectID}, paging)
}

// ListByRestaurant returns one page of a tenant's responses across all forms.
func (r *ResponseRepository) ListByRestaurant(ctx context.Context, restaurantID string, paging adminapp.Paging) ([]adminapp.ResponseRecord, int, error) {
	restaurantObjectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(restaurantID))
	if err != nil {
		return nil, 0, adminapp.ErrNotFound
	}
	return r.list(ctx, bson.M{"restaurantId": restaurantObjectID}, paging)
}

// FindByID loads one response for the owner side.
func (r *ResponseRepository) FindByID(ctx context.Context, responseID string) (*adminapp.ResponseRecord, error) {
	doc, err := r.findDocument(ctx, responseID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, adminapp.ErrNotFound
		}
		return nil, err
	}
	record := mapResponseDocument(*doc)
	return &record, nil
}

func (r *ResponseRepository) findDocument(ctx context.Context, responseID string) (*ResponseDocument, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(responseID))
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var doc ResponseDocument
	if err := r.responses.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *ResponseRepository) list(ctx context.Context, filter bson.M, paging adminapp.Paging) ([]adminapp.ResponseRecord, int, error) {
	total, err := r.responses.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	sortField := "submittedAt"
	if paging.SortBy != "" {
		sortField = paging.SortBy
	}
	sortDirection := -1
	if strings.EqualFold(paging.SortOrder, "asc") {
		sortDirection = 1
	}

	opts := options.Find().SetSort(bson.D{{Key: sortField, Value: sortDirection}})
	if paging.Limit > 0 {
		opts.SetLimit(int64(paging.Limit))
		if paging.Page > 1 {
			opts.SetSkip(int64((paging.Page - 1) * paging.Limit))
		}
	}

	cursor, err := r.responses.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []ResponseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	records := make([]adminapp.ResponseRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, mapResponseDocument(doc))
	}
	return records, int(total), nil
}

func mapResponseDocument(doc ResponseDocument) adminapp.ResponseRecord {
	record := adminapp.ResponseRecord{
		ID:            doc.ID.Hex(),
		FormID:        doc.FormID.Hex(),
		RestaurantID:  doc.RestaurantID.Hex(),
		CustomerPhone: doc.CustomerPhone,
		SubmittedAt:   doc.SubmittedAt,
	}
	if doc.VisitID != nil {
		record.VisitID = doc.VisitID.Hex()
	}

	record.Answers = make([]adminapp.AnswerRecord, 0, len(doc.Answers))
	for _, answerDoc := range doc.Answers {
		record.Answers = append(record.Answers, adminapp.AnswerRecord{
			QuestionID: answerDoc.QuestionID.Hex(),
			Type:       answerDoc.Type,
			Value:      answerValue(answerDoc),
		})
	}
	return record
}

func answerValue(doc AnswerDocument) any {
	switch doc.Type {
	case answerShapeRating:
		if doc.Rating != nil {
			return *doc.Rating
		}
		return nil
	case answerShapeText:
		if doc.Text != nil {
			return *doc.Text
		}
		return ""
	case answerShapeChoice:
		if len(doc.Options) > 0 {
			return doc.Options[0]
		}
		return ""
	case answerShapeMultiChoice:
		return append([]string{}, doc.Options...)
	default:
		return nil
	}
}

func mapAnswerToDocument(questionID string, answer publicdomain.Answer) (AnswerDocument, error) {
	questionObjectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(questionID))
	if err != nil {
		return AnswerDocument{}, fmt.Errorf("question id is not valid: %w", err)
	}

	doc := AnswerDocument{QuestionID: questionObjectID}
	switch value := answer.(type) {
	case publicdomain.RatingAnswer:
		stars := value.Stars
		doc.Type = answerShapeRating
		doc.Rating = &stars
	case publicdomain.TextAnswer:
		text := value.Text
		doc.Type = answerShapeText
		doc.Text = &text
	case publicdomain.ChoiceAnswer:
		doc.Type = answerShapeChoice
		if value.Option != "" {
			doc.Options = []string{value.Option}
		}
	case publicdomain.MultiChoiceAnswer:
		doc.Type = answerShapeMultiChoice
		doc.Options = append([]string{}, value.Options...)
	default:
		return AnswerDocument{}, fmt.Errorf("unsupported answer shape %T", answer)
	}
	return doc, nil
}

func mapDocumentToAnswer(doc AnswerDocument) (publicdomain.Answer, error) {
	switch doc.Type {
	case answerShapeRating:
		if doc.Rating == nil {
			return nil, fmt.Errorf("stored rating answer has no value")
		}
		return publicdomain.RatingAnswer{Stars: *doc.Rating}, nil
	case answerShapeText:
		text := ""
		if doc.Text != nil {
			text = *doc.Text
		}
		return publicdomain.TextAnswer{Text: text}, nil
	case answerShapeChoice:
		option := ""
		if len(doc.Options) > 0 {
			option = doc.Options[0]
		}
		return publicdomain.ChoiceAnswer{Option: option}, nil
	case answerShapeMultiChoice:
		return publicdomain.MultiChoiceAnswer{Options: append([]string{}, doc.Options...)}, nil
	default:
		return nil, fmt.Errorf("unsupported stored answer shape %q", doc.Type)
	}
}
