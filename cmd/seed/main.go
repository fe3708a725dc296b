package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/hoshloop/hoshloop-services/api/internal/auth"
	"github.com/hoshloop/hoshloop-services/api/internal/config"
	mongodoc "github.com/hoshloop/hoshloop-services/api/internal/infrastructure/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedOptions struct {
	ownerEmail    string
	ownerPassword string
	responseCount int
	drop          bool
	randomSeed    int64
}

func main() {
	opts := seedOptions{}
	flag.StringVar(&opts.ownerEmail, "email", "owner@example.com", "demo owner login email")
	flag.StringVar(&opts.ownerPassword, "password", "changeme123", "demo owner login password")
	flag.IntVar(&opts.responseCount, "responses", 25, "number of demo feedback responses")
	flag.BoolVar(&opts.drop, "drop", false, "drop target collections before seeding")
	flag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "random seed for demo data")
	flag.Parse()

	cfg := config.Load()
	rng := rand.New(rand.NewSource(opts.randomSeed))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("mongodb connection failed: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(cfg.MongoDatabase)
	collectionNames := []string{
		cfg.RestaurantCollection, cfg.AccountCollection,
		cfg.FormCollection, cfg.QuestionCollection, cfg.ResponseCollection,
		cfg.MenuCategoryCollection, cfg.MenuItemCollection,
		cfg.TableCollection, cfg.VisitCollection,
	}

	if opts.drop {
		for _, name := range collectionNames {
			if err := db.Collection(name).Drop(ctx); err != nil {
				log.Fatalf("dropping %s failed: %v", name, err)
			}
		}
		color.Yellow("dropped %d collections", len(collectionNames))
	}

	now := time.Now().UTC()

	restaurantID := primitive.NewObjectID()
	accountID := primitive.NewObjectID()

	hasher := auth.NewPasswordHasher(0)
	passwordHash, err := hasher.Hash(opts.ownerPassword)
	if err != nil {
		log.Fatalf("password hash failed: %v", err)
	}

	restaurant := mongodoc.RestaurantDocument{
		ID:             restaurantID,
		Name:           "Trattoria Lumen",
		Description:    "Neighborhood Italian kitchen with a wood-fired oven.",
		Address:        "14 Via del Sole",
		Phone:          "+1 555 0100",
		GooglePlaceID:  "",
		Appearance:     map[string]string{"primaryColor": "#7c3aed", "logoText": "Lumen"},
		OwnerAccountID: accountID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	account := mongodoc.AccountDocument{
		ID:           accountID,
		Email:        opts.ownerEmail,
		PasswordHash: passwordHash,
		Name:         "Demo Owner",
		RestaurantID: restaurantID,
		CreatedAt:    now,
	}

	if _, err := db.Collection(cfg.RestaurantCollection).InsertOne(ctx, restaurant); err != nil {
		log.Fatalf("restaurant insert failed: %v", err)
	}
	if _, err := db.Collection(cfg.AccountCollection).InsertOne(ctx, account); err != nil {
		log.Fatalf("account insert failed: %v", err)
	}
	color.Green("seeded restaurant %s with owner %s", restaurant.Name, account.Email)

	formID := primitive.NewObjectID()
	form := mongodoc.FormDocument{
		ID:              formID,
		RestaurantID:    restaurantID,
		Name:            "Dinner feedback",
		Description:     "Tell us about tonight's visit.",
		ThankYouMessage: "Thank you for dining with us!",
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if _, err := db.Collection(cfg.FormCollection).InsertOne(ctx, form); err != nil {
		log.Fatalf("form insert failed: %v", err)
	}

	questions := []mongodoc.QuestionDocument{
		{
			ID: primitive.NewObjectID(), FormID: formID, Order: 0,
			Text: "How would you rate the food?", Type: "rating", Required: true, MaxRating: 5,
		},
		{
			ID: primitive.NewObjectID(), FormID: formID, Order: 1,
			Text: "How would you rate the service?", Type: "rating", Required: true, MaxRating: 5,
		},
		{
			ID: primitive.NewObjectID(), FormID: formID, Order: 2,
			Text: "Which dish did you enjoy most?", Type: "dropdown", Required: false,
			Options: []string{"Margherita", "Carbonara", "Tiramisu", "Osso Buco"},
		},
		{
			ID: primitive.NewObjectID(), FormID: formID, Order: 3,
			Text: "What brought you in tonight?", Type: "checkbox", Required: false,
			Options: []string{"Date night", "Family dinner", "Business", "Just passing by"},
		},
		{
			ID: primitive.NewObjectID(), FormID: formID, Order: 4,
			Text: "Anything we should improve?", Type: "text", Required: false,
			Placeholder: "Your thoughts...",
		},
	}
	questionDocs := make([]any, 0, len(questions))
	for _, question := range questions {
		questionDocs = append(questionDocs, question)
	}
	if _, err := db.Collection(cfg.QuestionCollection).InsertMany(ctx, questionDocs); err != nil {
		log.Fatalf("question insert failed: %v", err)
	}
	color.Green("seeded form %q with %d questions", form.Name, len(questions))

	categoryID := primitive.NewObjectID()
	category := mongodoc.MenuCategoryDocument{
		ID: categoryID, RestaurantID: restaurantID, Name: "Mains",
		Description: "From the wood-fired oven", Active: true, Order: 0,
		CreatedAt: now, UpdatedAt: now,
	}
	if _, err := db.Collection(cfg.MenuCategoryCollection).InsertOne(ctx, category); err != nil {
		log.Fatalf("category insert failed: %v", err)
	}

	items := []any{
		mongodoc.MenuItemDocument{
			ID: primitive.NewObjectID(), RestaurantID: restaurantID, CategoryID: categoryID,
			Name: "Margherita", Description: "Tomato, mozzarella, basil", PriceCents: 1450,
			Active: true, Tags: []string{"vegetarian"}, CreatedAt: now, UpdatedAt: now,
		},
		mongodoc.MenuItemDocument{
			ID: primitive.NewObjectID(), RestaurantID: restaurantID, CategoryID: categoryID,
			Name: "Carbonara", Description: "Guanciale, pecorino, egg", PriceCents: 1680,
			Active: true, CreatedAt: now, UpdatedAt: now,
		},
	}
	if _, err := db.Collection(cfg.MenuItemCollection).InsertMany(ctx, items); err != nil {
		log.Fatalf("item insert failed: %v", err)
	}
	color.Green("seeded menu with %d items", len(items))

	tables := make([]any, 0, 4)
	for i := 1; i <= 4; i++ {
		tables = append(tables, mongodoc.TableDocument{
			ID:           primitive.NewObjectID(),
			RestaurantID: restaurantID,
			Name:         fmt.Sprintf("Table %d", i),
			QRToken:      uuid.NewString(),
			CreatedAt:    now,
		})
	}
	if _, err := db.Collection(cfg.TableCollection).InsertMany(ctx, tables); err != nil {
		log.Fatalf("table insert failed: %v", err)
	}
	color.Green("seeded %d tables", len(tables))

	comments := []string{
		"Lovely evening, the pasta was perfect.",
		"Service was a bit slow but friendly.",
		"Best tiramisu in town.",
		"",
	}
	responses := make([]any, 0, opts.responseCount)
	for i := 0; i < opts.responseCount; i++ {
		foodStars := 3 + rng.Intn(3)
		serviceStars := 2 + rng.Intn(4)
		comment := comments[rng.Intn(len(comments))]

		answers := []mongodoc.AnswerDocument{
			{QuestionID: questions[0].ID, Type: "rating", Rating: intPtr(foodStars)},
			{QuestionID: questions[1].ID, Type: "rating", Rating: intPtr(serviceStars)},
		}
		if comment != "" {
			answers = append(answers, mongodoc.AnswerDocument{
				QuestionID: questions[4].ID, Type: "text", Text: &comment,
			})
		}

		responses = append(responses, mongodoc.ResponseDocument{
			ID:           primitive.NewObjectID(),
			FormID:       formID,
			RestaurantID: restaurantID,
			Answers:      answers,
			SubmittedAt:  now.Add(-time.Duration(rng.Intn(720)) * time.Hour),
		})
	}
	if len(responses) > 0 {
		if _, err := db.Collection(cfg.ResponseCollection).InsertMany(ctx, responses); err != nil {
			log.Fatalf("response insert failed: %v", err)
		}
	}
	color.Green("seeded %d responses", len(responses))

	count, err := db.Collection(cfg.ResponseCollection).CountDocuments(ctx, bson.M{"formId": formID})
	if err == nil {
		color.Cyan("form %s now holds %d responses", formID.Hex(), count)
	}
	color.Cyan("done")
}

func intPtr(v int) *int { return &v }
