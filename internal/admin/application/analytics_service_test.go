package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admindomain "github.com/hoshloop/hoshloop-services/api/internal/admin/domain"
)

type fakeFormRepo struct {
	forms     map[string]*admindomain.FeedbackForm
	questions []admindomain.Question
}

func (f *fakeFormRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]admindomain.FeedbackForm, error) {
	result := make([]admindomain.FeedbackForm, 0)
	for _, form := range f.forms {
		if form.RestaurantID == restaurantID {
			result = append(result, *form)
		}
	}
	return result, nil
}

func (f *fakeFormRepo) FindByID(_ context.Context, formID string) (*admindomain.FeedbackForm, error) {
	form, ok := f.forms[formID]
	if !ok {
		return nil, ErrNotFound
	}
	return form, nil
}

func (f *fakeFormRepo) Create(_ context.Context, form *admindomain.FeedbackForm) error {
	f.forms[form.ID] = form
	return nil
}

func (f *fakeFormRepo) Update(_ context.Context, form *admindomain.FeedbackForm) error {
	if _, ok := f.forms[form.ID]; !ok {
		return ErrNotFound
	}
	f.forms[form.ID] = form
	return nil
}

func (f *fakeFormRepo) Questions(_ context.Context, formID string) ([]admindomain.Question, error) {
	result := make([]admindomain.Question, 0)
	for _, question := range f.questions {
		if question.FormID == formID {
			result = append(result, question)
		}
	}
	return result, nil
}

func (f *fakeFormRepo) FindQuestion(_ context.Context, questionID string) (*admindomain.Question, error) {
	for _, question := range f.questions {
		if question.ID == questionID {
			found := question
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeFormRepo) AddQuestion(_ context.Context, question *admindomain.Question) error {
	f.questions = append(f.questions, *question)
	return nil
}

func (f *fakeFormRepo) UpdateQuestion(_ context.Context, question *admindomain.Question) error {
	for i := range f.questions {
		if f.questions[i].ID == question.ID {
			f.questions[i] = *question
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeFormRepo) DeleteQuestion(_ context.Context, questionID string) error {
	for i := range f.questions {
		if f.questions[i].ID == questionID {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type fakeResponseRepo struct {
	records []ResponseRecord
}

func (f *fakeResponseRepo) ListByForm(_ context.Context, formID string, paging Paging) ([]ResponseRecord, int, error) {
	matched := make([]ResponseRecord, 0)
	for _, record := range f.records {
		if record.FormID == formID {
			matched = append(matched, record)
		}
	}
	return paginate(matched, paging)
}

func (f *fakeResponseRepo) ListByRestaurant(_ context.Context, restaurantID string, paging Paging) ([]ResponseRecord, int, error) {
	matched := make([]ResponseRecord, 0)
	for _, record := range f.records {
		if record.RestaurantID == restaurantID {
			matched = append(matched, record)
		}
	}
	return paginate(matched, paging)
}

func (f *fakeResponseRepo) FindByID(_ context.Context, responseID string) (*ResponseRecord, error) {
	for _, record := range f.records {
		if record.ID == responseID {
			found := record
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func analyticsFixture() (AnalyticsService, *fakeFormRepo, *fakeResponseRepo) {
	forms := &fakeFormRepo{
		forms: map[string]*admindomain.FeedbackForm{
			"form-1": {ID: "form-1", RestaurantID: "rest-1", Name: "Dinner feedback", Active: true},
		},
		questions: []admindomain.Question{
			{ID: "q1", FormID: "form-1", Text: "How would you rate the food?", Type: admindomain.QuestionTypeRating, Order: 0},
			{ID: "q2", FormID: "form-1", Text: "Which dish did you enjoy most?", Type: admindomain.QuestionTypeDropdown, Options: admindomain.OptionList{"Pizza", "Pasta", "Tiramisu"}, Order: 1},
			{ID: "q3", FormID: "form-1", Text: "Anything else?", Type: admindomain.QuestionTypeText, Order: 2},
		},
	}
	submitted := time.Date(2026, 8, 20, 19, 30, 0, 0, time.UTC)
	responses := &fakeResponseRepo{records: []ResponseRecord{
		{
			ID: "r1", FormID: "form-1", RestaurantID: "rest-1", SubmittedAt: submitted,
			Answers: []AnswerRecord{
				{QuestionID: "q1", Type: "rating", Value: 5},
				{QuestionID: "q2", Type: "choice", Value: "Pasta"},
				{QuestionID: "q3", Type: "text", Value: "Great night."},
			},
		},
		{
			ID: "r2", FormID: "form-1", RestaurantID: "rest-1", SubmittedAt: submitted.Add(time.Hour),
			Answers: []AnswerRecord{
				{QuestionID: "q1", Type: "rating", Value: 3},
				{QuestionID: "q2", Type: "choice", Value: "Pizza"},
			},
		},
		{
			ID: "r3", FormID: "form-1", RestaurantID: "rest-1", SubmittedAt: submitted.Add(2 * time.Hour),
			Answers: []AnswerRecord{
				{QuestionID: "q1", Type: "rating", Value: 4},
				{QuestionID: "q2", Type: "choice", Value: "Pasta"},
			},
		},
	}}
	return NewAnalyticsService(forms, responses), forms, responses
}

func TestFormAnalyticsAggregates(t *testing.T) {
	service, _, _ := analyticsFixture()

	analytics, err := service.FormAnalytics(context.Background(), "form-1", "rest-1")
	require.NoError(t, err)

	assert.Equal(t, 3, analytics.ResponseCount)
	require.NotNil(t, analytics.AverageRating)
	assert.InDelta(t, 4.0, *analytics.AverageRating, 0.001)
	require.Len(t, analytics.Questions, 3)

	rating := analytics.Questions[0]
	assert.Equal(t, 3, rating.AnswerCount)
	require.NotNil(t, rating.AverageRating)
	assert.InDelta(t, 4.0, *rating.AverageRating, 0.001)

	choice := analytics.Questions[1]
	require.Len(t, choice.Distribution, 2)
	assert.Equal(t, OptionCount{Option: "Pasta", Count: 2}, choice.Distribution[0])
	assert.Equal(t, OptionCount{Option: "Pizza", Count: 1}, choice.Distribution[1])

	text := analytics.Questions[2]
	assert.Equal(t, []string{"Great night."}, text.TextSamples)
	assert.Nil(t, text.AverageRating)
}

func TestFormAnalyticsTenancy(t *testing.T) {
	service, _, _ := analyticsFixture()

	_, err := service.FormAnalytics(context.Background(), "form-1", "rest-other")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.FormAnalytics(context.Background(), "form-ghost", "rest-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSortedDistributionTieBreaks(t *testing.T) {
	choice := admindomain.Question{
		ID: "q", Type: admindomain.QuestionTypeDropdown,
		Options: admindomain.OptionList{"Pizza", "Pasta", "Tiramisu"},
	}
	buckets := sortedDistribution(choice, map[string]int{"Tiramisu": 2, "Pasta": 2, "Pizza": 1})
	require.Len(t, buckets, 3)
	// Equal counts fall back to the authored option order.
	assert.Equal(t, "Pasta", buckets[0].Option)
	assert.Equal(t, "Tiramisu", buckets[1].Option)
	assert.Equal(t, "Pizza", buckets[2].Option)

	rating := admindomain.Question{ID: "q", Type: admindomain.QuestionTypeRating}
	ratingBuckets := sortedDistribution(rating, map[string]int{"5": 2, "3": 2, "4": 1})
	require.Len(t, ratingBuckets, 3)
	// Equal counts order rating buckets by star value.
	assert.Equal(t, "3", ratingBuckets[0].Option)
	assert.Equal(t, "5", ratingBuckets[1].Option)
	assert.Equal(t, "4", ratingBuckets[2].Option)
}

func TestQuestionAnalyticsAndResponses(t *testing.T) {
	service, _, _ := analyticsFixture()
	ctx := context.Background()

	qa, err := service.QuestionAnalytics(ctx, "q2", "rest-1")
	require.NoError(t, err)
	assert.Equal(t, 3, qa.AnswerCount)
	assert.Equal(t, "Pasta", qa.Distribution[0].Option)

	answered, total, err := service.QuestionResponses(ctx, "q3", "rest-1", Paging{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, answered, 1)
	assert.Equal(t, "r1", answered[0].ID)

	_, err = service.QuestionAnalytics(ctx, "q2", "rest-other")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResponseTenancy(t *testing.T) {
	service, _, _ := analyticsFixture()
	ctx := context.Background()

	response, err := service.Response(ctx, "r1", "rest-1")
	require.NoError(t, err)
	assert.Equal(t, "r1", response.ID)

	_, err = service.Response(ctx, "r1", "rest-other")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFormResponsesPaging(t *testing.T) {
	service, _, _ := analyticsFixture()

	records, total, err := service.FormResponses(context.Background(), "form-1", "rest-1", Paging{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, records, 1)
	assert.Equal(t, "r3", records[0].ID)
}

func TestExportFormCSV(t *testing.T) {
	service, _, _ := analyticsFixture()

	data, err := service.ExportFormCSV(context.Background(), "form-1", "rest-1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "responseId,submittedAt,visitId,customerPhone,How would you rate the food?,Which dish did you enjoy most?,Anything else?", lines[0])
	assert.Contains(t, lines[1], "r1,2026-08-20T19:30:00Z,,,5,Pasta,Great night.")
	// Unanswered questions stay as empty cells.
	assert.True(t, strings.HasSuffix(lines[2], "3,Pizza,"))

	_, err = service.ExportFormCSV(context.Background(), "form-1", "rest-other")
	assert.ErrorIs(t, err, ErrNotFound)
}
