package application

import (
	"context"
	"sort"
	"strconv"

	admindomain "github.com/hoshloop/hoshloop-services/api/internal/admin/domain"
)

// OptionCount is one bucket of an answer distribution.
type OptionCount struct {
	Option string
	Count  int
}

// QuestionAnalytics aggregates all stored answers to one question.
type QuestionAnalytics struct {
	QuestionID    string
	Text          string
	Type          string
	AnswerCount   int
	AverageRating *float64
	// Distribution buckets rating stars or option labels. Buckets are
	// sorted by count descending, then by original option order, which
	// keeps "most popular" selection stable and deterministic.
	Distribution []OptionCount
	// TextSamples holds up to ten verbatim text answers in submission order.
	TextSamples []string
}

// FormAnalytics aggregates a whole form.
type FormAnalytics struct {
	FormID        string
	ResponseCount int
	AverageRating *float64
	Questions     []QuestionAnalytics
}

// AnalyticsService serves the owner's reporting views.
type AnalyticsService interface {
	FormAnalytics(ctx context.Context, formID, restaurantID string) (*FormAnalytics, error)
	FormResponses(ctx context.Context, formID, restaurantID string, paging Paging) ([]ResponseRecord, int, error)
	RestaurantResponses(ctx context.Context, restaurantID string, paging Paging) ([]ResponseRecord, int, error)
	Question(ctx context.Context, questionID, restaurantID string) (*admindomain.Question, error)
	QuestionAnalytics(ctx context.Context, questionID, restaurantID string) (*QuestionAnalytics, error)
	QuestionResponses(ctx context.Context, questionID, restaurantID string, paging Paging) ([]ResponseRecord, int, error)
	Response(ctx context.Context, responseID, restaurantID string) (*ResponseRecord, error)
	ExportFormCSV(ctx context.Context, formID, restaurantID string) ([]byte, error)
}

type analyticsService struct {
	forms     FormRepository
	responses ResponseRepository
}

// NewAnalyticsService builds the reporting service.
func NewAnalyticsService(forms FormRepository, responses ResponseRepository) AnalyticsService {
	return &analyticsService{forms: forms, responses: responses}
}

func (s *analyticsService) ownedForm(ctx context.Context, formID, restaurantID string) (*admindomain.FeedbackForm, error) {
	form, err := s.forms.FindByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form.RestaurantID != restaurantID {
		return nil, ErrNotFound
	}
	return form, nil
}

func (s *analyticsService) FormAnalytics(ctx context.Context, formID, restaurantID string) (*FormAnalytics, error) {
	form, err := s.ownedForm(ctx, formID, restaurantID)
	if err != nil {
		return nil, err
	}
	questions, err := s.forms.Questions(ctx, form.ID)
	if err != nil {
		return nil, err
	}
	responses, _, err := s.responses.ListByForm(ctx, form.ID, Paging{})
	if err != nil {
		return nil, err
	}

	analytics := &FormAnalytics{FormID: form.ID, ResponseCount: len(responses)}

	ratingSum := 0
	ratingCount := 0
	for _, question := range questions {
		qa := aggregateQuestion(question, responses)
		if question.Type == admindomain.QuestionTypeRating {
			for _, response := range responses {
				if stars, ok := ratingAnswer(response, question.ID); ok {
					ratingSum += stars
					ratingCount++
				}
			}
		}
		analytics.Questions = append(analytics.Questions, qa)
	}
	if ratingCount > 0 {
		average := float64(ratingSum) / float64(ratingCount)
		analytics.AverageRating = &average
	}
	return analytics, nil
}

func (s *analyticsService) FormResponses(ctx context.Context, formID, restaurantID string, paging Paging) ([]ResponseRecord, int, error) {
	if _, err := s.ownedForm(ctx, formID, restaurantID); err != nil {
		return nil, 0, err
	}
	return s.responses.ListByForm(ctx, formID, paging)
}

func (s *analyticsService) RestaurantResponses(ctx context.Context, restaurantID string, paging Paging) ([]ResponseRecord, int, error) {
	return s.responses.ListByRestaurant(ctx, restaurantID, paging)
}

// ownedQuestion resolves a question and checks tenancy through its form.
func (s *analyticsService) ownedQuestion(ctx context.Context, questionID, restaurantID string) (*admindomain.Question, error) {
	question, err := s.forms.FindQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedForm(ctx, question.FormID, restaurantID); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *analyticsService) Question(ctx context.Context, questionID, restaurantID string) (*admindomain.Question, error) {
	return s.ownedQuestion(ctx, questionID, restaurantID)
}

func (s *analyticsService) QuestionAnalytics(ctx context.Context, questionID, restaurantID string) (*QuestionAnalytics, error) {
	question, err := s.ownedQuestion(ctx, questionID, restaurantID)
	if err != nil {
		return nil, err
	}
	responses, _, err := s.responses.ListByForm(ctx, question.FormID, Paging{})
	if err != nil {
		return nil, err
	}
	qa := aggregateQuestion(*question, responses)
	return &qa, nil
}

func (s *analyticsService) QuestionResponses(ctx context.Context, questionID, restaurantID string, paging Paging) ([]ResponseRecord, int, error) {
	question, err := s.ownedQuestion(ctx, questionID, restaurantID)
	if err != nil {
		return nil, 0, err
	}
	responses, _, err := s.responses.ListByForm(ctx, question.FormID, Paging{})
	if err != nil {
		return nil, 0, err
	}

	answered := make([]ResponseRecord, 0, len(responses))
	for _, response := range responses {
		for _, answer := range response.Answers {
			if answer.QuestionID == question.ID {
				answered = append(answered, response)
				break
			}
		}
	}
	return paginate(answered, paging)
}

func (s *analyticsService) Response(ctx context.Context, responseID, restaurantID string) (*ResponseRecord, error) {
	response, err := s.responses.FindByID(ctx, responseID)
	if err != nil {
		return nil, err
	}
	if response.RestaurantID != restaurantID {
		return nil, ErrNotFound
	}
	return response, nil
}

// aggregateQuestion buckets all answers to one question.
func aggregateQuestion(question admindomain.Question, responses []ResponseRecord) QuestionAnalytics {
	qa := QuestionAnalytics{
		QuestionID: question.ID,
		Text:       question.Text,
		Type:       question.Type,
	}

	counts := make(map[string]int)
	ratingSum := 0
	for _, response := range responses {
		for _, answer := range response.Answers {
			if answer.QuestionID != question.ID {
				continue
			}
			qa.AnswerCount++
			switch question.Type {
			case admindomain.QuestionTypeRating:
				if stars, ok := toInt(answer.Value); ok {
					ratingSum += stars
					counts[strconv.Itoa(stars)]++
				}
			case admindomain.QuestionTypeText:
				if text, ok := answer.Value.(string); ok && len(qa.TextSamples) < 10 {
					qa.TextSamples = append(qa.TextSamples, text)
				}
			case admindomain.QuestionTypeMultipleChoice, admindomain.QuestionTypeDropdown:
				if option, ok := answer.Value.(string); ok {
					counts[option]++
				}
			case admindomain.QuestionTypeCheckbox:
				for _, option := range toStringSlice(answer.Value) {
					counts[option]++
				}
			}
		}
	}

	if question.Type == admindomain.QuestionTypeRating && qa.AnswerCount > 0 {
		average := float64(ratingSum) / float64(qa.AnswerCount)
		qa.AverageRating = &average
	}

	qa.Distribution = sortedDistribution(question, counts)
	return qa
}

// sortedDistribution orders buckets by count descending, breaking ties by
// the option's position in the question (rating buckets by star value).
func sortedDistribution(question admindomain.Question, counts map[string]int) []OptionCount {
	if len(counts) == 0 {
		return nil
	}

	position := make(map[string]int, len(question.Options))
	for index, option := range question.Options {
		position[option] = index
	}

	buckets := make([]OptionCount, 0, len(counts))
	for option, count := range counts {
		buckets = append(buckets, OptionCount{Option: option, Count: count})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		if question.Type == admindomain.QuestionTypeRating {
			left, _ := strconv.Atoi(buckets[i].Option)
			right, _ := strconv.Atoi(buckets[j].Option)
			return left < right
		}
		return position[buckets[i].Option] < position[buckets[j].Option]
	})
	return buckets
}

func ratingAnswer(response ResponseRecord, questionID string) (int, bool) {
	for _, answer := range response.Answers {
		if answer.QuestionID == questionID {
			return toInt(answer.Value)
		}
	}
	return 0, false
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func toStringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	default:
		return nil
	}
}

func paginate(records []ResponseRecord, paging Paging) ([]ResponseRecord, int, error) {
	total := len(records)
	if paging.Limit <= 0 {
		return records, total, nil
	}
	page := paging.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * paging.Limit
	if start >= total {
		return []ResponseRecord{}, total, nil
	}
	end := start + paging.Limit
	if end > total {
		end = total
	}
	return records[start:end], total, nil
}
