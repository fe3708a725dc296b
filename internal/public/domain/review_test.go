package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reviewQuestions() []Question {
	return []Question{
		{ID: "q-food", Text: "How would you rate the food?", Type: TypeRating, Required: true},
		{ID: "q-service", Text: "How would you rate the service?", Type: TypeRating, Required: true},
		{ID: "q-comment", Text: "Anything we should improve?", Type: TypeText},
	}
}

func TestComposeReviewPositiveBand(t *testing.T) {
	answers := map[string]Answer{
		"q-food":    RatingAnswer{Stars: 5},
		"q-service": RatingAnswer{Stars: 4},
	}

	got := ComposeReview("Trattoria Lumen", reviewQuestions(), answers)

	assert.Equal(t,
		"I had a great experience at Trattoria Lumen! "+
			"I was particularly impressed with the food. "+
			"I would definitely recommend this place to others.",
		got)
}

func TestComposeReviewNeutralBand(t *testing.T) {
	answers := map[string]Answer{
		"q-food":    RatingAnswer{Stars: 3},
		"q-service": RatingAnswer{Stars: 4},
	}

	got := ComposeReview("Trattoria Lumen", reviewQuestions(), answers)

	assert.Equal(t,
		"I had a decent experience at Trattoria Lumen. "+
			"I thought the service was good. "+
			"It's worth a visit if you're in the area.",
		got)
}

func TestComposeReviewNegativeBandNamesLowestSubject(t *testing.T) {
	answers := map[string]Answer{
		"q-food":    RatingAnswer{Stars: 4},
		"q-service": RatingAnswer{Stars: 1},
	}

	got := ComposeReview("Trattoria Lumen", reviewQuestions(), answers)

	assert.Equal(t,
		"My experience at Trattoria Lumen was below expectations. "+
			"I was disappointed with the service. "+
			"I hope they can improve in the future.",
		got)
}

func TestComposeReviewBandBoundaries(t *testing.T) {
	cases := []struct {
		name  string
		stars []int
		want  string
	}{
		{"exactly 4.0 is positive", []int{4, 4}, "I had a great experience at"},
		{"just below 4.0 is neutral", []int{4, 3}, "I had a decent experience at"},
		{"exactly 3.0 is neutral", []int{3, 3}, "I had a decent experience at"},
		{"just below 3.0 is negative", []int{3, 2}, "My experience at"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			answers := map[string]Answer{
				"q-food":    RatingAnswer{Stars: tc.stars[0]},
				"q-service": RatingAnswer{Stars: tc.stars[1]},
			}
			got := ComposeReview("X", reviewQuestions(), answers)
			assert.Contains(t, got, tc.want)
		})
	}
}

func TestComposeReviewNoRatingsIsNegative(t *testing.T) {
	got := ComposeReview("Trattoria Lumen", reviewQuestions(), map[string]Answer{})

	assert.Equal(t,
		"My experience at Trattoria Lumen was below expectations. "+
			"I hope they can improve in the future.",
		got)
}

func TestComposeReviewUnansweredRatingsExcludedFromAverage(t *testing.T) {
	// One answered 5-star rating; the unanswered one must not drag the
	// average down.
	answers := map[string]Answer{
		"q-food": RatingAnswer{Stars: 5},
	}

	got := ComposeReview("Trattoria Lumen", reviewQuestions(), answers)

	assert.Contains(t, got, "I had a great experience at")
	assert.Contains(t, got, "the food")
}

func TestComposeReviewTieBreakPrefersFirstQuestion(t *testing.T) {
	answers := map[string]Answer{
		"q-food":    RatingAnswer{Stars: 5},
		"q-service": RatingAnswer{Stars: 5},
	}

	got := ComposeReview("Trattoria Lumen", reviewQuestions(), answers)

	assert.Contains(t, got, "impressed with the food")
	assert.NotContains(t, got, "the service")
}

func TestComposeReviewAppendsFirstNonEmptyTextVerbatim(t *testing.T) {
	questions := append(reviewQuestions(),
		Question{ID: "q-extra", Text: "More thoughts?", Type: TypeText})
	answers := map[string]Answer{
		"q-food":    RatingAnswer{Stars: 5},
		"q-service": RatingAnswer{Stars: 5},
		"q-comment": TextAnswer{Text: "   "},
		"q-extra":   TextAnswer{Text: "The tiramisu was divine."},
	}

	got := ComposeReview("Trattoria Lumen", questions, answers)

	assert.Contains(t, got, "The tiramisu was divine. ")
	assert.Contains(t, got, "I would definitely recommend this place to others.")
}

func TestComposeReviewBlankRestaurantNameFallsBack(t *testing.T) {
	answers := map[string]Answer{"q-food": RatingAnswer{Stars: 5}}

	got := ComposeReview("   ", reviewQuestions(), answers)

	assert.Contains(t, got, "I had a great experience at this restaurant!")
}

func TestComposeReviewDeterministic(t *testing.T) {
	answers := map[string]Answer{
		"q-food":    RatingAnswer{Stars: 4},
		"q-service": RatingAnswer{Stars: 2},
		"q-comment": TextAnswer{Text: "Mixed feelings."},
	}

	first := ComposeReview("Trattoria Lumen", reviewQuestions(), answers)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComposeReview("Trattoria Lumen", reviewQuestions(), answers))
	}
}

func TestCleanSubject(t *testing.T) {
	assert.Equal(t, "the food", cleanSubject("How would you rate the food?"))
	assert.Equal(t, "our wine list", cleanSubject("How would you rate our wine list?"))
	assert.Equal(t, "was it clean", cleanSubject("Was it clean?"))
}
