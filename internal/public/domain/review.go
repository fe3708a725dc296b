package domain

import (
	"fmt"
	"strings"
)

// Sentiment band thresholds over the average rating.
const (
	positiveBandMin = 4.0
	neutralBandMin  = 3.0
)

// Review templates. The composer is deterministic: identical answers and
// restaurant name always produce identical text.
const (
	positiveOpening    = "I had a great experience at %s! "
	positiveSubject    = "I was particularly impressed with %s. "
	positiveClosing    = "I would definitely recommend this place to others."
	neutralOpening     = "I had a decent experience at %s. "
	neutralSubject     = "I thought %s was good. "
	neutralClosing     = "It's worth a visit if you're in the area."
	negativeOpening    = "My experience at %s was below expectations. "
	negativeSubject    = "I was disappointed with %s. "
	negativeClosing    = "I hope they can improve in the future."
	fallbackRestaurant = "this restaurant"
)

type ratedSubject struct {
	question string
	stars    int
}

// ComposeReview turns finalized answers into one paragraph of draft review
// text, banded by average rating into positive, neutral, or negative
// templates. Questions are walked in form order, which fixes the tie-break:
// when several ratings share the maximum (or minimum), the first one wins.
func ComposeReview(restaurantName string, questions []Question, answers map[string]Answer) string {
	name := strings.TrimSpace(restaurantName)
	if name == "" {
		name = fallbackRestaurant
	}

	ratings := make([]ratedSubject, 0)
	firstText := ""
	for _, question := range questions {
		answer, ok := answers[question.ID]
		if !ok || answer == nil {
			continue
		}
		switch question.Type {
		case TypeRating:
			if rating, ok := answer.(RatingAnswer); ok {
				ratings = append(ratings, ratedSubject{question: question.Text, stars: rating.Stars})
			}
		case TypeText:
			if text, ok := answer.(TextAnswer); ok && firstText == "" {
				if trimmed := strings.TrimSpace(text.Text); trimmed != "" {
					firstText = trimmed
				}
			}
		}
	}

	average := 0.0
	if len(ratings) > 0 {
		sum := 0
		for _, rated := range ratings {
			sum += rated.stars
		}
		average = float64(sum) / float64(len(ratings))
	}

	var builder strings.Builder
	switch {
	case average >= positiveBandMin:
		builder.WriteString(fmt.Sprintf(positiveOpening, name))
		if len(ratings) > 0 {
			builder.WriteString(fmt.Sprintf(positiveSubject, cleanSubject(highestRated(ratings).question)))
		}
		if firstText != "" {
			builder.WriteString(firstText + " ")
		}
		builder.WriteString(positiveClosing)
	case average >= neutralBandMin:
		builder.WriteString(fmt.Sprintf(neutralOpening, name))
		if len(ratings) > 0 {
			builder.WriteString(fmt.Sprintf(neutralSubject, cleanSubject(highestRated(ratings).question)))
		}
		if firstText != "" {
			builder.WriteString(firstText + " ")
		}
		builder.WriteString(neutralClosing)
	default:
		builder.WriteString(fmt.Sprintf(negativeOpening, name))
		if len(ratings) > 0 {
			builder.WriteString(fmt.Sprintf(negativeSubject, cleanSubject(lowestRated(ratings).question)))
		}
		if firstText != "" {
			builder.WriteString(firstText + " ")
		}
		builder.WriteString(negativeClosing)
	}

	return builder.String()
}

// cleanSubject reduces a question like "How would you rate the food?" to
// its subject ("the food") for use inside a sentence.
func cleanSubject(questionText string) string {
	subject := strings.ToLower(questionText)
	subject = strings.Replace(subject, "how would you rate ", "", 1)
	subject = strings.Replace(subject, "?", "", 1)
	return strings.TrimSpace(subject)
}

func highestRated(ratings []ratedSubject) ratedSubject {
	best := ratings[0]
	for _, rated := range ratings[1:] {
		if rated.stars > best.stars {
			best = rated
		}
	}
	return best
}

func lowestRated(ratings []ratedSubject) ratedSubject {
	worst := ratings[0]
	for _, rated := range ratings[1:] {
		if rated.stars < worst.stars {
			worst = rated
		}
	}
	return worst
}
