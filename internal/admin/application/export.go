package application

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"
)

// ExportFormCSV renders every response of a form as CSV: one row per
// response, one column per question in form order, plus submission
// metadata columns.
func (s *analyticsService) ExportFormCSV(ctx context.Context, formID, restaurantID string) ([]byte, error) {
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

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	header := []string{"responseId", "submittedAt", "visitId", "customerPhone"}
	for _, question := range questions {
		header = append(header, question.Text)
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, response := range responses {
		row := []string{
			response.ID,
			response.SubmittedAt.UTC().Format(time.RFC3339),
			response.VisitID,
			response.CustomerPhone,
		}
		byQuestion := make(map[string]AnswerRecord, len(response.Answers))
		for _, answer := range response.Answers {
			byQuestion[answer.QuestionID] = answer
		}
		for _, question := range questions {
			answer, ok := byQuestion[question.ID]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, formatAnswerCell(answer.Value))
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func formatAnswerCell(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "; ")
	case []any:
		return strings.Join(toStringSlice(v), "; ")
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
