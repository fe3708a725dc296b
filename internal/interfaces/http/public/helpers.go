package public

import (
	"errors"
	"net/http"

	publicapp "github.com/hoshloop/hoshloop-services/api/internal/public/application"
	publicdomain "github.com/hoshloop/hoshloop-services/api/internal/public/domain"
)

func questionDomainToResponse(question publicdomain.Question) questionResponse {
	return questionResponse{
		ID:          question.ID,
		Text:        question.Text,
		Description: question.Description,
		Type:        string(question.Type),
		Required:    question.Required,
		Options:     question.Options,
		MaxRating:   question.Settings.MaxRating,
		Placeholder: question.Settings.Placeholder,
		Order:       question.Order,
	}
}

func sessionDomainToResponse(session *publicdomain.Session) sessionResponse {
	current, total := session.Progress()
	resp := sessionResponse{
		SessionID:  session.ID,
		State:      string(session.State()),
		Step:       current,
		TotalSteps: total,
		Question:   questionDomainToResponse(session.Current()),
		ResponseID: session.ResponseID(),
	}
	if answer, ok := session.Answer(session.Current().ID); ok {
		resp.Answer = answer.Payload()
	}
	return resp
}

// sessionErrorStatus maps wizard and validation failures onto HTTP codes.
// Missing sessions are 404, in-flight or finished sessions are 409, and
// everything else is a client-input problem.
func sessionErrorStatus(err error) int {
	switch {
	case errors.Is(err, publicapp.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, publicdomain.ErrSessionBusy),
		errors.Is(err, publicdomain.ErrSessionCompleted):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
