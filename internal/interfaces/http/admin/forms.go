package admin

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	adminapp "github.com/hoshloop/hoshloop-services/api/internal/admin/application"
	"github.com/hoshloop/hoshloop-services/api/internal/interfaces/http/common"
)

// ownRestaurantID resolves the {id} path segment against the caller's
// tenant. A foreign id reads as missing, never as forbidden.
func (h *Handler) ownRestaurantID(w http.ResponseWriter, r *http.Request, user common.AuthenticatedUser) (string, bool) {
	idParam := strings.TrimSpace(chi.URLParam(r, "id"))
	if idParam == "" || idParam == "current" {
		return user.RestaurantID, true
	}
	if idParam != user.RestaurantID {
		common.WriteError(h.logger, w, http.StatusNotFound, "not found")
		return "", false
	}
	return idParam, true
}

func (h *Handler) formListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}
		restaurantID, ok := h.ownRestaurantID(w, r, user)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		forms, err := h.forms.List(ctx, restaurantID)
		if err != nil {
			h.writeServiceError(w, err, "form list fetch failed")
			return
		}

		items := make([]formResponse, 0, len(forms))
		for _, form := range forms {
			items = append(items, formDomainToResponse(form))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) formCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}
		restaurantID, ok := h.ownRestaurantID(w, r, user)
		if !ok {
			return
		}

		var req formRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		form, err := h.forms.Create(ctx, restaurantID, adminapp.UpsertFormCommand{
			Name:            req.Name,
			Description:     req.Description,
			ThankYouMessage: req.ThankYouMessage,
			Active:          req.Active,
		})
		if err != nil {
			h.writeServiceError(w, err, "form create failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, formDomainToResponse(*form))
	}
}

func (h *Handler) formDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		formID := strings.TrimSpace(chi.URLParam(r, "formID"))
		form, questions, err := h.forms.Detail(ctx, formID, user.RestaurantID)
		if err != nil {
			h.writeServiceError(w, err, "form detail fetch failed")
			return
		}

		questionItems := make([]questionResponse, 0, len(questions))
		for _, question := range questions {
			questionItems = append(questionItems, questionDomainToResponse(question))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, formDetailResponse{
			Form:      formDomainToResponse(*form),
			Questions: questionItems,
		})
	}
}

func (h *Handler) formUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		var req formRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		formID := strings.TrimSpace(chi.URLParam(r, "formID"))
		form, err := h.forms.Update(ctx, formID, user.RestaurantID, adminapp.UpsertFormCommand{
			Name:            req.Name,
			Description:     req.Description,
			ThankYouMessage: req.ThankYouMessage,
			Active:          req.Active,
		})
		if err != nil {
			h.writeServiceError(w, err, "form update failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, formDomainToResponse(*form))
	}
}

func (h *Handler) questionCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		var req questionRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		formID := strings.TrimSpace(chi.URLParam(r, "formID"))
		question, err := h.forms.AddQuestion(ctx, formID, user.RestaurantID, questionCommandFromRequest(req))
		if err != nil {
			h.writeServiceError(w, err, "question create failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, questionDomainToResponse(*question))
	}
}

func (h *Handler) questionUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		var req questionRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		formID := strings.TrimSpace(chi.URLParam(r, "formID"))
		questionID := strings.TrimSpace(chi.URLParam(r, "questionID"))
		question, err := h.forms.UpdateQuestion(ctx, formID, questionID, user.RestaurantID, questionCommandFromRequest(req))
		if err != nil {
			h.writeServiceError(w, err, "question update failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, questionDomainToResponse(*question))
	}
}

func (h *Handler) questionDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		formID := strings.TrimSpace(chi.URLParam(r, "formID"))
		questionID := strings.TrimSpace(chi.URLParam(r, "questionID"))
		if err := h.forms.DeleteQuestion(ctx, formID, questionID, user.RestaurantID); err != nil {
			h.writeServiceError(w, err, "question delete failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func (h *Handler) restaurantResponsesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}
		restaurantID, ok := h.ownRestaurantID(w, r, user)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		paging := pagingFromQuery(r)
		records, total, err := h.analytics.RestaurantResponses(ctx, restaurantID, paging)
		if err != nil {
			h.writeServiceError(w, err, "restaurant responses fetch failed")
			return
		}

		items := make([]responseResponse, 0, len(records))
		for _, record := range records {
			items = append(items, responseRecordToResponse(record))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, responseListResponse{
			Items: items,
			Page:  paging.Page,
			Limit: paging.Limit,
			Total: total,
		})
	}
}

func questionCommandFromRequest(req questionRequest) adminapp.UpsertQuestionCommand {
	return adminapp.UpsertQuestionCommand{
		Text:        req.Text,
		Description: req.Description,
		Type:        req.Type,
		Required:    req.Required,
		Options:     req.Options,
		MaxRating:   req.MaxRating,
		Placeholder: req.Placeholder,
		Order:       req.Order,
	}
}
