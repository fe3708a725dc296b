package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hoshloop/hoshloop-services/api/internal/interfaces/http/common"
	publicapp "github.com/hoshloop/hoshloop-services/api/internal/public/application"
)

func (h *Handler) formDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		formID := strings.TrimSpace(chi.URLParam(r, "formID"))
		if formID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "form id is required")
			return
		}

		form, questions, err := h.forms.Form(ctx, formID)
		if err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "form not found")
				return
			}
			h.logger.Printf("public form fetch failed id=%q err=%v", formID, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load form")
			return
		}

		questionItems := make([]questionResponse, 0, len(questions))
		for _, question := range questions {
			questionItems = append(questionItems, questionDomainToResponse(question))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, formDetailResponse{
			Form: formResponse{
				ID:              form.ID,
				RestaurantID:    form.RestaurantID,
				Name:            form.Name,
				Description:     form.Description,
				ThankYouMessage: form.ThankYouMessage,
			},
			Questions: questionItems,
		})
	}
}

func (h *Handler) submitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID := strings.TrimSpace(chi.URLParam(r, "formID"))
		if formID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "form id is required")
			return
		}

		var req submitRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		responseID, err := h.feedback.Submit(ctx, publicapp.SubmitFeedbackCommand{
			FormID:        formID,
			RestaurantID:  req.RestaurantID,
			VisitID:       req.CustomerVisitID,
			CustomerPhone: req.CustomerPhone,
			RawAnswers:    req.Answers,
		})
		if err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "form not found")
				return
			}
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, submitResponse{ResponseID: responseID})
	}
}

func (h *Handler) phoneCheckInHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req phoneCheckInRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		visitID, err := h.feedback.CheckIn(ctx, publicapp.Visit{
			RestaurantID:  req.RestaurantID,
			TableToken:    strings.TrimSpace(req.TableToken),
			CustomerPhone: req.Phone,
		})
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, phoneCheckInResponse{VisitID: visitID})
	}
}
