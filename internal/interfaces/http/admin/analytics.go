package admin

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hoshloop/hoshloop-services/api/internal/interfaces/http/common"
)

func (h *Handler) formAnalyticsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		formID := strings.TrimSpace(chi.URLParam(r, "formID"))
		analytics, err := h.analytics.FormAnalytics(ctx, formID, user.RestaurantID)
		if err != nil {
			h.writeServiceError(w, err, "form analytics failed")
			return
		}

		questions := make([]questionAnalyticsResponse, 0, len(analytics.Questions))
		for _, qa := range analytics.Questions {
			questions = append(questions, questionAnalyticsToResponse(qa))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, formAnalyticsResponse{
			FormID:        analytics.FormID,
			ResponseCount: analytics.ResponseCount,
			AverageRating: analytics.AverageRating,
			Questions:     questions,
		})
	}
}

func (h *Handler) formResponsesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		formID := strings.TrimSpace(chi.URLParam(r, "formID"))
		paging := pagingFromQuery(r)
		records, total, err := h.analytics.FormResponses(ctx, formID, user.RestaurantID, paging)
		if err != nil {
			h.writeServiceError(w, err, "form responses fetch failed")
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

func (h *Handler) formExportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		format := strings.TrimSpace(r.URL.Query().Get("format"))
		if format != "" && !strings.EqualFold(format, "csv") {
			common.WriteError(h.logger, w, http.StatusBadRequest, "only csv export is supported")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		formID := strings.TrimSpace(chi.URLParam(r, "formID"))
		payload, err := h.analytics.ExportFormCSV(ctx, formID, user.RestaurantID)
		if err != nil {
			h.writeServiceError(w, err, "form export failed")
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "responses-"+formID+".csv"))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(payload); err != nil {
			h.logger.Printf("form export write failed formId=%s err=%v", formID, err)
		}
	}
}

func (h *Handler) questionDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		questionID := strings.TrimSpace(chi.URLParam(r, "questionID"))
		question, err := h.analytics.Question(ctx, questionID, user.RestaurantID)
		if err != nil {
			h.writeServiceError(w, err, "question fetch failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, questionDomainToResponse(*question))
	}
}

func (h *Handler) questionAnalyticsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		questionID := strings.TrimSpace(chi.URLParam(r, "questionID"))
		qa, err := h.analytics.QuestionAnalytics(ctx, questionID, user.RestaurantID)
		if err != nil {
			h.writeServiceError(w, err, "question analytics failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, questionAnalyticsToResponse(*qa))
	}
}

func (h *Handler) questionResponsesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		questionID := strings.TrimSpace(chi.URLParam(r, "questionID"))
		paging := pagingFromQuery(r)
		records, total, err := h.analytics.QuestionResponses(ctx, questionID, user.RestaurantID, paging)
		if err != nil {
			h.writeServiceError(w, err, "question responses fetch failed")
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

func (h *Handler) responseDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		responseID := strings.TrimSpace(chi.URLParam(r, "responseID"))
		record, err := h.analytics.Response(ctx, responseID, user.RestaurantID)
		if err != nil {
			h.writeServiceError(w, err, "response fetch failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, responseRecordToResponse(*record))
	}
}
