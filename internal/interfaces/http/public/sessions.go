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

func (h *Handler) sessionCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID := strings.TrimSpace(chi.URLParam(r, "formID"))
		if formID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "form id is required")
			return
		}

		var req sessionCreateRequest
		if r.ContentLength > 0 {
			if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
				common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		session, err := h.wizard.Start(ctx, formID, req.CustomerVisitID, req.CustomerPhone)
		if err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "form not found")
				return
			}
			h.logger.Printf("session create failed formId=%q err=%v", formID, err)
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, sessionDomainToResponse(session))
	}
}

func (h *Handler) sessionDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(chi.URLParam(r, "sessionID"))
		session, err := h.wizard.Get(sessionID)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusNotFound, "session not found")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, sessionDomainToResponse(session))
	}
}

func (h *Handler) sessionAnswerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(chi.URLParam(r, "sessionID"))
		questionID := strings.TrimSpace(chi.URLParam(r, "questionID"))

		var req answerRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		if err := h.wizard.SetAnswer(sessionID, questionID, req.Value); err != nil {
			common.WriteError(h.logger, w, sessionErrorStatus(err), err.Error())
			return
		}

		session, err := h.wizard.Get(sessionID)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusNotFound, "session not found")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, sessionDomainToResponse(session))
	}
}

func (h *Handler) sessionAdvanceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(chi.URLParam(r, "sessionID"))

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		result, err := h.wizard.Advance(ctx, sessionID)
		if err != nil {
			common.WriteError(h.logger, w, sessionErrorStatus(err), err.Error())
			return
		}

		session, getErr := h.wizard.Get(sessionID)
		if getErr != nil {
			common.WriteError(h.logger, w, http.StatusNotFound, "session not found")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, advanceResponse{
			Submitted:  result.Submitted,
			ResponseID: result.ResponseID,
			Session:    sessionDomainToResponse(session),
		})
	}
}

func (h *Handler) sessionRetreatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(chi.URLParam(r, "sessionID"))

		if err := h.wizard.Retreat(sessionID); err != nil {
			common.WriteError(h.logger, w, sessionErrorStatus(err), err.Error())
			return
		}

		session, err := h.wizard.Get(sessionID)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusNotFound, "session not found")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, sessionDomainToResponse(session))
	}
}
