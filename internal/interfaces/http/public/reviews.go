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
	publicdomain "github.com/hoshloop/hoshloop-services/api/internal/public/domain"
)

func (h *Handler) reviewComposeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		responseID := strings.TrimSpace(chi.URLParam(r, "responseID"))
		if responseID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "response id is required")
			return
		}

		review, err := h.reviews.ComposeForResponse(ctx, responseID)
		if err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "response not found")
				return
			}
			h.logger.Printf("review compose failed responseId=%q err=%v", responseID, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to compose review")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, reviewResponse{Review: review})
	}
}

func (h *Handler) reviewLinkHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responseID := strings.TrimSpace(chi.URLParam(r, "responseID"))
		if responseID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "response id is required")
			return
		}

		var req reviewLinkRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		url, err := h.reviews.HandoffLink(ctx, responseID, req.Review)
		if err != nil {
			switch {
			case errors.Is(err, publicapp.ErrNotFound):
				common.WriteError(h.logger, w, http.StatusNotFound, "response not found")
			case errors.Is(err, publicdomain.ErrEmptyDraft):
				common.WriteError(h.logger, w, http.StatusBadRequest, "review text is required")
			default:
				h.logger.Printf("review link build failed responseId=%q err=%v", responseID, err)
				common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to build review link")
			}
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, reviewLinkResponse{URL: url})
	}
}
