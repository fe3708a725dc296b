package admin

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	adminapp "github.com/hoshloop/hoshloop-services/api/internal/admin/application"
	"github.com/hoshloop/hoshloop-services/api/internal/interfaces/http/common"
)

func (h *Handler) registerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		result, err := h.auth.Register(ctx, adminapp.RegisterCommand{
			RestaurantName: req.RestaurantName,
			OwnerName:      req.OwnerName,
			Email:          req.Email,
			Password:       req.Password,
		})
		if err != nil {
			h.writeServiceError(w, err, "owner registration failed")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, authResponse{
			Token:      result.Token,
			Account:    accountDomainToResponse(result.Account),
			Restaurant: restaurantDomainToResponse(result.Restaurant),
		})
	}
}

func (h *Handler) loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		result, err := h.auth.Login(ctx, req.Email, req.Password)
		if err != nil {
			h.writeServiceError(w, err, "owner login failed")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, authResponse{
			Token:      result.Token,
			Account:    accountDomainToResponse(result.Account),
			Restaurant: restaurantDomainToResponse(result.Restaurant),
		})
	}
}

func (h *Handler) meHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		account, restaurant, err := h.auth.Current(ctx, user.ID)
		if err != nil {
			h.writeServiceError(w, err, "owner lookup failed")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"account":    accountDomainToResponse(*account),
			"restaurant": restaurantDomainToResponse(*restaurant),
		})
	}
}

// logoutHandler acknowledges a logout. Tokens are stateless, so the client
// simply discards its copy; the endpoint exists for symmetric UX flows.
func (h *Handler) logoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := h.requireUser(w, r); !ok {
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "logged_out"})
	}
}
