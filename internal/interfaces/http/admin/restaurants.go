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

func (h *Handler) restaurantCurrentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		restaurant, err := h.restaurants.Get(ctx, user.RestaurantID, user.RestaurantID)
		if err != nil {
			h.writeServiceError(w, err, "current restaurant fetch failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, restaurantDomainToResponse(*restaurant))
	}
}

func (h *Handler) restaurantDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		restaurant, err := h.restaurants.Get(ctx, idParam, user.RestaurantID)
		if err != nil {
			h.writeServiceError(w, err, "restaurant fetch failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, restaurantDomainToResponse(*restaurant))
	}
}

func (h *Handler) restaurantUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		var req restaurantUpdateRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		restaurant, err := h.restaurants.UpdateGeneral(ctx, idParam, user.RestaurantID, adminapp.UpdateRestaurantCommand{
			Name:          req.Name,
			Description:   req.Description,
			Address:       req.Address,
			Phone:         req.Phone,
			GooglePlaceID: req.GooglePlaceID,
		})
		if err != nil {
			h.writeServiceError(w, err, "restaurant update failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, restaurantDomainToResponse(*restaurant))
	}
}

func (h *Handler) restaurantAppearanceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		var req appearanceUpdateRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		restaurant, err := h.restaurants.UpdateAppearance(ctx, idParam, user.RestaurantID, req.Appearance)
		if err != nil {
			h.writeServiceError(w, err, "restaurant appearance update failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, restaurantDomainToResponse(*restaurant))
	}
}
