package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hoshloop/hoshloop-services/api/internal/interfaces/http/common"
	publicapp "github.com/hoshloop/hoshloop-services/api/internal/public/application"
)

func (h *Handler) restaurantPublicHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "restaurant id is required")
			return
		}

		profile, err := h.restaurants.Profile(ctx, idParam)
		if err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "restaurant not found")
				return
			}
			h.logger.Printf("public restaurant fetch failed id=%q err=%v", idParam, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load restaurant")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, restaurantPublicResponse{
			ID:             profile.ID,
			Name:           profile.Name,
			Description:    profile.Description,
			Address:        profile.Address,
			Phone:          profile.Phone,
			HasGooglePlace: strings.TrimSpace(profile.GooglePlaceID) != "",
			Appearance:     profile.Appearance,
		})
	}
}

func (h *Handler) menuCategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		categories, err := h.menu.Categories(ctx, idParam)
		if err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "restaurant not found")
				return
			}
			h.logger.Printf("public menu categories fetch failed id=%q err=%v", idParam, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load menu")
			return
		}

		items := make([]menuCategoryResponse, 0, len(categories))
		for _, category := range categories {
			items = append(items, menuCategoryResponse{
				ID:          category.ID,
				Name:        category.Name,
				Description: category.Description,
				Order:       category.Order,
			})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) menuItemsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		dishes, err := h.menu.Items(ctx, idParam)
		if err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "restaurant not found")
				return
			}
			h.logger.Printf("public menu items fetch failed id=%q err=%v", idParam, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load menu")
			return
		}

		items := make([]menuItemResponse, 0, len(dishes))
		for _, dish := range dishes {
			items = append(items, menuItemResponse{
				ID:          dish.ID,
				CategoryID:  dish.CategoryID,
				Name:        dish.Name,
				Description: dish.Description,
				PriceCents:  dish.PriceCents,
				Tags:        dish.Tags,
			})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}
