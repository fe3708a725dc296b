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

func (h *Handler) categoryListHandler() http.HandlerFunc {
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

		categories, err := h.menu.Categories(ctx, restaurantID)
		if err != nil {
			h.writeServiceError(w, err, "category list fetch failed")
			return
		}

		items := make([]categoryResponse, 0, len(categories))
		for _, category := range categories {
			items = append(items, categoryDomainToResponse(category))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) categoryCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		var req categoryRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		category, err := h.menu.CreateCategory(ctx, user.RestaurantID, adminapp.UpsertCategoryCommand{
			Name:        req.Name,
			Description: req.Description,
			Order:       req.Order,
			Active:      req.Active,
		})
		if err != nil {
			h.writeServiceError(w, err, "category create failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, categoryDomainToResponse(*category))
	}
}

func (h *Handler) categoryUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		var req categoryRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		categoryID := strings.TrimSpace(chi.URLParam(r, "id"))
		category, err := h.menu.UpdateCategory(ctx, categoryID, user.RestaurantID, adminapp.UpsertCategoryCommand{
			Name:        req.Name,
			Description: req.Description,
			Order:       req.Order,
			Active:      req.Active,
		})
		if err != nil {
			h.writeServiceError(w, err, "category update failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, categoryDomainToResponse(*category))
	}
}

func (h *Handler) categoryVisibilityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		var req visibilityRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		categoryID := strings.TrimSpace(chi.URLParam(r, "id"))
		category, err := h.menu.SetCategoryVisibility(ctx, categoryID, user.RestaurantID, req.Active)
		if err != nil {
			h.writeServiceError(w, err, "category visibility update failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, categoryDomainToResponse(*category))
	}
}

func (h *Handler) categoryDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		categoryID := strings.TrimSpace(chi.URLParam(r, "id"))
		if err := h.menu.DeleteCategory(ctx, categoryID, user.RestaurantID); err != nil {
			h.writeServiceError(w, err, "category delete failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func (h *Handler) itemListHandler() http.HandlerFunc {
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

		dishes, err := h.menu.Items(ctx, restaurantID)
		if err != nil {
			h.writeServiceError(w, err, "item list fetch failed")
			return
		}

		items := make([]itemResponse, 0, len(dishes))
		for _, dish := range dishes {
			items = append(items, itemDomainToResponse(dish))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) itemCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		var req itemRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		item, err := h.menu.CreateItem(ctx, user.RestaurantID, adminapp.UpsertItemCommand{
			CategoryID:  req.CategoryID,
			Name:        req.Name,
			Description: req.Description,
			PriceCents:  req.PriceCents,
			Tags:        req.Tags,
			Active:      req.Active,
		})
		if err != nil {
			h.writeServiceError(w, err, "item create failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, itemDomainToResponse(*item))
	}
}

func (h *Handler) itemUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		var req itemRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		itemID := strings.TrimSpace(chi.URLParam(r, "id"))
		item, err := h.menu.UpdateItem(ctx, itemID, user.RestaurantID, adminapp.UpsertItemCommand{
			CategoryID:  req.CategoryID,
			Name:        req.Name,
			Description: req.Description,
			PriceCents:  req.PriceCents,
			Tags:        req.Tags,
			Active:      req.Active,
		})
		if err != nil {
			h.writeServiceError(w, err, "item update failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, itemDomainToResponse(*item))
	}
}

func (h *Handler) itemAvailabilityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		var req visibilityRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		itemID := strings.TrimSpace(chi.URLParam(r, "id"))
		item, err := h.menu.SetItemAvailability(ctx, itemID, user.RestaurantID, req.Active)
		if err != nil {
			h.writeServiceError(w, err, "item availability update failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, itemDomainToResponse(*item))
	}
}

func (h *Handler) itemDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		itemID := strings.TrimSpace(chi.URLParam(r, "id"))
		if err := h.menu.DeleteItem(ctx, itemID, user.RestaurantID); err != nil {
			h.writeServiceError(w, err, "item delete failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}
