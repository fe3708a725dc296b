package admin

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hoshloop/hoshloop-services/api/internal/interfaces/http/common"
	qrcode "github.com/skip2/go-qrcode"
)

func (h *Handler) tableCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		var req tableCreateRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		table, err := h.tables.Create(ctx, user.RestaurantID, req.Name)
		if err != nil {
			h.writeServiceError(w, err, "table create failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, h.tableDomainToResponse(*table))
	}
}

func (h *Handler) tableListHandler() http.HandlerFunc {
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

		tables, err := h.tables.List(ctx, restaurantID)
		if err != nil {
			h.writeServiceError(w, err, "table list fetch failed")
			return
		}

		items := make([]tableResponse, 0, len(tables))
		for _, table := range tables {
			items = append(items, h.tableDomainToResponse(table))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) tableDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tableID := strings.TrimSpace(chi.URLParam(r, "id"))
		if err := h.tables.Delete(ctx, tableID, user.RestaurantID); err != nil {
			h.writeServiceError(w, err, "table delete failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

// tableQRCodeHandler renders the table's QR code as a PNG. The code encodes
// the customer feedback entry URL carrying the table token.
func (h *Handler) tableQRCodeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tableID := strings.TrimSpace(chi.URLParam(r, "id"))
		table, err := h.tables.Get(ctx, tableID, user.RestaurantID)
		if err != nil {
			h.writeServiceError(w, err, "table fetch failed")
			return
		}

		if h.feedbackURL == nil {
			common.WriteError(h.logger, w, http.StatusInternalServerError, "feedback URL is not configured")
			return
		}

		png, err := qrcode.Encode(h.feedbackURL(table.RestaurantID, table.QRToken), qrcode.Medium, 512)
		if err != nil {
			h.logger.Printf("qr code render failed tableId=%s err=%v", tableID, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to render QR code")
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(png); err != nil {
			h.logger.Printf("qr code write failed tableId=%s err=%v", tableID, err)
		}
	}
}
