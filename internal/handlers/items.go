package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sgrigorev/shop-api/internal/logger"
	"github.com/sgrigorev/shop-api/internal/models"
	"github.com/sgrigorev/shop-api/internal/services"
)

// ItemProvider defines the interface that the item service must implement.
type ItemProvider interface {
	Items(ctx context.Context) ([]models.Item, error)
	FilteredItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	ItemByID(ctx context.Context, id int64) (*models.Item, error)
}

// NewItemListHandler returns an HTTP handler listing all catalog items.
// @Summary List items
// @Tags items
// @Produce json
// @Success 200 {array} models.Item
// @Failure 500 {object} handlers.ErrorResponse
// @Router /items [get]
func NewItemListHandler(svc ItemProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Items(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}

// NewItemFilterHandler returns an HTTP handler filtering items by optional
// search and country query parameters. A country value of "0" or an absent
// parameter means no country restriction.
// @Summary Filter items
// @Tags items
// @Produce json
// @Param search query string false "Case-insensitive title substring"
// @Param country query string false "Country id, 0 for all countries"
// @Success 200 {array} models.Item
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /items/filter [get]
func NewItemFilterHandler(svc ItemProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := models.ItemFilter{
			Search: r.URL.Query().Get("search"),
		}

		if country := r.URL.Query().Get("country"); country != "" && country != "0" {
			countryID, err := strconv.ParseInt(country, 10, 64)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid country id"})
				return
			}
			filter.CountryID = &countryID
		}

		items, err := svc.FilteredItems(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}

// NewItemGetHandler returns an HTTP handler fetching one item by id.
// @Summary Get item by id
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Item
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /items/{id} [get]
func NewItemGetHandler(svc ItemProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid item id"})
			return
		}

		item, err := svc.ItemByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Item not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(item)
	}
}

// NewAdminItemListHandler returns the token-gated item listing used by the
// admin panel. The route must be wrapped with middlewares.AuthMiddleware.
// @Summary List items (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Item
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /admin/items [get]
func NewAdminItemListHandler(svc ItemProvider) http.HandlerFunc {
	return NewItemListHandler(svc)
}
