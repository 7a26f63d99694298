package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sgrigorev/shop-api/internal/logger"
	"github.com/sgrigorev/shop-api/internal/models"
	"github.com/sgrigorev/shop-api/internal/services"
)

// CountryProvider defines the interface that the country service must implement.
type CountryProvider interface {
	Countries(ctx context.Context) ([]models.Country, error)
	CountryByID(ctx context.Context, id int64) (*models.Country, error)
}

// NewCountryListHandler returns an HTTP handler listing all countries.
// @Summary List countries
// @Tags countries
// @Produce json
// @Success 200 {array} models.Country
// @Failure 500 {object} handlers.ErrorResponse
// @Router /countries [get]
func NewCountryListHandler(svc CountryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		countries, err := svc.Countries(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(countries)
	}
}

// NewCountryGetHandler returns an HTTP handler fetching one country by id.
// @Summary Get country by id
// @Tags countries
// @Produce json
// @Param id path int true "Country ID"
// @Success 200 {object} models.Country
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /countries/{id} [get]
func NewCountryGetHandler(svc CountryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid country id"})
			return
		}

		country, err := svc.CountryByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Country not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(country)
	}
}
