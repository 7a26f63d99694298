package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgrigorev/shop-api/internal/models"
	"github.com/sgrigorev/shop-api/internal/services"
)

func TestCountryListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCountryProvider(ctrl)

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func() {
				mockSvc.EXPECT().
					Countries(gomock.Any()).
					Return([]models.Country{{ID: 1, Name: "Russia"}, {ID: 2, Name: "China"}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "internal error",
			mockSetup: func() {
				mockSvc.EXPECT().
					Countries(gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/countries", nil)
			w := httptest.NewRecorder()

			handler := NewCountryListHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var countries []models.Country
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &countries))
				assert.Len(t, countries, 2)
				assert.Equal(t, "Russia", countries[0].Name)
			}
		})
	}
}

func TestCountryGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCountryProvider(ctrl)

	router := chi.NewRouter()
	router.Get("/countries/{id}", NewCountryGetHandler(mockSvc))

	tests := []struct {
		name         string
		url          string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			url:  "/countries/1",
			mockSetup: func() {
				mockSvc.EXPECT().
					CountryByID(gomock.Any(), int64(1)).
					Return(&models.Country{ID: 1, Name: "Russia"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &models.Country{ID: 1, Name: "Russia"},
		},
		{
			name:         "non-numeric id",
			url:          "/countries/abc",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "invalid country id"},
		},
		{
			name: "not found",
			url:  "/countries/99",
			mockSetup: func() {
				mockSvc.EXPECT().
					CountryByID(gomock.Any(), int64(99)).
					Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{Error: "Country not found"},
		},
		{
			name: "internal error",
			url:  "/countries/1",
			mockSetup: func() {
				mockSvc.EXPECT().
					CountryByID(gomock.Any(), int64(1)).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &models.Country{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
