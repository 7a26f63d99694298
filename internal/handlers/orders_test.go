package handlers

import (
	"bytes"
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

func newOrderRouter(mockSvc *MockOrderProvider) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/orders", NewOrderListHandler(mockSvc))
	router.Post("/orders", NewOrderCreateHandler(mockSvc))
	router.Get("/orders/{id}", NewOrderGetHandler(mockSvc))
	router.Put("/orders/{id}", NewOrderUpdateHandler(mockSvc))
	router.Delete("/orders/{id}", NewOrderDeleteHandler(mockSvc))
	return router
}

func TestOrderListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOrderProvider(ctrl)
	router := newOrderRouter(mockSvc)

	mockSvc.EXPECT().
		Orders(gomock.Any()).
		Return([]models.Order{{ID: 1001, Name: "Ivan", Phone: "+70000000001"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)
	assert.Equal(t, "Ivan", orders[0].Name)
}

func TestOrderGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOrderProvider(ctrl)
	router := newOrderRouter(mockSvc)

	tests := []struct {
		name         string
		url          string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			url:  "/orders/1001",
			mockSetup: func() {
				mockSvc.EXPECT().
					OrderByID(gomock.Any(), int64(1001)).
					Return(&models.Order{ID: 1001, Name: "Ivan", Phone: "+70000000001"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &models.Order{ID: 1001, Name: "Ivan", Phone: "+70000000001"},
		},
		{
			name:         "non-numeric id",
			url:          "/orders/abc",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "invalid order id"},
		},
		{
			name: "not found",
			url:  "/orders/9999",
			mockSetup: func() {
				mockSvc.EXPECT().
					OrderByID(gomock.Any(), int64(9999)).
					Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{Error: "Order not found"},
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
				respBody = &models.Order{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}

func TestOrderCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOrderProvider(ctrl)
	router := newOrderRouter(mockSvc)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "success",
			inputBody: CreateOrderRequest{
				ID:    1001,
				Name:  "Ivan",
				Phone: "+70000000001",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					CreateOrder(gomock.Any(), models.Order{ID: 1001, Name: "Ivan", Phone: "+70000000001"}).
					Return(&models.Order{ID: 1001, Name: "Ivan", Phone: "+70000000001"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "missing phone",
			inputBody: CreateOrderRequest{
				ID:   1001,
				Name: "Ivan",
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal error",
			inputBody: CreateOrderRequest{
				ID:    1001,
				Name:  "Ivan",
				Phone: "+70000000001",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestOrderUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOrderProvider(ctrl)
	router := newOrderRouter(mockSvc)

	tests := []struct {
		name         string
		url          string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "success",
			url:  "/orders/1001",
			inputBody: UpdateOrderRequest{
				Name:  "Petr",
				Phone: "+70000000002",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateOrder(gomock.Any(), models.Order{ID: 1001, Name: "Petr", Phone: "+70000000002"}).
					Return(&models.Order{ID: 1001, Name: "Petr", Phone: "+70000000002"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			url:  "/orders/9999",
			inputBody: UpdateOrderRequest{
				Name:  "Petr",
				Phone: "+70000000002",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateOrder(gomock.Any(), gomock.Any()).
					Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "missing name",
			url:          "/orders/1001",
			inputBody:    UpdateOrderRequest{Phone: "+70000000002"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPut, tt.url, bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestOrderDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOrderProvider(ctrl)
	router := newOrderRouter(mockSvc)

	tests := []struct {
		name         string
		url          string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "success",
			url:  "/orders/1001",
			mockSetup: func() {
				mockSvc.EXPECT().
					DeleteOrder(gomock.Any(), int64(1001)).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "absent order still deletes",
			url:  "/orders/9999",
			mockSetup: func() {
				mockSvc.EXPECT().
					DeleteOrder(gomock.Any(), int64(9999)).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "non-numeric id",
			url:          "/orders/abc",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal error",
			url:  "/orders/1001",
			mockSetup: func() {
				mockSvc.EXPECT().
					DeleteOrder(gomock.Any(), int64(1001)).
					Return(errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodDelete, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
