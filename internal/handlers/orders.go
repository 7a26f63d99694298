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

// OrderProvider defines the interface that the order service must implement.
type OrderProvider interface {
	Orders(ctx context.Context) ([]models.Order, error)
	OrderByID(ctx context.Context, id int64) (*models.Order, error)
	CreateOrder(ctx context.Context, order models.Order) (*models.Order, error)
	UpdateOrder(ctx context.Context, order models.Order) (*models.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// CreateOrderRequest represents the JSON body for order creation
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	// Order id, supplied by the client
	// required: true
	// example: 1001
	ID int64 `json:"id" validate:"required"`

	// Customer name
	// required: true
	// example: Ivan
	Name string `json:"name" validate:"required"`

	// Customer phone
	// required: true
	// example: +70000000001
	Phone string `json:"phone" validate:"required"`
}

// UpdateOrderRequest represents the JSON body for order update
// swagger:model UpdateOrderRequest
type UpdateOrderRequest struct {
	// Customer name
	// required: true
	// example: Ivan
	Name string `json:"name" validate:"required"`

	// Customer phone
	// required: true
	// example: +70000000001
	Phone string `json:"phone" validate:"required"`
}

// NewOrderListHandler returns an HTTP handler listing all orders.
// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} handlers.ErrorResponse
// @Router /orders [get]
func NewOrderListHandler(svc OrderProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := svc.Orders(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(orders)
	}
}

// NewOrderGetHandler returns an HTTP handler fetching one order by id.
// @Summary Get order by id
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /orders/{id} [get]
func NewOrderGetHandler(svc OrderProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid order id"})
			return
		}

		order, err := svc.OrderByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Order not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(order)
	}
}

// NewOrderCreateHandler returns an HTTP handler creating an order.
// @Summary Create order
// @Tags orders
// @Accept json
// @Produce json
// @Param createOrderRequest body handlers.CreateOrderRequest true "Order"
// @Success 201 {object} models.Order
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /orders [post]
func NewOrderCreateHandler(svc OrderProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateOrderRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "id, name and phone are required"})
			return
		}

		created, err := svc.CreateOrder(r.Context(), models.Order{ID: req.ID, Name: req.Name, Phone: req.Phone})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// NewOrderUpdateHandler returns an HTTP handler updating an order.
// @Summary Update order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param updateOrderRequest body handlers.UpdateOrderRequest true "Order"
// @Success 200 {object} models.Order
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /orders/{id} [put]
func NewOrderUpdateHandler(svc OrderProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid order id"})
			return
		}

		var req UpdateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "name and phone are required"})
			return
		}

		updated, err := svc.UpdateOrder(r.Context(), models.Order{ID: id, Name: req.Name, Phone: req.Phone})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Order not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(updated)
	}
}

// NewOrderDeleteHandler returns an HTTP handler deleting an order.
// Deleting an absent order still yields 204.
// @Summary Delete order
// @Tags orders
// @Param id path int true "Order ID"
// @Success 204 "No Content"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /orders/{id} [delete]
func NewOrderDeleteHandler(svc OrderProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid order id"})
			return
		}

		if err := svc.DeleteOrder(r.Context(), id); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
