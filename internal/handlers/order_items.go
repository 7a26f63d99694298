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

// OrderItemProvider defines the interface that the order line service must implement.
type OrderItemProvider interface {
	OrderItems(ctx context.Context) ([]models.OrderItem, error)
	OrderItemsByOrder(ctx context.Context, orderID int64) ([]models.OrderItem, error)
	CreateOrderItem(ctx context.Context, line models.OrderItem) (*models.OrderItem, error)
	UpdateOrderItem(ctx context.Context, line models.OrderItem) (*models.OrderItem, error)
	DeleteOrderItem(ctx context.Context, orderID, itemID int64) error
}

// CreateOrderItemRequest represents the JSON body for order line creation
// swagger:model CreateOrderItemRequest
type CreateOrderItemRequest struct {
	// Order id
	// required: true
	// example: 1001
	OrderID int64 `json:"order_id" validate:"required"`

	// Item id
	// required: true
	// example: 7
	ItemID int64 `json:"item_id" validate:"required"`

	// Quantity
	// required: true
	// example: 2
	Count int64 `json:"count" validate:"required"`
}

// UpdateOrderItemRequest represents the JSON body for order line update
// swagger:model UpdateOrderItemRequest
type UpdateOrderItemRequest struct {
	// Quantity
	// required: true
	// example: 3
	Count int64 `json:"count" validate:"required"`
}

// NewOrderItemListHandler returns an HTTP handler listing all order lines.
// @Summary List order items
// @Tags order-items
// @Produce json
// @Success 200 {array} models.OrderItem
// @Failure 500 {object} handlers.ErrorResponse
// @Router /order-items [get]
func NewOrderItemListHandler(svc OrderItemProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lines, err := svc.OrderItems(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(lines)
	}
}

// NewOrderItemsByOrderHandler returns an HTTP handler listing lines of one
// order. An order without lines yields 404.
// @Summary List items of one order
// @Tags order-items
// @Produce json
// @Param order_id path int true "Order ID"
// @Success 200 {array} models.OrderItem
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /order-items/{order_id} [get]
func NewOrderItemsByOrderHandler(svc OrderItemProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseIDParam(r, "order_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid order id"})
			return
		}

		lines, err := svc.OrderItemsByOrder(r.Context(), orderID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "No items found for this order"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(lines)
	}
}

// NewOrderItemCreateHandler returns an HTTP handler creating an order line.
// @Summary Create order item
// @Tags order-items
// @Accept json
// @Produce json
// @Param createOrderItemRequest body handlers.CreateOrderItemRequest true "Order item"
// @Success 201 {object} models.OrderItem
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /order-items [post]
func NewOrderItemCreateHandler(svc OrderItemProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateOrderItemRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "order_id, item_id and count are required"})
			return
		}

		created, err := svc.CreateOrderItem(r.Context(), models.OrderItem{
			OrderID: req.OrderID,
			ItemID:  req.ItemID,
			Count:   req.Count,
		})
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

// NewOrderItemUpdateHandler returns an HTTP handler updating the count of
// an order line addressed by (order_id, item_id).
// @Summary Update order item
// @Tags order-items
// @Accept json
// @Produce json
// @Param order_id path int true "Order ID"
// @Param item_id path int true "Item ID"
// @Param updateOrderItemRequest body handlers.UpdateOrderItemRequest true "Order item"
// @Success 200 {object} models.OrderItem
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /order-items/{order_id}/{item_id} [put]
func NewOrderItemUpdateHandler(svc OrderItemProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseIDParam(r, "order_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid order id"})
			return
		}
		itemID, err := parseIDParam(r, "item_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid item id"})
			return
		}

		var req UpdateOrderItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "count is required"})
			return
		}

		updated, err := svc.UpdateOrderItem(r.Context(), models.OrderItem{
			OrderID: orderID,
			ItemID:  itemID,
			Count:   req.Count,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Order item not found"})
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

// NewOrderItemDeleteHandler returns an HTTP handler deleting one order
// line. Deleting an absent line still yields 204.
// @Summary Delete order item
// @Tags order-items
// @Param order_id path int true "Order ID"
// @Param item_id path int true "Item ID"
// @Success 204 "No Content"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /order-items/{order_id}/{item_id} [delete]
func NewOrderItemDeleteHandler(svc OrderItemProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseIDParam(r, "order_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid order id"})
			return
		}
		itemID, err := parseIDParam(r, "item_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid item id"})
			return
		}

		if err := svc.DeleteOrderItem(r.Context(), orderID, itemID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
