package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sgrigorev/shop-api/internal/logger"
	"github.com/sgrigorev/shop-api/internal/models"
)

// OrderReader defines read operations for orders.
type OrderReader interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
}

// OrderWriter defines write operations for orders.
type OrderWriter interface {
	Create(ctx context.Context, order models.Order) (*models.Order, error)
	Update(ctx context.Context, order models.Order) (*models.Order, error)
	Delete(ctx context.Context, id int64) error
}

// OrderItemReader defines read operations for order lines.
type OrderItemReader interface {
	GetAll(ctx context.Context) ([]models.OrderItem, error)
	GetByOrderID(ctx context.Context, orderID int64) ([]models.OrderItem, error)
}

// OrderItemWriter defines write operations for order lines.
type OrderItemWriter interface {
	Create(ctx context.Context, line models.OrderItem) (*models.OrderItem, error)
	Update(ctx context.Context, line models.OrderItem) (*models.OrderItem, error)
	Delete(ctx context.Context, orderID, itemID int64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// OrderService handles order CRUD and publishes lifecycle events to Kafka.
type OrderService struct {
	orders      OrderReader
	orderWriter OrderWriter
	lines       OrderItemReader
	lineWriter  OrderItemWriter
	kafkaWriter KafkaWriter
}

// NewOrderService creates a new OrderService. kafkaWriter may be nil;
// events are then skipped.
func NewOrderService(
	orders OrderReader,
	orderWriter OrderWriter,
	lines OrderItemReader,
	lineWriter OrderItemWriter,
	kafkaWriter KafkaWriter,
) *OrderService {
	return &OrderService{
		orders:      orders,
		orderWriter: orderWriter,
		lines:       lines,
		lineWriter:  lineWriter,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes an order lifecycle event to Kafka. Publish
// failures are logged and never fail the request.
func (s *OrderService) publishEvent(ctx context.Context, operation string, order models.Order) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "operation", operation, "order_id", order.ID)
		return
	}

	event := models.OrderEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: operation,
		OrderID:   order.ID,
		Name:      order.Name,
		Phone:     order.Phone,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal order event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish order event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("order event published", "event_id", event.EventID, "operation", operation, "order_id", order.ID)
	}
}

// Orders returns all orders.
func (s *OrderService) Orders(ctx context.Context) ([]models.Order, error) {
	return s.orders.GetAll(ctx)
}

// OrderByID returns one order or ErrNotFound.
func (s *OrderService) OrderByID(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// CreateOrder stores a new order and publishes an order_created event.
func (s *OrderService) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	created, err := s.orderWriter.Create(ctx, order)
	if err != nil {
		logger.Log.Errorw("failed to create order", "order_id", order.ID, "err", err)
		return nil, err
	}

	s.publishEvent(ctx, models.OrderCreated, *created)
	return created, nil
}

// UpdateOrder changes an existing order and publishes an order_updated
// event. Returns ErrNotFound when no such order exists.
func (s *OrderService) UpdateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	updated, err := s.orderWriter.Update(ctx, order)
	if err != nil {
		logger.Log.Errorw("failed to update order", "order_id", order.ID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	s.publishEvent(ctx, models.OrderUpdated, *updated)
	return updated, nil
}

// DeleteOrder removes an order and publishes an order_deleted event.
// Deleting an absent order succeeds.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.orderWriter.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete order", "order_id", id, "err", err)
		return err
	}

	s.publishEvent(ctx, models.OrderDeleted, models.Order{ID: id})
	return nil
}

// OrderItems returns all order lines.
func (s *OrderService) OrderItems(ctx context.Context) ([]models.OrderItem, error) {
	return s.lines.GetAll(ctx)
}

// OrderItemsByOrder returns the lines of one order. An order with no
// lines yields ErrNotFound, matching the HTTP 404 contract.
func (s *OrderService) OrderItemsByOrder(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	lines, err := s.lines.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNotFound
	}
	return lines, nil
}

// CreateOrderItem stores a new order line.
func (s *OrderService) CreateOrderItem(ctx context.Context, line models.OrderItem) (*models.OrderItem, error) {
	created, err := s.lineWriter.Create(ctx, line)
	if err != nil {
		logger.Log.Errorw("failed to create order item",
			"order_id", line.OrderID, "item_id", line.ItemID, "err", err)
		return nil, err
	}
	return created, nil
}

// UpdateOrderItem changes the count of an existing line. Returns
// ErrNotFound when no such line exists.
func (s *OrderService) UpdateOrderItem(ctx context.Context, line models.OrderItem) (*models.OrderItem, error) {
	updated, err := s.lineWriter.Update(ctx, line)
	if err != nil {
		logger.Log.Errorw("failed to update order item",
			"order_id", line.OrderID, "item_id", line.ItemID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// DeleteOrderItem removes one order line. Deleting an absent line succeeds.
func (s *OrderService) DeleteOrderItem(ctx context.Context, orderID, itemID int64) error {
	if err := s.lineWriter.Delete(ctx, orderID, itemID); err != nil {
		logger.Log.Errorw("failed to delete order item",
			"order_id", orderID, "item_id", itemID, "err", err)
		return err
	}
	return nil
}
