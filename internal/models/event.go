package models

// Order event operations published to Kafka.
const (
	OrderCreated = "order_created"
	OrderUpdated = "order_updated"
	OrderDeleted = "order_deleted"
)

// OrderEvent is the message published to Kafka on order lifecycle changes.
type OrderEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Timestamp int64  `json:"timestamp"` // Unix timestamp of the event
	Operation string `json:"operation"` // One of the Order* constants
	OrderID   int64  `json:"order_id"`  // Affected order
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}
