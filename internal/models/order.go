package models

// Order represents an order record in the database
type Order struct {
	ID    int64  `json:"id" db:"id"`       // Primary key, supplied by the client
	Name  string `json:"name" db:"name"`   // Customer name
	Phone string `json:"phone" db:"phone"` // Customer phone
}

// OrderItem represents a line of an order, keyed by (order_id, item_id)
type OrderItem struct {
	OrderID int64 `json:"order_id" db:"order_id"` // Composite key part, FK to orders
	ItemID  int64 `json:"item_id" db:"item_id"`   // Composite key part, FK to items
	Count   int64 `json:"count" db:"count"`       // Quantity ordered
}
