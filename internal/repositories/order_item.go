package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sgrigorev/shop-api/internal/logger"
	"github.com/sgrigorev/shop-api/internal/models"
)

// OrderItemRepository manages order line records in PostgreSQL. Lines are
// keyed by the composite (order_id, item_id).
type OrderItemRepository struct {
	db *sqlx.DB
}

func NewOrderItemRepository(db *sqlx.DB) *OrderItemRepository {
	return &OrderItemRepository{db: db}
}

// GetAll returns every order line.
func (r *OrderItemRepository) GetAll(ctx context.Context) ([]models.OrderItem, error) {
	const query = `
		SELECT order_id, item_id, count
		FROM order_items
		ORDER BY order_id, item_id
	`

	lines := make([]models.OrderItem, 0)
	err := r.db.SelectContext(ctx, &lines, query)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(lines),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return lines, nil
}

// GetByOrderID returns all lines of one order. Absent orders yield an
// empty slice, not an error.
func (r *OrderItemRepository) GetByOrderID(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	const query = `
		SELECT order_id, item_id, count
		FROM order_items
		WHERE order_id = $1
		ORDER BY item_id
	`

	lines := make([]models.OrderItem, 0)
	err := r.db.SelectContext(ctx, &lines, query, orderID)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{orderID},
		"rows", len(lines),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return lines, nil
}

// Create inserts an order line and returns the stored row.
func (r *OrderItemRepository) Create(ctx context.Context, line models.OrderItem) (*models.OrderItem, error) {
	const query = `
		INSERT INTO order_items (order_id, item_id, count)
		VALUES ($1, $2, $3)
		RETURNING order_id, item_id, count
	`

	var created models.OrderItem
	err := r.db.GetContext(ctx, &created, query, line.OrderID, line.ItemID, line.Count)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{line.OrderID, line.ItemID, line.Count},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update changes the count of an existing line and returns the stored row,
// or nil if no such line exists.
func (r *OrderItemRepository) Update(ctx context.Context, line models.OrderItem) (*models.OrderItem, error) {
	const query = `
		UPDATE order_items
		SET count = $1
		WHERE order_id = $2 AND item_id = $3
		RETURNING order_id, item_id, count
	`

	var updated models.OrderItem
	err := r.db.GetContext(ctx, &updated, query, line.Count, line.OrderID, line.ItemID)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{line.Count, line.OrderID, line.ItemID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes one order line. Deleting an absent line is not an error.
func (r *OrderItemRepository) Delete(ctx context.Context, orderID, itemID int64) error {
	const query = `
		DELETE FROM order_items
		WHERE order_id = $1 AND item_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, orderID, itemID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{orderID, itemID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
