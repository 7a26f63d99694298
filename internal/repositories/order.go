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

// OrderRepository manages order records in PostgreSQL.
type OrderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// GetAll returns every order.
func (r *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	const query = `
		SELECT id, name, phone
		FROM orders
		ORDER BY id
	`

	orders := make([]models.Order, 0)
	err := r.db.SelectContext(ctx, &orders, query)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(orders),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID returns the order with the given id, or nil if absent.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	const query = `
		SELECT id, name, phone
		FROM orders
		WHERE id = $1
	`

	var order models.Order
	err := r.db.GetContext(ctx, &order, query, id)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// Create inserts an order and returns the stored row.
func (r *OrderRepository) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	const query = `
		INSERT INTO orders (id, name, phone)
		VALUES ($1, $2, $3)
		RETURNING id, name, phone
	`

	var created models.Order
	err := r.db.GetContext(ctx, &created, query, order.ID, order.Name, order.Phone)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{order.ID, order.Name, order.Phone},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update changes an existing order and returns the stored row, or nil if
// no order with that id exists.
func (r *OrderRepository) Update(ctx context.Context, order models.Order) (*models.Order, error) {
	const query = `
		UPDATE orders
		SET name = $1, phone = $2
		WHERE id = $3
		RETURNING id, name, phone
	`

	var updated models.Order
	err := r.db.GetContext(ctx, &updated, query, order.Name, order.Phone, order.ID)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{order.Name, order.Phone, order.ID},
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

// Delete removes the order with the given id. Deleting an absent order is
// not an error.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	const query = `
		DELETE FROM orders
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
