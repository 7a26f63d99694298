package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/sgrigorev/shop-api/internal/logger"
	"github.com/sgrigorev/shop-api/internal/models"
)

// ItemRepository reads catalog items from PostgreSQL.
type ItemRepository struct {
	db *sqlx.DB
}

func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// buildItemsQuery composes the items SELECT from optional filter criteria.
// Both criteria are bound as query parameters; user input never reaches the
// statement text, so SQL metacharacters in Search are matched literally.
func buildItemsQuery(filter models.ItemFilter) (string, []any, error) {
	builder := sq.
		Select("id", "title", "price", "country_id").
		From("items").
		PlaceholderFormat(sq.Dollar)

	if filter.Search != "" {
		builder = builder.Where(sq.ILike{"title": "%" + filter.Search + "%"})
	}
	if filter.CountryID != nil {
		builder = builder.Where(sq.Eq{"country_id": *filter.CountryID})
	}

	return builder.OrderBy("id").ToSql()
}

// GetAll returns every item.
func (r *ItemRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	return r.GetFiltered(ctx, models.ItemFilter{})
}

// GetFiltered returns the items matching the given criteria. An empty
// filter returns all rows.
func (r *ItemRepository) GetFiltered(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	query, args, err := buildItemsQuery(filter)
	if err != nil {
		return nil, err
	}

	items := make([]models.Item, 0)
	err = r.db.SelectContext(ctx, &items, query, args...)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns the item with the given id, or nil if absent.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	const query = `
		SELECT id, title, price, country_id
		FROM items
		WHERE id = $1
	`

	var item models.Item
	err := r.db.GetContext(ctx, &item, query, id)

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

	return &item, nil
}
