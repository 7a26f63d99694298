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

// CountryRepository reads country records from PostgreSQL.
type CountryRepository struct {
	db *sqlx.DB
}

func NewCountryRepository(db *sqlx.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

// GetAll returns every country.
func (r *CountryRepository) GetAll(ctx context.Context) ([]models.Country, error) {
	const query = `
		SELECT id, name
		FROM countries
		ORDER BY id
	`

	countries := make([]models.Country, 0)
	err := r.db.SelectContext(ctx, &countries, query)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(countries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return countries, nil
}

// GetByID returns the country with the given id, or nil if absent.
func (r *CountryRepository) GetByID(ctx context.Context, id int64) (*models.Country, error) {
	const query = `
		SELECT id, name
		FROM countries
		WHERE id = $1
	`

	var country models.Country
	err := r.db.GetContext(ctx, &country, query, id)

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

	return &country, nil
}
