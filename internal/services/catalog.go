package services

import (
	"context"
	"errors"

	"github.com/sgrigorev/shop-api/internal/logger"
	"github.com/sgrigorev/shop-api/internal/models"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// CountryReader defines read operations for countries.
type CountryReader interface {
	GetAll(ctx context.Context) ([]models.Country, error)
	GetByID(ctx context.Context, id int64) (*models.Country, error)
}

// CountryCache caches the country list.
type CountryCache interface {
	GetAll(ctx context.Context) ([]models.Country, error)
	SetAll(ctx context.Context, countries []models.Country) error
}

// ItemReader defines read operations for catalog items.
type ItemReader interface {
	GetAll(ctx context.Context) ([]models.Item, error)
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	GetFiltered(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
}

// CatalogService serves countries and items.
type CatalogService struct {
	countries CountryReader
	cache     CountryCache
	items     ItemReader
}

// NewCatalogService creates a new CatalogService. cache may be nil, in
// which case every country list read goes to the database.
func NewCatalogService(countries CountryReader, cache CountryCache, items ItemReader) *CatalogService {
	return &CatalogService{
		countries: countries,
		cache:     cache,
		items:     items,
	}
}

// Countries returns all countries, preferring the cache. Cache failures
// are logged and fall through to the database.
func (svc *CatalogService) Countries(ctx context.Context) ([]models.Country, error) {
	if svc.cache != nil {
		cached, err := svc.cache.GetAll(ctx)
		if err == nil {
			return cached, nil
		}
	}

	countries, err := svc.countries.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get countries", "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetAll(ctx, countries); err != nil {
			logger.Log.Warnw("failed to cache countries", "err", err)
		}
	}

	return countries, nil
}

// CountryByID returns one country or ErrNotFound.
func (svc *CatalogService) CountryByID(ctx context.Context, id int64) (*models.Country, error) {
	country, err := svc.countries.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get country", "id", id, "err", err)
		return nil, err
	}
	if country == nil {
		return nil, ErrNotFound
	}
	return country, nil
}

// Items returns all catalog items.
func (svc *CatalogService) Items(ctx context.Context) ([]models.Item, error) {
	items, err := svc.items.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get items", "err", err)
		return nil, err
	}
	return items, nil
}

// FilteredItems returns the items matching the given criteria.
func (svc *CatalogService) FilteredItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	items, err := svc.items.GetFiltered(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to get filtered items",
			"search", filter.Search, "country_id", filter.CountryID, "err", err)
		return nil, err
	}
	return items, nil
}

// ItemByID returns one item or ErrNotFound.
func (svc *CatalogService) ItemByID(ctx context.Context, id int64) (*models.Item, error) {
	item, err := svc.items.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get item", "id", id, "err", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}
