package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sgrigorev/shop-api/internal/logger"
	"github.com/sgrigorev/shop-api/internal/models"
)

const countryCacheKey = "countries:all"

// ErrCacheMiss is returned when the requested value is not cached.
var ErrCacheMiss = errors.New("value not found in cache")

// CountryCacheRepository caches the country list in Redis. Countries are
// read-mostly, so a short TTL keeps the list fresh without hitting
// PostgreSQL on every request.
type CountryCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached list
}

// NewCountryCacheRepository creates a new repository instance with the given TTL.
func NewCountryCacheRepository(client *redis.Client, expiration time.Duration) *CountryCacheRepository {
	return &CountryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetAll fetches the cached country list. Returns ErrCacheMiss when the key
// is absent or expired.
func (r *CountryCacheRepository) GetAll(ctx context.Context) ([]models.Country, error) {
	val, err := r.client.Get(ctx, countryCacheKey).Result()
	if err != nil {
		logger.Log.Infow("cache get",
			"key", countryCacheKey,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var countries []models.Country
	if err := json.Unmarshal([]byte(val), &countries); err != nil {
		logger.Log.Errorw("cache get: corrupt payload",
			"key", countryCacheKey,
			"error", err,
		)
		return nil, err
	}

	return countries, nil
}

// SetAll stores the country list with the configured TTL.
func (r *CountryCacheRepository) SetAll(ctx context.Context, countries []models.Country) error {
	data, err := json.Marshal(countries)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, countryCacheKey, data, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", countryCacheKey,
		"rows", len(countries),
		"error", err,
	)

	return err
}
