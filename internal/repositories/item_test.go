package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sgrigorev/shop-api/internal/models"
)

func setupItemsPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	schema := `
	CREATE TABLE countries (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL
	);

	CREATE TABLE items (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		price NUMERIC(10,2) NOT NULL DEFAULT 0,
		country_id BIGINT NOT NULL REFERENCES countries(id)
	);

	INSERT INTO countries (id, name) VALUES (1, 'Italy'), (2, 'France'), (3, 'Spain');
	INSERT INTO items (title, price, country_id) VALUES
		('Red Shirt', 19.99, 1),
		('Blue shirt', 24.99, 2),
		('Black Jacket', 89.99, 2),
		('Canvas Shoes', 39.99, 3);
	`
	_, err = db.Exec(schema)
	require.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestItemRepository_GetFiltered(t *testing.T) {
	db, teardown := setupItemsPostgresContainer(t)
	defer teardown()

	repo := NewItemRepository(db)
	ctx := context.Background()

	t.Run("no criteria returns all rows", func(t *testing.T) {
		items, err := repo.GetFiltered(ctx, models.ItemFilter{})
		assert.NoError(t, err)
		assert.Len(t, items, 4)
	})

	t.Run("title match is case-insensitive", func(t *testing.T) {
		items, err := repo.GetFiltered(ctx, models.ItemFilter{Search: "shirt"})
		assert.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Red Shirt", items[0].Title)
		assert.Equal(t, "Blue shirt", items[1].Title)
	})

	t.Run("country match", func(t *testing.T) {
		items, err := repo.GetFiltered(ctx, models.ItemFilter{CountryID: countryID(3)})
		assert.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Canvas Shoes", items[0].Title)
	})

	t.Run("search and country are ANDed", func(t *testing.T) {
		items, err := repo.GetFiltered(ctx, models.ItemFilter{Search: "a", CountryID: countryID(2)})
		assert.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Black Jacket", items[0].Title)
	})

	t.Run("injection probe matches literally and mutates nothing", func(t *testing.T) {
		items, err := repo.GetFiltered(ctx, models.ItemFilter{Search: "'; DROP TABLE items; --"})
		assert.NoError(t, err)
		assert.Empty(t, items)

		// Table must still be intact.
		items, err = repo.GetFiltered(ctx, models.ItemFilter{})
		assert.NoError(t, err)
		assert.Len(t, items, 4)
	})

	t.Run("get by id", func(t *testing.T) {
		item, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Red Shirt", item.Title)

		missing, err := repo.GetByID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})
}
