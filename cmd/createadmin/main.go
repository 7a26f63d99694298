// Command createadmin creates a user account from the command line.
//
//	createadmin -c config.env <username> <password>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	appjwt "github.com/sgrigorev/shop-api/internal/jwt"
	"github.com/sgrigorev/shop-api/internal/repositories"
	"github.com/sgrigorev/shop-api/internal/services"
	"github.com/sgrigorev/shop-api/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [-c config.env] <username> <password>\n", os.Args[0])
		os.Exit(2)
	}
	username := flag.Arg(0)
	password := flag.Arg(1)

	if err := run(context.Background(), *configPath, username, password); err != nil {
		log.Fatalf("createadmin failed: %v", err)
	}
}

func run(ctx context.Context, configPath, username, password string) error {
	_ = godotenv.Load(configPath)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return err
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		pgPort,
		getEnv("POSTGRES_DB", "shop"),
	)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		return err
	}

	jwtExpSecond, err := strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600"))
	if err != nil {
		return err
	}
	jwt := appjwt.New(getEnv("JWT_SECRET_KEY", "your_jwt_secret"), time.Duration(jwtExpSecond)*time.Second)

	authService := services.NewAuthService(
		repositories.NewUserReadRepository(db),
		repositories.NewUserWriteRepository(db),
		jwt,
	)

	user, err := authService.Register(ctx, username, password)
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			return fmt.Errorf("user %q already exists", username)
		}
		return err
	}

	fmt.Printf("created user %s (id %d)\n", user.Username, user.ID)
	return nil
}
