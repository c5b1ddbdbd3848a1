package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/haunan-see/bookmarks-api/internal/adapters/handler/http"
	"github.com/haunan-see/bookmarks-api/internal/adapters/hash"
	"github.com/haunan-see/bookmarks-api/internal/adapters/repository/postgres"
	"github.com/haunan-see/bookmarks-api/internal/adapters/token"
	"github.com/haunan-see/bookmarks-api/internal/core/services"
)

type config struct {
	addr        string
	databaseURL string
	jwtSecret   string
	tokenTTL    time.Duration
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.RunMigrations(ctx, db); err != nil {
		log.Fatal(err)
	}

	userRepo := postgres.NewUserRepository(db)
	bookmarkRepo := postgres.NewBookmarkRepository(db)

	hasher := hash.NewBcryptHasher()
	tokens := token.NewJWTIssuer([]byte(cfg.jwtSecret), cfg.tokenTTL)

	authSvc := services.NewAuthService(userRepo, hasher, tokens)
	userSvc := services.NewUserService(userRepo)
	bookmarkSvc := services.NewBookmarkService(bookmarkRepo)

	authHandler := http.NewAuthHandler(authSvc)
	userHandler := http.NewUserHandler(userSvc)
	bookmarkHandler := http.NewBookmarkHandler(bookmarkSvc)
	guard := http.RequireAuth(tokens, userRepo)

	handler := http.NewHandler(authHandler, userHandler, bookmarkHandler, guard)
	server := &stdhttp.Server{Addr: cfg.addr, Handler: handler}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func loadConfig() (*config, error) {
	cfg := &config{
		addr:     "0.0.0.0:8080",
		tokenTTL: 15 * time.Minute,
	}

	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.addr = addr
	}

	cfg.databaseURL = os.Getenv("DATABASE_URL")
	if cfg.databaseURL == "" {
		cfg.databaseURL = dbConnString()
	}

	cfg.jwtSecret = os.Getenv("JWT_SECRET")
	if cfg.jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	if ttl := os.Getenv("ACCESS_TOKEN_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %w", err)
		}
		cfg.tokenTTL = parsed
	}

	return cfg, nil
}

func dbConnString() string {
	dbName, user, password, host, port := dbConfig()
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}

func dbConfig() (dbName string, user string, password string, host string, port string) {
	dbName = os.Getenv("POSTGRES_DB")
	user = os.Getenv("POSTGRES_USER")
	password = os.Getenv("POSTGRES_PASSWORD")
	host = os.Getenv("POSTGRES_HOST")
	port = os.Getenv("POSTGRES_PORT")
	return
}
