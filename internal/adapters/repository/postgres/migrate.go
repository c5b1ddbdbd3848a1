package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/haunan-see/bookmarks-api/internal/adapters/repository/postgres/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded schema migrations with goose.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
