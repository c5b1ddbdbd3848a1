package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/haunan-see/bookmarks-api/internal/core/domain"
	"github.com/haunan-see/bookmarks-api/internal/core/ports"
)

type bookmarkRepository struct {
	db *sql.DB
}

func NewBookmarkRepository(db *sql.DB) ports.BookmarkRepository {
	return &bookmarkRepository{
		db: db,
	}
}

func (r *bookmarkRepository) Save(ctx context.Context, bookmark *domain.Bookmark) error {
	query := `
		INSERT INTO bookmarks (id, user_id, title, description, link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		bookmark.ID, bookmark.UserID, bookmark.Title, bookmark.Description, bookmark.Link,
	).Scan(&bookmark.CreatedAt, &bookmark.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert bookmark: %w", err)
	}
	return nil
}

func (r *bookmarkRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bookmark, error) {
	query := `
		SELECT id, user_id, title, description, link, created_at, updated_at
		FROM bookmarks
		WHERE id = $1
	`
	bookmark := &domain.Bookmark{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&bookmark.ID, &bookmark.UserID, &bookmark.Title, &bookmark.Description,
		&bookmark.Link, &bookmark.CreatedAt, &bookmark.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}
	return bookmark, nil
}

func (r *bookmarkRepository) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Bookmark, error) {
	query := `
		SELECT id, user_id, title, description, link, created_at, updated_at
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []*domain.Bookmark
	for rows.Next() {
		bookmark := &domain.Bookmark{}
		if err := rows.Scan(
			&bookmark.ID, &bookmark.UserID, &bookmark.Title, &bookmark.Description,
			&bookmark.Link, &bookmark.CreatedAt, &bookmark.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, bookmark)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookmarks: %w", err)
	}
	return bookmarks, nil
}

func (r *bookmarkRepository) Update(ctx context.Context, bookmark *domain.Bookmark) error {
	query := `
		UPDATE bookmarks
		SET title = $1, description = $2, link = $3, updated_at = now()
		WHERE id = $4
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		bookmark.Title, bookmark.Description, bookmark.Link, bookmark.ID,
	).Scan(&bookmark.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookmarkNotFound
		}
		return fmt.Errorf("failed to update bookmark: %w", err)
	}
	return nil
}

func (r *bookmarkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrBookmarkNotFound
	}
	return nil
}
