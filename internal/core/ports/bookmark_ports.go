package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/haunan-see/bookmarks-api/internal/core/domain"
)

type BookmarkRepository interface {
	Save(ctx context.Context, bookmark *domain.Bookmark) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Bookmark, error)
	GetAllByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Bookmark, error)
	Update(ctx context.Context, bookmark *domain.Bookmark) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateBookmarkInput struct {
	Title       string
	Description string
	Link        string
}

// EditBookmarkInput carries a partial update; nil fields are left as is.
type EditBookmarkInput struct {
	Title       *string
	Description *string
	Link        *string
}

type BookmarkService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Bookmark, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Bookmark, error)
	Create(ctx context.Context, userID uuid.UUID, input CreateBookmarkInput) (*domain.Bookmark, error)
	Edit(ctx context.Context, userID, id uuid.UUID, input EditBookmarkInput) (*domain.Bookmark, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
