package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/haunan-see/bookmarks-api/internal/core/domain"
)

// UserRepository lookups return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// EditUserInput carries a partial profile update; nil fields are left as is.
type EditUserInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Edit(ctx context.Context, id uuid.UUID, input EditUserInput) (*domain.User, error)
}
