package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark belongs to exactly one user. UserID is immutable after creation.
type Bookmark struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
