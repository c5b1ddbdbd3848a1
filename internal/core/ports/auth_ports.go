package ports

import (
	"context"

	"github.com/google/uuid"
)

// PasswordHasher produces and checks one-way password hashes. A mismatch on
// Compare is a normal false result, not an error.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) bool
}

// TokenIssuer signs and verifies the access tokens carried as bearer auth.
type TokenIssuer interface {
	Issue(userID uuid.UUID, email string) (string, error)
	Verify(token string) (uuid.UUID, error)
}

type AuthService interface {
	SignUp(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
}
