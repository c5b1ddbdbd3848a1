package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/haunan-see/bookmarks-api/internal/core/domain"
	"github.com/haunan-see/bookmarks-api/internal/core/ports"
)

type contextKey string

const userContextKey contextKey = "currentUser"

// RequireAuth verifies the bearer token and resolves its subject to a live
// user record on every request, so deleted accounts lose access immediately.
// The resolved user is attached to the request context.
func RequireAuth(tokens ports.TokenIssuer, users ports.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || tokenString == "" {
				http.Error(w, "missing or malformed authorization header", http.StatusUnauthorized)
				return
			}

			userID, err := tokens.Verify(tokenString)
			if err != nil {
				http.Error(w, domain.ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				http.Error(w, domain.ErrInternal.Error(), http.StatusInternalServerError)
				return
			}
			if user == nil {
				http.Error(w, domain.ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}
