package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/haunan-see/bookmarks-api/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer := NewJWTIssuer([]byte("super-secret"), time.Hour)
	userID := uuid.New()

	tokenString, err := issuer.Issue(userID, "test@test.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	got, err := issuer.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewJWTIssuer([]byte("secret"), -1*time.Second)

	tokenString, err := issuer.Issue(uuid.New(), "test@test.com")
	require.NoError(t, err)

	_, err = issuer.Verify(tokenString)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tokenString, err := NewJWTIssuer([]byte("right-secret"), time.Hour).Issue(uuid.New(), "test@test.com")
	require.NoError(t, err)

	_, err = NewJWTIssuer([]byte("wrong-secret"), time.Hour).Verify(tokenString)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewJWTIssuer([]byte("k"), time.Hour).Verify("not.a.jwt")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerify_NonUUIDSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := raw.SignedString(secret)
	require.NoError(t, err)

	_, err = NewJWTIssuer(secret, time.Hour).Verify(tokenString)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
