package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "checkmate/internal/shared/errors"
)

func TestJWTService_Roundtrip(t *testing.T) {
	svc := NewJWTService("test-secret", 168)

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestJWTService_Lifetime(t *testing.T) {
	svc := NewJWTService("test-secret", 168)

	assert.Equal(t, 168*time.Hour, svc.Lifetime())
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", 168)

	// Sign an already-lapsed token with the same secret.
	claims := &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(expired)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-one", 168)
	verifier := NewJWTService("secret-two", 168)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSignature)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := NewJWTService("test-secret", 168)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidSignature)
	}
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	svc := NewJWTService("test-secret", 168)

	claims := &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSignature)
}
