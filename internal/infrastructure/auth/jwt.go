package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "checkmate/internal/shared/errors"
)

// Claims is the bearer token payload: the account identifier plus the
// registered issued-at and expiry claims.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies self-contained HS256 bearer tokens. Tokens
// are never stored server-side and stay valid for their full lifetime; there
// is no revocation list.
type JWTService struct {
	secret   []byte
	lifetime time.Duration
}

func NewJWTService(secret string, expiresHours int) *JWTService {
	return &JWTService{
		secret:   []byte(secret),
		lifetime: time.Duration(expiresHours) * time.Hour,
	}
}

// Issue signs a token for the given account.
func (s *JWTService) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the account identifier.
// Lapsed tokens fail with ErrTokenExpired; tampered or malformed tokens
// fail with ErrInvalidSignature.
func (s *JWTService) Verify(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, apperrors.ErrTokenExpired
		}
		return 0, apperrors.ErrInvalidSignature
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, apperrors.ErrInvalidSignature
	}

	return claims.UserID, nil
}

// Lifetime returns the configured token lifetime.
func (s *JWTService) Lifetime() time.Duration {
	return s.lifetime
}
