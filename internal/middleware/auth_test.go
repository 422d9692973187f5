package middleware

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/raj8888/Ecommerce-API/internal/apperrors"
)

func signTestToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing test token failed: %v", err)
	}
	return signed
}

func TestUserIDFromHeaderMissingToken(t *testing.T) {
	_, err := userIDFromHeader("", "secret")
	if !errors.Is(err, apperrors.ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing, got %v", err)
	}
}

func TestUserIDFromHeaderMalformedHeader(t *testing.T) {
	for _, header := range []string{"garbage", "Basic abc", "Bearer"} {
		if _, err := userIDFromHeader(header, "secret"); !errors.Is(err, apperrors.ErrTokenInvalid) {
			t.Fatalf("header %q: expected ErrTokenInvalid, got %v", header, err)
		}
	}
}

func TestUserIDFromHeaderWrongSecret(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{
		"id":  primitive.NewObjectID().Hex(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "secret")

	if _, err := userIDFromHeader("Bearer "+token, "other-secret"); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestUserIDFromHeaderExpiredToken(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{
		"id":  primitive.NewObjectID().Hex(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, "secret")

	if _, err := userIDFromHeader("Bearer "+token, "secret"); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestUserIDFromHeaderMissingIDClaim(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, "secret")

	if _, err := userIDFromHeader("Bearer "+token, "secret"); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestUserIDFromHeaderValidToken(t *testing.T) {
	userID := primitive.NewObjectID()
	token := signTestToken(t, jwt.MapClaims{
		"id":    userID.Hex(),
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, "secret")

	got, err := userIDFromHeader("Bearer "+token, "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != userID {
		t.Fatalf("expected user id %s, got %s", userID.Hex(), got.Hex())
	}
}
