package middleware

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/raj8888/Ecommerce-API/internal/apperrors"
	"github.com/raj8888/Ecommerce-API/internal/models"
)

// Context keys set by Auth and consumed by downstream handlers and guards.
// Identity travels through the request context only, never through the body.
const (
	ContextUserID    = "userId"
	ContextUserRole  = "userRole"
	ContextUserEmail = "userEmail"
)

// Auth validates the bearer token, resolves the user it references and
// attaches identity and role to the request context.
func Auth(db *mongo.Database, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := userIDFromHeader(c.GetHeader("Authorization"), secret)
		if err != nil {
			log.Println("[AUTH] [ERROR] token validation failed:", err)
			abortWithError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var user models.User
		if err := db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
			if err == mongo.ErrNoDocuments {
				log.Println("[AUTH] [ERROR] token user no longer exists:", userID.Hex())
				abortWithError(c, apperrors.ErrUserNotFound)
				return
			}
			log.Println("[AUTH] [ERROR] user lookup failed:", err)
			abortWithError(c, err)
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)
		c.Set(ContextUserEmail, user.Email)
		c.Next()
	}
}

// userIDFromHeader extracts and verifies the bearer token, returning the
// user id claim. Kept free of gin and database state so it tests directly.
func userIDFromHeader(header, secret string) (primitive.ObjectID, error) {
	raw := strings.TrimSpace(header)
	if raw == "" {
		return primitive.NilObjectID, apperrors.ErrTokenMissing
	}

	parts := strings.Split(raw, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return primitive.NilObjectID, apperrors.ErrTokenInvalid
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return primitive.NilObjectID, apperrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return primitive.NilObjectID, apperrors.ErrTokenInvalid
	}

	idValue, ok := claims["id"].(string)
	if !ok || strings.TrimSpace(idValue) == "" {
		return primitive.NilObjectID, apperrors.ErrTokenInvalid
	}

	userID, err := primitive.ObjectIDFromHex(idValue)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrTokenInvalid
	}

	return userID, nil
}

func abortWithError(c *gin.Context, err error) {
	httpErr := apperrors.MapError(err)
	c.AbortWithStatusJSON(httpErr.StatusCode, httpErr.ToResponse())
}
