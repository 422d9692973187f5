package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/raj8888/Ecommerce-API/internal/apperrors"
	"github.com/raj8888/Ecommerce-API/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a user account with the default "user" role. Email and
// mobile must both be unused.
func Register(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /user/register"

		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		mobile := strings.TrimSpace(req.Mobile)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("users").CountDocuments(ctx, bson.M{"email": email})
		if err != nil {
			respondError(c, route, err)
			return
		}
		if count > 0 {
			respondError(c, route, apperrors.ErrEmailTaken)
			return
		}

		count, err = db.Collection("users").CountDocuments(ctx, bson.M{"mobile": mobile})
		if err != nil {
			respondError(c, route, err)
			return
		}
		if count > 0 {
			respondError(c, route, apperrors.ErrMobileTaken)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondError(c, route, err)
			return
		}

		now := time.Now()
		user := models.User{
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			Mobile:       mobile,
			PasswordHash: string(hash),
			Role:         models.RoleUser,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		if _, err := db.Collection("users").InsertOne(ctx, user); err != nil {
			// A concurrent registration can win the race past the count
			// checks; the unique indexes report it as a duplicate key.
			if mongo.IsDuplicateKeyError(err) {
				if strings.Contains(err.Error(), "mobile_unique") {
					respondError(c, route, apperrors.ErrMobileTaken)
					return
				}
				respondError(c, route, apperrors.ErrEmailTaken)
				return
			}
			respondError(c, route, err)
			return
		}

		log.Println("[USER] [INFO] user registered:", email)
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully."})
	}
}

// Login verifies credentials and returns a signed access token.
func Login(db *mongo.Database, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /user/login"

		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var user models.User
		if err := db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
			if err == mongo.ErrNoDocuments {
				respondError(c, route, apperrors.ErrEmailNotFound)
				return
			}
			respondError(c, route, err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			respondError(c, route, apperrors.ErrInvalidPassword)
			return
		}

		token, err := issueUserToken(user.ID, user.Email, jwtSecret, accessTTL)
		if err != nil {
			respondError(c, route, err)
			return
		}

		log.Println("[USER] [INFO] login succeeded:", user.Email)
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful.",
			"token":   token,
		})
	}
}

func issueUserToken(userID primitive.ObjectID, email, secret string, accessTTL time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":    userID.Hex(),
		"email": email,
		"exp":   time.Now().Add(accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
