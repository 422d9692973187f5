package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/raj8888/Ecommerce-API/internal/apperrors"
	"github.com/raj8888/Ecommerce-API/internal/models"
)

type CategoryCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateCategory persists a new category. Names are unique.
func CreateCategory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /category/create"

		var req CategoryCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			respondError(c, route, apperrors.ErrCategoryNameRequired)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("categories").CountDocuments(ctx, bson.M{"name": name})
		if err != nil {
			respondError(c, route, err)
			return
		}
		if count > 0 {
			respondError(c, route, apperrors.ErrCategoryExists)
			return
		}

		category := models.Category{
			Name:        name,
			Description: strings.TrimSpace(req.Description),
			CreatedAt:   time.Now(),
		}

		result, err := db.Collection("categories").InsertOne(ctx, category)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				respondError(c, route, apperrors.ErrCategoryExists)
				return
			}
			respondError(c, route, err)
			return
		}

		category.ID = result.InsertedID.(primitive.ObjectID)

		log.Println("[CATEGORY] [INFO] category created:", name)
		c.JSON(http.StatusCreated, gin.H{
			"message":  "Category created successfully.",
			"category": category,
		})
	}
}

// GetAllCategories lists every category.
func GetAllCategories(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /category/all"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("categories").Find(ctx, bson.M{})
		if err != nil {
			respondError(c, route, err)
			return
		}
		defer cursor.Close(ctx)

		categories := []models.Category{}
		if err := cursor.All(ctx, &categories); err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

// GetSingleCategory fetches one category by id.
func GetSingleCategory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /category/:id"

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			// An unparseable id can never resolve to a category.
			respondError(c, route, apperrors.ErrCategoryNotFound)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var category models.Category
		if err := db.Collection("categories").FindOne(ctx, bson.M{"_id": id}).Decode(&category); err != nil {
			if err == mongo.ErrNoDocuments {
				respondError(c, route, apperrors.ErrCategoryNotFound)
				return
			}
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"category": category})
	}
}
