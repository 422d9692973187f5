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

type ProductCreateRequest struct {
	Title        string  `json:"title" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Description  string  `json:"description"`
	Availability *bool   `json:"availability"`
	Category     string  `json:"category" binding:"required"`
}

// CreateProduct persists a new product after validating that the referenced
// category exists. Availability defaults to true when omitted.
func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /product/create"

		var req ProductCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		categoryID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.Category))
		if err != nil {
			respondError(c, route, apperrors.ErrInvalidCategoryRef)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("categories").CountDocuments(ctx, bson.M{"_id": categoryID})
		if err != nil {
			respondError(c, route, err)
			return
		}
		if count == 0 {
			respondError(c, route, apperrors.ErrInvalidCategoryRef)
			return
		}

		availability := true
		if req.Availability != nil {
			availability = *req.Availability
		}

		product := models.Product{
			Title:        strings.TrimSpace(req.Title),
			Price:        req.Price,
			Description:  strings.TrimSpace(req.Description),
			Availability: availability,
			Category:     categoryID,
			CreatedAt:    time.Now(),
		}

		result, err := db.Collection("products").InsertOne(ctx, product)
		if err != nil {
			respondError(c, route, err)
			return
		}

		product.ID = result.InsertedID.(primitive.ObjectID)

		log.Println("[PRODUCT] [INFO] product created:", product.Title)
		c.JSON(http.StatusCreated, gin.H{
			"message": "Product created successfully.",
			"product": product,
		})
	}
}

// GetAllProducts lists every product.
func GetAllProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /product/all"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("products").Find(ctx, bson.M{})
		if err != nil {
			respondError(c, route, err)
			return
		}
		defer cursor.Close(ctx)

		products := []models.Product{}
		if err := cursor.All(ctx, &products); err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GetSingleProduct fetches one product by id.
func GetSingleProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /product/:id"

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, route, apperrors.ErrProductNotFound)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var product models.Product
		if err := db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
			if err == mongo.ErrNoDocuments {
				respondError(c, route, apperrors.ErrProductNotFound)
				return
			}
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}

// GetProductsByCategory lists products of one category. The category must
// exist before any filtering happens.
func GetProductsByCategory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /product/category/:categoryId"

		categoryID, err := primitive.ObjectIDFromHex(c.Param("categoryId"))
		if err != nil {
			respondError(c, route, apperrors.ErrInvalidCategoryRef)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("categories").CountDocuments(ctx, bson.M{"_id": categoryID})
		if err != nil {
			respondError(c, route, err)
			return
		}
		if count == 0 {
			respondError(c, route, apperrors.ErrInvalidCategoryRef)
			return
		}

		cursor, err := db.Collection("products").Find(ctx, bson.M{"category": categoryID})
		if err != nil {
			respondError(c, route, err)
			return
		}
		defer cursor.Close(ctx)

		products := []models.Product{}
		if err := cursor.All(ctx, &products); err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}
