package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/raj8888/Ecommerce-API/internal/apperrors"
	"github.com/raj8888/Ecommerce-API/internal/models"
)

type OrderItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type OrderCreateRequest struct {
	Products []OrderItemRequest `json:"products" binding:"required,dive"`
}

// CreateOrder snapshots the caller-supplied item list into an immutable
// order and deletes the cart. The order's item list is exactly the supplied
// list; only items whose product has a cart line count toward the total,
// the rest contribute zero. Two sequential writes, no transaction: a failure
// after the insert leaves the order placed and the cart stale.
func CreateOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /order/create"

		var req OrderCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		requested := make([]models.OrderItem, 0, len(req.Products))
		for _, item := range req.Products {
			productID, err := primitive.ObjectIDFromHex(item.ProductID)
			if err != nil {
				respondError(c, route, apperrors.ErrInvalidProductRef)
				return
			}
			requested = append(requested, models.OrderItem{
				ProductID: productID,
				Quantity:  item.Quantity,
			})
		}

		userID := currentUserID(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var cart models.Cart
		if err := db.Collection("carts").FindOne(ctx, bson.M{"userId": userID}).Decode(&cart); err != nil {
			if err == mongo.ErrNoDocuments {
				respondError(c, route, apperrors.ErrEmptyCart)
				return
			}
			respondError(c, route, err)
			return
		}
		if len(cart.Products) == 0 {
			respondError(c, route, apperrors.ErrEmptyCart)
			return
		}

		lines, err := priceCartLines(ctx, db, cart.Products)
		if err != nil {
			respondError(c, route, err)
			return
		}

		order := models.Order{
			UserID:     userID,
			Products:   requested,
			TotalPrice: computeOrderTotal(lines, requested),
			OrderDate:  time.Now(),
		}

		res, err := db.Collection("orders").InsertOne(ctx, order)
		if err != nil {
			respondError(c, route, err)
			return
		}
		order.ID = res.InsertedID.(primitive.ObjectID)

		if _, err := db.Collection("carts").DeleteOne(ctx, bson.M{"userId": userID}); err != nil {
			// The order is already placed; the caller sees a failure while
			// the stale cart stays behind.
			respondError(c, route, err)
			return
		}

		log.Println("[ORDER] [INFO] order placed for user:", userID.Hex())
		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully.",
			"order":   order,
		})
	}
}

// GetOrderHistory lists the caller's orders, newest first.
func GetOrderHistory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /order/history"

		userID := currentUserID(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})
		cursor, err := db.Collection("orders").Find(ctx, bson.M{"userId": userID}, opts)
		if err != nil {
			respondError(c, route, err)
			return
		}
		defer cursor.Close(ctx)

		orders := []models.Order{}
		if err := cursor.All(ctx, &orders); err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"orderHistory": orders})
	}
}

// GetOrderDetails fetches one order by id with product display fields
// resolved. Any authenticated caller with a valid id can read any order.
func GetOrderDetails(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /order/details/:id"

		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, route, apperrors.ErrOrderNotFound)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		if err := db.Collection("orders").FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
			if err == mongo.ErrNoDocuments {
				respondError(c, route, apperrors.ErrOrderNotFound)
				return
			}
			respondError(c, route, err)
			return
		}

		view, err := buildOrderView(ctx, db, order)
		if err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"order": view})
	}
}

// priceCartLines resolves the unit price of every cart line's product.
// Lines whose product no longer exists are dropped, so requested items
// pointing at them fall into the contribute-zero path.
func priceCartLines(ctx context.Context, db *mongo.Database, items []models.CartItem) ([]pricedCartLine, error) {
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	summaries, err := resolveProductSummaries(ctx, db, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]pricedCartLine, 0, len(items))
	for _, item := range items {
		if summary, ok := summaries[item.ProductID]; ok {
			lines = append(lines, pricedCartLine{
				ProductID: item.ProductID,
				UnitPrice: summary.Price,
			})
		}
	}
	return lines, nil
}
