package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/raj8888/Ecommerce-API/internal/apperrors"
	"github.com/raj8888/Ecommerce-API/internal/middleware"
	"github.com/raj8888/Ecommerce-API/internal/models"
)

// cartWriteAttempts bounds the optimistic read-modify-write cycle. A version
// mismatch means a concurrent writer won; the whole cycle is retried.
const cartWriteAttempts = 3

var errCartWriteConflict = errors.New("cart write conflict not resolved")

type CartAddRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type CartUpdateRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// AddToCart puts a product into the caller's cart, creating the cart on
// first use. Adding a product already in the cart increments its quantity.
func AddToCart(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/add"

		var req CartAddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		productID, err := primitive.ObjectIDFromHex(req.ProductID)
		if err != nil {
			respondError(c, route, apperrors.ErrInvalidProductRef)
			return
		}

		userID := currentUserID(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := ensureProductExists(ctx, db, productID); err != nil {
			respondError(c, route, err)
			return
		}

		for attempt := 0; attempt < cartWriteAttempts; attempt++ {
			var cart models.Cart
			err := db.Collection("carts").FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
			if err == mongo.ErrNoDocuments {
				cart = models.Cart{
					UserID:    userID,
					Version:   1,
					Products:  []models.CartItem{{ProductID: productID, Quantity: req.Quantity}},
					UpdatedAt: time.Now(),
				}
				res, err := db.Collection("carts").InsertOne(ctx, cart)
				if err != nil {
					// A concurrent first add created the cart; reread and
					// merge into it instead.
					if mongo.IsDuplicateKeyError(err) {
						continue
					}
					respondError(c, route, err)
					return
				}
				cart.ID = res.InsertedID.(primitive.ObjectID)
				log.Println("[CART] [INFO] cart created for user:", userID.Hex())
				c.JSON(http.StatusCreated, gin.H{
					"message": "Product added to cart successfully.",
					"cart":    cart,
				})
				return
			}
			if err != nil {
				respondError(c, route, err)
				return
			}

			items := addCartItem(cart.Products, productID, req.Quantity)
			saved, err := saveCartItems(ctx, db, cart, items)
			if err != nil {
				respondError(c, route, err)
				return
			}
			if saved {
				cart.Products = items
				cart.Version++
				c.JSON(http.StatusCreated, gin.H{
					"message": "Product added to cart successfully.",
					"cart":    cart,
				})
				return
			}
			log.Println("[CART] [WARN] add lost version race, retrying")
		}

		respondError(c, route, errCartWriteConflict)
	}
}

// ViewCart returns the caller's cart with each line's product resolved to
// its display fields.
func ViewCart(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cart/view"

		userID := currentUserID(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var cart models.Cart
		if err := db.Collection("carts").FindOne(ctx, bson.M{"userId": userID}).Decode(&cart); err != nil {
			if err == mongo.ErrNoDocuments {
				respondError(c, route, apperrors.ErrCartNotFound)
				return
			}
			respondError(c, route, err)
			return
		}

		view, err := buildCartView(ctx, db, cart)
		if err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": view})
	}
}

// UpdateCartItem overwrites the quantity of an existing cart line to the
// given value. It never adds a line; that is AddToCart's job.
func UpdateCartItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cart/update"

		var req CartUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		productID, err := primitive.ObjectIDFromHex(req.ProductID)
		if err != nil {
			respondError(c, route, apperrors.ErrInvalidProductRef)
			return
		}

		userID := currentUserID(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := ensureProductExists(ctx, db, productID); err != nil {
			respondError(c, route, err)
			return
		}

		for attempt := 0; attempt < cartWriteAttempts; attempt++ {
			var cart models.Cart
			err := db.Collection("carts").FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
			if err == mongo.ErrNoDocuments {
				respondError(c, route, apperrors.ErrCartNotFound)
				return
			}
			if err != nil {
				respondError(c, route, err)
				return
			}

			items, found := setCartItemQuantity(cart.Products, productID, req.Quantity)
			if !found {
				respondError(c, route, apperrors.ErrProductNotInCart)
				return
			}

			saved, err := saveCartItems(ctx, db, cart, items)
			if err != nil {
				respondError(c, route, err)
				return
			}
			if saved {
				cart.Products = items
				cart.Version++
				c.JSON(http.StatusOK, gin.H{
					"message": "Product quantity updated in the cart successfully.",
					"cart":    cart,
				})
				return
			}
			log.Println("[CART] [WARN] update lost version race, retrying")
		}

		respondError(c, route, errCartWriteConflict)
	}
}

// RemoveItemFromCart drops a product's line from the cart. Removing a
// product that is not in the cart succeeds without changing anything.
func RemoveItemFromCart(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart/remove/:productId"

		productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
		if err != nil {
			// A malformed id can never match a cart line, so removal
			// proceeds as a no-op like removing any non-member product.
			productID = primitive.NilObjectID
		}

		userID := currentUserID(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		for attempt := 0; attempt < cartWriteAttempts; attempt++ {
			var cart models.Cart
			err := db.Collection("carts").FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
			if err == mongo.ErrNoDocuments {
				respondError(c, route, apperrors.ErrCartNotFound)
				return
			}
			if err != nil {
				respondError(c, route, err)
				return
			}

			items := removeCartItem(cart.Products, productID)
			saved, err := saveCartItems(ctx, db, cart, items)
			if err != nil {
				respondError(c, route, err)
				return
			}
			if saved {
				cart.Products = items
				cart.Version++
				c.JSON(http.StatusOK, gin.H{
					"message": "Product removed from the cart successfully.",
					"cart":    cart,
				})
				return
			}
			log.Println("[CART] [WARN] remove lost version race, retrying")
		}

		respondError(c, route, errCartWriteConflict)
	}
}

// saveCartItems writes the new line items only if the cart version is still
// the one that was read. A false return means a concurrent writer bumped the
// version first.
func saveCartItems(ctx context.Context, db *mongo.Database, cart models.Cart, items []models.CartItem) (bool, error) {
	res, err := db.Collection("carts").UpdateOne(ctx,
		bson.M{"_id": cart.ID, "version": cart.Version},
		bson.M{
			"$set": bson.M{"products": items, "updatedAt": time.Now()},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func ensureProductExists(ctx context.Context, db *mongo.Database, productID primitive.ObjectID) error {
	count, err := db.Collection("products").CountDocuments(ctx, bson.M{"_id": productID})
	if err != nil {
		return err
	}
	if count == 0 {
		return apperrors.ErrInvalidProductRef
	}
	return nil
}

func currentUserID(c *gin.Context) primitive.ObjectID {
	value, _ := c.Get(middleware.ContextUserID)
	userID, _ := value.(primitive.ObjectID)
	return userID
}
