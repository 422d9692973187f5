package handlers

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/raj8888/Ecommerce-API/internal/models"
)

// addCartItem merges a product into the line items. An existing line has its
// quantity incremented (repeated adds accumulate); otherwise a new line is
// appended, keeping product references unique within the cart.
func addCartItem(items []models.CartItem, productID primitive.ObjectID, quantity int) []models.CartItem {
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			return items
		}
	}
	return append(items, models.CartItem{ProductID: productID, Quantity: quantity})
}

// setCartItemQuantity overwrites the quantity of an existing line to the
// given value. Unlike addCartItem it never creates a line; the second return
// reports whether the product had one.
func setCartItemQuantity(items []models.CartItem, productID primitive.ObjectID, quantity int) ([]models.CartItem, bool) {
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			return items, true
		}
	}
	return items, false
}

// removeCartItem filters out the product's line. Removing a product that has
// no line leaves the items unchanged.
func removeCartItem(items []models.CartItem, productID primitive.ObjectID) []models.CartItem {
	kept := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	return kept
}
