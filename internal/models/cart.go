package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a single product line inside a cart. Product references are
// unique within one cart; adding an existing product increments its quantity.
type CartItem struct {
	ProductID primitive.ObjectID `bson:"product" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Cart is the single active cart of a user. Version backs the optimistic
// concurrency check on every read-modify-write cycle.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Version   int64              `bson:"version" json:"-"`
	Products  []CartItem         `bson:"products" json:"products"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
