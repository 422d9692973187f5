package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a purchased product reference copied from the request at
// order time. It never points back into a live cart.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Order is an immutable snapshot of a purchase. TotalPrice is computed once
// at creation and never recalculated.
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	Products   []OrderItem        `bson:"products" json:"products"`
	TotalPrice float64            `bson:"totalPrice" json:"totalPrice"`
	OrderDate  time.Time          `bson:"orderDate" json:"orderDate"`
}
