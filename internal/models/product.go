package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Price        float64            `bson:"price" json:"price"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Availability bool               `bson:"availability" json:"availability"`
	Category     primitive.ObjectID `bson:"category" json:"category"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
