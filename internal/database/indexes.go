package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("users").Indexes()

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("email_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "mobile", Value: 1}},
			Options: options.Index().
				SetName("mobile_unique").
				SetUnique(true),
		},
	}

	log.Println("EnsureUserIndexes: creating email_unique and mobile_unique indexes")
	_, err := indexes.CreateMany(ctx, userIndexes)
	if err != nil {
		log.Println("EnsureUserIndexes: index error:", err)
		return err
	}
	return nil
}

func EnsureCategoryIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("categories").Indexes()

	nameIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
		Options: options.Index().
			SetName("name_unique").
			SetUnique(true),
	}

	log.Println("EnsureCategoryIndexes: creating name_unique index")
	_, err := indexes.CreateOne(ctx, nameIndex)
	if err != nil {
		log.Println("EnsureCategoryIndexes: name index error:", err)
		return err
	}
	return nil
}

// EnsureCartIndexes enforces the one-cart-per-user invariant at the store
// level; concurrent first-add races surface as duplicate key errors.
func EnsureCartIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("carts").Indexes()

	userIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().
			SetName("userId_unique").
			SetUnique(true),
	}

	log.Println("EnsureCartIndexes: creating userId_unique index")
	_, err := indexes.CreateOne(ctx, userIndex)
	if err != nil {
		log.Println("EnsureCartIndexes: userId index error:", err)
		return err
	}
	return nil
}

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	historyIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "orderDate", Value: -1},
		},
		Options: options.Index().SetName("userId_orderDate"),
	}

	log.Println("EnsureOrderIndexes: creating userId_orderDate index")
	_, err := indexes.CreateOne(ctx, historyIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: userId index error:", err)
		return err
	}
	return nil
}
