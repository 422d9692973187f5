package handlers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/raj8888/Ecommerce-API/internal/models"
)

// ProductSummary carries the display fields resolved for cart and order
// lines. Lines whose product was deleted keep only the id.
type ProductSummary struct {
	ID    primitive.ObjectID `json:"id"`
	Title string             `json:"title,omitempty"`
	Price float64            `json:"price,omitempty"`
}

type CartItemView struct {
	Product  ProductSummary `json:"product"`
	Quantity int            `json:"quantity"`
}

type CartView struct {
	ID       primitive.ObjectID `json:"id"`
	UserID   primitive.ObjectID `json:"userId"`
	Products []CartItemView     `json:"products"`
}

type OrderItemView struct {
	Product  ProductSummary `json:"product"`
	Quantity int            `json:"quantity"`
}

type OrderView struct {
	ID         primitive.ObjectID `json:"id"`
	UserID     primitive.ObjectID `json:"userId"`
	Products   []OrderItemView    `json:"products"`
	TotalPrice float64            `json:"totalPrice"`
	OrderDate  time.Time          `json:"orderDate"`
}

func buildCartView(ctx context.Context, db *mongo.Database, cart models.Cart) (CartView, error) {
	ids := make([]primitive.ObjectID, 0, len(cart.Products))
	for _, item := range cart.Products {
		ids = append(ids, item.ProductID)
	}

	summaries, err := resolveProductSummaries(ctx, db, ids)
	if err != nil {
		return CartView{}, err
	}

	view := CartView{
		ID:       cart.ID,
		UserID:   cart.UserID,
		Products: make([]CartItemView, 0, len(cart.Products)),
	}
	for _, item := range cart.Products {
		summary, ok := summaries[item.ProductID]
		if !ok {
			summary = ProductSummary{ID: item.ProductID}
		}
		view.Products = append(view.Products, CartItemView{
			Product:  summary,
			Quantity: item.Quantity,
		})
	}
	return view, nil
}

func buildOrderView(ctx context.Context, db *mongo.Database, order models.Order) (OrderView, error) {
	ids := make([]primitive.ObjectID, 0, len(order.Products))
	for _, item := range order.Products {
		ids = append(ids, item.ProductID)
	}

	summaries, err := resolveProductSummaries(ctx, db, ids)
	if err != nil {
		return OrderView{}, err
	}

	view := OrderView{
		ID:         order.ID,
		UserID:     order.UserID,
		Products:   make([]OrderItemView, 0, len(order.Products)),
		TotalPrice: order.TotalPrice,
		OrderDate:  order.OrderDate,
	}
	for _, item := range order.Products {
		summary, ok := summaries[item.ProductID]
		if !ok {
			summary = ProductSummary{ID: item.ProductID}
		}
		view.Products = append(view.Products, OrderItemView{
			Product:  summary,
			Quantity: item.Quantity,
		})
	}
	return view, nil
}

func resolveProductSummaries(ctx context.Context, db *mongo.Database, ids []primitive.ObjectID) (map[primitive.ObjectID]ProductSummary, error) {
	summaries := make(map[primitive.ObjectID]ProductSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	cursor, err := db.Collection("products").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	for _, product := range products {
		summaries[product.ID] = ProductSummary{
			ID:    product.ID,
			Title: product.Title,
			Price: product.Price,
		}
	}
	return summaries, nil
}
