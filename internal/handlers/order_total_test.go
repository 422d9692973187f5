package handlers

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/raj8888/Ecommerce-API/internal/models"
)

func TestComputeOrderTotalSkipsItemsNotInCart(t *testing.T) {
	productA := primitive.NewObjectID()
	productB := primitive.NewObjectID()

	lines := []pricedCartLine{
		{ProductID: productA, UnitPrice: 10},
	}
	requested := []models.OrderItem{
		{ProductID: productA, Quantity: 1},
		{ProductID: productB, Quantity: 5},
	}

	if got := computeOrderTotal(lines, requested); got != 10 {
		t.Fatalf("expected total 10, got %v", got)
	}
}

func TestComputeOrderTotalUsesRequestedQuantity(t *testing.T) {
	productA := primitive.NewObjectID()

	lines := []pricedCartLine{
		{ProductID: productA, UnitPrice: 10},
	}

	// Cart quantity does not matter; the caller-supplied quantity does.
	requested := []models.OrderItem{{ProductID: productA, Quantity: 3}}
	if got := computeOrderTotal(lines, requested); got != 30 {
		t.Fatalf("expected total 30, got %v", got)
	}
}

func TestComputeOrderTotalEmptyRequest(t *testing.T) {
	lines := []pricedCartLine{
		{ProductID: primitive.NewObjectID(), UnitPrice: 42},
	}

	if got := computeOrderTotal(lines, nil); got != 0 {
		t.Fatalf("expected total 0 for empty request, got %v", got)
	}
}
