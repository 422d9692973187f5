package handlers

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/raj8888/Ecommerce-API/internal/models"
)

func TestAddCartItemAccumulatesQuantity(t *testing.T) {
	productA := primitive.NewObjectID()

	items := addCartItem(nil, productA, 2)
	items = addCartItem(items, productA, 3)

	if len(items) != 1 {
		t.Fatalf("expected one line item, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5 after repeated adds, got %d", items[0].Quantity)
	}
}

func TestAddCartItemAppendsNewProduct(t *testing.T) {
	productA := primitive.NewObjectID()
	productB := primitive.NewObjectID()

	items := addCartItem(nil, productA, 1)
	items = addCartItem(items, productB, 4)

	if len(items) != 2 {
		t.Fatalf("expected two line items, got %d", len(items))
	}
	if items[1].ProductID != productB || items[1].Quantity != 4 {
		t.Fatalf("unexpected second line: %+v", items[1])
	}
}

func TestSetCartItemQuantityOverwrites(t *testing.T) {
	productA := primitive.NewObjectID()
	items := []models.CartItem{{ProductID: productA, Quantity: 7}}

	items, found := setCartItemQuantity(items, productA, 2)
	if !found {
		t.Fatal("expected product line to be found")
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity overwritten to 2, got %d", items[0].Quantity)
	}
}

func TestSetCartItemQuantityMissingLine(t *testing.T) {
	productA := primitive.NewObjectID()
	productB := primitive.NewObjectID()
	items := []models.CartItem{{ProductID: productA, Quantity: 1}}

	_, found := setCartItemQuantity(items, productB, 2)
	if found {
		t.Fatal("expected missing product line not to be found")
	}
}

func TestRemoveCartItemNonMemberIsNoOp(t *testing.T) {
	productA := primitive.NewObjectID()
	productB := primitive.NewObjectID()
	items := []models.CartItem{
		{ProductID: productA, Quantity: 2},
	}

	kept := removeCartItem(items, productB)

	if len(kept) != 1 || kept[0].ProductID != productA || kept[0].Quantity != 2 {
		t.Fatalf("expected items unchanged, got %+v", kept)
	}
}

func TestRemoveCartItemZeroIDIsNoOp(t *testing.T) {
	// A malformed path id is mapped to the zero ObjectID before removal,
	// which can never match a line, so the cart stays unchanged.
	productA := primitive.NewObjectID()
	items := []models.CartItem{{ProductID: productA, Quantity: 2}}

	kept := removeCartItem(items, primitive.NilObjectID)

	if len(kept) != 1 || kept[0].ProductID != productA || kept[0].Quantity != 2 {
		t.Fatalf("expected items unchanged, got %+v", kept)
	}
}

func TestRemoveCartItemDropsLine(t *testing.T) {
	productA := primitive.NewObjectID()
	productB := primitive.NewObjectID()
	items := []models.CartItem{
		{ProductID: productA, Quantity: 2},
		{ProductID: productB, Quantity: 1},
	}

	kept := removeCartItem(items, productA)

	if len(kept) != 1 || kept[0].ProductID != productB {
		t.Fatalf("expected only second line to remain, got %+v", kept)
	}
}
