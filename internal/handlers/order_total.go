package handlers

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/raj8888/Ecommerce-API/internal/models"
)

// pricedCartLine pairs a cart line's product with its unit price at order
// time.
type pricedCartLine struct {
	ProductID primitive.ObjectID
	UnitPrice float64
}

// computeOrderTotal sums unit price times requested quantity for every
// requested item whose product has a line in the cart. Requested items
// without a matching cart line contribute nothing to the total while still
// appearing on the persisted order.
func computeOrderTotal(lines []pricedCartLine, requested []models.OrderItem) float64 {
	total := 0.0
	for _, item := range requested {
		for _, line := range lines {
			if line.ProductID == item.ProductID {
				total += line.UnitPrice * float64(item.Quantity)
				break
			}
		}
	}
	return total
}
