package utils

import (
	"errors"
	"fmt"

	"printhouse-backend/models"
)

// MaxItemQuantity bounds a single order line.
const MaxItemQuantity = 99

var (
	// ErrNoItems is returned for an order with an empty item list.
	ErrNoItems = errors.New("order must contain at least one item")
	// ErrNegativeAdjustment is returned when discount, tax or shipping is negative.
	ErrNegativeAdjustment = errors.New("discount, tax and shipping must not be negative")
)

// BuildOrderItems validates raw order lines and computes each line total.
// Client-submitted totals are ignored; unit price and quantity are the only
// trusted inputs (and for catalog products the unit price itself is resolved
// against the products collection before this is called).
func BuildOrderItems(inputs []models.OrderItemInput) ([]models.OrderItem, error) {
	if len(inputs) == 0 {
		return nil, ErrNoItems
	}
	items := make([]models.OrderItem, 0, len(inputs))
	for i, in := range inputs {
		if in.Quantity <= 0 || in.Quantity > MaxItemQuantity {
			return nil, fmt.Errorf("item %d: quantity must be between 1 and %d", i+1, MaxItemQuantity)
		}
		if in.UnitPrice <= 0 {
			return nil, fmt.Errorf("item %d: unit price must be greater than zero", i+1)
		}
		items = append(items, models.OrderItem{
			ProductID:  in.ProductID,
			Title:      in.Title,
			Slug:       in.Slug,
			Quantity:   in.Quantity,
			UnitPrice:  in.UnitPrice,
			TotalPrice: float64(in.Quantity) * in.UnitPrice,
		})
	}
	return items, nil
}

// ApplyTotals recomputes subtotal and total on the order from its items and
// adjustments. Absent adjustments default to zero.
func ApplyTotals(order *models.Order, discount, tax, shipping float64) error {
	if discount < 0 || tax < 0 || shipping < 0 {
		return ErrNegativeAdjustment
	}
	var subtotal float64
	for _, item := range order.Items {
		subtotal += item.TotalPrice
	}
	order.Subtotal = subtotal
	order.Discount = discount
	order.Tax = tax
	order.Shipping = shipping
	order.Total = subtotal - discount + tax + shipping
	return nil
}
