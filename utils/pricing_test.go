package utils

import (
	"testing"

	"printhouse-backend/models"
)

func TestBuildOrderItems(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []models.OrderItemInput
		wantErr bool
	}{
		{name: "empty", inputs: nil, wantErr: true},
		{name: "zero quantity", inputs: []models.OrderItemInput{{Quantity: 0, UnitPrice: 10}}, wantErr: true},
		{name: "negative quantity", inputs: []models.OrderItemInput{{Quantity: -1, UnitPrice: 10}}, wantErr: true},
		{name: "quantity over limit", inputs: []models.OrderItemInput{{Quantity: 100, UnitPrice: 10}}, wantErr: true},
		{name: "zero price", inputs: []models.OrderItemInput{{Quantity: 1, UnitPrice: 0}}, wantErr: true},
		{name: "valid", inputs: []models.OrderItemInput{{Quantity: 99, UnitPrice: 0.5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildOrderItems(tt.inputs)
			if (err != nil) != tt.wantErr {
				t.Errorf("BuildOrderItems() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildOrderItemsIgnoresClientTotals(t *testing.T) {
	items, err := BuildOrderItems([]models.OrderItemInput{
		{Title: "Business Cards", Quantity: 3, UnitPrice: 250},
	})
	if err != nil {
		t.Fatal(err)
	}
	if items[0].TotalPrice != 750 {
		t.Errorf("TotalPrice = %v, want 750", items[0].TotalPrice)
	}
}

func TestApplyTotals(t *testing.T) {
	order := models.Order{Items: []models.OrderItem{
		{Quantity: 2, UnitPrice: 150, TotalPrice: 300},
		{Quantity: 1, UnitPrice: 500, TotalPrice: 500},
	}}
	if err := ApplyTotals(&order, 100, 50, 60); err != nil {
		t.Fatal(err)
	}
	if order.Subtotal != 800 {
		t.Errorf("Subtotal = %v, want 800", order.Subtotal)
	}
	if order.Total != 810 { // 800 - 100 + 50 + 60
		t.Errorf("Total = %v, want 810", order.Total)
	}
}

// Checkout of [{qty:2, unitPrice:150}] with zero adjustments must come out
// as subtotal 300, total 300.
func TestApplyTotalsZeroAdjustments(t *testing.T) {
	items, err := BuildOrderItems([]models.OrderItemInput{{Quantity: 2, UnitPrice: 150}})
	if err != nil {
		t.Fatal(err)
	}
	order := models.Order{Items: items}
	if err := ApplyTotals(&order, 0, 0, 0); err != nil {
		t.Fatal(err)
	}
	if order.Subtotal != 300 || order.Total != 300 {
		t.Errorf("subtotal/total = %v/%v, want 300/300", order.Subtotal, order.Total)
	}
}

func TestApplyTotalsNegativeAdjustment(t *testing.T) {
	order := models.Order{Items: []models.OrderItem{{Quantity: 1, UnitPrice: 10, TotalPrice: 10}}}
	if err := ApplyTotals(&order, -1, 0, 0); err != ErrNegativeAdjustment {
		t.Errorf("ApplyTotals() error = %v, want ErrNegativeAdjustment", err)
	}
}
