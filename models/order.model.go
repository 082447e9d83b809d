package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order fulfilment statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusInProgress = "in_progress"
	OrderStatusReady      = "ready"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPartial  = "partial"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// ValidOrderStatus reports whether s is a known fulfilment status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusInProgress,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// OrderItem is a snapshot of one purchased line at order time.
type OrderItem struct {
	ProductID  string  `json:"productId,omitempty" bson:"productId,omitempty"`
	Title      string  `json:"title" bson:"title"`
	Slug       string  `json:"slug,omitempty" bson:"slug,omitempty"`
	Quantity   int     `json:"quantity" bson:"quantity"`
	UnitPrice  float64 `json:"unitPrice" bson:"unitPrice"`
	TotalPrice float64 `json:"totalPrice" bson:"totalPrice"`
}

// CustomerInfo holds the checkout contact details.
type CustomerInfo struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Company string `json:"company,omitempty" bson:"company,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	Notes   string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Order defines a customer order document.
type Order struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderNumber   string             `json:"orderNumber" bson:"orderNumber"`
	Items         []OrderItem        `json:"items" bson:"items"`
	Customer      CustomerInfo       `json:"customer" bson:"customer"`
	Status        string             `json:"status" bson:"status"`
	PaymentStatus string             `json:"paymentStatus" bson:"paymentStatus"`
	PaymentMethod string             `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	Subtotal      float64            `json:"subtotal" bson:"subtotal"`
	Discount      float64            `json:"discount" bson:"discount"`
	Tax           float64            `json:"tax" bson:"tax"`
	Shipping      float64            `json:"shipping" bson:"shipping"`
	Total         float64            `json:"total" bson:"total"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// OrderItemInput is one raw checkout line. Totals are never read from it;
// the server recomputes them from quantity and unit price.
type OrderItemInput struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unitPrice"`
}

// CustomerInput is the checkout contact payload.
type CustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Company string `json:"company"`
	Address string `json:"address"`
	City    string `json:"city"`
	Notes   string `json:"notes"`
}

// CheckoutRequest is the public order-creation payload.
type CheckoutRequest struct {
	Items         []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	Customer      CustomerInput    `json:"customer" binding:"required"`
	PaymentMethod string           `json:"paymentMethod"`
	Discount      float64          `json:"discount"`
	Tax           float64          `json:"tax"`
	Shipping      float64          `json:"shipping"`
	Notes         string           `json:"notes"`
}

// AdminOrderUpdate is the admin partial-update payload. Nil fields are left
// untouched; when Items is present the totals are recomputed.
type AdminOrderUpdate struct {
	Items         []OrderItemInput `json:"items"`
	Customer      *CustomerInput   `json:"customer"`
	Status        *string          `json:"status"`
	PaymentStatus *string          `json:"paymentStatus"`
	PaymentMethod *string          `json:"paymentMethod"`
	Discount      *float64         `json:"discount"`
	Tax           *float64         `json:"tax"`
	Shipping      *float64         `json:"shipping"`
	Notes         *string          `json:"notes"`
}
