package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product categories shown on the storefront.
const (
	CategoryService = "service"
	CategoryProduct = "product"
)

// ProductImage is one entry in a product's ordered image gallery.
type ProductImage struct {
	URL      string `json:"url" bson:"url"`
	Alt      string `json:"alt" bson:"alt"`
	PublicID string `json:"publicId,omitempty" bson:"publicId,omitempty"`
}

// Product defines a storefront product or printing service.
type Product struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description" bson:"description"`
	LongDescription string             `json:"longDescription,omitempty" bson:"longDescription,omitempty"`
	Category        string             `json:"category" bson:"category"`
	Subcategory     string             `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Slug            string             `json:"slug" bson:"slug"`
	Images          []ProductImage     `json:"images" bson:"images"`
	Featured        bool               `json:"featured" bson:"featured"`
	Price           *float64           `json:"price,omitempty" bson:"price,omitempty"`
	Currency        string             `json:"currency" bson:"currency"`
	Order           int                `json:"order" bson:"order"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductImageInput carries either an existing gallery entry or a new
// base64-encoded image to be uploaded before the product is saved.
type ProductImageInput struct {
	URL         string `json:"url,omitempty"`
	Alt         string `json:"alt,omitempty"`
	PublicID    string `json:"publicId,omitempty"`
	ImageBase64 string `json:"imageBase64,omitempty"`
}

// ProductInput is the admin create/update payload.
type ProductInput struct {
	Title           string              `json:"title" binding:"required"`
	Description     string              `json:"description"`
	LongDescription string              `json:"longDescription"`
	Category        string              `json:"category" binding:"required,oneof=service product"`
	Subcategory     string              `json:"subcategory"`
	Slug            string              `json:"slug"`
	Images          []ProductImageInput `json:"images"`
	Featured        bool                `json:"featured"`
	Price           *float64            `json:"price"`
	Currency        string              `json:"currency"`
}

// ReorderItem pairs a product id with its new display position.
type ReorderItem struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order" binding:"required,min=1"`
}

// ReorderRequest is the bulk payload persisted after a drag-and-drop reorder.
type ReorderRequest struct {
	Items []ReorderItem `json:"items" binding:"required,min=1,dive"`
}

// Stats defines the admin dashboard counters.
type Stats struct {
	TotalProducts int64   `json:"totalProducts"`
	TotalOrders   int64   `json:"totalOrders"`
	PendingOrders int64   `json:"pendingOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}
