// File: controllers/order.controller.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"printhouse-backend/models"
	"printhouse-backend/utils"
)

func (ctrl *Controller) orderNumberExists(ctx context.Context, number string) (bool, error) {
	count, err := ctrl.DB.Collection("orders").CountDocuments(ctx, bson.M{"orderNumber": number})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// resolveCatalogPrices overwrites the unit price, title and slug of every
// line that references a catalog product carrying a price. Storefront
// clients cannot tamper with catalog prices this way; lines without a
// productId are custom quotes and keep the submitted price.
func (ctrl *Controller) resolveCatalogPrices(ctx context.Context, inputs []models.OrderItemInput) error {
	collection := ctrl.DB.Collection("products")
	for i, in := range inputs {
		if in.ProductID == "" {
			continue
		}
		objectID, err := primitive.ObjectIDFromHex(in.ProductID)
		if err != nil {
			return errors.New("invalid product ID in items")
		}
		var product models.Product
		err = collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return errors.New("unknown product in items")
			}
			return err
		}
		inputs[i].Title = product.Title
		inputs[i].Slug = product.Slug
		if product.Price != nil {
			inputs[i].UnitPrice = *product.Price
		}
	}
	return nil
}

// insertOrder assigns an order number, stamps timestamps and writes the
// document.
func (ctrl *Controller) insertOrder(ctx context.Context, order *models.Order) error {
	number, err := utils.GenerateOrderNumber(func(n string) (bool, error) {
		return ctrl.orderNumberExists(ctx, n)
	})
	if err != nil {
		return err
	}
	order.OrderNumber = number

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	result, err := ctrl.DB.Collection("orders").InsertOne(ctx, order)
	if err != nil {
		return err
	}
	order.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// CreateOrder handles the public checkout endpoint.
func (ctrl *Controller) CreateOrder(c *gin.Context) {
	if !ctrl.Limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": "Too many orders, please try again later"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if !utils.ValidPhone(req.Customer.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid phone number"})
		return
	}

	if err := ctrl.resolveCatalogPrices(ctx, req.Items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	items, err := utils.BuildOrderItems(req.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	order := models.Order{
		Items:         items,
		Customer:      models.CustomerInfo(req.Customer),
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if err := utils.ApplyTotals(&order, req.Discount, req.Tax, req.Shipping); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := ctrl.insertOrder(ctx, &order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

// GetOrders handles the admin order listing.
func (ctrl *Controller) GetOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if paymentStatus := c.Query("paymentStatus"); paymentStatus != "" {
		filter["paymentStatus"] = paymentStatus
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := ctrl.DB.Collection("orders").Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	orderList := []models.Order{}
	if err = cursor.All(ctx, &orderList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orderList})
}

// GetOrder handles fetching a single order by ID.
func (ctrl *Controller) GetOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order ID"})
		return
	}

	var order models.Order
	err = ctrl.DB.Collection("orders").FindOne(ctx, bson.M{"_id": objectID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// CreateOrderAdmin handles order creation from the admin panel. Unlike the
// public endpoint it is not rate limited and accepts custom unit prices,
// but the totals are still recomputed from the raw lines.
func (ctrl *Controller) CreateOrderAdmin(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	items, err := utils.BuildOrderItems(req.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	order := models.Order{
		Items:         items,
		Customer:      models.CustomerInfo(req.Customer),
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if err := utils.ApplyTotals(&order, req.Discount, req.Tax, req.Shipping); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := ctrl.insertOrder(ctx, &order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

// UpdateOrder handles admin partial updates. Whenever the item list or any
// price adjustment changes, the totals are recomputed from scratch.
func (ctrl *Controller) UpdateOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order ID"})
		return
	}

	var req models.AdminOrderUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if req.Status != nil && !models.ValidOrderStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order status"})
		return
	}
	if req.PaymentStatus != nil && !models.ValidPaymentStatus(*req.PaymentStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid payment status"})
		return
	}

	collection := ctrl.DB.Collection("orders")

	var order models.Order
	err = collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if req.Items != nil {
		items, err := utils.BuildOrderItems(req.Items)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		order.Items = items
	}
	if req.Customer != nil {
		order.Customer = models.CustomerInfo(*req.Customer)
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.PaymentStatus != nil {
		order.PaymentStatus = *req.PaymentStatus
	}
	if req.PaymentMethod != nil {
		order.PaymentMethod = *req.PaymentMethod
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	discount, tax, shipping := order.Discount, order.Tax, order.Shipping
	if req.Discount != nil {
		discount = *req.Discount
	}
	if req.Tax != nil {
		tax = *req.Tax
	}
	if req.Shipping != nil {
		shipping = *req.Shipping
	}
	if err := utils.ApplyTotals(&order, discount, tax, shipping); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	order.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"items":         order.Items,
		"customer":      order.Customer,
		"status":        order.Status,
		"paymentStatus": order.PaymentStatus,
		"paymentMethod": order.PaymentMethod,
		"subtotal":      order.Subtotal,
		"discount":      order.Discount,
		"tax":           order.Tax,
		"shipping":      order.Shipping,
		"total":         order.Total,
		"notes":         order.Notes,
		"updatedAt":     order.UpdatedAt,
	}}
	if _, err := collection.UpdateOne(ctx, bson.M{"_id": objectID}, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// DeleteOrder handles admin order deletion.
func (ctrl *Controller) DeleteOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order ID"})
		return
	}

	result, err := ctrl.DB.Collection("orders").DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted successfully"})
}
