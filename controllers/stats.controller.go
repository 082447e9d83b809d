// File: controllers/stats.controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"printhouse-backend/models"
)

// HealthCheck reports database connectivity.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := ctrl.DB.Client().Ping(ctx, nil)
	dbStatus := "connected"
	if err != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Unix(),
	})
}

// GetStats returns the admin dashboard counters: product and order counts
// plus total revenue over paid orders.
func (ctrl *Controller) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productsCollection := ctrl.DB.Collection("products")
	ordersCollection := ctrl.DB.Collection("orders")

	totalProducts, _ := productsCollection.CountDocuments(ctx, bson.M{})
	totalOrders, _ := ordersCollection.CountDocuments(ctx, bson.M{})
	pendingOrders, _ := ordersCollection.CountDocuments(ctx, bson.M{"status": models.OrderStatusPending})

	pipeline := []bson.M{
		{"$match": bson.M{"paymentStatus": models.PaymentStatusPaid}},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total"},
		}},
	}
	cursor, err := ordersCollection.Aggregate(ctx, pipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var result []bson.M
	var totalRevenue float64
	if err := cursor.All(ctx, &result); err == nil && len(result) > 0 {
		if val, ok := result[0]["total"].(float64); ok {
			totalRevenue = val
		}
	}

	stats := models.Stats{
		TotalProducts: totalProducts,
		TotalOrders:   totalOrders,
		PendingOrders: pendingOrders,
		TotalRevenue:  totalRevenue,
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
