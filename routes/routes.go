package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"printhouse-backend/controllers"
	"printhouse-backend/middleware"
)

// Setup configures and returns the Gin engine.
func Setup(ctrl *controllers.Controller, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:8000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = true // cookie auth
	r.Use(cors.New(config))

	secret := ctrl.Cfg.AuthSecret

	api := r.Group("/api")
	{
		// Utility routes
		api.GET("/health", ctrl.HealthCheck)

		// Authentication routes
		api.POST("/auth/login", ctrl.Login)
		api.POST("/auth/logout", ctrl.Logout)
		api.GET("/auth/me", middleware.RequireAuth(secret), ctrl.Me)

		// Public catalog routes
		api.GET("/products", ctrl.GetProducts)
		api.GET("/products/by-slug/:slug", ctrl.GetProductBySlug)
		api.GET("/products/:id", ctrl.GetProduct)

		// Public checkout
		api.POST("/orders", ctrl.CreateOrder)

		// Admin routes
		admin := api.Group("/admin", middleware.RequireAuth(secret))
		{
			admin.GET("/stats", ctrl.GetStats)

			admin.POST("/products", ctrl.CreateProduct)
			admin.PUT("/products/reorder", ctrl.ReorderProducts)
			admin.PUT("/products/:id", ctrl.UpdateProduct)
			admin.DELETE("/products/:id", ctrl.DeleteProduct)

			admin.GET("/orders", ctrl.GetOrders)
			admin.POST("/orders", ctrl.CreateOrderAdmin)
			admin.GET("/orders/:id", ctrl.GetOrder)
			admin.PUT("/orders/:id", ctrl.UpdateOrder)
			admin.DELETE("/orders/:id", ctrl.DeleteOrder)
		}

		// Upload proxy
		api.POST("/upload", middleware.RequireAuth(secret), ctrl.UploadImage)
	}

	// Static admin panel, gated by the page guard.
	adminPages := r.Group("/admin", middleware.AdminPageGuard(secret, "/admin/login"))
	adminPages.Static("/", "./static/admin")

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Endpoint not found"})
	})
	return r
}
