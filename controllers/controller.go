// File: controllers/controller.go
package controllers

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"printhouse-backend/config"
	"printhouse-backend/utils"
)

// Controller holds the dependencies shared by all handlers.
type Controller struct {
	DB      *mongo.Database
	Cld     *cloudinary.Cloudinary
	Cfg     *config.AppConfig
	Limiter *utils.RateLimiter
}
