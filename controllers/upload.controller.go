// File: controllers/upload.controller.go
package controllers

import (
	"context"
	"log"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// UploadRequest carries a base64 data URI destined for Cloudinary.
type UploadRequest struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
	Folder      string `json:"folder"`
}

// UploadImage proxies an image upload to Cloudinary and returns the hosted
// URL. Requires an authenticated session.
func (ctrl *Controller) UploadImage(c *gin.Context) {
	if ctrl.Cld == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Image uploads are not configured"})
		return
	}

	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	folder := req.Folder
	if folder == "" {
		folder = "printhouse/products"
	}

	uploadResult, err := ctrl.Cld.Upload.Upload(
		context.Background(),
		req.ImageBase64,
		uploader.UploadParams{Folder: folder},
	)
	if err != nil {
		log.Println("Cloudinary upload error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"url":      uploadResult.SecureURL,
		"publicId": uploadResult.PublicID,
	})
}
