// File: controllers/product.controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"printhouse-backend/models"
	"printhouse-backend/utils"
)

// slugExists checks whether another product already uses slug. excludeID is
// the document being updated, zero for creates.
func (ctrl *Controller) slugExists(ctx context.Context, slug string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := ctrl.DB.Collection("products").CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// resolveImages uploads any base64 entries to Cloudinary and returns the
// final ordered gallery.
func (ctrl *Controller) resolveImages(inputs []models.ProductImageInput) ([]models.ProductImage, error) {
	images := make([]models.ProductImage, 0, len(inputs))
	for _, in := range inputs {
		if in.ImageBase64 != "" && ctrl.Cld != nil {
			uploadResult, err := ctrl.Cld.Upload.Upload(
				context.Background(),
				in.ImageBase64,
				uploader.UploadParams{Folder: "printhouse/products"},
			)
			if err != nil {
				log.Println("Cloudinary upload error:", err)
				return nil, err
			}
			images = append(images, models.ProductImage{
				URL:      uploadResult.SecureURL,
				Alt:      in.Alt,
				PublicID: uploadResult.PublicID,
			})
			continue
		}
		if in.URL == "" {
			continue
		}
		images = append(images, models.ProductImage{URL: in.URL, Alt: in.Alt, PublicID: in.PublicID})
	}
	return images, nil
}

// GetProducts handles the public catalog listing.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}
	if subcategory := c.Query("subcategory"); subcategory != "" {
		filter["subcategory"] = subcategory
	}
	if c.Query("featured") == "true" {
		filter["featured"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}})
	collection := ctrl.DB.Collection("products")
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	productList := []models.Product{}
	if err = cursor.All(ctx, &productList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.Header("Cache-Control", "public, max-age=60")
	c.JSON(http.StatusOK, gin.H{"success": true, "products": productList})
}

// GetProduct handles fetching a single product by ID.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID"})
		return
	}

	var product models.Product
	collection := ctrl.DB.Collection("products")
	err = collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// GetProductBySlug handles fetching a single product by its slug.
func (ctrl *Controller) GetProductBySlug(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	collection := ctrl.DB.Collection("products")
	err := collection.FindOne(ctx, bson.M{"slug": c.Param("slug")}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.Header("Cache-Control", "public, max-age=60")
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// CreateProduct handles admin product creation.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	base := input.Slug
	if base == "" {
		base = input.Title
	}
	slug, err := utils.UniqueSlug(utils.Slugify(base), func(s string) (bool, error) {
		return ctrl.slugExists(ctx, s, primitive.NilObjectID)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	images, err := ctrl.resolveImages(input.Images)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to upload image"})
		return
	}

	collection := ctrl.DB.Collection("products")

	// New products go to the end of the display order.
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = "BDT"
	}

	now := time.Now()
	product := models.Product{
		Title:           input.Title,
		Description:     input.Description,
		LongDescription: input.LongDescription,
		Category:        input.Category,
		Subcategory:     input.Subcategory,
		Slug:            slug,
		Images:          images,
		Featured:        input.Featured,
		Price:           input.Price,
		Currency:        currency,
		Order:           int(count) + 1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	result, err := collection.InsertOne(ctx, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	product.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
}

// UpdateProduct handles admin product updates.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID"})
		return
	}

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	base := input.Slug
	if base == "" {
		base = input.Title
	}
	slug, err := utils.UniqueSlug(utils.Slugify(base), func(s string) (bool, error) {
		return ctrl.slugExists(ctx, s, objectID)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	images, err := ctrl.resolveImages(input.Images)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to upload image"})
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = "BDT"
	}

	update := bson.M{"$set": bson.M{
		"title":           input.Title,
		"description":     input.Description,
		"longDescription": input.LongDescription,
		"category":        input.Category,
		"subcategory":     input.Subcategory,
		"slug":            slug,
		"images":          images,
		"featured":        input.Featured,
		"price":           input.Price,
		"currency":        currency,
		"updatedAt":       time.Now(),
	}}

	collection := ctrl.DB.Collection("products")
	result, err := collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated successfully"})
}

// DeleteProduct handles admin product deletion, including the Cloudinary
// assets backing its gallery.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID"})
		return
	}

	collection := ctrl.DB.Collection("products")

	var product models.Product
	if err := collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if _, err := collection.DeleteOne(ctx, bson.M{"_id": objectID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	// Best effort: the product document is already gone.
	if ctrl.Cld != nil {
		for _, image := range product.Images {
			if image.PublicID == "" {
				continue
			}
			_, err := ctrl.Cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: image.PublicID})
			if err != nil {
				log.Println("Cloudinary destroy error:", err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}

// ReorderProducts persists the display order after a drag-and-drop reorder.
// The client sends the full list with 1-based sequential positions.
func (ctrl *Controller) ReorderProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	writes := make([]mongo.WriteModel, 0, len(req.Items))
	now := time.Now()
	for _, item := range req.Items {
		objectID, err := primitive.ObjectIDFromHex(item.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID: " + item.ID})
			return
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": objectID}).
			SetUpdate(bson.M{"$set": bson.M{"order": item.Order, "updatedAt": now}}))
	}

	collection := ctrl.DB.Collection("products")
	result, err := collection.BulkWrite(ctx, writes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "updated": result.ModifiedCount})
}
