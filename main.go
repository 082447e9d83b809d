package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"printhouse-backend/config"
	"printhouse-backend/controllers"
	"printhouse-backend/models"
	"printhouse-backend/routes"
	"printhouse-backend/utils"
)

func main() {
	cfg := config.Load()

	client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(cfg.DatabaseName)

	if err := ensureIndexes(db); err != nil {
		log.Fatal("Failed to create indexes: ", err)
	}
	if err := ensureAdminUser(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to bootstrap admin user: ", err)
	}

	var cld *cloudinary.Cloudinary
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal("Failed to initialize Cloudinary: ", err)
		}
	} else {
		log.Println("CLOUDINARY_URL not set, image uploads disabled")
	}

	ctrl := &controllers.Controller{
		DB:      db,
		Cld:     cld,
		Cfg:     cfg,
		Limiter: utils.NewRateLimiter(cfg.OrderRateLimit, cfg.OrderRateWindow),
	}

	r := routes.Setup(ctrl, cfg.Env)

	fmt.Println("🚀 Printhouse backend starting...")
	fmt.Printf("🌐 Server will run on: http://localhost:%s\n", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}

// ensureIndexes creates the lookup indexes the handlers rely on. Slug and
// order number uniqueness stay application-enforced; only the admin email
// gets a unique constraint.
func ensureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("products").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "slug", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("orders").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "orderNumber", Value: 1}},
	})
	return err
}

// ensureAdminUser creates the initial admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD when no user with that email exists yet.
func ensureAdminUser(db *mongo.Database, email, password string) error {
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("users")
	err := collection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	user := models.User{
		Email:     email,
		Password:  string(hashedPassword),
		Name:      "Administrator",
		Role:      "admin",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := collection.InsertOne(ctx, user); err != nil {
		return err
	}
	log.Println("Created initial admin user:", email)
	return nil
}
