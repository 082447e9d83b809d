package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds every configuration value the application reads.
type AppConfig struct {
	Port            string
	Env             string
	MongoMode       string
	MongoURI        string
	DatabaseName    string
	AuthSecret      []byte
	CloudinaryURL   string
	AdminEmail      string
	AdminPassword   string
	OrderRateLimit  int
	OrderRateWindow time.Duration
}

// Load reads configuration from a .env file or environment variables.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		Port:          getEnv("PORT", "5000"),
		Env:           getEnv("ENVIRONMENT", "development"),
		MongoMode:     getEnv("MONGO_MODE", "local"),
		DatabaseName:  getEnv("MONGO_DB_NAME", "printhouse"),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	if cfg.MongoMode == "atlas" {
		cfg.MongoURI = getEnv("MONGO_URI_ATLAS", "")
		if cfg.MongoURI == "" {
			log.Fatal("MONGO_MODE 'atlas' but MONGO_URI_ATLAS is not set")
		}
	} else {
		cfg.MongoURI = getEnv("MONGO_URI_LOCAL", "mongodb://localhost:27017/printhouse")
	}

	// AUTH_SECRET preferred; NEXTAUTH_SECRET kept for deployments migrated
	// from the old frontend-managed auth.
	secret := getEnv("AUTH_SECRET", "")
	if secret == "" {
		secret = getEnv("NEXTAUTH_SECRET", "")
	}
	if len(secret) < 32 {
		log.Fatal("AUTH_SECRET must be at least 32 characters long!")
	}
	cfg.AuthSecret = []byte(secret)

	cfg.OrderRateLimit = getEnvInt("ORDER_RATE_LIMIT", 5)
	windowSecs := getEnvInt("ORDER_RATE_WINDOW", 60)
	cfg.OrderRateWindow = time.Duration(windowSecs) * time.Second

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("Invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
