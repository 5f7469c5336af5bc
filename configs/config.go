package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type JWTConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type EmailConfig struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	SenderEmail        string
}

type CloudinaryConfig struct {
	URL    string
	Folder string
}

// LoadDotenv reads .env if present. Missing file is fine; real environments
// set variables directly.
func LoadDotenv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

func LoadJWTConfig() JWTConfig {
	accessTTL, err := time.ParseDuration(getEnvOrDefault("JWT_ACCESS_TTL", "15m"))
	if err != nil {
		accessTTL = 15 * time.Minute
	}
	refreshTTL, err := time.ParseDuration(getEnvOrDefault("JWT_REFRESH_TTL", "24h"))
	if err != nil {
		refreshTTL = 24 * time.Hour
	}
	return JWTConfig{
		Secret:     getEnvOrDefault("JWT_SECRET", "change-me"),
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
	}
}

func LoadEmailConfig() EmailConfig {
	return EmailConfig{
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          getEnvOrDefault("AWS_REGION", "us-east-1"),
		SenderEmail:        os.Getenv("AWS_SENDER_ADDRESS"),
	}
}

func LoadCloudinaryConfig() CloudinaryConfig {
	return CloudinaryConfig{
		URL:    os.Getenv("CLOUDINARY_URL"),
		Folder: getEnvOrDefault("CLOUDINARY_FOLDER", "images"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
