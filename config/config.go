package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	DatabaseURL           string
	Port                  string
	GoEnv                 string
	SeedData              bool
	LogLevel              string
	OrderTransitionPolicy string
	ImageStorage          string
	UploadDir             string
	StaticDir             string
	CORSAllowedOrigins    []string
	AWSRegion             string
	AWSS3Bucket           string
	AWSAccessKeyID        string
	AWSSecretAccessKey    string
}

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	seed, err := strconv.ParseBool(getEnv("SEED_DATA", "true"))
	if err != nil {
		return nil, fmt.Errorf("SEED_DATA must be a boolean: %w", err)
	}

	config := &Config{
		DatabaseURL:           getEnv("DATABASE_URL", "cafe.db"),
		Port:                  getEnv("PORT", "8080"),
		GoEnv:                 getEnv("GO_ENV", "development"),
		SeedData:              seed,
		LogLevel:              strings.ToLower(getEnv("LOG_LEVEL", "info")),
		OrderTransitionPolicy: getEnv("ORDER_TRANSITION_POLICY", "permissive"),
		ImageStorage:          getEnv("IMAGE_STORAGE", "local"),
		UploadDir:             getEnv("UPLOAD_DIR", "./uploads"),
		StaticDir:             getEnv("STATIC_DIR", "./public"),
		CORSAllowedOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AWSRegion:             getEnv("AWS_REGION", "us-east-1"),
		AWSS3Bucket:           getEnv("AWS_S3_BUCKET", ""),
		AWSAccessKeyID:        getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:    getEnv("AWS_SECRET_ACCESS_KEY", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that configuration values are usable
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	switch c.OrderTransitionPolicy {
	case "permissive", "forward":
	default:
		return fmt.Errorf("ORDER_TRANSITION_POLICY must be permissive or forward, got %q", c.OrderTransitionPolicy)
	}

	switch c.ImageStorage {
	case "local":
	case "s3":
		if c.AWSS3Bucket == "" {
			return fmt.Errorf("AWS_S3_BUCKET is required when IMAGE_STORAGE=s3")
		}
	default:
		return fmt.Errorf("IMAGE_STORAGE must be local or s3, got %q", c.ImageStorage)
	}

	return nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// UsesPostgres reports whether DATABASE_URL points at a PostgreSQL server
// rather than a local SQLite file
func (c *Config) UsesPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") ||
		strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
