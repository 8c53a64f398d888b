package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the runtime configuration loaded from the environment.
type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	JWTSecret   string
	TokenExpiry time.Duration
}

// LoadConfig reads configuration from a .env file (if present) and the
// process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment variables")
	}

	expiryHours := 24
	if raw := os.Getenv("TOKEN_EXPIRY_HOURS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			logrus.WithField("TOKEN_EXPIRY_HOURS", raw).Warn("Invalid token expiry, using default")
		} else {
			expiryHours = parsed
		}
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:      getEnv("MONGO_DB", "wishfund"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenExpiry: time.Duration(expiryHours) * time.Hour,
	}

	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET must be set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
