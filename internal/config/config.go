package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all runtime configuration loaded from the environment.
type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	JWTSecret       string
	TokenExpiry     time.Duration
	RedisAddr       string
	RedisPassword   string
	RegistrationTTL time.Duration
	AdminEmail      string
	AdminPassword   string
}

// LoadConfig reads configuration from a .env file (if present) and the environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment variables")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "legacy_vault"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		TokenExpiry:     time.Duration(getEnvInt("TOKEN_EXPIRY_HOURS", 24)) * time.Hour,
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RegistrationTTL: time.Duration(getEnvInt("REGISTRATION_TTL_MINUTES", 15)) * time.Minute,
		AdminEmail:      getEnv("ADMIN_EMAIL", ""),
		AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithField("key", key).Warn("Invalid integer in environment, using fallback")
		return fallback
	}
	return parsed
}
