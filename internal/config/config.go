package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds application configuration
type Config struct {
	Port       string
	DBDriver   string
	DBConn     string
	LogLevel   string
	JWTSecret  string
	JWTExpiry  time.Duration
	BcryptCost int
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		DBDriver: getEnv("DB_DRIVER", "postgres"),
		DBConn:   getEnv("DB_CONN", "host=localhost port=5432 user=postgres password=postgres dbname=social sslmode=disable"),
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
		// openssl rand -hex 32
		JWTSecret: getEnv("JWT_SECRET", "secret"),
	}

	expireMinutes, err := strconv.Atoi(getEnv("JWT_EXPIRE_MINUTES", "30"))
	if err != nil || expireMinutes <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRE_MINUTES must be a positive integer")
	}
	cfg.JWTExpiry = time.Duration(expireMinutes) * time.Minute

	cfg.BcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost)))
	if err != nil || cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		return nil, fmt.Errorf("DB_DRIVER must be postgres or sqlite")
	}
	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
