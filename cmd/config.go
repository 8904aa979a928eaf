package main

import (
	"os"
	"strconv"
	"time"

	"github.com/internlink/internlink/pkg/logx"
	"github.com/joho/godotenv"
)

// Config carries everything the server reads from the environment
type Config struct {
	Port string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisAddr string
	RedisPass string

	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration
}

// LoadConfig reads .env (if present) and the process environment
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		logx.Info("No .env file found, using environment variables")
	}

	cfg := Config{
		Port:      getEnvString("PORT", "8080"),
		DBHost:    getEnvString("DB_HOST", "localhost"),
		DBPort:    getEnvString("DB_PORT", "5432"),
		DBUser:    getEnvString("DB_USER", "internlink"),
		DBPass:    getEnvString("DB_PASS", ""),
		DBName:    getEnvString("DB_NAME", "internlink"),
		RedisAddr: getEnvString("REDIS_ADDR", "localhost:6379"),
		RedisPass: getEnvString("REDIS_PASS", ""),
		JWTSecret: getEnvString("JWT_SECRET", ""),
		JWTIssuer: getEnvString("JWT_ISSUER", "internlink"),
		TokenTTL:  getEnvDuration("TOKEN_TTL", 24*time.Hour),
	}

	if cfg.JWTSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		cfg.JWTSecret = "super-secret-key-please-change-me-in-production"
	}

	return cfg
}

func getEnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	logx.Warnf("invalid duration for %s: %q, using default", key, v)
	return fallback
}
