package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL          string
	RedisURL             string
	Port                 string  // HTTP listen port
	RateLimitRPS         float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst       int     // Burst size for rate limiting
	RateLimitSignupRPS   float64 // Rate limit for signup (stricter)
	RateLimitSignupBurst int     // Burst size for signup
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		RedisURL:             getEnv("REDIS_URL", ""),
		Port:                 getEnv("PORT", "8080"),
		RateLimitRPS:         getEnvFloat("RATE_LIMIT_RPS", 10),       // 10 requests per second for general API
		RateLimitBurst:       getEnvInt("RATE_LIMIT_BURST", 20),       // Allow bursts of 20
		RateLimitSignupRPS:   getEnvFloat("RATE_LIMIT_SIGNUP_RPS", 2), // 2 requests per second for signup (stricter)
		RateLimitSignupBurst: getEnvInt("RATE_LIMIT_SIGNUP_BURST", 5), // Allow bursts of 5
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
