package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const DefaultAPIURL = "http://localhost:8080"

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	// APIURL is the backend origin every REST call and media reference is resolved against.
	APIURL    string
	StatePath string

	CheckoutConcurrency int
}

func Load() Config {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	return Config{
		AppEnv:              getEnv("APP_ENV", "dev"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		HTTPPort:            getEnvInt("HTTP_PORT", 8090),
		APIURL:              getEnv("API_URL", DefaultAPIURL),
		StatePath:           getEnv("STATE_PATH", "storefront.db"),
		CheckoutConcurrency: getEnvInt("CHECKOUT_CONCURRENCY", 4),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
