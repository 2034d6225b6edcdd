package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the client.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DataDir        string
}

// Load reads configuration from the environment, with an optional .env file.
func Load() Config {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("TTM_TIMEOUT", "10s"))
	if err != nil {
		timeout = 10 * time.Second
	}

	return Config{
		APIBaseURL:     getEnv("TTM_API_URL", "http://localhost:8080"),
		RequestTimeout: timeout,
		DataDir:        getEnv("TTM_DATA_DIR", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
