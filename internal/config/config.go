package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	FrontendURL     string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// Load reads configuration from the environment, picking up a local .env
// file when one exists. Every setting has a working default.
func Load() Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3001"
	}

	max := 100
	if v := os.Getenv("RATE_LIMIT_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			max = n
		}
	}

	window := 15 * time.Minute
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			window = d
		}
	}

	return Config{
		Addr:            ":" + port,
		FrontendURL:     frontendURL,
		RateLimitMax:    max,
		RateLimitWindow: window,
	}
}
