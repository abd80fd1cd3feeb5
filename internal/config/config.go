package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/sschan39/hk-foodpanda-crawler/internal/pandora"
)

// Config holds environment-driven configuration. The pacing values
// shape the request rate; their defaults are known to stay under the
// upstream throttling threshold.
type Config struct {
	Endpoint    string
	HTTPTimeout time.Duration

	PageSize    int
	PointLimit  int
	MaxAttempts int

	PageDelay  time.Duration
	PointDelay time.Duration
	BatchDelay time.Duration
	BatchEvery int
	RetryBase  time.Duration

	OutputName string
}

// Load reads configuration from a .env file (if present) and the
// environment, falling back to defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Endpoint:    getEnv("FP_ENDPOINT", pandora.DefaultEndpoint),
		HTTPTimeout: getDuration("FP_HTTP_TIMEOUT", 15*time.Second),

		PageSize:    getInt("FP_PAGE_SIZE", 48),
		PointLimit:  getInt("FP_POINT_LIMIT", 150),
		MaxAttempts: getInt("FP_MAX_ATTEMPTS", 3),

		PageDelay:  getDuration("FP_PAGE_DELAY", time.Second),
		PointDelay: getDuration("FP_POINT_DELAY", 1500*time.Millisecond),
		BatchDelay: getDuration("FP_BATCH_DELAY", 3*time.Second),
		BatchEvery: getInt("FP_BATCH_EVERY", 5),
		RetryBase:  getDuration("FP_RETRY_BASE", 2*time.Second),

		OutputName: getEnv("FP_OUTPUT_NAME", "coordinates"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
