package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/paologalligit/seat-helper/constant"
)

// Config holds the runtime settings, read from the environment
type Config struct {
	SeatPlanURL   string        // SEAT_PLAN_URL: template with cinema and session verbs
	ProxyURL      string        // SEAT_PROXY_URL: optional http/https/socks5 proxy
	HTTPTimeout   time.Duration // HTTP_TIMEOUT
	LookupLogFile string        // LOOKUP_LOG_FILE: empty disables the file sink
	DatabaseURL   string        // DATABASE_URL: empty disables the postgres sink
	Workers       int           // WORKERS: concurrent resolutions when annotating
	Headless      bool          // HEADLESS
}

// Load reads .env if present, then the environment
func Load() Config {
	_ = godotenv.Load() // Load .env if present, ignore error
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		SeatPlanURL:   getenv("SEAT_PLAN_URL", constant.SEAT_PLAN_URL),
		ProxyURL:      os.Getenv("SEAT_PROXY_URL"),
		HTTPTimeout:   parseDur(getenv("HTTP_TIMEOUT", "15s"), 15*time.Second),
		LookupLogFile: getenv("LOOKUP_LOG_FILE", constant.LOOKUP_LOG_FILE),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Workers:       atoi(getenv("WORKERS", "4"), 4),
		Headless:      parseBool(getenv("HEADLESS", "true")),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil || i <= 0 {
		return def
	}
	return i
}

func parseDur(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func parseBool(s string) bool {
	return strings.EqualFold(s, "true") || s == "1"
}
