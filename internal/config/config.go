// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultLocations are the market cities queried when none are configured
var DefaultLocations = []string{
	"Bridgewatch",
	"Martlock",
	"Lymhurst",
	"Fort Sterling",
	"Thetford",
	"Caerleon",
	"Brecilien",
	"Black Market",
}

// Config holds configuration knobs for the HTTP server and the price client.
type Config struct {
	Port            string
	DBPath          string
	LogLevel        string
	DefaultRegion   string
	PriceAPIBase    string // overrides the per-region endpoint when set
	PriceCacheTTL   time.Duration
	PriceAPIRPS     float64
	PriceAPIBurst   int
	Locations       []string
	RenderHost      string
	PreloadImages   bool
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func floatenv(key string, def float64) float64 {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

func listenv(key string, def []string) []string {
	v := getenv(key, "")
	if v == "" {
		return append([]string(nil), def...)
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), def...)
	}
	return out
}

// LoadEnv reads a .env file into the process environment when present.
// Variables already set take precedence.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		Port:            getenv("PORT", "8080"),
		DBPath:          getenv("DB_PATH", ""),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		DefaultRegion:   getenv("DEFAULT_REGION", "am"),
		PriceAPIBase:    getenv("PRICE_API_BASE", ""),
		PriceCacheTTL:   durenvs("PRICE_CACHE_TTL", 60),
		PriceAPIRPS:     floatenv("PRICE_API_RPS", 3),
		PriceAPIBurst:   atoienv("PRICE_API_BURST", 5),
		Locations:       listenv("LOCATIONS", DefaultLocations),
		RenderHost:      getenv("RENDER_HOST", "albiononline.com"),
		PreloadImages:   boolenv("PRELOAD_IMAGES", false),
		AllowedOrigins:  listenv("ALLOWED_ORIGINS", []string{"http://localhost:*"}),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 15),
	}
}
