package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	WeatherAPIURL    string
	WeatherAPIKey    string
	JWTSecret        string
	TokenTTL         time.Duration
	WeatherTimeout   time.Duration
	FetchConcurrency int
	ShutdownTimeout  time.Duration
	AuthRateLimit    float64
	AuthRateBurst    int
}

const (
	defaultRunAddress       = ":8080"
	defaultWeatherAPIURL    = "https://api.openweathermap.org"
	defaultJWTSecret        = "change-me-in-production"
	defaultTokenTTL         = 7 * 24 * time.Hour
	defaultWeatherTimeout   = 5 * time.Second
	defaultFetchConcurrency = 8
	defaultShutdownTimeout  = 10 * time.Second
	defaultAuthRateLimit    = 5.0
	defaultAuthRateBurst    = 10
)

// Load parses configuration from a .env file (if present), environment
// variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		WeatherAPIURL:    getString(lookup, "WEATHER_API_URL", defaultWeatherAPIURL),
		WeatherAPIKey:    getString(lookup, "WEATHER_API_KEY", ""),
		JWTSecret:        getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenTTL:         getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		WeatherTimeout:   getDuration(lookup, "WEATHER_TIMEOUT", defaultWeatherTimeout),
		FetchConcurrency: getInt(lookup, "FETCH_CONCURRENCY", defaultFetchConcurrency),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		AuthRateLimit:    getFloat(lookup, "AUTH_RATE_LIMIT", defaultAuthRateLimit),
		AuthRateBurst:    getInt(lookup, "AUTH_RATE_BURST", defaultAuthRateBurst),
	}

	fs := flag.NewFlagSet("breeze", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr       = cfg.TokenTTL.String()
		weatherTimeoutStr = cfg.WeatherTimeout.String()
		shutdownStr       = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.WeatherAPIURL, "w", cfg.WeatherAPIURL, "Weather provider base URL")
	fs.StringVar(&cfg.WeatherAPIKey, "weather-key", cfg.WeatherAPIKey, "Weather provider API key")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Auth token lifetime")
	fs.StringVar(&weatherTimeoutStr, "weather-timeout", weatherTimeoutStr, "Per-city weather fetch timeout")
	fs.IntVar(&cfg.FetchConcurrency, "fetch-concurrency", cfg.FetchConcurrency, "Maximum concurrent weather fetches per request")
	fs.StringVar(&shutdownStr, "shutdown-timeout", shutdownStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.WeatherTimeout, err = time.ParseDuration(weatherTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid weather timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.WeatherTimeout <= 0 {
		cfg.WeatherTimeout = defaultWeatherTimeout
	}

	if cfg.FetchConcurrency <= 0 {
		cfg.FetchConcurrency = defaultFetchConcurrency
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.AuthRateLimit <= 0 {
		cfg.AuthRateLimit = defaultAuthRateLimit
	}

	if cfg.AuthRateBurst <= 0 {
		cfg.AuthRateBurst = defaultAuthRateBurst
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.WeatherAPIKey == "" {
		return nil, fmt.Errorf("weather API key must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
