package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process configuration, read once at startup.
type Config struct {
	Env         string
	ListenAddr  string
	ServiceName string
	LogLevel    string

	DatabaseURL     string
	PoolMinSize     int
	PoolMaxSize     int
	PoolTimeout     time.Duration
	CommandTimeout  time.Duration
	LookupCacheSize int
	MigrateOnStart  bool
}

// Load reads configuration from environment variables, with a .env file
// as an optional local override source.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:             getenv("APP_ENV", "development"),
		ListenAddr:      getenv("LISTEN_ADDR", ":8080"),
		ServiceName:     getenv("SERVICE_NAME", "invest-api"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		PoolMinSize:     getenvInt("DB_POOL_MIN_SIZE", 0),
		PoolMaxSize:     getenvInt("DB_POOL_MAX_SIZE", 10),
		PoolTimeout:     getenvSeconds("DB_POOL_TIMEOUT", 5),
		CommandTimeout:  getenvSeconds("DB_COMMAND_TIMEOUT", 10),
		LookupCacheSize: getenvInt("LOOKUP_CACHE_SIZE", 512),
		MigrateOnStart:  getenvBool("MIGRATE_ON_START", false),
	}
	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL not set")
	}
	if cfg.PoolMaxSize < 1 {
		return cfg, fmt.Errorf("DB_POOL_MAX_SIZE must be positive, got %d", cfg.PoolMaxSize)
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getenvSeconds(key string, def int) time.Duration {
	return time.Duration(getenvInt(key, def)) * time.Second
}
