package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Cache    CacheConfig
	Refresh  RefreshConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type UpstreamConfig struct {
	BaseURL string
	RPS     float64
	Burst   int
}

type CacheConfig struct {
	Addr       string
	Password   string
	DB         int
	TTLSeconds int
}

type RefreshConfig struct {
	Enabled  bool
	CronSpec string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("REVIEW_SERVICE_URL", "http://localhost:9090/api/v1/reviews"),
			RPS:     float64(getEnvAsInt("REVIEW_SERVICE_RPS", 10)),
			Burst:   getEnvAsInt("REVIEW_SERVICE_BURST", 20),
		},
		Cache: CacheConfig{
			Addr:       getEnv("REDIS_ADDR", ""),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvAsInt("REDIS_DB", 0),
			TTLSeconds: getEnvAsInt("SNAPSHOT_TTL_SECONDS", 300),
		},
		Refresh: RefreshConfig{
			Enabled:  getEnv("SNAPSHOT_REFRESH_ENABLED", "false") == "true",
			CronSpec: getEnv("SNAPSHOT_REFRESH_CRON", "0 */15 * * * *"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("REVIEW_SERVICE_URL is required")
	}

	if c.Refresh.Enabled && c.Cache.Addr == "" {
		return fmt.Errorf("SNAPSHOT_REFRESH_ENABLED requires REDIS_ADDR")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
