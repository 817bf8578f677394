package config

import (
	"os"
	"strconv"
)

type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Inventory InventoryConfig
	Content   ContentConfig
	Seed      SeedConfig
}

type AppConfig struct {
	Env  string
	Name string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type InventoryConfig struct {
	LowStockThreshold int
}

type ContentConfig struct {
	RateLimitRPS   float64
	RateLimitBurst int
}

type SeedConfig struct {
	Enabled      bool
	ProductCount int
	SaleCount    int
}

func LoadEnv() *Config {
	return &Config{
		App: AppConfig{
			Env:  getEnv("APP_ENV", "dev"),
			Name: getEnv("APP_NAME", "shoppilot-assistant"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Inventory: InventoryConfig{
			LowStockThreshold: getEnvInt("INVENTORY_LOW_STOCK_THRESHOLD", 10),
		},
		Content: ContentConfig{
			RateLimitRPS:   getEnvFloat("CONTENT_RATE_LIMIT_RPS", 2),
			RateLimitBurst: getEnvInt("CONTENT_RATE_LIMIT_BURST", 4),
		},
		Seed: SeedConfig{
			Enabled:      getEnvBool("SEED_DEMO_DATA", true),
			ProductCount: getEnvInt("SEED_PRODUCT_COUNT", 12),
			SaleCount:    getEnvInt("SEED_SALE_COUNT", 60),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
