package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Client ClientConfig
	App    AppConfig
}

type ServerConfig struct {
	Port string
}

type StoreConfig struct {
	Driver        string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PostgresDSN   string
}

type ClientConfig struct {
	APIBaseURL string
	DataDir    string
}

type AppConfig struct {
	Environment string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
		},
		Store: StoreConfig{
			Driver:        getEnv("STORE_DRIVER", DriverRedis),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
			PostgresDSN:   getEnv("DATABASE_URL", "postgres://postgres@localhost:5432/cipherstudio?sslmode=disable"),
		},
		Client: ClientConfig{
			APIBaseURL: getEnv("API_BASE_URL", "http://localhost:5000/api"),
			DataDir:    getEnv("STUDIO_DIR", ".cipherstudio"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
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

	switch c.Store.Driver {
	case DriverRedis, DriverPostgres:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverRedis, DriverPostgres, c.Store.Driver)
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
