package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	Data   DataConfig
}

type AppConfig struct {
	Name        string `validate:"required"`
	Version     string `validate:"required"`
	Environment string `validate:"required,oneof=development staging production"`
}

type ServerConfig struct {
	Port string `validate:"required,numeric"`
}

type DataConfig struct {
	// Path to the delimited transaction file, re-read on every request.
	Path string `validate:"required"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "RFM Insights"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Data: DataConfig{
			Path: getEnv("DATA_PATH", "rfm_data.csv"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
