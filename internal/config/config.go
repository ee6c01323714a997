package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv          string  `validate:"required"`
	LogFormat       string  `validate:"oneof=json console text"`
	LogLevel        string  `validate:"required"`
	CostPerDelivery float64 `validate:"gte=0"`
	CostPerProduct  float64 `validate:"gte=0"`
	FixedCost       float64 `validate:"gte=0"`
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:          valueOrDefault(k.String("APP_ENV"), "development"),
		LogFormat:       valueOrDefault(k.String("LOG_FORMAT"), "console"),
		LogLevel:        valueOrDefault(k.String("LOG_LEVEL"), "info"),
		CostPerDelivery: parseFloat(k.String("DELIVERY_COST_PER_DELIVERY"), 10),
		CostPerProduct:  parseFloat(k.String("DELIVERY_COST_PER_PRODUCT"), 150),
		FixedCost:       parseFloat(k.String("DELIVERY_FIXED_COST"), 2.99),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseFloat(value string, fallback float64) float64 {
	base := strings.TrimSpace(value)
	if base == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(base, 64)
	if err != nil {
		return fallback
	}
	return f
}

// MustLoad behaves like Load but panics on error. Useful for tests and command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
