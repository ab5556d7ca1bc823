package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	ServerPort  string `yaml:"port"`
	// Store selects the backend: "memory" or "postgres".
	Store      string `yaml:"store"`
	DBHost     string `yaml:"db_host"`
	DBPort     int    `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	JWTSecret  string `yaml:"jwt_secret"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`

	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`

	// Client side.
	APIBaseURL string `yaml:"api_base_url"`
	APIToken   string `yaml:"api_token"`
}

func defaults() *Config {
	return &Config{
		Environment:    "development",
		ServerPort:     "9000",
		Store:          "memory",
		DBHost:         "localhost",
		DBPort:         5432,
		DBUser:         "postgres",
		DBName:         "courses",
		LogLevel:       "info",
		LogFormat:      "text",
		RateLimitBurst: 20,
		APIBaseURL:     "http://localhost:9000",
	}
}

// Load reads .env if present, then the YAML file named by CONFIG_FILE if
// set, then the environment. Later sources win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.ServerPort = getEnv("PORT", cfg.ServerPort)
	cfg.Store = getEnv("STORE", cfg.Store)
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBUser = getEnv("DB_USER", cfg.DBUser)
	cfg.DBPassword = getEnv("DB_PASSWORD", cfg.DBPassword)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.APIBaseURL = getEnv("API_BASE_URL", cfg.APIBaseURL)
	cfg.APIToken = getEnv("API_TOKEN", cfg.APIToken)

	var err error
	if cfg.DBPort, err = getEnvInt("DB_PORT", cfg.DBPort); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", cfg.RateLimitBurst); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", cfg.RateLimitRPS); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Store {
	case "memory":
	case "postgres":
		if c.DBPassword == "" {
			return errors.New("DB_PASSWORD environment variable is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown store %q, want memory or postgres", c.Store)
	}
	if c.RateLimitRPS < 0 {
		return errors.New("RATE_LIMIT_RPS must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
