package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT configuration
	JWTSecret string

	// Hugging Face inference configuration
	HFAPIToken       string
	HFAPIURL         string
	HFTextModel      string
	HFQuestionModel  string

	// Frontend origin allowed by CORS
	FrontendURL string
}

// LoadConfig creates a new Config instance from environment variables,
// falling back to Docker secrets for sensitive values.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8000"),
		ServerHost:      getEnv("SERVER_HOST", "0.0.0.0"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnvOrSecret("DB_PASSWORD", "db_password"),
		DBName:          getEnv("DB_NAME", "pcos_assistant"),
		DBSSLMode:       getEnv("DB_SSL_MODE", "disable"),
		RedisHost:       getEnv("REDIS_HOST", "localhost"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisPassword:   getEnvOrSecret("REDIS_PASSWORD", "redis_password"),
		JWTSecret:       getEnvOrSecret("JWT_SECRET", "jwt_secret"),
		HFAPIToken:      getEnvOrSecret("HF_API_TOKEN", "hf_api_token"),
		HFAPIURL:        getEnv("HF_API_URL", "https://api-inference.huggingface.co/models"),
		HFTextModel:     getEnv("HF_TEXT_MODEL", "mistralai/Mistral-7B-Instruct-v0.2"),
		HFQuestionModel: getEnv("HF_QUESTION_MODEL", "deepset/roberta-base-squad2"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvOrSecret reads an environment variable first and falls back to a
// Docker secret file of the given name.
func getEnvOrSecret(key, secretName string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return readSecret(secretName)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
