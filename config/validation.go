package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every value required at startup is present.
// The Hugging Face token is intentionally not required: without it the
// service still runs and diet generation degrades to the fallback plan.
func ValidateConfig(cfg *Config) error {
	var missing []string

	required := map[string]string{
		"SERVER_PORT": cfg.ServerPort,
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_USER":     cfg.DBUser,
		"DB_NAME":     cfg.DBName,
		"JWT_SECRET":  cfg.JWTSecret,
		"HF_API_URL":  cfg.HFAPIURL,
	}

	for field, value := range required {
		if value == "" {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return ValidationError{
			Field:   strings.Join(missing, ", "),
			Message: "required configuration values are missing",
		}
	}

	return nil
}
