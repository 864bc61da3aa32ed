package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"clockify-report/internal/domain"
)

const DefaultTimeout = 30 * time.Second

// Config holds environment-driven configuration.
type Config struct {
	Clockify struct {
		APIKey  string
		BaseURL string        // empty: the client's default endpoint
		Timeout time.Duration // default: 30s
	}
}

// LoadEnvFile loads variables from a dotenv file into the process environment.
// Variables already set in the environment are left untouched. A missing file
// is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from environment variables.
// A missing API key is reported as domain.ErrAuthentication.
func Load() (Config, error) {
	var cfg Config

	cfg.Clockify.APIKey = os.Getenv("CLOCKIFY_API_KEY")
	if cfg.Clockify.APIKey == "" {
		cfg.Clockify.APIKey = os.Getenv("API_KEY")
	}
	if cfg.Clockify.APIKey == "" {
		return cfg, fmt.Errorf("%w: no API key provided (set CLOCKIFY_API_KEY)", domain.ErrAuthentication)
	}

	cfg.Clockify.BaseURL = os.Getenv("CLOCKIFY_BASE_URL")

	cfg.Clockify.Timeout = DefaultTimeout
	if v := os.Getenv("CLOCKIFY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, errors.New("CLOCKIFY_TIMEOUT must be a positive duration, e.g. 30s")
		}
		cfg.Clockify.Timeout = d
	}

	return cfg, nil
}
