package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvAPIURL    = "TRIPWISE_API_URL"
	EnvShareURL  = "TRIPWISE_SHARE_URL"
	EnvExportDir = "TRIPWISE_EXPORT_DIR"
)

// Env holds values read from the process environment and an optional .env file.
// They act as defaults beneath the user's saved preferences.
type Env struct {
	APIBaseURL string
	ShareURL   string
	ExportDir  string
}

// LoadEnv reads .env files (when present) and the environment
func LoadEnv(filenames ...string) Env {
	if err := godotenv.Load(filenames...); err != nil {
		log.Printf("No .env file loaded (%v), using environment variables", err)
	}

	return Env{
		APIBaseURL: getenv(EnvAPIURL, DefaultAPIBaseURL),
		ShareURL:   getenv(EnvShareURL, ""),
		ExportDir:  getenv(EnvExportDir, ""),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// DeriveShareURL turns an API base like "https://host/api" into "https://host"
func DeriveShareURL(apiBase string) string {
	base := strings.TrimRight(strings.TrimSpace(apiBase), "/")
	return strings.TrimSuffix(base, "/api")
}
