package config

import (
	"log/slog"

	"github.com/joho/godotenv"
)

// loadEnv loads environment variables from the first .env file found. Existing
// process environment variables are never overwritten. A missing file is not
// an error.
func loadEnv() {
	for _, path := range []string{".env", ".env.local"} {
		if err := godotenv.Load(path); err == nil {
			slog.Debug("Loaded environment variables", "file", path)
			return
		}
	}
}
