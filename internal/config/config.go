// Package config reads process configuration from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all settings for baymap.
type Config struct {
	// Dataset
	DatabasePath string
	LandName     string

	// Batch rendering
	OutputPath string
	RenderCols int
	RenderRows int
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is applied first if
// present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabasePath: getEnv("BAYMAP_DB", "bart.db"),
		LandName:     getEnv("BAYMAP_LAND_NAME", "bayarea"),

		OutputPath: getEnv("BAYMAP_OUT", "frame.txt"),
		RenderCols: getEnvInt("BAYMAP_RENDER_COLS", 160),
		RenderRows: getEnvInt("BAYMAP_RENDER_ROWS", 64),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
