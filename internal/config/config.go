package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey    string
	GoogleProjectID string
	GoogleLocation  string
	GeminiModel     string

	// Static chat page
	StaticDir string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		Env:             getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:    mustGetEnv("GEMINI_API_KEY"),
		GoogleProjectID: getEnvOrDefault("GOOGLE_PROJECT_ID", "your-project-id"),
		GoogleLocation:  getEnvOrDefault("GOOGLE_LOCATION", "us-central1"),
		GeminiModel:     getEnvOrDefault("GEMINI_MODEL", "gemini-3-flash-preview"),
		StaticDir:       getEnvOrDefault("STATIC_DIR", "./web/static"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
