package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DatabaseType   string  // "sqlite", "postgres", or "mysql"
	DatabasePath   string  // for sqlite
	DatabaseURL    string  // for postgres/mysql
	MigrationsPath string
	WordsPath      string  // CSV/TSV word catalog
	ScorerBaseURL  string  // external similarity service
	ScoreThreshold float64 // minimum quantized similarity to accept an answer
	LogLevel       string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabasePath:   getEnv("DB_PATH", "./wordvolley.db"),
		DatabaseURL:    getEnv("DB_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		WordsPath:      getEnv("WORDS_PATH", "./words.csv"),
		ScorerBaseURL:  getEnv("SCORER_URL", "http://localhost:8090"),
		ScoreThreshold: getEnvFloat("SCORE_THRESHOLD", 1.5),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat reads a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
