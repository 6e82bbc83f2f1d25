package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Env holds process settings read from the environment.
type Env struct {
	LogLevel        string
	LogFormat       string
	RulesPath       string
	Seed            int64
	HasSeed         bool
	NarratorTimeout time.Duration
}

// LoadEnv reads HARVEST_* variables, loading a .env file first if present.
func LoadEnv() (Env, error) {
	// Load .env file if it exists, but don't fail if it doesn't
	_ = godotenv.Load()

	env := Env{
		LogLevel:  getEnv("HARVEST_LOG_LEVEL", "warn"),
		LogFormat: getEnv("HARVEST_LOG_FORMAT", "console"),
		RulesPath: getEnv("HARVEST_RULES", ""),
	}

	if s, ok := os.LookupEnv("HARVEST_SEED"); ok && s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Env{}, fmt.Errorf("invalid HARVEST_SEED value: %w", err)
		}
		env.Seed, env.HasSeed = seed, true
	}

	timeout, err := time.ParseDuration(getEnv("HARVEST_NARRATOR_TIMEOUT", "3s"))
	if err != nil {
		return Env{}, fmt.Errorf("invalid HARVEST_NARRATOR_TIMEOUT value: %w", err)
	}
	env.NarratorTimeout = timeout

	return env, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
