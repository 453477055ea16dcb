package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment    string
	Port           string
	DBUrl          string
	JWTSecret      string
	AllowedOrigins []string
	ContextTimeout time.Duration
}

// Load loads configuration from environment variables. It attempts to load a
// .env file when not in production; in production the process environment is
// the only source.
//
// An empty DATABASE_URL selects the in-memory document store, which is only
// meant for development and tests.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Port:           os.Getenv("PORT"),
		DBUrl:          os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		ContextTimeout: 5 * time.Second,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if s := os.Getenv("CONTEXT_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, errors.New("CONTEXT_TIMEOUT must be a duration like 5s")
		}
		cfg.ContextTimeout = d
	}
	if s := os.Getenv("ALLOWED_ORIGINS"); s != "" {
		for _, o := range strings.Split(s, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if cfg.JWTSecret == "" {
		if env == "production" {
			return nil, errors.New("JWT_SECRET is required in production")
		}
		log.Printf("Warning: JWT_SECRET not set, using development default")
		cfg.JWTSecret = "dev-secret"
	}

	return cfg, nil
}
