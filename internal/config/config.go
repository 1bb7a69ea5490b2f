package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the service configuration
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	Debug     bool
}

// Load reads configuration from the environment, with a local .env file
// taken into account when present.
func Load() *Config {
	// Missing .env is fine; real env vars still apply
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/presence.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "change-me-in-production"
	}

	return &Config{
		Port:      port,
		DBPath:    dbPath,
		JWTSecret: jwtSecret,
		Debug:     os.Getenv("DEBUG") == "1",
	}
}
