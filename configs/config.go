package configs

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is read once at boot.
type Config struct {
	Port          string
	MongoURI      string
	DBName        string
	AllowedOrigin string
}

// Load reads the .env file (when present) and the environment. MONGO_URI
// has no sensible default, so its absence is an error the caller treats as
// fatal.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:          os.Getenv("PORT"),
		MongoURI:      os.Getenv("MONGO_URI"),
		DBName:        os.Getenv("DB_NAME"),
		AllowedOrigin: os.Getenv("ALLOWED_ORIGIN"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is not set")
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.DBName == "" {
		cfg.DBName = "meetup"
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "*"
	}
	return cfg, nil
}
