package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Seed     SeedConfig
}
type ServerConfig struct {
	Port string
}
type DatabaseConfig struct {
	URL string
}
type SeedConfig struct {
	File string
}

var Cfg = Config{}

func (config *Config) Init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "4000"
	}
	config.Server = ServerConfig{
		Port: port,
	}
	config.Database = DatabaseConfig{
		URL: os.Getenv("DATABASE_URL"),
	}
	config.Seed = SeedConfig{
		File: os.Getenv("SEED_FILE"),
	}
}
