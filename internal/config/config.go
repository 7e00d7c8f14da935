package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	DBPath string
}

type ServerConfig struct {
	Addr string
}

// Load reads configuration from the environment, loading a .env file first
// when one is present. An empty DBPath means "use the default location".
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Addr: getEnv("TASKHERO_ADDR", ":8090"),
		},
		DBPath: getEnv("TASKHERO_DB", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
