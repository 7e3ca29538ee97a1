package config

import (
	"os"

	"github.com/joho/godotenv"
)

// EnvConfig holds everything the service reads from the environment.
type EnvConfig struct {
	Port         string
	GinMode      string
	MongoURI     string
	DatabaseName string
	JWTSecret    string
	LogMode      string // dev | prod
}

var Env EnvConfig

// LoadEnv populates Env from the process environment, reading a local .env
// file first when one exists.
func LoadEnv() {
	_ = godotenv.Load()

	Env = EnvConfig{
		Port:         getEnv("PORT", "8080"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName: getEnv("MONGO_DB", "upnext"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		LogMode:      getEnv("LOG_MODE", "dev"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
