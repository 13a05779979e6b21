package config

import (
	"os"
)

type Config struct {
	Port       string
	GinMode    string
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	LogFile    string
}

func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		DBDriver:   getEnv("DB_DRIVER", "mysql"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "teamhub"),
		DBPassword: getEnv("DB_PASSWORD", "teamhub"),
		DBName:     getEnv("DB_NAME", "teamhub"),
		JWTSecret:  getEnv("JWT_SECRET", "default-secret-key-change-me"),
		LogFile:    getEnv("LOG_FILE", "logs/teamhub.log"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
