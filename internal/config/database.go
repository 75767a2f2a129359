package config

import (
	"fmt"
	"os"
)

const (
	databaseHostEnv     = "DB_HOST"
	databasePortEnv     = "DB_PORT"
	databaseUserEnv     = "DB_USER"
	databasePasswordEnv = "DB_PASSWORD"
	databaseNameEnv     = "DB_NAME"
	databaseSSLModeEnv  = "DB_SSLMODE"

	defaultDatabaseHost    = "localhost"
	defaultDatabasePort    = "5432"
	defaultDatabaseUser    = "postgres"
	defaultDatabaseName    = "studypath"
	defaultDatabaseSSLMode = "disable"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func LoadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Host:     getEnvOrDefault(databaseHostEnv, defaultDatabaseHost),
		Port:     getEnvOrDefault(databasePortEnv, defaultDatabasePort),
		User:     getEnvOrDefault(databaseUserEnv, defaultDatabaseUser),
		Password: os.Getenv(databasePasswordEnv),
		Name:     getEnvOrDefault(databaseNameEnv, defaultDatabaseName),
		SSLMode:  getEnvOrDefault(databaseSSLModeEnv, defaultDatabaseSSLMode),
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
