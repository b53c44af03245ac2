package config

import (
	"fmt"
)

type DatabaseConfig interface {
	GetConnectionString() string
}

// PostgresConfig represents the configuration needed to connect to a PostgreSQL database
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

func (pc *PostgresConfig) GetConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		pc.Host, pc.Port, pc.User, pc.Password, pc.DBName)
}

// OverlayEnv -- приоритет: переменная окружения, потом yaml, потом дефолт.
func (pc *PostgresConfig) OverlayEnv() {
	pc.Host = getEnv("POSTGRES_HOST", defaultIfEmpty(pc.Host, "localhost"))
	pc.Port = getEnv("POSTGRES_PORT", defaultIfEmpty(pc.Port, "5432"))
	pc.User = getEnv("POSTGRES_USER", defaultIfEmpty(pc.User, "postgres"))
	pc.Password = getEnv("POSTGRES_PASSWORD", defaultIfEmpty(pc.Password, "postgres"))
	pc.DBName = getEnv("POSTGRES_NAME", defaultIfEmpty(pc.DBName, "postgres"))
}

func defaultIfEmpty(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
