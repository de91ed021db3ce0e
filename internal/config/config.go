package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPass       string
	DBName       string
	SQLitePath   string
	ServerPort   string
	RedisURL     string
	RedisTTL     time.Duration
	CacheEnabled bool
	Env          string
	AppName      string
	FrontendURL  string
	SeedDemoData bool
}

func LoadConfig() Config {
	ttlStr := getEnv("REDIS_TTL", "5m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 5 * time.Minute
	}

	return Config{
		DBDriver:     getEnv("DB_DRIVER", "postgres"),
		DBHost:       getEnv("DB_HOST", "postgres"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPass:       getEnv("DB_PASSWORD", "password"),
		DBName:       getEnv("DB_NAME", "db_greetings"),
		SQLitePath:   getEnv("DB_SQLITE_PATH", "greetings.db"),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		RedisURL:     getEnv("REDIS_URL", "redis:6379"),
		RedisTTL:     ttl,
		CacheEnabled: getEnvAsBool("CACHE_ENABLED", true),
		Env:          getEnv("ENV", "dev"),
		AppName:      getEnv("APP_NAME", "greetingApi"),
		FrontendURL:  getEnv("FRONTEND_URL", ""),
		SeedDemoData: getEnvAsBool("SEED_DEMO_DATA", false),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return fallback
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod" || c.Env == "production"
}
