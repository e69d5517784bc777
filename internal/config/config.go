package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	ServerPort      string
	JWTSecret       string
	JWTExpiry       time.Duration
	LogLevel        string
	MigrateOnStart  bool
	DefaultLanguage string
	AppName         string
	AppVersion      string
}

// Load reads .env when present, then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		zap.L().Debug("no .env file found, using system environment variables")
	}

	return &Config{
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "taskflow"),
		DBPassword:      getEnv("DB_PASSWORD", "taskflow"),
		DBName:          getEnv("DB_NAME", "taskflow"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", "supersecretkey"),
		JWTExpiry:       time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		MigrateOnStart:  getEnvBool("MIGRATE_ON_START", true),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		AppName:         getEnv("APP_NAME", "taskflow"),
		AppVersion:      getEnv("APP_VERSION", "dev"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		zap.L().Warn("ignoring invalid integer setting", zap.String("key", key), zap.String("value", value))
		return defaultVal
	}
	return n
}

func getEnvBool(key string, defaultVal bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		zap.L().Warn("ignoring invalid boolean setting", zap.String("key", key), zap.String("value", value))
		return defaultVal
	}
	return b
}
