package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort   string
	MySQLDSN     string
	MaxOpenConns int
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	JWTSecret    string
	CORSOrigin   string
	Env          string
	SwaggerHost  string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "3001"),
		MySQLDSN:     getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/lifehub?charset=utf8mb4&parseTime=True&loc=Local"),
		MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 20),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		JWTSecret:    getEnv("JWT_SECRET", "change-me"),
		CORSOrigin:   getEnv("CORS_ORIGIN", "http://localhost:5173"),
		Env:          getEnv("APP_ENV", "development"),
		SwaggerHost:  os.Getenv("SWAGGER_HOST"),
	}
}

// IsDevelopment reports whether diagnostic detail may be exposed to callers.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
