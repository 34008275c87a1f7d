package config

import (
	"os"
	"strconv"
)

// Agency deletion policies for agencies still referenced by trips.
const (
	AgenceDeleteUnrestricted = "unrestricted"
	AgenceDeleteBlock        = "block"
	AgenceDeleteCascade      = "cascade"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort         string
	MySQLDSN           string
	RedisAddr          string
	RedisDB            int
	RedisPass          string
	JWTSecret          string
	CookieSecure       bool
	AgenceDeletePolicy string
	SwaggerHost        string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "3000"),
		MySQLDSN:           getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/covoit?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		JWTSecret:          getEnv("JWT_SECRET", "change-me"),
		CookieSecure:       getEnvBool("COOKIE_SECURE", true),
		AgenceDeletePolicy: getEnv("AGENCE_DELETE_POLICY", AgenceDeleteUnrestricted),
		SwaggerHost:        os.Getenv("SWAGGER_HOST"),
	}
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

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
