package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	JWTTTL        time.Duration
	StorageDriver string
	DataDir       string
	DatabaseDSN   string
	CorsOrigins   []string
	LogLevel      string
}

const (
	StorageFile     = "file"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Load reads .env when present and falls back to the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		Logger().Debug("No .env file found, using environment variables")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "720h"))
	if err != nil || ttl <= 0 {
		Logger().WithError(err).Warn("Invalid JWT_TTL, using 720h")
		ttl = 720 * time.Hour
	}

	return &Config{
		Port:          getEnv("PORT", "3001"),
		JWTTTL:        ttl,
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageFile)),
		DataDir:       getEnv("DATA_DIR", "./data"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		CorsOrigins:   splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
