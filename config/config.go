package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ffremont/astackbackend/logging"
)

const (
	defaultPort               = "8080"
	defaultDatabasePath       = "astack.db"
	defaultAllowedOrigins     = "http://localhost:5173"
	defaultAssetCacheSeconds  = 3600
	defaultRequestTimeoutSecs = 60
)

type Config struct {
	Port string

	// sqlite file shared by the picture table (GORM) and the deep-sky catalog (database/sql)
	DatabasePath string

	// root directory of the per-picture asset folders (picture.jpg, raw.fits, ...)
	MediaStoragePath string

	// CORS
	AllowedOrigins []string

	// logging
	LogLevel  string
	LogFormat string

	// 0 disables the Cache-Control header on assets
	AssetCacheSeconds     int
	RequestTimeoutSeconds int

	// seed the constellation table with the IAU list on startup
	SeedCatalog bool
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		logging.Warn().Str("var", envVar).Str("value", valStr).Int("default", defaultVal).Err(err).
			Msg("invalid integer setting, using default")
		return defaultVal
	}
	return val
}

// getEnvNonNegIntOrDefault is getEnvIntOrDefault for settings where 0 means disabled
func getEnvNonNegIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		logging.Warn().Str("var", envVar).Str("value", valStr).Int("default", defaultVal).Err(err).
			Msg("invalid integer setting, using default")
		return defaultVal
	}
	return val
}

func getEnvBoolOrDefault(envVar string, defaultVal bool) bool {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		logging.Warn().Str("var", envVar).Str("value", valStr).Bool("default", defaultVal).Err(err).
			Msg("invalid boolean setting, using default")
		return defaultVal
	}
	return val
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

func LoadConfig() (Config, error) {
	mediaStorage := getEnvOrDefault("MEDIA_STORAGE_PATH", filepath.Join(".", "media_storage"))
	absMediaStorage, err := filepath.Abs(mediaStorage)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path for media storage '%s': %w", mediaStorage, err)
	}

	origins := splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins))
	if len(origins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS must contain at least one origin")
	}

	cfg := Config{
		Port:                  getEnvOrDefault("PORT", defaultPort),
		DatabasePath:          getEnvOrDefault("DATABASE_PATH", defaultDatabasePath),
		MediaStoragePath:      absMediaStorage,
		AllowedOrigins:        origins,
		LogLevel:              getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:             getEnvOrDefault("LOG_FORMAT", "console"),
		AssetCacheSeconds:     getEnvNonNegIntOrDefault("ASSET_CACHE_SECONDS", defaultAssetCacheSeconds),
		RequestTimeoutSeconds: getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeoutSecs),
		SeedCatalog:           getEnvBoolOrDefault("SEED_CATALOG", true),
	}

	return cfg, nil
}
