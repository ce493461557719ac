package config

import (
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_PATH", "MEDIA_STORAGE_PATH", "CORS_ALLOWED_ORIGINS", "ASSET_CACHE_SECONDS", "SEED_CATALOG"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8080" || cfg.DatabasePath != "astack.db" || cfg.AssetCacheSeconds != 3600 || !cfg.SeedCatalog {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !filepath.IsAbs(cfg.MediaStoragePath) {
		t.Errorf("media storage path %q is not absolute", cfg.MediaStoragePath)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("ASSET_CACHE_SECONDS", "oops")
	t.Setenv("SEED_CATALOG", "false")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "9000" || cfg.SeedCatalog {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.AssetCacheSeconds != 3600 {
		t.Errorf("invalid int should fall back to default, got %d", cfg.AssetCacheSeconds)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigRejectsEmptyOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " , ")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for empty origin list")
	}
}

func TestLoadConfigZeroCacheSecondsDisablesCaching(t *testing.T) {
	t.Setenv("ASSET_CACHE_SECONDS", "0")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "0")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AssetCacheSeconds != 0 {
		t.Errorf("AssetCacheSeconds = %d, want 0", cfg.AssetCacheSeconds)
	}
	if cfg.RequestTimeoutSeconds != 60 {
		t.Errorf("RequestTimeoutSeconds = %d, want default 60", cfg.RequestTimeoutSeconds)
	}

	t.Setenv("ASSET_CACHE_SECONDS", "-5")
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AssetCacheSeconds != 3600 {
		t.Errorf("negative value should fall back to default, got %d", cfg.AssetCacheSeconds)
	}
}
