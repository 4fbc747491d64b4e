package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONNECTION_STRING", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("MONGODB_DATABASE", "")
	t.Setenv("API_URL", "")
	t.Setenv("TOKEN_PASSWORD", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "8010" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.MongoDBName != "portfolio" {
		t.Errorf("MongoDBName = %q", cfg.MongoDBName)
	}
	if cfg.APIPrefix != "/api/v1" {
		t.Errorf("APIPrefix = %q", cfg.APIPrefix)
	}
	if cfg.UploadDir != "public/uploads" {
		t.Errorf("UploadDir = %q", cfg.UploadDir)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Errorf("Environment = %q, want development default", cfg.Environment)
	}
}

func TestLoadRequiredSettings(t *testing.T) {
	t.Setenv("CONNECTION_STRING", "")
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := Load(); err == nil {
		t.Error("Load() without CONNECTION_STRING succeeded")
	}

	t.Setenv("CONNECTION_STRING", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Load() without JWT_SECRET succeeded")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CONNECTION_STRING", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Errorf("Environment = %q", cfg.Environment)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}
