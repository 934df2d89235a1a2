package config

import (
	"testing"
	"time"
)

func TestEnvRegistryOverrides(t *testing.T) {
	t.Setenv("ASSETS_DOMAIN", "http://static.example.com")
	t.Setenv("ASSETS_PREFIX", "\t")
	t.Setenv("ASSETS_SECURE", "true")
	t.Setenv("ASSETS_FALLBACK", "js")
	t.Setenv("ASSETS_ENVIRONMENT", "staging")
	t.Setenv("ASSETS_MANIFEST", "assets.json")

	cfg, err := Load(WithEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Domain != "http://static.example.com" {
		t.Errorf("expected domain http://static.example.com, got: %s", cfg.Domain)
	}
	if cfg.Prefix != "\t" {
		t.Errorf("expected tab prefix, got: %q", cfg.Prefix)
	}
	if !cfg.Secure {
		t.Error("expected secure to be enabled")
	}
	if cfg.Fallback != "js" {
		t.Errorf("expected fallback js, got: %s", cfg.Fallback)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected environment staging, got: %s", cfg.Environment)
	}
	if cfg.Manifest != "assets.json" {
		t.Errorf("expected manifest assets.json, got: %s", cfg.Manifest)
	}
}

func TestEnvSourceURL(t *testing.T) {
	tests := []struct {
		name      string
		sourceURL string
		wantType  string
		wantError bool
	}{
		{"empty keeps none", "", "none", false},
		{"memory keyword", "memory", "memory", false},
		{"memory URL", "memory://", "memory", false},
		{"filesystem URL", "file:///var/static", "fs", false},
		{"S3 URL", "s3://asset-bucket", "s3", false},
		{"invalid URL", "ftp://example.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.sourceURL != "" {
				t.Setenv("ASSETS_SOURCE_URL", tt.sourceURL)
			}

			cfg, err := Load(WithEnv())
			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if cfg.Source.Type != tt.wantType {
				t.Errorf("expected source type %q, got %q", tt.wantType, cfg.Source.Type)
			}
		})
	}
}

func TestEnvFilesystemSourcePath(t *testing.T) {
	t.Setenv("ASSETS_SOURCE_URL", "file:///var/www/static")

	cfg, err := Load(WithEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Source.Config["base_dir"] != "/var/www/static" {
		t.Errorf("expected base_dir '/var/www/static', got: %v", cfg.Source.Config["base_dir"])
	}
}

func TestEnvS3SourceDetails(t *testing.T) {
	t.Setenv("ASSETS_SOURCE_URL", "s3://asset-bucket?region=us-west-2&prefix=assets")
	t.Setenv("AWS_ACCESS_KEY_ID", "minioadmin")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "minioadmin")
	t.Setenv("AWS_S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("AWS_S3_USE_PATH_STYLE", "true")

	cfg, err := Load(WithEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Source.Config["bucket"] != "asset-bucket" {
		t.Errorf("expected bucket 'asset-bucket', got: %v", cfg.Source.Config["bucket"])
	}
	if cfg.Source.Config["region"] != "us-west-2" {
		t.Errorf("expected region 'us-west-2', got: %v", cfg.Source.Config["region"])
	}
	if cfg.Source.Config["key_prefix"] != "assets" {
		t.Errorf("expected key_prefix 'assets', got: %v", cfg.Source.Config["key_prefix"])
	}
	if cfg.Source.Config["endpoint"] != "http://localhost:9000" {
		t.Errorf("expected endpoint 'http://localhost:9000', got: %v", cfg.Source.Config["endpoint"])
	}
	if cfg.Source.Config["access_key_id"] != "minioadmin" {
		t.Errorf("expected access_key_id 'minioadmin', got: %v", cfg.Source.Config["access_key_id"])
	}
	if cfg.Source.Config["use_path_style"] != true {
		t.Errorf("expected use_path_style true, got: %v", cfg.Source.Config["use_path_style"])
	}
}

func TestEnvVersionsCache(t *testing.T) {
	t.Setenv("ASSETS_VERSIONS_CACHE", "true")
	t.Setenv("ASSETS_VERSIONS_TTL", "30m")
	t.Setenv("ASSETS_VERSIONS_KEY_PREFIX", "v:")

	cfg, err := Load(WithEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.VersionsCache {
		t.Error("expected versions cache to be enabled")
	}
	if cfg.VersionsTTL != 30*time.Minute {
		t.Errorf("expected versions TTL 30m, got: %s", cfg.VersionsTTL)
	}
	if cfg.VersionsKeyPrefix != "v:" {
		t.Errorf("expected versions key prefix 'v:', got: %s", cfg.VersionsKeyPrefix)
	}
}

func TestEnvInvalidBoolean(t *testing.T) {
	t.Setenv("ASSETS_SECURE", "definitely")

	_, err := Load(WithEnv())
	if err == nil {
		t.Error("expected error for invalid boolean, got nil")
	}
}

func TestEnvInvalidFallbackFailsValidation(t *testing.T) {
	t.Setenv("ASSETS_FALLBACK", "html")

	_, err := Load(WithEnv())
	if err == nil {
		t.Error("expected error for invalid fallback, got nil")
	}
}

func TestEnvOverridesOptions(t *testing.T) {
	// Env vars override programmatic options when WithEnv comes last
	t.Setenv("ASSETS_DOMAIN", "http://env.example.com")

	cfg, err := Load(
		WithDomain("http://code.example.com"),
		WithEnv(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Domain != "http://env.example.com" {
		t.Errorf("expected env to override domain, got: %s", cfg.Domain)
	}
}
