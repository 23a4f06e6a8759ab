package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "API_PREFIX", "CORS_ALLOW_ORIGINS", "OBJECT_STORE",
		"PUBLIC_BASE_URL", "SIGNED_URL_TTL_HOURS", "LLM_MODEL",
		"UPLOAD_RATE_PER_MIN", "UPLOAD_RATE_BURST",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.Env != "dev" || cfg.APIPrefix != "/api" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.ObjectStoreType != "local" {
		t.Fatalf("store type = %q", cfg.ObjectStoreType)
	}
	if cfg.SignedURLTTL != 168*time.Hour {
		t.Fatalf("signed ttl = %v", cfg.SignedURLTTL)
	}
	if cfg.LLMModel != "gpt-4" {
		t.Fatalf("model = %q", cfg.LLMModel)
	}
	if cfg.UploadRatePerMin != 10 || cfg.UploadRateBurst != 5 {
		t.Fatalf("upload rate = %d/%d", cfg.UploadRatePerMin, cfg.UploadRateBurst)
	}
	if len(cfg.CORSAllowOrigin) != 1 || cfg.CORSAllowOrigin[0] != "http://localhost:5000" {
		t.Fatalf("cors = %v", cfg.CORSAllowOrigin)
	}
}

func TestNormalizeEnv(t *testing.T) {
	tests := []struct{ in, want string }{
		{"production", "production"},
		{"PROD", "production"},
		{"staging", "staging"},
		{"local", "local"},
		{"development", "dev"},
		{"anything-else", "dev"},
	}
	for _, tt := range tests {
		if got := normalizeEnv(tt.in); got != tt.want {
			t.Errorf("normalizeEnv(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeAPIPrefix(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/api", "/api"},
		{"api", "/api"},
		{"/api/", "/api"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeAPIPrefix(tt.in); got != tt.want {
			t.Errorf("normalizeAPIPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim("http://a.test, http://b.test ,,")
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Fatalf("got %v", got)
	}
}
