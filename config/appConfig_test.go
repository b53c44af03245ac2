package config

import (
	"strings"
	"testing"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(EnvWbApiToken, "wb-token")
	t.Setenv(EnvSupabaseURL, "https://example.supabase.co")
	t.Setenv(EnvSupabaseServiceKey, "service-key")
	t.Setenv("SYNC_BACKEND", "")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.Sync.Backend != BackendSupabase {
		t.Errorf("expected default backend supabase, got %q", cfg.Sync.Backend)
	}
	if cfg.Sync.Values.PageSize != 100 || cfg.Sync.Values.BatchSize != 500 || cfg.Sync.Values.BatchPauseMs != 200 {
		t.Errorf("unexpected defaults: %+v", cfg.Sync.Values)
	}
	if cfg.Wildberries.ApiToken != "wb-token" {
		t.Errorf("token not read from env")
	}
}

func TestValidateMissingToken(t *testing.T) {
	t.Setenv(EnvWbApiToken, "")
	t.Setenv(EnvSupabaseURL, "https://example.supabase.co")
	t.Setenv(EnvSupabaseServiceKey, "service-key")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	err = cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing token")
	}
	if !strings.Contains(err.Error(), EnvWbApiToken) {
		t.Errorf("error should name the missing variable, got: %v", err)
	}
}

func TestValidateMissingSupabaseKey(t *testing.T) {
	t.Setenv(EnvWbApiToken, "wb-token")
	t.Setenv(EnvSupabaseURL, "https://example.supabase.co")
	t.Setenv(EnvSupabaseServiceKey, "")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing service role key")
	}
}

func TestValidateUnknownBackend(t *testing.T) {
	t.Setenv(EnvWbApiToken, "wb-token")
	t.Setenv("SYNC_BACKEND", "mssql")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
