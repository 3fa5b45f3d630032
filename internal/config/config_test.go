package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LLM_PROVIDER", "DB_ENABLED", "FETCH_TIMEOUT",
		"GENERATION_TIMEOUT", "MAX_FILE_SIZE", "OPENAI_MODEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Server.Port != "8000" {
		t.Errorf("Server.Port = %q, want 8000", cfg.Server.Port)
	}
	if cfg.Generation.Provider != "openai" {
		t.Errorf("Generation.Provider = %q, want openai", cfg.Generation.Provider)
	}
	if cfg.Generation.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("Generation.OpenAIModel = %q, want gpt-4o-mini", cfg.Generation.OpenAIModel)
	}
	if cfg.Database.Enabled {
		t.Error("Database.Enabled should default to false")
	}
	if cfg.Fetcher.Timeout != 15*time.Second {
		t.Errorf("Fetcher.Timeout = %v, want 15s", cfg.Fetcher.Timeout)
	}
	if cfg.Generation.Timeout != 60*time.Second {
		t.Errorf("Generation.Timeout = %v, want 60s", cfg.Generation.Timeout)
	}
	if cfg.Storage.MaxFileSize != 10485760 {
		t.Errorf("Storage.MaxFileSize = %d, want 10485760", cfg.Storage.MaxFileSize)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("MAX_FILE_SIZE", "2048")

	cfg := Load()

	if cfg.Server.Port != "9000" {
		t.Errorf("Server.Port = %q, want 9000", cfg.Server.Port)
	}
	if cfg.Generation.Provider != "gemini" {
		t.Errorf("Generation.Provider = %q, want gemini", cfg.Generation.Provider)
	}
	if !cfg.Database.Enabled {
		t.Error("Database.Enabled should be true")
	}
	if cfg.Fetcher.Timeout != 3*time.Second {
		t.Errorf("Fetcher.Timeout = %v, want 3s", cfg.Fetcher.Timeout)
	}
	if cfg.Storage.MaxFileSize != 2048 {
		t.Errorf("Storage.MaxFileSize = %d, want 2048", cfg.Storage.MaxFileSize)
	}
}

func TestGetEnvAsDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "not-a-duration")

	if got := getEnvAsDuration("SOME_TIMEOUT", "5s"); got != 5*time.Second {
		t.Errorf("getEnvAsDuration() = %v, want 5s", got)
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", DBName: "refiner",
	}}

	want := "host=db port=5432 user=u password=p dbname=refiner sslmode=disable"
	if got := cfg.GetDatabaseDSN(); got != want {
		t.Errorf("GetDatabaseDSN() = %q, want %q", got, want)
	}
}
