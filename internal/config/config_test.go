package config

import (
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("GEMINI_API_KEY", "test-key")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	t.Setenv("GEMINI_API_KEY", "test-key")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_GeminiKeyRequired(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when GEMINI_API_KEY is missing")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.QueryMaxRows != 100 {
		t.Fatalf("unexpected QueryMaxRows: %d", cfg.QueryMaxRows)
	}
	if cfg.QueryTimeout != 15*time.Second {
		t.Fatalf("unexpected QueryTimeout: %s", cfg.QueryTimeout)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Fatalf("unexpected GeminiModel: %q", cfg.GeminiModel)
	}
	if !cfg.GeminiCircuit.Enabled {
		t.Fatalf("expected gemini circuit enabled by default")
	}
	if cfg.DBAcquireTimeout != 3*time.Second {
		t.Fatalf("unexpected DBAcquireTimeout: %s", cfg.DBAcquireTimeout)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != time.Minute {
		t.Fatalf("unexpected cache defaults: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
}

func TestLoad_GeminiOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("GEMINI_BASE_URL", "http://localhost:9090")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("GEMINI_TIMEOUT", "5s")
	t.Setenv("GEMINI_MAX_RETRIES", "0")
	t.Setenv("GEMINI_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("GEMINI_CIRCUIT_OPEN_TIMEOUT", "45s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.GeminiBaseURL != "http://localhost:9090" {
		t.Fatalf("unexpected GeminiBaseURL: %q", cfg.GeminiBaseURL)
	}
	if cfg.GeminiModel != "gemini-2.5-pro" {
		t.Fatalf("unexpected GeminiModel: %q", cfg.GeminiModel)
	}
	if cfg.GeminiTimeout != 5*time.Second {
		t.Fatalf("unexpected GeminiTimeout: %s", cfg.GeminiTimeout)
	}
	if cfg.GeminiMaxRetries != 0 {
		t.Fatalf("unexpected GeminiMaxRetries: %d", cfg.GeminiMaxRetries)
	}
	if cfg.GeminiCircuit.FailureThreshold != 3 {
		t.Fatalf("unexpected circuit failure threshold: %d", cfg.GeminiCircuit.FailureThreshold)
	}
	if cfg.GeminiCircuit.OpenTimeout != 45*time.Second {
		t.Fatalf("unexpected circuit open timeout: %s", cfg.GeminiCircuit.OpenTimeout)
	}
}

func TestLoad_QueryBounds(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("QUERY_MAX_ROWS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for QUERY_MAX_ROWS=0")
	}

	t.Setenv("QUERY_MAX_ROWS", "250")
	t.Setenv("QUERY_TIMEOUT", "2s")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.QueryMaxRows != 250 {
		t.Fatalf("unexpected QueryMaxRows: %d", cfg.QueryMaxRows)
	}
	if cfg.QueryTimeout != 2*time.Second {
		t.Fatalf("unexpected QueryTimeout: %s", cfg.QueryTimeout)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeRequiresAddressWhenEnabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}
