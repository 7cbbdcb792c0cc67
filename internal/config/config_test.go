package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/matchday/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("PREDICTOR_SEED", "")
	t.Setenv("DEV_STAGGER", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":3000" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.DataDir != "data" || cfg.PublicDataDir != "public/data" {
		t.Fatalf("unexpected data dirs: %q %q", cfg.DataDir, cfg.PublicDataDir)
	}
	if cfg.PredictorSeed != 0 {
		t.Fatalf("expected unseeded predictor by default, got %d", cfg.PredictorSeed)
	}
	if cfg.DevStagger != 2*time.Second {
		t.Fatalf("expected 2s stagger, got %s", cfg.DevStagger)
	}
	if cfg.HasOpenAIKey() {
		t.Fatalf("expected no api key")
	}
	if cfg.ChatProbeCacheTTL != 0 {
		t.Fatalf("expected probe cache disabled by default, got %s", cfg.ChatProbeCacheTTL)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoad_ParsesOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("OPENAI_API_KEY", "  sk-test  ")
	t.Setenv("OPENAI_TIMEOUT", "4s")
	t.Setenv("PREDICTOR_SEED", "42")
	t.Setenv("CHAT_PROBE_CACHE_TTL", "24h")
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Fatalf("expected trimmed api key, got %q", cfg.OpenAIAPIKey)
	}
	if cfg.OpenAITimeout != 4*time.Second {
		t.Fatalf("unexpected OpenAITimeout: %s", cfg.OpenAITimeout)
	}
	if cfg.PredictorSeed != 42 {
		t.Fatalf("unexpected PredictorSeed: %d", cfg.PredictorSeed)
	}
	if cfg.ChatProbeCacheTTL != 24*time.Hour {
		t.Fatalf("unexpected ChatProbeCacheTTL: %s", cfg.ChatProbeCacheTTL)
	}
	if cfg.LogLevel.String() != "warn" {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel.String())
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "negative seed", key: "PREDICTOR_SEED", value: "-1"},
		{name: "zero timeout", key: "OPENAI_TIMEOUT", value: "0s"},
		{name: "bad stagger", key: "DEV_STAGGER", value: "soon"},
		{name: "circuit failure count", key: "OPENAI_CIRCUIT_FAILURE_COUNT", value: "0"},
		{name: "negative cache ttl", key: "CHAT_PROBE_CACHE_TTL", value: "-1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	if err := os.WriteFile(file, []byte("MATCHDAY_TEST_A=from-file\nMATCHDAY_TEST_B=from-file\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Setenv("MATCHDAY_TEST_A", "from-env")
	t.Setenv("MATCHDAY_TEST_B", "")
	os.Unsetenv("MATCHDAY_TEST_B")

	if err := LoadDotEnv(file); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("MATCHDAY_TEST_A"); got != "from-env" {
		t.Fatalf("expected env value to win, got %q", got)
	}
	if got := os.Getenv("MATCHDAY_TEST_B"); got != "from-file" {
		t.Fatalf("expected dotenv value, got %q", got)
	}
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing dotenv to be ignored, got %v", err)
	}
}
