package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

// Config stores runtime configuration shared by every entry point.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	LogLevel       logging.Level

	HTTPAddr     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	DataDir       string
	PublicDataDir string
	MatchesFile   string
	AnalysisFile  string
	ProcessedFile string
	EnglishFile   string
	PredictorSeed uint64

	OpenAIAPIKey                string
	OpenAIBaseURL               string
	OpenAIModel                 string
	OpenAITimeout               time.Duration
	OpenAICircuitEnabled        bool
	OpenAICircuitFailureCount   int
	OpenAICircuitOpenTimeout    time.Duration
	OpenAICircuitHalfOpenMaxReq int
	ChatProbeCacheTTL           time.Duration

	PipelineSchedule string

	DevDataCmd       string
	DevWebCmd        string
	DevStagger       time.Duration
	DevShutdownGrace time.Duration

	UptraceEnabled         bool
	UptraceDSN             string
	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration
	PprofEnabled           bool
	PprofAddr              string
}

// LoadDotEnv seeds the process environment from .env files when present.
// Variables already set in the environment win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	existing := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}

	seed, err := strconv.ParseUint(getEnv("PREDICTOR_SEED", "0"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse PREDICTOR_SEED: %w", err)
	}

	openAITimeout, err := getEnvAsDuration("OPENAI_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	openAICircuitEnabled, err := strconv.ParseBool(getEnv("OPENAI_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse OPENAI_CIRCUIT_ENABLED: %w", err)
	}
	openAICircuitFailureCount, err := getEnvAsInt("OPENAI_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse OPENAI_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if openAICircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("OPENAI_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	openAICircuitOpenTimeout, err := getEnvAsDuration("OPENAI_CIRCUIT_OPEN_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	openAICircuitHalfOpenMaxReq, err := getEnvAsInt("OPENAI_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse OPENAI_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if openAICircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("OPENAI_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	chatProbeCacheTTL, err := time.ParseDuration(getEnv("CHAT_PROBE_CACHE_TTL", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CHAT_PROBE_CACHE_TTL: %w", err)
	}
	if chatProbeCacheTTL < 0 {
		return Config{}, fmt.Errorf("CHAT_PROBE_CACHE_TTL must be >= 0")
	}

	devStagger, err := getEnvAsDuration("DEV_STAGGER", "2s")
	if err != nil {
		return Config{}, err
	}
	devShutdownGrace, err := getEnvAsDuration("DEV_SHUTDOWN_GRACE", "5s")
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "matchday"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:                    logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		HTTPAddr:                    strings.TrimSpace(getEnv("APP_HTTP_ADDR", ":3000")),
		ReadTimeout:                 readTimeout,
		WriteTimeout:                writeTimeout,
		DataDir:                     strings.TrimSpace(getEnv("DATA_DIR", "data")),
		PublicDataDir:               strings.TrimSpace(getEnv("PUBLIC_DATA_DIR", "public/data")),
		MatchesFile:                 strings.TrimSpace(getEnv("MATCHES_FILE", "matches.json")),
		AnalysisFile:                strings.TrimSpace(getEnv("ANALYSIS_FILE", "analysis.json")),
		ProcessedFile:               strings.TrimSpace(getEnv("PROCESSED_FILE", "processed_matches.json")),
		EnglishFile:                 strings.TrimSpace(getEnv("ENGLISH_FILE", "english_matches.json")),
		PredictorSeed:               seed,
		OpenAIAPIKey:                strings.TrimSpace(getEnv("OPENAI_API_KEY", "")),
		OpenAIBaseURL:               strings.TrimSpace(getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1")),
		OpenAIModel:                 strings.TrimSpace(getEnv("OPENAI_MODEL", "gpt-3.5-turbo")),
		OpenAITimeout:               openAITimeout,
		OpenAICircuitEnabled:        openAICircuitEnabled,
		OpenAICircuitFailureCount:   openAICircuitFailureCount,
		OpenAICircuitOpenTimeout:    openAICircuitOpenTimeout,
		OpenAICircuitHalfOpenMaxReq: openAICircuitHalfOpenMaxReq,
		ChatProbeCacheTTL:           chatProbeCacheTTL,
		PipelineSchedule:            strings.TrimSpace(getEnv("PIPELINE_SCHEDULE", "@every 10m")),
		DevDataCmd:                  strings.TrimSpace(getEnv("DEV_DATA_CMD", "go run ./cmd/matchday watch")),
		DevWebCmd:                   strings.TrimSpace(getEnv("DEV_WEB_CMD", "go run ./cmd/api")),
		DevStagger:                  devStagger,
		DevShutdownGrace:            devShutdownGrace,
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  uptraceDSN,
		PyroscopeEnabled:            pyroscopeEnabled,
		PyroscopeServerAddress:      pyroscopeServerAddress,
		PyroscopeAuthToken:          strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:         pyroscopeUploadRate,
		PprofEnabled:                pprofEnabled,
		PprofAddr:                   strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if cfg.HTTPAddr == "" {
		return Config{}, fmt.Errorf("APP_HTTP_ADDR cannot be empty")
	}
	if cfg.DataDir == "" {
		return Config{}, fmt.Errorf("DATA_DIR cannot be empty")
	}
	if cfg.DevDataCmd == "" || cfg.DevWebCmd == "" {
		return Config{}, fmt.Errorf("DEV_DATA_CMD and DEV_WEB_CMD cannot be empty")
	}

	return cfg, nil
}

// HasOpenAIKey reports whether the chat-completion credential is configured.
func (c Config) HasOpenAIKey() bool {
	return c.OpenAIAPIKey != ""
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
