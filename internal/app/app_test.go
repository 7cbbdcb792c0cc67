package app

import (
	"testing"
	"time"

	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

func TestNewHTTPServer(t *testing.T) {
	cfg := config.Config{
		AppEnv:        config.EnvDev,
		ServiceName:   "matchday",
		HTTPAddr:      ":0",
		ReadTimeout:   time.Second,
		WriteTimeout:  time.Second,
		OpenAITimeout: time.Second,
	}

	srv, err := NewHTTPServer(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	if srv.Handler == nil {
		t.Fatalf("expected router to be wired")
	}

	cfg.HTTPAddr = ""
	if _, err := NewHTTPServer(cfg, nil); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestNewDataServices_Paths(t *testing.T) {
	data := NewDataServices(config.Config{
		DataDir:       "data",
		PublicDataDir: "public/data",
		MatchesFile:   "matches.json",
		AnalysisFile:  "analysis.json",
		ProcessedFile: "processed_matches.json",
		EnglishFile:   "english_matches.json",
	}, nil)

	if got := data.MatchesPath(); got != "data/matches.json" {
		t.Fatalf("unexpected matches path: %q", got)
	}
	if got := data.PublicAnalysisPath(); got != "public/data/analysis.json" {
		t.Fatalf("unexpected public analysis path: %q", got)
	}
	if data.Pipeline == nil || data.Consistency == nil {
		t.Fatalf("expected services to be wired")
	}
}

func TestNewDevRunner_RequiresCommands(t *testing.T) {
	if _, err := NewDevRunner(config.Config{DevDataCmd: "go run ./cmd/matchday watch"}, nil); err == nil {
		t.Fatalf("expected error for empty web command")
	}
	runner, err := NewDevRunner(config.Config{
		DevDataCmd: "go run ./cmd/matchday watch",
		DevWebCmd:  "go run ./cmd/api",
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("build runner: %v", err)
	}
	if runner == nil {
		t.Fatalf("expected runner")
	}
}
