package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/matchday/internal/app"
	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		panic(err)
	}
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewConsole(cfg.LogLevel, os.Stderr).With("component", "dev")
	logging.SetDefault(logger)
	defer logger.Sync()

	runner, err := app.NewDevRunner(cfg, logger)
	if err != nil {
		logger.Error("build dev runner", "error", err)
		os.Exit(1)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	if err := runner.Run(context.Background(), signals); err != nil {
		logger.Error("dev runner failed", "error", err)
		os.Exit(1)
	}
}
