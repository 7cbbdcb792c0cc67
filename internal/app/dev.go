package app

import (
	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/devrunner"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

// NewDevRunner starts the data watcher first and the web server one
// stagger later.
func NewDevRunner(cfg config.Config, logger *logging.Logger) (*devrunner.Runner, error) {
	data, err := devrunner.ParseCommand("data", cfg.DevDataCmd)
	if err != nil {
		return nil, err
	}
	web, err := devrunner.ParseCommand("web", cfg.DevWebCmd)
	if err != nil {
		return nil, err
	}

	return devrunner.NewRunner(devrunner.Config{
		Commands: []devrunner.Command{data, web},
		Stagger:  cfg.DevStagger,
		Grace:    cfg.DevShutdownGrace,
	}, logger), nil
}
