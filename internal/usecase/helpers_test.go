package usecase

import (
	"time"

	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/prediction"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logging.FromZap(zap.New(core)), logs
}

// fixedPredictor returns the same prediction for every match.
type fixedPredictor struct {
	out   prediction.Prediction
	calls int
}

func (p *fixedPredictor) Predict(m match.Match) prediction.Prediction {
	p.calls++
	out := p.out
	if out.Winner == "" {
		out.Winner = m.HomeTeam
	}
	return out
}

func timeZero() time.Time {
	return time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
}
