package services

import (
	"go.uber.org/zap"

	"github.com/jakechorley/roomies/pkg/core/solver"
)

// logObserver reports search progress through the logger
type logObserver struct {
	logger *zap.Logger
}

func newLogObserver(logger *zap.Logger) *logObserver {
	return &logObserver{logger: logger}
}

func (o *logObserver) OnProgress(percent int) {
	o.logger.Debug("Search progress", zap.Int("percent", percent))
}

func (o *logObserver) OnImproved(improvement solver.Improvement) {
	o.logger.Info("Found better solution",
		zap.Int("iteration", improvement.Iteration),
		zap.Int("choice_score", improvement.ChoiceScore),
		zap.Int("without_choices", improvement.WithoutChoices),
		zap.Int("imbalance", improvement.Imbalance),
		zap.Int("total_score", improvement.TotalScore))
}
