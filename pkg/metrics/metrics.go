// Package metrics records search statistics.
package metrics

import (
	"time"

	"github.com/jakechorley/roomies/pkg/core/solver"
)

// Collector receives per-chunk search statistics
type Collector interface {
	ObserveChunk(attempted, feasible int, elapsed time.Duration)
	SetBestScore(score int)
	IncImprovements()
}

// NopMetrics discards everything
type NopMetrics struct{}

// NewNop returns a collector that records nothing
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

func (*NopMetrics) ObserveChunk(int, int, time.Duration) {}
func (*NopMetrics) SetBestScore(int)                     {}
func (*NopMetrics) IncImprovements()                     {}

var (
	_ Collector              = (*NopMetrics)(nil)
	_ solver.MetricsRecorder = Collector(nil)
)
