package solver

import "time"

// Improvement describes a new global best found by the search
type Improvement struct {
	// Iteration is the number of iterations completed when the improvement was found
	Iteration      int `json:"iteration"`
	ChoiceScore    int `json:"choice_score"`
	WithoutChoices int `json:"without_choices"`
	Imbalance      int `json:"imbalance"`
	TotalScore     int `json:"total_score"`
}

// Observer receives progress notifications from the search.
// Calls are made from the coordinating goroutine only, in chunk order.
// Implementations must not block for long and must not panic.
type Observer interface {
	OnProgress(percent int)
	OnImproved(improvement Improvement)
}

// NopObserver discards all notifications
type NopObserver struct{}

func (NopObserver) OnProgress(int)         {}
func (NopObserver) OnImproved(Improvement) {}

// MultiObserver forwards every notification to each observer in order
type MultiObserver []Observer

func (m MultiObserver) OnProgress(percent int) {
	for _, o := range m {
		o.OnProgress(percent)
	}
}

func (m MultiObserver) OnImproved(improvement Improvement) {
	for _, o := range m {
		o.OnImproved(improvement)
	}
}

// MetricsRecorder records search statistics. See pkg/metrics for implementations.
type MetricsRecorder interface {
	ObserveChunk(attempted, feasible int, elapsed time.Duration)
	SetBestScore(score int)
	IncImprovements()
}

type nopMetrics struct{}

func (nopMetrics) ObserveChunk(int, int, time.Duration) {}
func (nopMetrics) SetBestScore(int)                     {}
func (nopMetrics) IncImprovements()                     {}
