package solver

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultChunkSize is the number of iterations run between progress reports
	DefaultChunkSize = 1000

	// DefaultHintRefreshInterval is how many chunks pass between pair hint refreshes
	DefaultHintRefreshInterval = 20
)

// SearchOptions configures the parallel search. Zero values select defaults.
type SearchOptions struct {
	// Iterations is the total number of candidate constructions attempted
	Iterations int

	// ChunkSize is the number of iterations per chunk (default 1000)
	ChunkSize int

	// HintRefreshInterval is the chunk cadence for regenerating pair hints
	// from the current best solution (default 20)
	HintRefreshInterval int

	// Workers is the number of goroutines per chunk (default GOMAXPROCS)
	Workers int

	// Weights are the composite score constants (default DefaultWeights)
	Weights Weights

	// Metrics receives per-chunk statistics (default no-op)
	Metrics MetricsRecorder
}

func (o SearchOptions) withDefaults() SearchOptions {
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.HintRefreshInterval <= 0 {
		o.HintRefreshInterval = DefaultHintRefreshInterval
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Weights.IsZero() {
		o.Weights = DefaultWeights()
	}
	if o.Metrics == nil {
		o.Metrics = nopMetrics{}
	}
	return o
}

// Search runs opts.Iterations independent constructions in parallel chunks
// and returns the best-scoring candidate found.
//
// Each chunk:
//  1. reports progress (iterations completed so far, as a percentage)
//  2. on refresh chunks, regenerates pair hints from the current best
//  3. runs every iteration in parallel, seeded by its iteration index
//  4. reduces to the chunk best (ties go to the lowest iteration)
//  5. replaces the global best if the chunk best scores strictly higher
//
// The global best and the hints are only touched between chunks by the
// calling goroutine. Workers share nothing but read-only inputs.
//
// Returns a nil candidate if no construction was feasible or the budget is 0.
// The context is checked between chunks; on cancellation the best so far is
// returned along with the context error.
func Search(ctx context.Context, roster *Roster, dist Distributions, opts SearchOptions, observer Observer) (*Candidate, error) {
	opts = opts.withDefaults()
	if observer == nil {
		observer = NopObserver{}
	}

	if opts.Iterations <= 0 {
		return nil, nil
	}

	numChunks := (opts.Iterations + opts.ChunkSize - 1) / opts.ChunkSize

	var best *Candidate
	hints := PairHints{}

	for chunkIdx := 0; chunkIdx < numChunks; chunkIdx++ {
		if err := ctx.Err(); err != nil {
			return best, err
		}

		start := chunkIdx * opts.ChunkSize
		end := min(start+opts.ChunkSize, opts.Iterations)

		observer.OnProgress(start * 100 / opts.Iterations)

		if chunkIdx > 0 && chunkIdx%opts.HintRefreshInterval == 0 {
			if best != nil {
				hints = ExtractPairHints(best.Solution, roster)
			} else {
				hints = PairHints{}
			}
		}

		began := time.Now()
		chunkBest, feasible := runChunk(roster, dist, hints, start, end, opts)
		opts.Metrics.ObserveChunk(end-start, feasible, time.Since(began))

		if chunkBest == nil {
			continue
		}

		if best == nil || chunkBest.Evaluation.Score > best.Evaluation.Score {
			best = chunkBest
			opts.Metrics.SetBestScore(best.Evaluation.Score)
			opts.Metrics.IncImprovements()

			observer.OnImproved(Improvement{
				Iteration:      end,
				ChoiceScore:    best.Evaluation.ChoiceScore,
				WithoutChoices: best.Evaluation.WithoutChoices,
				Imbalance:      best.Evaluation.Imbalance,
				TotalScore:     best.Evaluation.Score,
			})
		}
	}

	observer.OnProgress(100)

	return best, nil
}

type workerResult struct {
	best     *Candidate
	feasible int
}

// runChunk fans iterations [start, end) out across workers in strided order,
// each worker keeping its own best, then reduces the worker results.
func runChunk(roster *Roster, dist Distributions, hints PairHints, start, end int, opts SearchOptions) (*Candidate, int) {
	workers := min(opts.Workers, end-start)
	results := make([]workerResult, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			res := &results[w]
			for iteration := start + w; iteration < end; iteration += workers {
				solution, ok := Construct(roster, dist, hints, iteration)
				if !ok {
					continue
				}
				res.feasible++

				candidate := &Candidate{
					Solution:   solution,
					Evaluation: Evaluate(solution, roster, opts.Weights),
					Iteration:  iteration,
				}
				if outranks(candidate, res.best) {
					res.best = candidate
				}
			}
			return nil
		})
	}
	// Workers never return an error
	_ = g.Wait()

	var best *Candidate
	feasible := 0
	for _, res := range results {
		feasible += res.feasible
		if res.best != nil && outranks(res.best, best) {
			best = res.best
		}
	}

	return best, feasible
}

// outranks reports whether a should replace b as a chunk best
func outranks(a, b *Candidate) bool {
	if b == nil {
		return true
	}
	if a.Evaluation.Score != b.Evaluation.Score {
		return a.Evaluation.Score > b.Evaluation.Score
	}
	return a.Iteration < b.Iteration
}
