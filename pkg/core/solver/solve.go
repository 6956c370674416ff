package solver

import (
	"context"
	"fmt"
)

// SolveConfig contains the configuration for a full solve
type SolveConfig struct {
	// MaxRoomSize is the capacity ceiling for every room
	MaxRoomSize int

	// Search configures the parallel search
	Search SearchOptions
}

// Outcome is the result of a solve. Found is false when no construction in
// the whole budget placed everyone; that is an expected outcome, not an error.
type Outcome struct {
	Found  bool
	Result *SolveResult

	// Distributions are the planned room sizes per category
	Distributions Distributions

	// Candidate is the winning solution, nil when nothing was found
	Candidate *Candidate
}

// Solve plans room sizes, runs the search and builds the result.
//
// Returns an error for invalid input (empty or duplicate names, a max room
// size below 1) before any search starts, or if ctx is cancelled mid-search.
// An empty population is trivially solved with zero rooms.
func Solve(ctx context.Context, people []Person, cfg SolveConfig, observer Observer) (*Outcome, error) {
	roster, err := NewRoster(people)
	if err != nil {
		return nil, fmt.Errorf("invalid people list: %w", err)
	}

	dist, err := PlanDistributions(roster, cfg.MaxRoomSize)
	if err != nil {
		return nil, err
	}

	if roster.Len() == 0 {
		return &Outcome{
			Found: true,
			Result: &SolveResult{
				RoomsByCategory: map[string][][]string{},
				People:          []Person{},
				Fingerprint:     Fingerprint(nil),
			},
			Distributions: dist,
		}, nil
	}

	best, err := Search(ctx, roster, dist, cfg.Search, observer)
	if err != nil {
		return nil, fmt.Errorf("search interrupted: %w", err)
	}

	outcome := &Outcome{
		Found:         best != nil,
		Distributions: dist,
		Candidate:     best,
	}
	if best != nil {
		outcome.Result = BuildResult(best, roster)
	}

	return outcome, nil
}
