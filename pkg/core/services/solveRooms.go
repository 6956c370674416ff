package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/roomies/pkg/core/model"
	"github.com/jakechorley/roomies/pkg/core/solver"
	"github.com/jakechorley/roomies/pkg/db"
)

// PeopleSource provides the people to room
type PeopleSource interface {
	ListPeople(ctx context.Context) ([]model.Person, error)
	// Describe names the source for run history, e.g. "file:people.csv"
	Describe() string
}

// SolveRoomsOptions configures a solve
type SolveRoomsOptions struct {
	Config solver.SolveConfig

	// DryRun skips saving the run
	DryRun bool

	// RunID identifies the run (generated if empty)
	RunID string

	// Observer receives search notifications in addition to the log
	Observer solver.Observer

	// Now stamps the run (time.Now if nil)
	Now func() time.Time
}

// SolveRoomsResult is the outcome of SolveRooms
type SolveRoomsResult struct {
	// Found is false when no construction placed everyone
	Found bool

	Result        *solver.SolveResult
	Distributions solver.Distributions
	Warnings      []solver.ConstraintWarning

	// Validation holds the non-fatal findings for the winning solution
	Validation []solver.RoomValidationError

	// Run is the run record, saved unless DryRun
	Run   *db.SolveRun
	Saved bool
}

// SolveRooms reads the people, runs the search and saves the winning
// assignment to the store.
//
// Constraint warnings are logged before the search. When nothing feasible is
// found the result has Found false and nothing is saved.
func SolveRooms(ctx context.Context, source PeopleSource, store db.RunStore, logger *zap.Logger, opts SolveRoomsOptions) (*SolveRoomsResult, error) {
	if !opts.DryRun && store == nil {
		return nil, errors.New("no run store configured, use a dry run instead")
	}

	logger.Debug("Fetching people", zap.String("source", source.Describe()))
	people, err := source.ListPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	logger.Debug("Fetched people", zap.Int("count", len(people)))

	solverPeople := toSolverPeople(people)

	warnings := solver.AnalyzeConstraints(solverPeople)
	for _, w := range warnings {
		logger.Warn(w.Description, zap.String("kind", w.Kind), zap.String("person", w.Person))
	}

	observers := solver.MultiObserver{newLogObserver(logger)}
	if opts.Observer != nil {
		observers = append(observers, opts.Observer)
	}

	logger.Info("Searching for room assignments",
		zap.Int("people", len(people)),
		zap.Int("max_room_size", opts.Config.MaxRoomSize),
		zap.Int("iterations", opts.Config.Search.Iterations))

	outcome, err := solver.Solve(ctx, solverPeople, opts.Config, observers)
	if err != nil {
		return nil, err
	}

	result := &SolveRoomsResult{
		Found:         outcome.Found,
		Result:        outcome.Result,
		Distributions: outcome.Distributions,
		Warnings:      warnings,
	}

	if !outcome.Found {
		logger.Info("No feasible assignment found", zap.Int("iterations", opts.Config.Search.Iterations))
		return result, nil
	}

	if outcome.Candidate != nil {
		roster, err := solver.NewRoster(solverPeople)
		if err != nil {
			return nil, fmt.Errorf("invalid people list: %w", err)
		}
		validation := solver.ValidateSolution(outcome.Candidate.Solution, roster)
		if !solver.IsFeasible(validation) {
			return nil, fmt.Errorf("search returned an invalid solution: %s", firstFatal(validation))
		}
		result.Validation = validation
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	runID := opts.RunID
	if runID == "" {
		runID = uuid.New().String()
	}

	run := &db.SolveRun{
		ID:             runID,
		CreatedAt:      now(),
		Source:         source.Describe(),
		MaxRoomSize:    opts.Config.MaxRoomSize,
		Iterations:     opts.Config.Search.Iterations,
		ChoiceScore:    outcome.Result.ChoiceScore,
		Imbalance:      outcome.Result.Imbalance,
		WithoutChoices: outcome.Result.WithoutChoices,
		TotalRooms:     outcome.Result.TotalRooms,
		Score:          outcome.Result.Score,
		Fingerprint:    outcome.Result.Fingerprint,
	}
	result.Run = run

	logger.Info("Found room assignments",
		zap.Int("total_rooms", run.TotalRooms),
		zap.Int("choice_score", run.ChoiceScore),
		zap.Int("without_choices", run.WithoutChoices),
		zap.String("fingerprint", run.Fingerprint))

	if opts.DryRun {
		logger.Debug("Dry run, not saving")
		return result, nil
	}

	assignments := roomAssignments(run.ID, outcome.Result, func() string { return uuid.New().String() })

	logger.Debug("Saving solve run", zap.String("run_id", run.ID), zap.Int("assignments", len(assignments)))
	if err := store.InsertSolveRun(ctx, run, assignments); err != nil {
		return nil, fmt.Errorf("failed to save solve run: %w", err)
	}
	result.Saved = true

	return result, nil
}

func firstFatal(validation []solver.RoomValidationError) string {
	for _, v := range validation {
		if v.Fatal {
			return v.Description
		}
	}
	return ""
}
