package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/jakechorley/roomies/pkg/db"
)

// ErrRunNotFound is returned when a requested run does not exist
var ErrRunNotFound = errors.New("solve run not found")

// RunStore is the read side of run history
type RunStore interface {
	GetSolveRuns(ctx context.Context) ([]db.SolveRun, error)
	GetRoomAssignments(ctx context.Context, runID string) ([]db.RoomAssignment, error)
}

// SolveRunView is a stored run with its rooms rebuilt
type SolveRunView struct {
	Run             db.SolveRun
	Assignments     []db.RoomAssignment
	RoomsByCategory map[string][][]string
}

// ListSolveRuns returns every stored run, newest first
func ListSolveRuns(ctx context.Context, store RunStore, logger *zap.Logger) ([]db.SolveRun, error) {
	logger.Debug("Fetching solve runs")
	runs, err := store.GetSolveRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch solve runs: %w", err)
	}

	slices.SortStableFunc(runs, func(a, b db.SolveRun) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	logger.Debug("Found solve runs", zap.Int("count", len(runs)))
	return runs, nil
}

// ViewSolveRun loads one run and its rooms. An empty runID selects the latest run.
func ViewSolveRun(ctx context.Context, store RunStore, logger *zap.Logger, runID string) (*SolveRunView, error) {
	runs, err := store.GetSolveRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch solve runs: %w", err)
	}

	var run *db.SolveRun
	if runID == "" {
		run = latestRun(runs)
		if run == nil {
			return nil, fmt.Errorf("no runs stored: %w", ErrRunNotFound)
		}
		logger.Debug("Using latest run", zap.String("run_id", run.ID))
	} else {
		idx := slices.IndexFunc(runs, func(r db.SolveRun) bool { return r.ID == runID })
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		run = &runs[idx]
	}

	assignments, err := store.GetRoomAssignments(ctx, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room assignments: %w", err)
	}
	logger.Debug("Fetched room assignments", zap.String("run_id", run.ID), zap.Int("count", len(assignments)))

	return &SolveRunView{
		Run:             *run,
		Assignments:     assignments,
		RoomsByCategory: groupAssignments(assignments),
	}, nil
}
