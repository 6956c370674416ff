package db

import "context"

// RunStore records solve runs and the assignments they produced
type RunStore interface {
	// InsertSolveRun stores the run and all of its assignments atomically
	InsertSolveRun(ctx context.Context, run *SolveRun, assignments []RoomAssignment) error

	// GetSolveRuns returns every run, newest first
	GetSolveRuns(ctx context.Context) ([]SolveRun, error)

	// GetRoomAssignments returns a run's assignments ordered by category, room and name
	GetRoomAssignments(ctx context.Context, runID string) ([]RoomAssignment, error)
}
