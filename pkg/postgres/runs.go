package postgres

import (
	"context"
	"fmt"

	"github.com/jakechorley/roomies/pkg/db"
)

// InsertSolveRun stores a run and its assignments in one transaction
func (d *DB) InsertSolveRun(ctx context.Context, run *db.SolveRun, assignments []db.RoomAssignment) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO solve_run (id, created_at, source, max_room_size, iterations,
			choice_score, imbalance, without_choices, total_rooms, score, fingerprint)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, run.ID, run.CreatedAt, run.Source, run.MaxRoomSize, run.Iterations,
		run.ChoiceScore, run.Imbalance, run.WithoutChoices, run.TotalRooms, run.Score, run.Fingerprint)
	if err != nil {
		return fmt.Errorf("failed to insert solve run: %w", err)
	}

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO room_assignment (id, run_id, category, room_number, person_name)
			VALUES ($1, $2, $3, $4, $5)
		`, a.ID, a.RunID, a.Category, a.RoomNumber, a.PersonName)
		if err != nil {
			return fmt.Errorf("failed to insert assignment for %s: %w", a.PersonName, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSolveRuns retrieves every run, newest first
func (d *DB) GetSolveRuns(ctx context.Context) ([]db.SolveRun, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, created_at, source, max_room_size, iterations,
			choice_score, imbalance, without_choices, total_rooms, score, fingerprint
		FROM solve_run
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query solve runs: %w", err)
	}
	defer rows.Close()

	var runs []db.SolveRun
	for rows.Next() {
		var r db.SolveRun
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Source, &r.MaxRoomSize, &r.Iterations,
			&r.ChoiceScore, &r.Imbalance, &r.WithoutChoices, &r.TotalRooms, &r.Score, &r.Fingerprint); err != nil {
			return nil, fmt.Errorf("failed to scan solve run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating solve runs: %w", err)
	}

	return runs, nil
}

// GetRoomAssignments retrieves the assignments of one run
func (d *DB) GetRoomAssignments(ctx context.Context, runID string) ([]db.RoomAssignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, run_id, category, room_number, person_name
		FROM room_assignment
		WHERE run_id = $1
		ORDER BY category, room_number, person_name
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query room assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.RoomAssignment
	for rows.Next() {
		var a db.RoomAssignment
		if err := rows.Scan(&a.ID, &a.RunID, &a.Category, &a.RoomNumber, &a.PersonName); err != nil {
			return nil, fmt.Errorf("failed to scan room assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room assignments: %w", err)
	}

	return assignments, nil
}

var _ db.RunStore = (*DB)(nil)
