package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/roomies/pkg/core/model"
	"github.com/jakechorley/roomies/pkg/core/solver"
)

func TestSolveRooms_SavesRun(t *testing.T) {
	store := &mockRunStore{}
	observer := &countingObserver{}
	createdAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	result, err := SolveRooms(context.Background(), &mockSource{people: seniorsPeople()}, store, zap.NewNop(), SolveRoomsOptions{
		Config:   smallSolveConfig(2),
		Observer: observer,
		Now:      func() time.Time { return createdAt },
	})
	require.NoError(t, err)

	require.True(t, result.Found)
	assert.True(t, result.Saved)
	assert.Equal(t, 2, result.Result.TotalRooms)
	assert.Equal(t, []int{2, 2}, result.Distributions["Seniors"])

	var together bool
	for _, room := range result.Result.RoomsByCategory["Seniors"] {
		if assert.Len(t, room, 2) {
			together = together || (room[0] == "X" && room[1] == "Y") || (room[0] == "Y" && room[1] == "X")
		}
	}
	assert.True(t, together, "mutual pair should share a room")

	require.Equal(t, 1, store.inserted)
	run := store.runs[0]
	assert.Equal(t, result.Run.ID, run.ID)
	assert.Equal(t, createdAt, run.CreatedAt)
	assert.Equal(t, "mock:people", run.Source)
	assert.Equal(t, 2, run.MaxRoomSize)
	assert.Equal(t, 10, run.Iterations)
	assert.Equal(t, result.Result.Fingerprint, run.Fingerprint)

	assignments := store.assignments[run.ID]
	require.Len(t, assignments, 4)
	for _, a := range assignments {
		assert.Equal(t, run.ID, a.RunID)
		assert.Equal(t, "Seniors", a.Category)
		assert.NotEmpty(t, a.ID)
	}

	assert.Equal(t, 100, observer.progress[len(observer.progress)-1])
	assert.GreaterOrEqual(t, observer.improvements, 1)
}

func TestSolveRooms_DryRun(t *testing.T) {
	result, err := SolveRooms(context.Background(), &mockSource{people: seniorsPeople()}, nil, zap.NewNop(), SolveRoomsOptions{
		Config: smallSolveConfig(2),
		DryRun: true,
		RunID:  "run-42",
	})
	require.NoError(t, err)

	assert.True(t, result.Found)
	assert.False(t, result.Saved)
	require.NotNil(t, result.Run)
	assert.Equal(t, "run-42", result.Run.ID)
}

func TestSolveRooms_RequiresStoreUnlessDryRun(t *testing.T) {
	_, err := SolveRooms(context.Background(), &mockSource{people: seniorsPeople()}, nil, zap.NewNop(), SolveRoomsOptions{
		Config: smallSolveConfig(2),
	})
	assert.Error(t, err)
}

func TestSolveRooms_NotFound(t *testing.T) {
	people := []model.Person{
		{Name: "A", Category: "C", Avoids: []string{"B"}},
		{Name: "B", Category: "C"},
	}
	store := &mockRunStore{}

	result, err := SolveRooms(context.Background(), &mockSource{people: people}, store, zap.NewNop(), SolveRoomsOptions{
		Config: smallSolveConfig(2),
	})
	require.NoError(t, err)

	assert.False(t, result.Found)
	assert.Nil(t, result.Result)
	assert.Nil(t, result.Run)
	assert.Equal(t, 0, store.inserted)
}

func TestSolveRooms_ReportsWarnings(t *testing.T) {
	people := []model.Person{
		{Name: "A", Category: "C", Choices: []string{"Ghost"}},
		{Name: "B", Category: "C"},
	}

	result, err := SolveRooms(context.Background(), &mockSource{people: people}, nil, zap.NewNop(), SolveRoomsOptions{
		Config: smallSolveConfig(2),
		DryRun: true,
	})
	require.NoError(t, err)

	require.NotEmpty(t, result.Warnings)
	assert.Equal(t, solver.WarningUnknownName, result.Warnings[0].Kind)

	// A has a choice but it can never be in the room
	require.Len(t, result.Validation, 1)
	assert.Equal(t, solver.CheckChoice, result.Validation[0].Check)
	assert.False(t, result.Validation[0].Fatal)
}

func TestSolveRooms_InvalidInput(t *testing.T) {
	people := []model.Person{
		{Name: "A", Category: "C"},
		{Name: "A", Category: "C"},
	}

	_, err := SolveRooms(context.Background(), &mockSource{people: people}, nil, zap.NewNop(), SolveRoomsOptions{
		Config: smallSolveConfig(2),
		DryRun: true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, solver.ErrDuplicateName)
}

func TestSolveRooms_SourceError(t *testing.T) {
	_, err := SolveRooms(context.Background(), &mockSource{err: errors.New("sheet missing")}, nil, zap.NewNop(), SolveRoomsOptions{
		Config: smallSolveConfig(2),
		DryRun: true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheet missing")
}

func TestSolveRooms_StoreError(t *testing.T) {
	store := &mockRunStore{insertErr: errors.New("connection refused")}

	_, err := SolveRooms(context.Background(), &mockSource{people: seniorsPeople()}, store, zap.NewNop(), SolveRoomsOptions{
		Config: smallSolveConfig(2),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save solve run")
}
