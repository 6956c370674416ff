package services

import (
	"context"

	"github.com/jakechorley/roomies/pkg/clients/gmailclient"
	"github.com/jakechorley/roomies/pkg/core/model"
	"github.com/jakechorley/roomies/pkg/core/solver"
	"github.com/jakechorley/roomies/pkg/db"
)

// mockSource implements PeopleSource
type mockSource struct {
	people []model.Person
	err    error
}

func (m *mockSource) ListPeople(ctx context.Context) ([]model.Person, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.people, nil
}

func (m *mockSource) Describe() string {
	return "mock:people"
}

// mockRunStore implements db.RunStore
type mockRunStore struct {
	runs        []db.SolveRun
	assignments map[string][]db.RoomAssignment
	insertErr   error
	getRunsErr  error
	inserted    int
}

func (m *mockRunStore) InsertSolveRun(ctx context.Context, run *db.SolveRun, assignments []db.RoomAssignment) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted++
	m.runs = append(m.runs, *run)
	if m.assignments == nil {
		m.assignments = make(map[string][]db.RoomAssignment)
	}
	m.assignments[run.ID] = assignments
	return nil
}

func (m *mockRunStore) GetSolveRuns(ctx context.Context) ([]db.SolveRun, error) {
	if m.getRunsErr != nil {
		return nil, m.getRunsErr
	}
	return m.runs, nil
}

func (m *mockRunStore) GetRoomAssignments(ctx context.Context, runID string) ([]db.RoomAssignment, error) {
	return m.assignments[runID], nil
}

// mockPublisher implements AssignmentPublisher
type mockPublisher struct {
	spreadsheetID string
	tab           string
	title         string
	assignments   []model.Assignment
	err           error
}

func (m *mockPublisher) PublishAssignments(ctx context.Context, spreadsheetID, tab, title string, assignments []model.Assignment) error {
	if m.err != nil {
		return m.err
	}
	m.spreadsheetID = spreadsheetID
	m.tab = tab
	m.title = title
	m.assignments = assignments
	return nil
}

// mockSender implements EmailSender
type mockSender struct {
	sent []gmailclient.Email
	err  error
}

func (m *mockSender) SendEmail(ctx context.Context, email gmailclient.Email) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, email)
	return nil
}

// countingObserver records notifications
type countingObserver struct {
	progress     []int
	improvements int
}

func (o *countingObserver) OnProgress(percent int) {
	o.progress = append(o.progress, percent)
}

func (o *countingObserver) OnImproved(solver.Improvement) {
	o.improvements++
}

func seniorsPeople() []model.Person {
	return []model.Person{
		{Name: "X", Category: "Seniors", Choices: []string{"Y"}},
		{Name: "Y", Category: "Seniors", Choices: []string{"X"}},
		{Name: "Z", Category: "Seniors"},
		{Name: "W", Category: "Seniors"},
	}
}

func smallSolveConfig(maxRoomSize int) solver.SolveConfig {
	return solver.SolveConfig{
		MaxRoomSize: maxRoomSize,
		Search: solver.SearchOptions{
			Iterations: 10,
			ChunkSize:  5,
			Workers:    2,
		},
	}
}
