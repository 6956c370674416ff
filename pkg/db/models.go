package db

import "time"

// SolveRun is one completed solve and the metrics of its winning assignment
type SolveRun struct {
	ID             string
	CreatedAt      time.Time
	Source         string
	MaxRoomSize    int
	Iterations     int
	ChoiceScore    int
	Imbalance      int
	WithoutChoices int
	TotalRooms     int
	Score          int
	Fingerprint    string
}

// RoomAssignment places one person in one room of a run.
// RoomNumber is 1-based within the category.
type RoomAssignment struct {
	ID         string
	RunID      string
	Category   string
	RoomNumber int
	PersonName string
}
