package services

import (
	"slices"
	"strings"

	"github.com/jakechorley/roomies/pkg/core/model"
	"github.com/jakechorley/roomies/pkg/core/solver"
	"github.com/jakechorley/roomies/pkg/db"
)

// toSolverPeople converts people as read from a source into solver input
func toSolverPeople(people []model.Person) []solver.Person {
	out := make([]solver.Person, len(people))
	for i, p := range people {
		out[i] = solver.Person{
			Name:     p.Name,
			Category: p.Category,
			Choices:  slices.Clone(p.Choices),
			Avoids:   slices.Clone(p.Avoids),
		}
	}
	return out
}

// sortPeople orders people by category, then name
func sortPeople(people []model.Person) {
	slices.SortStableFunc(people, func(a, b model.Person) int {
		if c := strings.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
}

// roomAssignments flattens a result into one record per person
func roomAssignments(runID string, result *solver.SolveResult, newID func() string) []db.RoomAssignment {
	var assignments []db.RoomAssignment
	for _, category := range result.Categories() {
		for i, room := range result.RoomsByCategory[category] {
			for _, name := range room {
				assignments = append(assignments, db.RoomAssignment{
					ID:         newID(),
					RunID:      runID,
					Category:   category,
					RoomNumber: i + 1,
					PersonName: name,
				})
			}
		}
	}
	return assignments
}

// groupAssignments rebuilds rooms per category from stored assignments
func groupAssignments(assignments []db.RoomAssignment) map[string][][]string {
	rooms := make(map[string][][]string)
	for _, a := range assignments {
		if a.RoomNumber < 1 {
			continue
		}
		byRoom := rooms[a.Category]
		for len(byRoom) < a.RoomNumber {
			byRoom = append(byRoom, []string{})
		}
		byRoom[a.RoomNumber-1] = append(byRoom[a.RoomNumber-1], a.PersonName)
		rooms[a.Category] = byRoom
	}
	return rooms
}

// latestRun returns the most recently created run, or nil if there are none
func latestRun(runs []db.SolveRun) *db.SolveRun {
	var latest *db.SolveRun
	for i := range runs {
		if latest == nil || runs[i].CreatedAt.After(latest.CreatedAt) {
			latest = &runs[i]
		}
	}
	return latest
}
