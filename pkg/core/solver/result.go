package solver

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zeebo/xxh3"
)

// SolveResult is the finished assignment handed to reporting and storage
type SolveResult struct {
	ChoiceScore     int                   `json:"choice_score"`
	Imbalance       int                   `json:"imbalance"`
	WithoutChoices  int                   `json:"without_choices"`
	TotalRooms      int                   `json:"total_rooms"`
	Score           int                   `json:"score"`
	Fingerprint     string                `json:"fingerprint"`
	RoomsByCategory map[string][][]string `json:"rooms_by_category"`
	People          []Person              `json:"people"`
}

// Categories returns the result's categories in sorted order
func (r *SolveResult) Categories() []string {
	categories := make([]string, 0, len(r.RoomsByCategory))
	for category := range r.RoomsByCategory {
		categories = append(categories, category)
	}
	slices.Sort(categories)
	return categories
}

// BuildResult groups a candidate's rooms by category and attaches its metrics
func BuildResult(candidate *Candidate, roster *Roster) *SolveResult {
	roomsByCategory := make(map[string][][]string)
	for _, room := range candidate.Solution {
		roomsByCategory[room.Category] = append(roomsByCategory[room.Category], slices.Clone(room.Members))
	}

	return &SolveResult{
		ChoiceScore:     candidate.Evaluation.ChoiceScore,
		Imbalance:       candidate.Evaluation.Imbalance,
		WithoutChoices:  candidate.Evaluation.WithoutChoices,
		TotalRooms:      len(candidate.Solution),
		Score:           candidate.Evaluation.Score,
		Fingerprint:     Fingerprint(candidate.Solution),
		RoomsByCategory: roomsByCategory,
		People:          roster.People(),
	}
}

// Fingerprint hashes the canonical form of a solution: members sorted within
// each room, rooms sorted within each category, categories sorted. Two
// solutions that group the same people together share a fingerprint.
func Fingerprint(solution Solution) string {
	byCategory := make(map[string][]string)
	for _, room := range solution {
		members := slices.Clone(room.Members)
		slices.Sort(members)
		byCategory[room.Category] = append(byCategory[room.Category], strings.Join(members, "\x1f"))
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	slices.Sort(categories)

	var buf strings.Builder
	for _, category := range categories {
		rooms := byCategory[category]
		slices.Sort(rooms)
		buf.WriteString(category)
		buf.WriteByte('\x1d')
		for _, room := range rooms {
			buf.WriteString(room)
			buf.WriteByte('\x1e')
		}
	}

	return fmt.Sprintf("%016x", xxh3.HashString(buf.String()))
}
