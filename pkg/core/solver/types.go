package solver

import "slices"

// Person is a single member of the population being roomed.
// Choices and Avoids hold names of other people; only membership matters.
type Person struct {
	Name     string
	Category string
	Choices  []string
	Avoids   []string
}

// Room is one physical room within a candidate solution
type Room struct {
	Category string
	Members  []string
	MaxSize  int
}

// NewRoom creates an empty room for the given category and capacity
func NewRoom(category string, maxSize int) Room {
	return Room{
		Category: category,
		Members:  make([]string, 0, maxSize),
		MaxSize:  maxSize,
	}
}

// HasSpace reports whether at least n more people fit in the room
func (r *Room) HasSpace(n int) bool {
	return len(r.Members)+n <= r.MaxSize
}

// IsFull reports whether the room has reached its capacity
func (r *Room) IsFull() bool {
	return len(r.Members) >= r.MaxSize
}

// Contains reports whether name is a member of the room
func (r *Room) Contains(name string) bool {
	return slices.Contains(r.Members, name)
}

func (r *Room) add(name string) {
	r.Members = append(r.Members, name)
}

// Solution is a complete candidate assignment, one room per distribution entry
type Solution []Room

// Clone returns a deep copy of the solution
func (s Solution) Clone() Solution {
	out := make(Solution, len(s))
	for i, room := range s {
		out[i] = Room{
			Category: room.Category,
			Members:  slices.Clone(room.Members),
			MaxSize:  room.MaxSize,
		}
	}
	return out
}

// PairKey is an unordered pair of person names in canonical (lexicographic) order
type PairKey struct {
	A string
	B string
}

// NewPairKey returns the canonical key for the pair (a, b)
func NewPairKey(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

// PairHints maps mutual pairs to how often they were co-located in the incumbent solution
type PairHints map[PairKey]int

// Weight returns the hint weight for the pair, 0 if unknown
func (h PairHints) Weight(a, b string) int {
	if h == nil {
		return 0
	}
	return h[NewPairKey(a, b)]
}

// Evaluation holds every metric computed for a solution
type Evaluation struct {
	ChoiceScore    int
	Imbalance      int
	WithoutChoices int
	Score          int
}

// Candidate is a scored solution produced by the search
type Candidate struct {
	Solution   Solution
	Evaluation Evaluation

	// Iteration is the seed that produced this candidate
	Iteration int
}
