package solver

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	// ErrEmptyName is returned when a person has no name
	ErrEmptyName = errors.New("person has an empty name")

	// ErrDuplicateName is returned when two people share a name
	ErrDuplicateName = errors.New("duplicate person name")
)

// Roster is the read-only, precomputed view of the population used by every
// construction in a solve. It replaces repeated name scans with index lookups.
type Roster struct {
	people  []Person
	byName  map[string]int
	choices []map[string]struct{}
	avoids  []map[string]struct{}

	// mutualFriends[i] lists indices of same-category people who chose i and
	// were chosen by i, in the order i listed them
	mutualFriends [][]int
}

// NewRoster builds a roster from the given people.
//
// Returns an error if any name is empty or appears more than once.
func NewRoster(people []Person) (*Roster, error) {
	r := &Roster{
		people:        slices.Clone(people),
		byName:        make(map[string]int, len(people)),
		choices:       make([]map[string]struct{}, len(people)),
		avoids:        make([]map[string]struct{}, len(people)),
		mutualFriends: make([][]int, len(people)),
	}

	for i, person := range r.people {
		if person.Name == "" {
			return nil, fmt.Errorf("%w (row %d, category %q)", ErrEmptyName, i+1, person.Category)
		}
		if _, exists := r.byName[person.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, person.Name)
		}
		r.byName[person.Name] = i

		r.choices[i] = toSet(person.Choices)
		r.avoids[i] = toSet(person.Avoids)
	}

	for i, person := range r.people {
		seen := make(map[int]bool)
		for _, choice := range person.Choices {
			j, ok := r.byName[choice]
			if !ok || j == i || seen[j] {
				continue
			}
			if r.people[j].Category != person.Category {
				continue
			}
			if _, chosen := r.choices[j][person.Name]; !chosen {
				continue
			}
			seen[j] = true
			r.mutualFriends[i] = append(r.mutualFriends[i], j)
		}
	}

	return r, nil
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

// Len returns the number of people in the roster
func (r *Roster) Len() int {
	return len(r.people)
}

// People returns a copy of the people in input order
func (r *Roster) People() []Person {
	return slices.Clone(r.people)
}

// Person returns the person at index i
func (r *Roster) Person(i int) *Person {
	return &r.people[i]
}

// Index returns the index of the named person
func (r *Roster) Index(name string) (int, bool) {
	i, ok := r.byName[name]
	return i, ok
}

// Chose reports whether person i listed name as a choice
func (r *Roster) Chose(i int, name string) bool {
	_, ok := r.choices[i][name]
	return ok
}

// Avoids reports whether person i listed name as someone to avoid
func (r *Roster) Avoids(i int, name string) bool {
	_, ok := r.avoids[i][name]
	return ok
}

// IsMutual reports whether the two named people each list the other as a choice
func (r *Roster) IsMutual(a, b string) bool {
	i, okA := r.byName[a]
	j, okB := r.byName[b]
	if !okA || !okB {
		return false
	}
	return r.Chose(i, b) && r.Chose(j, a)
}

// MutualFriends returns the indices of person i's same-category mutual friends
func (r *Roster) MutualFriends(i int) []int {
	return r.mutualFriends[i]
}

// MutualCount returns how many same-category mutual friends person i has
func (r *Roster) MutualCount(i int) int {
	return len(r.mutualFriends[i])
}

// Categories returns the distinct categories in sorted order
func (r *Roster) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, person := range r.people {
		if !seen[person.Category] {
			seen[person.Category] = true
			categories = append(categories, person.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// CategoryCounts returns the number of people per category
func (r *Roster) CategoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, person := range r.people {
		counts[person.Category]++
	}
	return counts
}
