package solver

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidRoomSize is returned when rooms cannot hold anyone but people need rooms
var ErrInvalidRoomSize = errors.New("invalid max room size")

// Distributions maps each category to its target room sizes, largest first
type Distributions map[string][]int

// Categories returns the categories of the distribution in sorted order
func (d Distributions) Categories() []string {
	categories := make([]string, 0, len(d))
	for category := range d {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// TotalRooms returns the number of rooms across all categories
func (d Distributions) TotalRooms() int {
	total := 0
	for _, sizes := range d {
		total += len(sizes)
	}
	return total
}

// PlanRoomSizes splits a population into the fewest rooms of at most maxSize,
// as evenly as possible.
//
// Returns:
//   - An empty slice when population is 0 or maxSize is below 1
//   - ceil(population/maxSize) sizes, each floor(n/k) or floor(n/k)+1, sorted descending
//
// Callers that need to reject maxSize < 1 use PlanDistributions.
func PlanRoomSizes(population, maxSize int) []int {
	if population <= 0 || maxSize < 1 {
		return []int{}
	}

	numRooms := (population + maxSize - 1) / maxSize
	baseSize := population / numRooms
	extra := population % numRooms

	// The first `extra` rooms take one more person, so the slice is already descending
	sizes := make([]int, numRooms)
	for i := range sizes {
		if i < extra {
			sizes[i] = baseSize + 1
		} else {
			sizes[i] = baseSize
		}
	}

	return sizes
}

// PlanDistributions computes the room sizes for every category in the roster.
//
// Returns ErrInvalidRoomSize (naming the first affected category) if maxSize
// is below 1 and any category has people.
func PlanDistributions(roster *Roster, maxSize int) (Distributions, error) {
	counts := roster.CategoryCounts()
	dist := make(Distributions, len(counts))

	for _, category := range roster.Categories() {
		count := counts[category]
		if maxSize < 1 {
			return nil, fmt.Errorf("%w: category %q has %d people but max room size is %d",
				ErrInvalidRoomSize, category, count, maxSize)
		}
		dist[category] = PlanRoomSizes(count, maxSize)
	}

	return dist, nil
}
