package solver

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustRoster(t *testing.T, people []Person) *Roster {
	t.Helper()
	roster, err := NewRoster(people)
	require.NoError(t, err)
	return roster
}

func mustPlan(t *testing.T, roster *Roster, maxSize int) Distributions {
	t.Helper()
	dist, err := PlanDistributions(roster, maxSize)
	require.NoError(t, err)
	return dist
}

// randomPopulation builds a reproducible population spread over the given
// categories with random choices and a sprinkling of avoids
func randomPopulation(seed int64, size int, categories []string) []Person {
	rng := rand.New(rand.NewSource(seed))

	people := make([]Person, size)
	for i := range people {
		people[i] = Person{
			Name:     fmt.Sprintf("person-%02d", i),
			Category: categories[i%len(categories)],
		}
	}

	for i := range people {
		for range rng.Intn(4) {
			j := rng.Intn(size)
			if j != i {
				people[i].Choices = append(people[i].Choices, people[j].Name)
			}
		}
		if rng.Intn(5) == 0 {
			j := rng.Intn(size)
			if j != i {
				people[i].Avoids = append(people[i].Avoids, people[j].Name)
			}
		}
	}

	return people
}

// scenarioA is four people in one category where only X and Y choose each other
func scenarioA() []Person {
	return []Person{
		{Name: "X", Category: "Seniors", Choices: []string{"Y"}},
		{Name: "Y", Category: "Seniors", Choices: []string{"X"}},
		{Name: "Z", Category: "Seniors"},
		{Name: "W", Category: "Seniors"},
	}
}

type recordingObserver struct {
	progress     []int
	improvements []Improvement
}

func (o *recordingObserver) OnProgress(percent int) {
	o.progress = append(o.progress, percent)
}

func (o *recordingObserver) OnImproved(improvement Improvement) {
	o.improvements = append(o.improvements, improvement)
}
