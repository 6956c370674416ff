package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomOf(solution Solution, name string) int {
	for i, room := range solution {
		if room.Contains(name) {
			return i
		}
	}
	return -1
}

func TestConstruct_ScenarioA(t *testing.T) {
	roster := mustRoster(t, scenarioA())
	dist := mustPlan(t, roster, 2)
	require.Equal(t, []int{2, 2}, dist["Seniors"])

	// X and Y always pair up in phase 1, whatever the seed
	for seed := 0; seed < 20; seed++ {
		solution, ok := Construct(roster, dist, nil, seed)
		require.True(t, ok, "seed %d", seed)

		eval := Evaluate(solution, roster, DefaultWeights())
		assert.Equal(t, roomOf(solution, "X"), roomOf(solution, "Y"), "seed %d", seed)
		assert.Equal(t, 2, eval.ChoiceScore, "seed %d", seed)
		assert.Equal(t, 0, eval.WithoutChoices, "seed %d", seed)
	}
}

func TestConstruct_ScenarioB_AvoidersNeverShareRoom(t *testing.T) {
	// A and B even choose each other, but A avoids B
	roster := mustRoster(t, []Person{
		{Name: "A", Category: "Juniors", Choices: []string{"B"}, Avoids: []string{"B"}},
		{Name: "B", Category: "Juniors", Choices: []string{"A"}},
		{Name: "C", Category: "Juniors"},
		{Name: "D", Category: "Juniors"},
	})
	dist := mustPlan(t, roster, 2)

	feasible := 0
	for seed := 0; seed < 50; seed++ {
		solution, ok := Construct(roster, dist, nil, seed)
		if !ok {
			continue
		}
		feasible++
		assert.NotEqual(t, roomOf(solution, "A"), roomOf(solution, "B"), "seed %d", seed)
	}
	assert.Positive(t, feasible)
}

func TestConstruct_InfeasibleWhenAvoidersMustShare(t *testing.T) {
	// One room of three, so A and B cannot be separated
	roster := mustRoster(t, []Person{
		{Name: "A", Category: "Juniors", Avoids: []string{"B"}},
		{Name: "B", Category: "Juniors"},
		{Name: "C", Category: "Juniors"},
	})
	dist := mustPlan(t, roster, 3)

	for seed := 0; seed < 10; seed++ {
		solution, ok := Construct(roster, dist, nil, seed)
		assert.False(t, ok, "seed %d", seed)
		assert.Nil(t, solution)
	}
}

func TestConstruct_ScenarioD_RoomCount(t *testing.T) {
	roster := mustRoster(t, []Person{
		{Name: "a", Category: "Only", Choices: []string{"b"}},
		{Name: "b", Category: "Only", Choices: []string{"a"}},
		{Name: "c", Category: "Only", Choices: []string{"d"}},
		{Name: "d", Category: "Only"},
		{Name: "e", Category: "Only"},
	})
	dist := mustPlan(t, roster, 2)
	require.Equal(t, []int{2, 2, 1}, dist["Only"])

	for seed := 0; seed < 10; seed++ {
		solution, ok := Construct(roster, dist, nil, seed)
		require.True(t, ok)
		assert.Len(t, solution, 3)
	}
}

func TestConstruct_Invariants(t *testing.T) {
	categories := []string{"Juniors", "Seniors", "Leaders"}

	for popSeed := int64(1); popSeed <= 5; popSeed++ {
		people := randomPopulation(popSeed, 30, categories)
		roster := mustRoster(t, people)
		dist := mustPlan(t, roster, 4)

		feasible := 0
		for seed := 0; seed < 40; seed++ {
			solution, ok := Construct(roster, dist, nil, seed)
			if !ok {
				continue
			}
			feasible++

			errs := ValidateSolution(solution, roster)
			assert.True(t, IsFeasible(errs), "population %d seed %d: %v", popSeed, seed, errs)
			assert.Len(t, solution, dist.TotalRooms())

			// Room capacities sum to the population, so every room is filled exactly
			for _, room := range solution {
				assert.Len(t, room.Members, room.MaxSize)
			}
			assert.LessOrEqual(t, Imbalance(solution), len(categories))
		}
		assert.Positive(t, feasible, "population %d", popSeed)
	}
}

func TestConstruct_Deterministic(t *testing.T) {
	roster := mustRoster(t, randomPopulation(7, 24, []string{"A", "B"}))
	dist := mustPlan(t, roster, 3)
	hints := PairHints{}

	for seed := 0; seed < 10; seed++ {
		first, okFirst := Construct(roster, dist, hints, seed)
		second, okSecond := Construct(roster, dist, hints, seed)

		assert.Equal(t, okFirst, okSecond)
		assert.Equal(t, first, second, "seed %d", seed)
	}
}

func TestConstruct_HintsPickFriend(t *testing.T) {
	// A has two mutual friends; without hints A pairs with the first listed
	roster := mustRoster(t, []Person{
		{Name: "A", Category: "C", Choices: []string{"B", "D"}},
		{Name: "B", Category: "C", Choices: []string{"A"}},
		{Name: "D", Category: "C", Choices: []string{"A"}},
		{Name: "E", Category: "C"},
	})
	dist := mustPlan(t, roster, 2)

	// Even seeds process people by mutual count, so A goes first
	solution, ok := Construct(roster, dist, nil, 0)
	require.True(t, ok)
	assert.Equal(t, roomOf(solution, "A"), roomOf(solution, "B"))

	hints := PairHints{NewPairKey("A", "D"): 3}
	solution, ok = Construct(roster, dist, hints, 0)
	require.True(t, ok)
	assert.Equal(t, roomOf(solution, "A"), roomOf(solution, "D"))
}

func TestConstruct_SharedChoicesBreakTies(t *testing.T) {
	// B and D are both mutual friends of A, but D shares A's other choice E
	roster := mustRoster(t, []Person{
		{Name: "A", Category: "C", Choices: []string{"B", "D", "E"}},
		{Name: "B", Category: "C", Choices: []string{"A"}},
		{Name: "D", Category: "C", Choices: []string{"A", "E"}},
		{Name: "E", Category: "C"},
	})
	dist := mustPlan(t, roster, 2)

	solution, ok := Construct(roster, dist, nil, 0)
	require.True(t, ok)
	assert.Equal(t, roomOf(solution, "A"), roomOf(solution, "D"))
}

func TestConstruct_EmptyDistribution(t *testing.T) {
	roster := mustRoster(t, nil)

	solution, ok := Construct(roster, Distributions{}, nil, 0)
	assert.True(t, ok)
	assert.Empty(t, solution)
}
