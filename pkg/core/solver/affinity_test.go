package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPairHints(t *testing.T) {
	roster := mustRoster(t, []Person{
		{Name: "Bob", Category: "A", Choices: []string{"Alice"}},
		{Name: "Alice", Category: "A", Choices: []string{"Bob", "Carol"}},
		{Name: "Carol", Category: "A"},
		{Name: "Dave", Category: "A", Choices: []string{"Eve"}},
		{Name: "Eve", Category: "A", Choices: []string{"Dave"}},
	})

	solution := Solution{
		roomWith("A", 3, "Bob", "Alice", "Carol"),
		roomWith("A", 2, "Dave", "Eve"),
	}

	hints := ExtractPairHints(solution, roster)

	// Only mutual pairs, keyed canonically
	assert.Equal(t, PairHints{
		{A: "Alice", B: "Bob"}: 1,
		{A: "Dave", B: "Eve"}:  1,
	}, hints)
	assert.Equal(t, 1, hints.Weight("Bob", "Alice"))
	assert.Equal(t, 0, hints.Weight("Alice", "Carol"))
}

func TestExtractPairHints_MutualPairsApart(t *testing.T) {
	roster := mustRoster(t, scenarioA())
	solution := Solution{
		roomWith("Seniors", 2, "X", "Z"),
		roomWith("Seniors", 2, "Y", "W"),
	}

	assert.Empty(t, ExtractPairHints(solution, roster))
}

func TestPairHints_NilWeight(t *testing.T) {
	var hints PairHints
	assert.Equal(t, 0, hints.Weight("a", "b"))
}

func TestNewPairKey_Canonical(t *testing.T) {
	assert.Equal(t, NewPairKey("b", "a"), NewPairKey("a", "b"))
	assert.Equal(t, PairKey{A: "a", B: "b"}, NewPairKey("b", "a"))
}
