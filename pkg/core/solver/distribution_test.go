package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRoomSizes(t *testing.T) {
	tests := []struct {
		name       string
		population int
		maxSize    int
		expected   []int
	}{
		{"empty population", 0, 4, []int{}},
		{"exact fit", 4, 2, []int{2, 2}},
		{"one short", 5, 2, []int{2, 2, 1}},
		{"single small room", 3, 10, []int{3}},
		{"uneven spread", 10, 4, []int{4, 3, 3}},
		{"rooms of one", 3, 1, []int{1, 1, 1}},
		{"spread across many rooms", 13, 3, []int{3, 3, 3, 2, 2}},
		{"zero max size", 5, 0, []int{}},
		{"negative max size", 5, -1, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PlanRoomSizes(tt.population, tt.maxSize))
		})
	}
}

func TestPlanRoomSizes_Properties(t *testing.T) {
	for population := 0; population <= 60; population++ {
		for maxSize := 1; maxSize <= 8; maxSize++ {
			sizes := PlanRoomSizes(population, maxSize)

			if population == 0 {
				assert.Empty(t, sizes)
				continue
			}

			require.NotEmpty(t, sizes, "population %d max %d", population, maxSize)
			assert.Len(t, sizes, (population+maxSize-1)/maxSize)

			sum := 0
			for i, size := range sizes {
				sum += size
				assert.LessOrEqual(t, size, maxSize)
				assert.LessOrEqual(t, sizes[0]-size, 1, "sizes must differ by at most 1")
				if i > 0 {
					assert.GreaterOrEqual(t, sizes[i-1], size, "sizes must be sorted descending")
				}
			}
			assert.Equal(t, population, sum, "population %d max %d", population, maxSize)
		}
	}
}

func TestPlanDistributions_PerCategory(t *testing.T) {
	roster := mustRoster(t, []Person{
		{Name: "a1", Category: "A"},
		{Name: "a2", Category: "A"},
		{Name: "a3", Category: "A"},
		{Name: "a4", Category: "A"},
		{Name: "a5", Category: "A"},
		{Name: "b1", Category: "B"},
		{Name: "b2", Category: "B"},
	})

	dist, err := PlanDistributions(roster, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 2, 1}, dist["A"])
	assert.Equal(t, []int{2}, dist["B"])
	assert.Equal(t, []string{"A", "B"}, dist.Categories())
	assert.Equal(t, 4, dist.TotalRooms())
}

func TestPlanDistributions_InvalidRoomSize(t *testing.T) {
	roster := mustRoster(t, []Person{
		{Name: "a1", Category: "Juniors"},
	})

	_, err := PlanDistributions(roster, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRoomSize)
	assert.Contains(t, err.Error(), "Juniors")
}

func TestPlanDistributions_EmptyRosterAcceptsAnySize(t *testing.T) {
	roster := mustRoster(t, nil)

	dist, err := PlanDistributions(roster, 0)
	require.NoError(t, err)
	assert.Empty(t, dist)
}
