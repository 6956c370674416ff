package sheetsclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/roomies/pkg/core/model"
)

func TestBuildAssignmentRows(t *testing.T) {
	rows := BuildAssignmentRows("Summer Camp 2025", []model.Assignment{
		{Category: "Juniors", Room: 1, Name: "Alice", ChoicesInRoom: []string{"Bob", "Dan"}},
		{Category: "Juniors", Room: 1, Name: "Bob"},
	})

	require.Len(t, rows, 5)
	assert.Equal(t, []interface{}{"Summer Camp 2025"}, rows[0])
	assert.Empty(t, rows[1])
	assert.Equal(t, AssignmentHeader, rows[2])
	assert.Equal(t, []interface{}{"Juniors", 1, "Alice", "Bob, Dan"}, rows[3])
	assert.Equal(t, []interface{}{"Juniors", 1, "Bob", ""}, rows[4])
}

func TestBuildAssignmentRows_Empty(t *testing.T) {
	rows := BuildAssignmentRows("", nil)

	require.Len(t, rows, 3)
	assert.Equal(t, AssignmentHeader, rows[2])
}
