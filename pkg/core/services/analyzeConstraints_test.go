package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/roomies/pkg/core/model"
	"github.com/jakechorley/roomies/pkg/core/solver"
)

func TestAnalyzeConstraints(t *testing.T) {
	people := []model.Person{
		{Name: "A", Category: "Juniors", Choices: []string{"C"}},
		{Name: "B", Category: "Juniors"},
		{Name: "C", Category: "Seniors"},
	}

	result, err := AnalyzeConstraints(context.Background(), &mockSource{people: people}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 3, result.People)
	assert.Equal(t, map[string]int{"Juniors": 2, "Seniors": 1}, result.ByCategory)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "A", result.Warnings[0].Person)
	assert.Equal(t, solver.WarningNoChoiceInCategory, result.Warnings[0].Kind)
}

func TestAnalyzeConstraints_SourceError(t *testing.T) {
	_, err := AnalyzeConstraints(context.Background(), &mockSource{err: errors.New("boom")}, zap.NewNop())
	assert.Error(t, err)
}

func TestListPeople_Sorted(t *testing.T) {
	people := []model.Person{
		{Name: "Zoe", Category: "Seniors"},
		{Name: "Bob", Category: "Juniors"},
		{Name: "Amy", Category: "Seniors"},
		{Name: "Al", Category: "Juniors"},
	}

	sorted, err := ListPeople(context.Background(), &mockSource{people: people}, zap.NewNop())
	require.NoError(t, err)

	var names []string
	for _, p := range sorted {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Al", "Bob", "Amy", "Zoe"}, names)
}
