package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/roomies/pkg/core/model"
	"github.com/jakechorley/roomies/pkg/core/solver"
)

// AnalysisResult summarises a people list before solving
type AnalysisResult struct {
	People     int
	ByCategory map[string]int
	Warnings   []solver.ConstraintWarning
}

// AnalyzeConstraints reads the people and reports preferences that cannot be met
func AnalyzeConstraints(ctx context.Context, source PeopleSource, logger *zap.Logger) (*AnalysisResult, error) {
	logger.Debug("Fetching people", zap.String("source", source.Describe()))
	people, err := source.ListPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	byCategory := make(map[string]int)
	for _, p := range people {
		byCategory[p.Category]++
	}

	warnings := solver.AnalyzeConstraints(toSolverPeople(people))
	logger.Debug("Analyzed constraints", zap.Int("people", len(people)), zap.Int("warnings", len(warnings)))

	return &AnalysisResult{
		People:     len(people),
		ByCategory: byCategory,
		Warnings:   warnings,
	}, nil
}

// ListPeople reads the people sorted by category, then name
func ListPeople(ctx context.Context, source PeopleSource, logger *zap.Logger) ([]model.Person, error) {
	logger.Debug("Fetching people", zap.String("source", source.Describe()))
	people, err := source.ListPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	sortPeople(people)
	return people, nil
}
