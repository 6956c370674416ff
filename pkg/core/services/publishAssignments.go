package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/roomies/pkg/core/model"
	"github.com/jakechorley/roomies/pkg/core/solver"
	"github.com/jakechorley/roomies/pkg/report"
)

// AssignmentPublisher writes assignments to a spreadsheet tab
type AssignmentPublisher interface {
	PublishAssignments(ctx context.Context, spreadsheetID, tab, title string, assignments []model.Assignment) error
}

// PublishOptions says where to publish
type PublishOptions struct {
	SpreadsheetID string
	Tab           string
	Title         string
}

// PublishAssignments writes one row per person to the configured sheet tab
func PublishAssignments(ctx context.Context, publisher AssignmentPublisher, logger *zap.Logger, result *solver.SolveResult, opts PublishOptions) error {
	if opts.SpreadsheetID == "" {
		return errors.New("no assignments spreadsheet configured")
	}
	if opts.Tab == "" {
		return errors.New("no assignments tab configured")
	}

	assignments := report.Assignments(result)

	logger.Debug("Publishing assignments",
		zap.String("spreadsheet_id", opts.SpreadsheetID),
		zap.String("tab", opts.Tab),
		zap.Int("rows", len(assignments)))

	if err := publisher.PublishAssignments(ctx, opts.SpreadsheetID, opts.Tab, opts.Title, assignments); err != nil {
		return fmt.Errorf("failed to publish assignments: %w", err)
	}

	logger.Info("Published assignments", zap.String("tab", opts.Tab), zap.Int("rows", len(assignments)))
	return nil
}
