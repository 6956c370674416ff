package sheetsclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/jakechorley/roomies/pkg/core/model"
)

// AssignmentHeader is the header row of a published assignments tab
var AssignmentHeader = []interface{}{"Category", "Room", "Name", "Choices in room"}

// PublishAssignments writes assignments to a tab, creating the tab if needed.
// An existing tab is cleared first so rows from a larger previous run never linger.
// The first row holds the title, the header follows a blank row.
func (c *Client) PublishAssignments(ctx context.Context, spreadsheetID, tab, title string, assignments []model.Assignment) error {
	exists, err := c.HasSheet(ctx, spreadsheetID, tab)
	if err != nil {
		return err
	}

	if exists {
		if err := c.ClearValues(ctx, spreadsheetID, tab); err != nil {
			return fmt.Errorf("failed to clear tab %q: %w", tab, err)
		}
	} else {
		if _, err := c.CreateSheet(ctx, spreadsheetID, tab); err != nil {
			return fmt.Errorf("failed to create tab %q: %w", tab, err)
		}
	}

	if err := c.UpdateValues(ctx, spreadsheetID, tab+"!A1", BuildAssignmentRows(title, assignments)); err != nil {
		return fmt.Errorf("failed to write assignments: %w", err)
	}

	return nil
}

// BuildAssignmentRows lays out the title, header and one row per person
func BuildAssignmentRows(title string, assignments []model.Assignment) [][]interface{} {
	rows := make([][]interface{}, 0, len(assignments)+3)
	rows = append(rows, []interface{}{title}, []interface{}{}, AssignmentHeader)

	for _, a := range assignments {
		rows = append(rows, []interface{}{
			a.Category,
			a.Room,
			a.Name,
			strings.Join(a.ChoicesInRoom, ", "),
		})
	}

	return rows
}
