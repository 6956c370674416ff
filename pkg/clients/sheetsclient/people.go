package sheetsclient

import (
	"context"
	"fmt"

	"github.com/jakechorley/roomies/pkg/core/model"
	"github.com/jakechorley/roomies/pkg/peoplesheet"
)

// PeopleSource reads the people list from one tab of a spreadsheet
type PeopleSource struct {
	client        *Client
	spreadsheetID string
	tab           string
}

// NewPeopleSource creates a people source for the given spreadsheet tab
func NewPeopleSource(client *Client, spreadsheetID, tab string) *PeopleSource {
	return &PeopleSource{
		client:        client,
		spreadsheetID: spreadsheetID,
		tab:           tab,
	}
}

// ListPeople retrieves and parses the people tab
func (s *PeopleSource) ListPeople(ctx context.Context) ([]model.Person, error) {
	values, err := s.client.GetValues(ctx, s.spreadsheetID, s.tab)
	if err != nil {
		return nil, fmt.Errorf("failed to get people data: %w", err)
	}

	people, err := peoplesheet.ParseValues(values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse people tab %q: %w", s.tab, err)
	}

	return people, nil
}

// Describe names the source for run history
func (s *PeopleSource) Describe() string {
	return fmt.Sprintf("sheet:%s/%s", s.spreadsheetID, s.tab)
}
