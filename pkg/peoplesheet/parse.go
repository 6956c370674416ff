// Package peoplesheet reads the people list from a header-indexed table,
// whether it comes from a CSV file, an Excel workbook or a Google Sheet.
package peoplesheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jakechorley/roomies/pkg/core/model"
)

// Header names, matched case-insensitively after trimming
const (
	ColumnName     = "Name"
	ColumnCategory = "Category"
	PrefixChoice   = "Choice"
	PrefixAvoid    = "Avoid"
)

// ErrEmptyTable is returned when there is no header row
var ErrEmptyTable = errors.New("table has no header row")

// Header maps the columns of a people table
type Header struct {
	Name     int
	Category int
	Choices  []int
	Avoids   []int
}

// ParseHeader locates the Name and Category columns and every Choice*/Avoid* column
func ParseHeader(row []string) (*Header, error) {
	h := &Header{Name: -1, Category: -1}

	for i, cell := range row {
		label := strings.ToLower(strings.TrimSpace(cell))
		switch {
		case label == strings.ToLower(ColumnName) && h.Name == -1:
			h.Name = i
		case label == strings.ToLower(ColumnCategory) && h.Category == -1:
			h.Category = i
		case strings.HasPrefix(label, strings.ToLower(PrefixChoice)):
			h.Choices = append(h.Choices, i)
		case strings.HasPrefix(label, strings.ToLower(PrefixAvoid)):
			h.Avoids = append(h.Avoids, i)
		}
	}

	if h.Name == -1 {
		return nil, fmt.Errorf("missing required column in header: %s", ColumnName)
	}
	if h.Category == -1 {
		return nil, fmt.Errorf("missing required column in header: %s", ColumnCategory)
	}

	return h, nil
}

// ParseRows converts a table whose first row is the header into people.
// Cells are trimmed, empty choices and avoids are dropped and rows without a
// name are skipped.
func ParseRows(rows [][]string) ([]model.Person, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	header, err := ParseHeader(rows[0])
	if err != nil {
		return nil, err
	}

	people := make([]model.Person, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := cell(row, header.Name)
		if name == "" {
			continue
		}

		people = append(people, model.Person{
			Name:     name,
			Category: cell(row, header.Category),
			Choices:  cells(row, header.Choices),
			Avoids:   cells(row, header.Avoids),
		})
	}

	return people, nil
}

// ParseValues converts Google Sheets values, which arrive as untyped cells
func ParseValues(raw [][]interface{}) ([]model.Person, error) {
	rows := make([][]string, len(raw))
	for i, rawRow := range raw {
		row := make([]string, len(rawRow))
		for j, value := range rawRow {
			if value != nil {
				row[j] = fmt.Sprint(value)
			}
		}
		rows[i] = row
	}
	return ParseRows(rows)
}

func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

func cells(row []string, indexes []int) []string {
	var values []string
	for _, index := range indexes {
		if value := cell(row, index); value != "" {
			values = append(values, value)
		}
	}
	return values
}
