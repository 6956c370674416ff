package peoplesheet

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jakechorley/roomies/pkg/core/model"
)

// FileSource reads people from a local .csv or .xlsx file
type FileSource struct {
	Path string
}

// ListPeople reads and parses the file
func (s FileSource) ListPeople(_ context.Context) ([]model.Person, error) {
	return ReadFile(s.Path)
}

// Describe names the source for run history
func (s FileSource) Describe() string {
	return "file:" + filepath.Base(s.Path)
}

// ReadFile reads people from a file, choosing the format by extension
func ReadFile(path string) ([]model.Person, error) {
	var (
		rows [][]string
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported people file type %q (want .csv or .xlsx)", ext)
	}
	if err != nil {
		return nil, err
	}

	people, err := ParseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return people, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open people file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Rows may stop early when trailing choice columns are empty
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	// Excel writes a byte order mark at the start of UTF-8 CSV exports
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}

	return rows, nil
}

// readXLSX returns the rows of the first worksheet
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no worksheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheets[0], err)
	}

	return rows, nil
}
