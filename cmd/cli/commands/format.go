package commands

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

// padRight pads s with spaces so its terminal display width reaches width
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// truncate shortens s to at most width display columns, marking the cut with an ellipsis
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

// columnWidth is the display width of the widest value, at least minWidth
func columnWidth(values []string, minWidth int) int {
	width := minWidth
	for _, v := range values {
		width = max(width, runewidth.StringWidth(v))
	}
	return width
}

// printTable writes rows under a header with columns aligned by display width
func printTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for col := range header {
		values := []string{header[col]}
		for _, row := range rows {
			if col < len(row) {
				values = append(values, row[col])
			}
		}
		widths[col] = columnWidth(values, 0)
	}

	writeRow := func(cells []string) {
		var line strings.Builder
		for col, cell := range cells {
			if col == len(cells)-1 {
				line.WriteString(cell)
				break
			}
			line.WriteString(padRight(cell, widths[col]+2))
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}

	writeRow(header)
	separators := make([]string, len(header))
	for col := range header {
		separators[col] = strings.Repeat("-", widths[col])
	}
	writeRow(separators)
	for _, row := range rows {
		writeRow(row)
	}
}

// printRooms lists every room per category, categories sorted
func printRooms(w io.Writer, roomsByCategory map[string][][]string) {
	categories := make([]string, 0, len(roomsByCategory))
	for category := range roomsByCategory {
		categories = append(categories, category)
	}
	slices.Sort(categories)

	for _, category := range categories {
		rooms := roomsByCategory[category]
		fmt.Fprintf(w, "\n%s (%d rooms)\n", category, len(rooms))
		label := fmt.Sprintf("Room %d", len(rooms))
		for i, room := range rooms {
			fmt.Fprintf(w, "  %s %s\n", padRight(fmt.Sprintf("Room %d", i+1), runewidth.StringWidth(label)+1), strings.Join(room, ", "))
		}
	}
}
