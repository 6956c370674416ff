package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/roomies/pkg/core/model"
	"github.com/jakechorley/roomies/pkg/core/solver"
)

func sampleResult() *solver.SolveResult {
	return &solver.SolveResult{
		ChoiceScore:    3,
		Imbalance:      1,
		WithoutChoices: 1,
		TotalRooms:     3,
		Fingerprint:    "00000000deadbeef",
		RoomsByCategory: map[string][][]string{
			"Seniors": {{"Carol"}},
			"Juniors": {{"Alice", "Bob"}, {"Dan", "Eve"}},
		},
		People: []solver.Person{
			{Name: "Alice", Category: "Juniors", Choices: []string{"Bob"}},
			{Name: "Bob", Category: "Juniors", Choices: []string{"Alice", "Dan"}, Avoids: []string{"Eve"}},
			{Name: "Carol", Category: "Seniors"},
			{Name: "Dan", Category: "Juniors", Choices: []string{"Alice"}},
			{Name: "Eve", Category: "Juniors"},
		},
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleResult(), Options{
		EventName:   "Summer Camp",
		GeneratedAt: time.Date(2025, 7, 1, 18, 30, 0, 0, time.UTC),
	})

	assert.True(t, strings.HasPrefix(md, "# Summer Camp\n"))
	assert.Contains(t, md, "Generated Tue 01 Jul 2025 18:30")
	assert.Contains(t, md, "- Total rooms: 3\n")
	assert.Contains(t, md, "- Choice score: 3\n")
	assert.Contains(t, md, "- People without choices: 1\n")
	assert.Contains(t, md, "## Needs attention\n\n- Dan has none of their choices in their room\n")
	assert.Contains(t, md, "- **Alice**: chose Bob; chosen by Bob\n")
	assert.Contains(t, md, "- **Bob**: chose Alice; chosen by Alice; avoids Eve\n")
	assert.Contains(t, md, "- **Carol**\n")

	// Categories are sorted
	assert.Less(t, strings.Index(md, "## Juniors rooms"), strings.Index(md, "## Seniors rooms"))
}

func TestMarkdown_DefaultTitleAndNoAttention(t *testing.T) {
	result := sampleResult()
	result.RoomsByCategory = map[string][][]string{"Seniors": {{"Carol"}}}

	md := Markdown(result, Options{})

	assert.True(t, strings.HasPrefix(md, "# Room Assignments\n"))
	assert.NotContains(t, md, "Generated")
	assert.NotContains(t, md, "Needs attention")
}

func TestMarkdown_EscapesNames(t *testing.T) {
	result := &solver.SolveResult{
		TotalRooms:      1,
		RoomsByCategory: map[string][][]string{"A": {{"*star*"}}},
		People:          []solver.Person{{Name: "*star*", Category: "A"}},
	}

	assert.Contains(t, Markdown(result, Options{}), `- **\*star\***`)
}

func TestHTML(t *testing.T) {
	doc, err := HTML(sampleResult(), Options{EventName: "Camp <2025>"})
	require.NoError(t, err)

	out := string(doc)
	assert.Contains(t, out, "<title>Camp &lt;2025&gt;</title>")
	assert.Contains(t, out, "<h2>Juniors rooms</h2>")
	assert.Contains(t, out, "<li><strong>Alice</strong>: chose Bob; chosen by Bob</li>")
}

func TestWriteHTMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.html")

	require.NoError(t, WriteHTMLFile(path, sampleResult(), Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>Room Assignments</h1>")
}

func TestAssignments(t *testing.T) {
	assignments := Assignments(sampleResult())

	assert.Equal(t, []model.Assignment{
		{Category: "Juniors", Room: 1, Name: "Alice", ChoicesInRoom: []string{"Bob"}},
		{Category: "Juniors", Room: 1, Name: "Bob", ChoicesInRoom: []string{"Alice"}},
		{Category: "Juniors", Room: 2, Name: "Dan"},
		{Category: "Juniors", Room: 2, Name: "Eve"},
		{Category: "Seniors", Room: 1, Name: "Carol"},
	}, assignments)
}
