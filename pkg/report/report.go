// Package report renders a solved assignment for people to read: Markdown for
// terminals and files, HTML for email and the browser.
package report

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/jakechorley/roomies/pkg/core/model"
	"github.com/jakechorley/roomies/pkg/core/solver"
)

const defaultTitle = "Room Assignments"

// Options controls the report heading
type Options struct {
	EventName   string
	GeneratedAt time.Time
}

func (o Options) title() string {
	if o.EventName == "" {
		return defaultTitle
	}
	return o.EventName
}

// Markdown renders the full report: summary, people needing attention, then
// every room per category with each member's relationships in that room
func Markdown(result *solver.SolveResult, opts Options) string {
	people := indexPeople(result.People)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", escape(opts.title()))
	if !opts.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "Generated %s\n\n", opts.GeneratedAt.Format("Mon 02 Jan 2006 15:04"))
	}

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Total rooms: %d\n", result.TotalRooms)
	fmt.Fprintf(&b, "- Choice score: %d\n", result.ChoiceScore)
	fmt.Fprintf(&b, "- Room imbalance: %d\n", result.Imbalance)
	fmt.Fprintf(&b, "- People without choices: %d\n", result.WithoutChoices)
	if result.Fingerprint != "" {
		fmt.Fprintf(&b, "- Fingerprint: `%s`\n", result.Fingerprint)
	}
	b.WriteString("\n")

	if stranded := withoutChoices(result, people); len(stranded) > 0 {
		b.WriteString("## Needs attention\n\n")
		for _, name := range stranded {
			fmt.Fprintf(&b, "- %s has none of their choices in their room\n", escape(name))
		}
		b.WriteString("\n")
	}

	for _, category := range result.Categories() {
		fmt.Fprintf(&b, "## %s rooms\n\n", escape(category))
		for i, room := range result.RoomsByCategory[category] {
			fmt.Fprintf(&b, "### Room %d\n\n", i+1)
			for _, name := range room {
				notes := describe(name, room, people)
				if len(notes) == 0 {
					fmt.Fprintf(&b, "- **%s**\n", escape(name))
					continue
				}
				fmt.Fprintf(&b, "- **%s**: %s\n", escape(name), escape(strings.Join(notes, "; ")))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// HTML renders the report as a standalone HTML document
func HTML(result *solver.SolveResult, opts Options) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(result, opts)), &body); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	var doc bytes.Buffer
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&doc, "<title>%s</title>\n", html.EscapeString(opts.title()))
	doc.WriteString("</head>\n<body>\n")
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")

	return doc.Bytes(), nil
}

// WriteHTMLFile renders the HTML report to path
func WriteHTMLFile(path string, result *solver.SolveResult, opts Options) error {
	doc, err := HTML(result, opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, doc, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Assignments flattens a result into one row per person, categories sorted
// and rooms numbered from 1 within each category
func Assignments(result *solver.SolveResult) []model.Assignment {
	people := indexPeople(result.People)

	var assignments []model.Assignment
	for _, category := range result.Categories() {
		for i, room := range result.RoomsByCategory[category] {
			for _, name := range room {
				assignments = append(assignments, model.Assignment{
					Category:      category,
					Room:          i + 1,
					Name:          name,
					ChoicesInRoom: choicesInRoom(people[name], room),
				})
			}
		}
	}
	return assignments
}

func indexPeople(people []solver.Person) map[string]*solver.Person {
	index := make(map[string]*solver.Person, len(people))
	for i := range people {
		index[people[i].Name] = &people[i]
	}
	return index
}

func choicesInRoom(person *solver.Person, room []string) []string {
	if person == nil {
		return nil
	}
	var chosen []string
	for _, choice := range person.Choices {
		if slices.Contains(room, choice) {
			chosen = append(chosen, choice)
		}
	}
	return chosen
}

// describe lists who the person chose in the room, who chose them and whom they avoid
func describe(name string, room []string, people map[string]*solver.Person) []string {
	person := people[name]
	if person == nil {
		return nil
	}

	var notes []string
	if chose := choicesInRoom(person, room); len(chose) > 0 {
		notes = append(notes, "chose "+strings.Join(chose, ", "))
	}

	var chosenBy []string
	for _, other := range room {
		if other == name {
			continue
		}
		if p := people[other]; p != nil && slices.Contains(p.Choices, name) {
			chosenBy = append(chosenBy, other)
		}
	}
	if len(chosenBy) > 0 {
		notes = append(notes, "chosen by "+strings.Join(chosenBy, ", "))
	}

	if len(person.Avoids) > 0 {
		notes = append(notes, "avoids "+strings.Join(person.Avoids, ", "))
	}

	return notes
}

func withoutChoices(result *solver.SolveResult, people map[string]*solver.Person) []string {
	var names []string
	for _, category := range result.Categories() {
		for _, room := range result.RoomsByCategory[category] {
			for _, name := range room {
				person := people[name]
				if person != nil && len(person.Choices) > 0 && len(choicesInRoom(person, room)) == 0 {
					names = append(names, name)
				}
			}
		}
	}
	return names
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	"#", `\#`,
)

func escape(s string) string {
	return markdownEscaper.Replace(s)
}
