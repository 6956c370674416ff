package solver

import (
	"fmt"
	"slices"
)

// Warning kinds reported by AnalyzeConstraints
const (
	WarningNoChoiceInCategory = "NoChoiceInCategory"
	WarningChoicesAvoidThem   = "ChoicesAvoidThem"
	WarningUnknownName        = "UnknownName"
	WarningMutualAvoid        = "MutualAvoid"
)

// ConstraintWarning flags input that will make some preferences impossible to satisfy
type ConstraintWarning struct {
	Person      string
	Category    string
	Kind        string
	Description string
}

// AnalyzeConstraints inspects the population before solving.
//
// Reports:
//   - People with choices, none of whom are in their category
//   - People whose choices avoid them
//   - Choices or avoids naming nobody in the population
//   - Mutual choices where one side also avoids the other
//
// Duplicate names are not reported here; NewRoster rejects them.
func AnalyzeConstraints(people []Person) []ConstraintWarning {
	byName := make(map[string]*Person, len(people))
	for i := range people {
		if _, exists := byName[people[i].Name]; !exists {
			byName[people[i].Name] = &people[i]
		}
	}

	var warnings []ConstraintWarning

	for i := range people {
		person := &people[i]

		for _, name := range slices.Concat(person.Choices, person.Avoids) {
			if _, ok := byName[name]; !ok {
				warnings = append(warnings, ConstraintWarning{
					Person:      person.Name,
					Category:    person.Category,
					Kind:        WarningUnknownName,
					Description: fmt.Sprintf("%s lists %q, who is not in the list", person.Name, name),
				})
			}
		}

		if len(person.Choices) == 0 {
			continue
		}

		sameCategory := 0
		blocked := 0
		for _, choice := range person.Choices {
			other, ok := byName[choice]
			if !ok {
				continue
			}
			if other.Category == person.Category {
				sameCategory++
			}
			if slices.Contains(other.Avoids, person.Name) {
				blocked++
			}
			mutual := slices.Contains(other.Choices, person.Name)
			avoided := slices.Contains(person.Avoids, choice) || slices.Contains(other.Avoids, person.Name)
			if mutual && avoided && person.Name < choice {
				warnings = append(warnings, ConstraintWarning{
					Person:      person.Name,
					Category:    person.Category,
					Kind:        WarningMutualAvoid,
					Description: fmt.Sprintf("%s and %s choose each other but one of them also avoids the other", person.Name, choice),
				})
			}
		}

		if sameCategory == 0 {
			warnings = append(warnings, ConstraintWarning{
				Person:      person.Name,
				Category:    person.Category,
				Kind:        WarningNoChoiceInCategory,
				Description: fmt.Sprintf("%s has no choices in their category (%s)", person.Name, person.Category),
			})
		}

		if blocked > 0 {
			warnings = append(warnings, ConstraintWarning{
				Person:      person.Name,
				Category:    person.Category,
				Kind:        WarningChoicesAvoidThem,
				Description: fmt.Sprintf("%d/%d of %s's choices avoid them", blocked, len(person.Choices), person.Name),
			})
		}
	}

	return warnings
}
