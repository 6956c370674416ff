package solver

import "fmt"

// Validation check names
const (
	CheckPlacement = "Placement"
	CheckCategory  = "Category"
	CheckCapacity  = "Capacity"
	CheckAvoid     = "Avoid"
	CheckChoice    = "Choice"
)

// RoomValidationError describes a problem found in a solution.
// RoomIndex is -1 for problems not tied to a single room.
type RoomValidationError struct {
	RoomIndex   int
	Category    string
	Check       string
	Description string

	// Fatal problems make the solution infeasible; the rest are warnings
	Fatal bool
}

// ValidateSolution checks a finished solution against the roster.
//
// Fatal checks:
//   - Every person is placed exactly once, and only known people are placed
//   - Every member's category matches the room's
//   - No room exceeds its capacity
//   - No two members of a room avoid each other (either direction)
//
// Warnings:
//   - People with choices who have none of them in their room
func ValidateSolution(solution Solution, roster *Roster) []RoomValidationError {
	var errors []RoomValidationError

	placements := make([]int, roster.Len())

	for roomIdx := range solution {
		room := &solution[roomIdx]

		if len(room.Members) > room.MaxSize {
			errors = append(errors, RoomValidationError{
				RoomIndex:   roomIdx,
				Category:    room.Category,
				Check:       CheckCapacity,
				Description: fmt.Sprintf("Room is overfilled: has %d people but size is %d", len(room.Members), room.MaxSize),
				Fatal:       true,
			})
		}

		for i, name := range room.Members {
			personIdx, ok := roster.Index(name)
			if !ok {
				errors = append(errors, RoomValidationError{
					RoomIndex:   roomIdx,
					Category:    room.Category,
					Check:       CheckPlacement,
					Description: fmt.Sprintf("%s is not in the roster", name),
					Fatal:       true,
				})
				continue
			}
			placements[personIdx]++

			person := roster.Person(personIdx)
			if person.Category != room.Category {
				errors = append(errors, RoomValidationError{
					RoomIndex:   roomIdx,
					Category:    room.Category,
					Check:       CheckCategory,
					Description: fmt.Sprintf("%s is in category %q", name, person.Category),
					Fatal:       true,
				})
			}

			for _, other := range room.Members[i+1:] {
				otherIdx, known := roster.Index(other)
				if roster.Avoids(personIdx, other) || (known && roster.Avoids(otherIdx, name)) {
					errors = append(errors, RoomValidationError{
						RoomIndex:   roomIdx,
						Category:    room.Category,
						Check:       CheckAvoid,
						Description: fmt.Sprintf("%s and %s must not share a room", name, other),
						Fatal:       true,
					})
				}
			}

			if !hasChoiceInRoom(person, room) {
				errors = append(errors, RoomValidationError{
					RoomIndex:   roomIdx,
					Category:    room.Category,
					Check:       CheckChoice,
					Description: fmt.Sprintf("%s has none of their %d choices in their room", name, len(person.Choices)),
				})
			}
		}
	}

	for personIdx, count := range placements {
		if count == 1 {
			continue
		}
		person := roster.Person(personIdx)
		errors = append(errors, RoomValidationError{
			RoomIndex:   -1,
			Category:    person.Category,
			Check:       CheckPlacement,
			Description: fmt.Sprintf("%s is placed %d times", person.Name, count),
			Fatal:       true,
		})
	}

	return errors
}

// IsFeasible reports whether none of the validation errors are fatal
func IsFeasible(errors []RoomValidationError) bool {
	for _, err := range errors {
		if err.Fatal {
			return false
		}
	}
	return true
}
