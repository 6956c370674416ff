package solver

// CanAddPerson checks whether a person may join a room given its current occupants.
//
// Returns false if:
//   - The person's category differs from the room's
//   - The person avoids any current member
//   - Any current member avoids the person
//
// Capacity is not checked here; callers filter rooms by space first.
func CanAddPerson(roster *Roster, personIdx int, room *Room) bool {
	person := roster.Person(personIdx)
	if person.Category != room.Category {
		return false
	}

	for _, member := range room.Members {
		if roster.Avoids(personIdx, member) {
			return false
		}

		memberIdx, ok := roster.Index(member)
		if ok && roster.Avoids(memberIdx, person.Name) {
			return false
		}
	}

	return true
}

// ChoiceScore counts, for every placed person, each of their choices sharing their room.
// Mutual choices count twice, once from each side.
func ChoiceScore(solution Solution, roster *Roster) int {
	score := 0
	for i := range solution {
		room := &solution[i]
		for _, name := range room.Members {
			idx, ok := roster.Index(name)
			if !ok {
				continue
			}
			for _, choice := range roster.Person(idx).Choices {
				if room.Contains(choice) {
					score++
				}
			}
		}
	}
	return score
}

// Imbalance sums, per category, the difference between the largest and smallest room
func Imbalance(solution Solution) int {
	type bounds struct{ min, max int }
	byCategory := make(map[string]*bounds)

	for _, room := range solution {
		size := len(room.Members)
		b, ok := byCategory[room.Category]
		if !ok {
			byCategory[room.Category] = &bounds{min: size, max: size}
			continue
		}
		b.min = min(b.min, size)
		b.max = max(b.max, size)
	}

	imbalance := 0
	for _, b := range byCategory {
		imbalance += b.max - b.min
	}
	return imbalance
}

// WithoutChoiceCount counts people who listed choices but share a room with none of them.
// People with no choices never count.
func WithoutChoiceCount(solution Solution, roster *Roster) int {
	count := 0
	for i := range solution {
		room := &solution[i]
		for _, name := range room.Members {
			idx, ok := roster.Index(name)
			if !ok {
				continue
			}
			if !hasChoiceInRoom(roster.Person(idx), room) {
				count++
			}
		}
	}
	return count
}

func hasChoiceInRoom(person *Person, room *Room) bool {
	if len(person.Choices) == 0 {
		return true
	}
	for _, choice := range person.Choices {
		if room.Contains(choice) {
			return true
		}
	}
	return false
}

// CompositeScore ranks candidates. Solutions where everyone has a choice are
// compared on choice score then balance; any choiceless person costs more than
// any achievable choice score.
func CompositeScore(choiceScore, withoutChoices, imbalance int, weights Weights) int {
	if withoutChoices == 0 {
		return choiceScore - imbalance*weights.ImbalancePenalty
	}
	return choiceScore*weights.ChoiceMultiplier -
		withoutChoices*weights.WithoutChoicePenalty -
		imbalance*weights.ChoicelessImbalancePenalty
}

// Evaluate computes every metric for the solution
func Evaluate(solution Solution, roster *Roster, weights Weights) Evaluation {
	choiceScore := ChoiceScore(solution, roster)
	imbalance := Imbalance(solution)
	withoutChoices := WithoutChoiceCount(solution, roster)

	return Evaluation{
		ChoiceScore:    choiceScore,
		Imbalance:      imbalance,
		WithoutChoices: withoutChoices,
		Score:          CompositeScore(choiceScore, withoutChoices, imbalance, weights),
	}
}
