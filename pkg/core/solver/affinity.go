package solver

// ExtractPairHints records every mutual pair that shares a room in the solution.
// Each co-located mutual pair adds 1 to its canonical key; non-mutual pairs are ignored.
//
// The result replaces, never merges with, the hints used by later constructions.
func ExtractPairHints(solution Solution, roster *Roster) PairHints {
	hints := make(PairHints)

	for _, room := range solution {
		for i := 0; i < len(room.Members); i++ {
			for j := i + 1; j < len(room.Members); j++ {
				a, b := room.Members[i], room.Members[j]
				if roster.IsMutual(a, b) {
					hints[NewPairKey(a, b)]++
				}
			}
		}
	}

	return hints
}
