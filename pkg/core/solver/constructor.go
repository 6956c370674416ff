package solver

import (
	"math/rand"
	"sort"
)

// constructor holds the mutable state of a single candidate construction.
// Nothing in it is shared with other constructions.
type constructor struct {
	roster   *Roster
	hints    PairHints
	rng      *rand.Rand
	solution Solution
	placed   []bool
}

// Construct builds one complete assignment from scratch.
//
// The seed drives a random stream local to this call, so identical inputs and
// seed always produce an identical solution. Even seeds order people by their
// number of mutual friends; odd seeds shuffle them.
//
// Phase 1 seats people alongside their highest-ranked unplaced mutual friend.
// Phase 2 places everyone left in the feasible room holding most of their
// choices, breaking ties at random.
//
// Returns false if some person has no feasible room left in phase 2.
func Construct(roster *Roster, dist Distributions, hints PairHints, seed int) (Solution, bool) {
	c := &constructor{
		roster:   roster,
		hints:    hints,
		rng:      rand.New(rand.NewSource(int64(seed))),
		solution: newEmptySolution(dist),
		placed:   make([]bool, roster.Len()),
	}

	c.placeMutualPairs(seed%2 == 0)

	if !c.placeRemaining() {
		return nil, false
	}

	return c.solution, true
}

// newEmptySolution creates one empty room per distribution entry, categories in sorted order
func newEmptySolution(dist Distributions) Solution {
	solution := make(Solution, 0, dist.TotalRooms())
	for _, category := range dist.Categories() {
		for _, size := range dist[category] {
			solution = append(solution, NewRoom(category, size))
		}
	}
	return solution
}

// placeMutualPairs is phase 1. A person who cannot be paired stays unplaced
// and falls through to phase 2.
func (c *constructor) placeMutualPairs(ordered bool) {
	order := make([]int, c.roster.Len())
	for i := range order {
		order[i] = i
	}

	if ordered {
		sort.SliceStable(order, func(a, b int) bool {
			return c.roster.MutualCount(order[a]) > c.roster.MutualCount(order[b])
		})
	} else {
		c.rng.Shuffle(len(order), func(a, b int) {
			order[a], order[b] = order[b], order[a]
		})
	}

	for _, personIdx := range order {
		if c.placed[personIdx] {
			continue
		}

		for _, friendIdx := range c.rankMutualFriends(personIdx) {
			if c.placePair(personIdx, friendIdx) {
				break
			}
		}
	}
}

// rankMutualFriends returns person's unplaced mutual friends, strongest hint
// first, then by how many choices they share with the person
func (c *constructor) rankMutualFriends(personIdx int) []int {
	person := c.roster.Person(personIdx)

	type rankedFriend struct {
		index   int
		hint    int
		overlap int
	}

	var ranked []rankedFriend
	for _, friendIdx := range c.roster.MutualFriends(personIdx) {
		if c.placed[friendIdx] {
			continue
		}

		friend := c.roster.Person(friendIdx)
		overlap := 0
		for _, choice := range person.Choices {
			if c.roster.Chose(friendIdx, choice) {
				overlap++
			}
		}

		ranked = append(ranked, rankedFriend{
			index:   friendIdx,
			hint:    c.hints.Weight(person.Name, friend.Name),
			overlap: overlap,
		})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].hint != ranked[b].hint {
			return ranked[a].hint > ranked[b].hint
		}
		return ranked[a].overlap > ranked[b].overlap
	})

	friends := make([]int, len(ranked))
	for i, r := range ranked {
		friends[i] = r.index
	}
	return friends
}

// placePair seats both people in the first room, in random order, that has
// space for two and accepts each of them
func (c *constructor) placePair(personIdx, friendIdx int) bool {
	person := c.roster.Person(personIdx)
	friend := c.roster.Person(friendIdx)

	// Mutual choices can still avoid each other
	if c.roster.Avoids(personIdx, friend.Name) || c.roster.Avoids(friendIdx, person.Name) {
		return false
	}

	var candidateRooms []int
	for i := range c.solution {
		room := &c.solution[i]
		if room.Category == person.Category && room.HasSpace(2) {
			candidateRooms = append(candidateRooms, i)
		}
	}

	c.rng.Shuffle(len(candidateRooms), func(a, b int) {
		candidateRooms[a], candidateRooms[b] = candidateRooms[b], candidateRooms[a]
	})

	for _, roomIdx := range candidateRooms {
		room := &c.solution[roomIdx]
		if !CanAddPerson(c.roster, personIdx, room) || !CanAddPerson(c.roster, friendIdx, room) {
			continue
		}

		c.seat(personIdx, room)
		c.seat(friendIdx, room)
		return true
	}

	return false
}

// placeRemaining is phase 2. It fails as soon as one person has no feasible room.
func (c *constructor) placeRemaining() bool {
	var remaining []int
	for i, placed := range c.placed {
		if !placed {
			remaining = append(remaining, i)
		}
	}

	c.rng.Shuffle(len(remaining), func(a, b int) {
		remaining[a], remaining[b] = remaining[b], remaining[a]
	})

	for _, personIdx := range remaining {
		person := c.roster.Person(personIdx)

		bestCount := -1
		var bestRooms []int

		for i := range c.solution {
			room := &c.solution[i]
			if room.Category != person.Category || room.IsFull() {
				continue
			}
			if !CanAddPerson(c.roster, personIdx, room) {
				continue
			}

			choiceCount := 0
			for _, choice := range person.Choices {
				if room.Contains(choice) {
					choiceCount++
				}
			}

			switch {
			case choiceCount > bestCount:
				bestCount = choiceCount
				bestRooms = []int{i}
			case choiceCount == bestCount:
				bestRooms = append(bestRooms, i)
			}
		}

		if len(bestRooms) == 0 {
			return false
		}

		roomIdx := bestRooms[c.rng.Intn(len(bestRooms))]
		c.seat(personIdx, &c.solution[roomIdx])
	}

	return true
}

func (c *constructor) seat(personIdx int, room *Room) {
	room.add(c.roster.Person(personIdx).Name)
	c.placed[personIdx] = true
}
