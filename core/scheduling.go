package core

import "fmt"

// SchedulingMethod selects the venue assignment strategy.
type SchedulingMethod string

const (
	ScheduleBasic           SchedulingMethod = "basic"
	ScheduleGraphColoring   SchedulingMethod = "graphColoring"
	ScheduleHamiltonianPath SchedulingMethod = "hamiltonianPath"
)

const sameVenueWeight = 10

// AssignVenues distributes the matches over the venues with the
// chosen strategy and returns a new snapshot. An unknown method
// falls back to the basic round robin.
func AssignVenues(matches []*Match, numVenues int, method SchedulingMethod) []*Match {
	if numVenues < 1 {
		numVenues = 1
	}

	updated := cloneMatches(matches)
	switch method {
	case ScheduleGraphColoring:
		assignVenuesGraphColoring(updated, numVenues)
	case ScheduleHamiltonianPath:
		assignVenuesHamiltonianPath(updated, numVenues)
	default:
		assignVenuesBasic(updated, numVenues)
	}
	return updated
}

// Round robin over the venue indices, no conflict awareness.
func assignVenuesBasic(matches []*Match, numVenues int) {
	for i, m := range matches {
		m.Venue = i%numVenues + 1
	}
}

// assignVenuesGraphColoring greedily colors the conflict graph with
// the lowest color unused by already colored neighbors and folds
// the colors onto the available venues. The coloring is a
// heuristic, not a minimum coloring; conflicts are rare because a
// team plays at most one match per round.
func assignVenuesGraphColoring(matches []*Match, numVenues int) {
	conflicts := NewConflictGraph(matches)
	colors := make(map[string]int, len(matches))

	for _, m := range matches {
		used := make(map[int]bool)
		for _, neighbor := range conflicts.Neighbors(m.ID) {
			if c, ok := colors[neighbor]; ok {
				used[c] = true
			}
		}

		color := 1
		for used[color] {
			color += 1
		}

		colors[m.ID] = (color-1)%numVenues + 1
		m.Venue = colors[m.ID]
	}
}

// assignVenuesHamiltonianPath orders each round along a greedy
// approximation of a Hamiltonian path through a same-venue
// preference matrix and assigns venues and sequence numbers from
// the path order. It is not an exact path solver.
func assignVenuesHamiltonianPath(matches []*Match, numVenues int) {
	byRound, order := groupMatchesByRound(matches)
	for _, round := range order {
		sequenceRound(byRound[round], numVenues)
	}
}

func sequenceRound(roundMatches []*Match, numVenues int) {
	n := len(roundMatches)

	// Reward keeping consecutive matches at the same venue.
	weights := make([][]int, n)
	for i := range weights {
		weights[i] = make([]int, n)
		for j := range weights[i] {
			if i != j && roundMatches[i].Venue == roundMatches[j].Venue {
				weights[i][j] = sameVenueWeight
			}
		}
	}

	visited := make([]bool, n)
	path := make([]int, 0, n)
	current := 0
	path = append(path, current)
	visited[current] = true

	for len(path) < n {
		bestNext, bestWeight := -1, -1
		for i := 0; i < n; i++ {
			if !visited[i] && weights[current][i] > bestWeight {
				bestWeight = weights[current][i]
				bestNext = i
			}
		}
		current = bestNext
		path = append(path, current)
		visited[current] = true
	}

	for position, matchIndex := range path {
		roundMatches[matchIndex].Venue = position%numVenues + 1
		roundMatches[matchIndex].SequenceNumber = position + 1
	}
}

// applyVenueNames resolves the display name of every match's venue.
func applyVenueNames(matches []*Match, venueNames []string) {
	for _, m := range matches {
		m.VenueName = venueName(venueNames, m.Venue)
	}
}

func venueName(names []string, venue int) string {
	if venue >= 1 && venue <= len(names) && names[venue-1] != "" {
		return names[venue-1]
	}
	return fmt.Sprintf("Venue %d", venue)
}
