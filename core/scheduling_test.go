package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignVenuesBasic(t *testing.T) {
	teams := TeamSlice(8)
	matches := BuildBracket(ManualSeeding(teams), NewRoundLadder(len(teams)))

	assigned := AssignVenues(matches, 3, ScheduleBasic)

	for i, m := range assigned {
		require.Equal(t, i%3+1, m.Venue)
	}

	// The input snapshot keeps its default venue.
	require.Equal(t, 1, matches[1].Venue)
}

func TestAssignVenuesClampsVenueCount(t *testing.T) {
	teams := TeamSlice(4)
	matches := BuildBracket(ManualSeeding(teams), NewRoundLadder(len(teams)))

	assigned := AssignVenues(matches, 0, ScheduleBasic)
	for _, m := range assigned {
		require.Equal(t, 1, m.Venue)
	}
}

func TestAssignVenuesGraphColoring(t *testing.T) {
	// A 3-team bracket: the bye advances team 3 into the final, so
	// the one-sided quarter and the final conflict.
	teams := TeamSlice(3)
	matches := BuildBracket(ManualSeeding(teams), NewRoundLadder(len(teams)))

	semi2 := matchByID(matches, "r1-m2")
	final := matchByID(matches, "r2-m1")
	require.Equal(t, 3, semi2.Team1ID)
	require.Equal(t, 3, final.Team2ID)

	assigned := AssignVenues(matches, 2, ScheduleGraphColoring)

	for _, m := range assigned {
		assert.GreaterOrEqual(t, m.Venue, 1)
		assert.LessOrEqual(t, m.Venue, 2)
	}

	// Conflicting matches get different colors while two venues
	// can still hold them apart.
	require.NotEqual(t,
		matchByID(assigned, "r1-m2").Venue,
		matchByID(assigned, "r2-m1").Venue)
}

func TestAssignVenuesGraphColoringNoSharedVenueForSharedTeams(t *testing.T) {
	teams := TeamSlice(5)
	matches := BuildBracket(ManualSeeding(teams), NewRoundLadder(len(teams)))

	assigned := AssignVenues(matches, 4, ScheduleGraphColoring)

	for i := 0; i < len(assigned); i++ {
		for j := i + 1; j < len(assigned); j++ {
			if matchesConflict(assigned[i], assigned[j]) {
				assert.NotEqual(t, assigned[i].Venue, assigned[j].Venue,
					"%s and %s share a team and a venue", assigned[i].ID, assigned[j].ID)
			}
		}
	}
}

func TestAssignVenuesHamiltonianPath(t *testing.T) {
	teams := TeamSlice(8)
	ladder := NewRoundLadder(len(teams))
	matches := BuildBracket(ManualSeeding(teams), ladder)

	assigned := AssignVenues(matches, 2, ScheduleHamiltonianPath)

	byRound, order := groupMatchesByRound(assigned)
	require.Equal(t, ladder.Names(), order)

	for _, round := range order {
		roundMatches := byRound[round]

		// Sequence numbers enumerate the round's path order.
		sequence := make([]int, 0, len(roundMatches))
		for _, m := range roundMatches {
			sequence = append(sequence, m.SequenceNumber)
		}
		want := make([]int, len(roundMatches))
		for i := range want {
			want[i] = i + 1
		}
		assert.ElementsMatch(t, want, sequence, "round %s", round)

		// Venues cycle along the path.
		for _, m := range roundMatches {
			assert.Equal(t, (m.SequenceNumber-1)%2+1, m.Venue)
		}
	}
}

func TestVenueNames(t *testing.T) {
	teams := TeamSlice(4)
	matches := BuildBracket(ManualSeeding(teams), NewRoundLadder(len(teams)))
	assigned := AssignVenues(matches, 2, ScheduleBasic)

	applyVenueNames(assigned, []string{"Center Court"})

	require.Equal(t, "Center Court", assigned[0].VenueName)
	require.Equal(t, "Venue 2", assigned[1].VenueName)
}
