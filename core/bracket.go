package core

import (
	"errors"
	"fmt"
)

var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrNotAContestant = errors.New("winner is not a contestant of the match")
)

// BuildBracket allocates the full match tree for the seeded roster.
// Round k holds 2^(R-k-1) matches; match i of a round feeds slot
// top/bottom of match i/2 in the following round. The first round
// is filled pairwise from the seeded order and byes are propagated
// before the bracket is returned.
func BuildBracket(seeded []Team, ladder RoundLadder) []*Match {
	matches := make([]*Match, 0, ladder.NumMatches())

	for roundIndex, roundName := range ladder.names {
		numMatches := ladder.NumMatchesIn(roundIndex)
		for matchIndex := 0; matchIndex < numMatches; matchIndex++ {
			m := &Match{
				ID:          formatMatchID(roundIndex, matchIndex),
				MatchNumber: matchIndex + 1,
				Round:       roundName,
				Venue:       1,
				Status:      StatusPending,
				Position:    PositionTop,
			}
			if matchIndex%2 != 0 {
				m.Position = PositionBottom
			}
			if roundIndex < ladder.NumRounds()-1 {
				m.NextMatchID = formatMatchID(roundIndex+1, matchIndex/2)
			}
			matches = append(matches, m)
		}
	}

	firstRound := matches[:ladder.NumMatchesIn(0)]
	for i, m := range firstRound {
		if 2*i < len(seeded) {
			m.Team1ID = seeded[2*i].ID
		}
		if 2*i+1 < len(seeded) {
			m.Team2ID = seeded[2*i+1].ID
		}
	}

	propagateByes(matches, NewBracketGraph(matches))

	return matches
}

// propagateByes forwards the sole occupant of every one-sided match
// into its successor slot. It runs to fixpoint because forwarding a
// team can turn the successor into a bye of its own when the
// bracket size is not a power of two.
func propagateByes(matches []*Match, bracket *BracketGraph) {
	for changed := true; changed; {
		changed = false
		for _, m := range matches {
			soleTeam := m.SoleTeam()
			if soleTeam == 0 {
				continue
			}
			next := bracket.Successor(m)
			if next == nil {
				continue
			}
			if forwardTeam(next, m.Position, soleTeam) {
				changed = true
			}
		}
	}
}

// forwardTeam places the team into the successor slot indicated by
// position and reports whether the slot changed.
func forwardTeam(next *Match, position SlotPosition, teamID int) bool {
	if position == PositionTop {
		if next.Team1ID == teamID {
			return false
		}
		next.Team1ID = teamID
		return true
	}

	if next.Team2ID == teamID {
		return false
	}
	next.Team2ID = teamID
	return true
}

// ApplyResult records the winner of a match and forwards them into
// the successor slot. The input list is left untouched; callers
// replace their state with the returned snapshot.
func ApplyResult(matches []*Match, matchID string, winnerID int) ([]*Match, error) {
	updated := cloneMatches(matches)

	m := matchByID(updated, matchID)
	if m == nil {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	if !m.ContainsTeam(winnerID) {
		return nil, fmt.Errorf("%w: team %d in match %s", ErrNotAContestant, winnerID, matchID)
	}

	m.WinnerID = winnerID
	m.Status = StatusCompleted

	if next := matchByID(updated, m.NextMatchID); next != nil {
		forwardTeam(next, m.Position, winnerID)
	}

	return updated, nil
}
