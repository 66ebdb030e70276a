package core

import "math"

// teamStats accumulates per-team results over the completed
// matches.
type teamStats struct {
	matches        int
	wins           int
	roundsAdvanced int
	upsetFactor    float64
}

// ComputeDynamicRankings derives an in-tournament ranking for every
// team: the base ranking boosted by win rate, by round-weighted
// advancement and by upsets caused, where an upset is a win against
// a better-ranked opponent and its boost grows with the ranking
// gap. Teams without a completed match keep their base ranking.
//
// The input slice is not modified; the returned copies carry the
// DynamicRanking field.
func ComputeDynamicRankings(teams []Team, matches []*Match, rankingType RankingType, ladder RoundLadder) []Team {
	stats := make(map[int]*teamStats, len(teams))
	byID := make(map[int]Team, len(teams))
	for _, team := range teams {
		stats[team.ID] = &teamStats{upsetFactor: 1.0}
		byID[team.ID] = team
	}

	for _, m := range matches {
		if m.Status != StatusCompleted || m.Team1ID == 0 || m.Team2ID == 0 || m.WinnerID == 0 {
			continue
		}
		stats1, ok1 := stats[m.Team1ID]
		stats2, ok2 := stats[m.Team2ID]
		if !ok1 || !ok2 {
			continue
		}

		stats1.matches += 1
		stats2.matches += 1

		winnerID, loserID := m.Team1ID, m.Team2ID
		if m.WinnerID == m.Team2ID {
			winnerID, loserID = m.Team2ID, m.Team1ID
		} else if m.WinnerID != m.Team1ID {
			continue
		}

		winnerStats := stats[winnerID]
		winnerStats.wins += 1
		winnerStats.roundsAdvanced += ladder.Weight(m.Round)

		winner, loser := byID[winnerID], byID[loserID]
		if isBetterRanked(loser.Ranking, winner.Ranking, rankingType) {
			gap := math.Abs(winner.Ranking - loser.Ranking)
			winnerStats.upsetFactor += gap / math.Max(winner.Ranking, loser.Ranking)
		}
	}

	ranked := make([]Team, len(teams))
	for i, team := range teams {
		s := stats[team.ID]
		dynamic := team.Ranking
		if s.matches > 0 {
			winRate := float64(s.wins) / float64(s.matches)
			dynamic *= 1 + winRate
			dynamic *= 1 + float64(s.roundsAdvanced)*0.1
			dynamic *= s.upsetFactor
		}
		team.DynamicRanking = dynamic
		ranked[i] = team
	}

	return ranked
}

// Reseed resolves every match touched by the withdrawn teams and
// returns a new snapshot. Replacements are drawn best dynamic
// ranking first from the teams occupying no slot; with an empty
// pool the engine degrades to default wins, byes and cancellations
// instead of failing. Withdrawing a team that occupies no slot is a
// no-op and the operation is idempotent for a fixed withdrawn set.
//
// Round labels are never altered.
func Reseed(matches []*Match, teams []Team, withdrawnTeamIDs []int, rankingType RankingType, ladder RoundLadder) []*Match {
	updated := cloneMatches(matches)
	if len(withdrawnTeamIDs) == 0 {
		return updated
	}

	withdrawn := make(map[int]bool, len(withdrawnTeamIDs))
	for _, id := range withdrawnTeamIDs {
		withdrawn[id] = true
	}

	ranked := ComputeDynamicRankings(teams, matches, rankingType, ladder)

	occupied := make(map[int]bool)
	for _, m := range updated {
		if m.Team1ID != 0 {
			occupied[m.Team1ID] = true
		}
		if m.Team2ID != 0 {
			occupied[m.Team2ID] = true
		}
	}

	available := NewPriorityQueue(func(a, b Team) bool {
		return isBetterRanked(a.DynamicRanking, b.DynamicRanking, rankingType)
	})
	for _, team := range ranked {
		if !occupied[team.ID] && !withdrawn[team.ID] {
			available.Enqueue(team)
		}
	}

	bracket := NewBracketGraph(updated)

	for _, m := range updated {
		withdrawn1 := m.Team1ID != 0 && withdrawn[m.Team1ID]
		withdrawn2 := m.Team2ID != 0 && withdrawn[m.Team2ID]

		switch {
		case withdrawn1 && withdrawn2:
			if available.Len() >= 2 {
				replacement1, _ := available.Dequeue()
				replacement2, _ := available.Dequeue()
				m.Team1ID = replacement1.ID
				m.Team2ID = replacement2.ID
			} else if replacement, ok := available.Dequeue(); ok {
				// One replacement, the other slot becomes a bye.
				m.Team1ID = replacement.ID
				m.Team2ID = 0
				forwardBye(bracket, m)
			} else {
				m.Team1ID = 0
				m.Team2ID = 0
				m.Status = StatusCancelled
				cancelMatch(bracket, m)
			}

		case withdrawn1:
			if replacement, ok := available.Dequeue(); ok {
				m.Team1ID = replacement.ID
			} else if m.Team2ID != 0 {
				// The survivor wins by default.
				m.Team1ID = 0
				m.WinnerID = m.Team2ID
				m.Status = StatusCompleted
				forwardWinner(bracket, m, m.Team2ID)
			} else {
				m.Team1ID = 0
				m.Status = StatusCancelled
				cancelMatch(bracket, m)
			}

		case withdrawn2:
			if replacement, ok := available.Dequeue(); ok {
				m.Team2ID = replacement.ID
			} else if m.Team1ID != 0 {
				m.Team2ID = 0
				m.WinnerID = m.Team1ID
				m.Status = StatusCompleted
				forwardWinner(bracket, m, m.Team1ID)
			} else {
				m.Team2ID = 0
				m.Status = StatusCancelled
				cancelMatch(bracket, m)
			}
		}
	}

	return updated
}

// forwardBye advances the sole occupant of a bye match into the
// successor slot.
func forwardBye(bracket *BracketGraph, m *Match) {
	next := bracket.Successor(m)
	if next == nil {
		return
	}
	if teamID := m.SoleTeam(); teamID != 0 {
		forwardTeam(next, m.Position, teamID)
	}
}

func forwardWinner(bracket *BracketGraph, m *Match, winnerID int) {
	next := bracket.Successor(m)
	if next == nil {
		return
	}
	forwardTeam(next, m.Position, winnerID)
}

// cancelMatch resolves a cancellation: the sibling match's winner,
// if known, advances into both successor slots, completing the
// successor outright, and is forwarded one round further up.
func cancelMatch(bracket *BracketGraph, m *Match) {
	next := bracket.Successor(m)
	if next == nil {
		return
	}

	sibling := bracket.Sibling(m)
	if sibling == nil || sibling.WinnerID == 0 {
		return
	}

	next.Team1ID = sibling.WinnerID
	next.Team2ID = sibling.WinnerID
	next.WinnerID = sibling.WinnerID
	next.Status = StatusCompleted

	forwardWinner(bracket, next, sibling.WinnerID)
}
