package core

import (
	"fmt"
	"slices"
	"time"
)

// MatchStatus is monotone from pending to completed except for the
// explicit postponement and cancellation transitions.
type MatchStatus string

const (
	StatusPending   MatchStatus = "pending"
	StatusCompleted MatchStatus = "completed"
	StatusPostponed MatchStatus = "postponed"
	StatusCancelled MatchStatus = "cancelled"
)

// SlotPosition names the successor slot that a match's winner
// fills.
type SlotPosition string

const (
	PositionTop    SlotPosition = "top"
	PositionBottom SlotPosition = "bottom"
)

// A Match is a node of the bracket tree.
//
// Team1ID or Team2ID of zero marks an empty slot; a match with
// exactly one occupied slot is a bye and its occupant advances
// automatically. A completed match always carries the id of one of
// its contestants as WinnerID.
type Match struct {
	ID          string
	MatchNumber int
	Round       string
	Team1ID     int
	Team2ID     int
	Venue       int
	VenueName   string
	Status      MatchStatus
	WinnerID    int

	// NextMatchID is empty only for the final.
	NextMatchID string
	Position    SlotPosition

	ScheduledDate  time.Time
	SequenceNumber int
}

// ContainsTeam reports whether the team occupies one of the slots.
// Always false for the empty-slot id zero.
func (m *Match) ContainsTeam(teamID int) bool {
	return teamID != 0 && (m.Team1ID == teamID || m.Team2ID == teamID)
}

// SoleTeam returns the single occupant of a bye match, or zero when
// the match has two occupants or none.
func (m *Match) SoleTeam() int {
	if m.Team1ID != 0 && m.Team2ID == 0 {
		return m.Team1ID
	}
	if m.Team1ID == 0 && m.Team2ID != 0 {
		return m.Team2ID
	}
	return 0
}

func (m *Match) String() string {
	return fmt.Sprintf("%s: %d vs. %d (%s)", m.ID, m.Team1ID, m.Team2ID, m.Status)
}

// A ScheduleDay is one calendar day of the tournament plan.
// Round is empty on rest days. The match entries are value copies
// taken at scheduling time.
type ScheduleDay struct {
	Date      time.Time
	IsRestDay bool
	Round     string
	Matches   []Match
}

func matchByID(matches []*Match, id string) *Match {
	for _, m := range matches {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func formatMatchID(roundIndex, matchIndex int) string {
	return fmt.Sprintf("r%d-m%d", roundIndex+1, matchIndex+1)
}

// Every public operation works on its own copy of the match list so
// callers never observe a half-updated bracket.
func cloneMatches(matches []*Match) []*Match {
	cloned := make([]*Match, len(matches))
	for i, m := range matches {
		c := *m
		cloned[i] = &c
	}
	return cloned
}

func cloneSchedule(schedule []ScheduleDay) []ScheduleDay {
	cloned := make([]ScheduleDay, len(schedule))
	for i, d := range schedule {
		d.Matches = slices.Clone(d.Matches)
		cloned[i] = d
	}
	return cloned
}

// groupMatchesByRound buckets the matches per round name,
// preserving both the match order within a round and the order in
// which rounds first appear.
func groupMatchesByRound(matches []*Match) (map[string][]*Match, []string) {
	byRound := make(map[string][]*Match)
	order := make([]string, 0, 8)
	for _, m := range matches {
		if _, ok := byRound[m.Round]; !ok {
			order = append(order, m.Round)
		}
		byRound[m.Round] = append(byRound[m.Round], m)
	}
	return byRound, order
}
