package core

import (
	"slices"
	"strings"
)

const postponedSuffix = " (Postponed)"

// The full ladder from the biggest supported bracket down to the
// final. A bracket's ladder is a suffix of this list.
var ladderNames = []string{
	"Round of 128",
	"Round of 64",
	"Round of 32",
	"Round of 16",
	"Quarterfinals",
	"Semifinals",
	"Final",
}

// A RoundLadder is the ordered list of round names implied by the
// team count. It is computed once per bracket and shared by the
// builder, the schedulers, the reseeder and the postponement engine
// so that no component carries its own copy of the round order.
type RoundLadder struct {
	names []string
}

// NewRoundLadder derives the ladder for the given roster size.
// Rosters above 128 teams are clamped to the Round of 128 ladder.
func NewRoundLadder(numTeams int) RoundLadder {
	size := 2
	start := len(ladderNames) - 1
	for start > 0 && size < numTeams {
		size <<= 1
		start -= 1
	}
	return RoundLadder{names: ladderNames[start:]}
}

func (l RoundLadder) NumRounds() int {
	return len(l.names)
}

// Names returns the round names from the first round to the final.
func (l RoundLadder) Names() []string {
	return slices.Clone(l.names)
}

// First returns the name of the opening round.
func (l RoundLadder) First() string {
	return l.names[0]
}

// Index returns the 0-based position of the round within this
// ladder, ignoring a postponement marker. Unknown rounds yield -1.
func (l RoundLadder) Index(round string) int {
	return slices.Index(l.names, StripPostponed(round))
}

// Weight returns the performance weight of a round. Later rounds
// weigh more; rounds outside the ladder weigh 1.
func (l RoundLadder) Weight(round string) int {
	i := slices.Index(ladderNames, StripPostponed(round))
	if i < 0 {
		return 1
	}
	return i + 1
}

// NumMatchesIn returns the match count of round k, 0-indexed from
// the first round.
func (l RoundLadder) NumMatchesIn(k int) int {
	return 1 << (len(l.names) - k - 1)
}

// NumMatches returns the total node count of the bracket.
func (l RoundLadder) NumMatches() int {
	return 1<<len(l.names) - 1
}

// StripPostponed removes the marker that tags rescheduled days so a
// postponed day still counts towards its original round.
func StripPostponed(round string) string {
	return strings.TrimSuffix(round, postponedSuffix)
}
