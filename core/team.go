package core

// RankingType fixes the direction of every ranking comparison in
// the engine.
type RankingType int

const (
	HigherBetter RankingType = iota
	LowerBetter
)

// A Team is a roster entry supplied by the caller. The engine never
// mutates teams; DynamicRanking is the one derived field, filled in
// on copies during reseeding.
//
// Ids are positive. The zero id marks an empty match slot.
type Team struct {
	ID      int
	Name    string
	Ranking float64

	// DynamicRanking is recomputed from match history by
	// ComputeDynamicRankings and only meaningful during a
	// reseeding pass.
	DynamicRanking float64
}

// Returns true when ranking a beats ranking b under the given
// ranking type.
func isBetterRanked(a, b float64, rankingType RankingType) bool {
	if rankingType == HigherBetter {
		return a > b
	}
	return a < b
}
