package core

import (
	"errors"
	"math/bits"
	"math/rand"
	"slices"
)

// SeedingMethod selects how the roster is ordered before the first
// round is drawn.
type SeedingMethod string

const (
	SeedRandom    SeedingMethod = "random"
	SeedMergeSort SeedingMethod = "mergeSort"
	SeedQuickSort SeedingMethod = "quickSort"
	SeedManual    SeedingMethod = "manual"
)

var ErrMalformedSeeding = errors.New("seeding transform produced a malformed permutation")

// MergeSortSeeding orders the teams best ranking first with a
// stable merge sort. Teams with equal rankings keep their input
// order.
func MergeSortSeeding(teams []Team, rankingType RankingType) []Team {
	sorted := slices.Clone(teams)
	if len(sorted) <= 1 {
		return sorted
	}

	middle := len(sorted) / 2
	left := MergeSortSeeding(sorted[:middle], rankingType)
	right := MergeSortSeeding(sorted[middle:], rankingType)

	return mergeTeams(left, right, rankingType)
}

func mergeTeams(left, right []Team, rankingType RankingType) []Team {
	merged := make([]Team, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		// Take left on ties to keep the sort stable.
		if !isBetterRanked(right[j].Ranking, left[i].Ranking, rankingType) {
			merged = append(merged, left[i])
			i += 1
		} else {
			merged = append(merged, right[j])
			j += 1
		}
	}

	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)

	return merged
}

// QuickSortSeeding orders the teams best ranking first with a
// Lomuto-partition quick sort using the last element as pivot.
// Average O(n log n), worst case O(n²) on already ordered rosters;
// the trade-off versus merge sort is deliberate.
func QuickSortSeeding(teams []Team, rankingType RankingType) []Team {
	sorted := slices.Clone(teams)
	quickSortTeams(sorted, 0, len(sorted)-1, rankingType)
	return sorted
}

func quickSortTeams(teams []Team, low, high int, rankingType RankingType) {
	if low >= high {
		return
	}

	pivot := partitionTeams(teams, low, high, rankingType)
	quickSortTeams(teams, low, pivot-1, rankingType)
	quickSortTeams(teams, pivot+1, high, rankingType)
}

func partitionTeams(teams []Team, low, high int, rankingType RankingType) int {
	pivot := teams[high]
	i := low - 1

	for j := low; j < high; j++ {
		if isBetterRanked(teams[j].Ranking, pivot.Ranking, rankingType) {
			i += 1
			teams[i], teams[j] = teams[j], teams[i]
		}
	}

	teams[i+1], teams[high] = teams[high], teams[i+1]
	return i + 1
}

// RandomSeeding returns a uniformly random permutation of the teams
// using a Fisher-Yates shuffle. A nil rng draws from the shared
// package source; tests pass their own source for determinism.
func RandomSeeding(teams []Team, rng *rand.Rand) []Team {
	shuffled := slices.Clone(teams)

	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	for i := len(shuffled) - 1; i > 0; i-- {
		j := intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

// ManualSeeding keeps the teams in the order they were supplied.
func ManualSeeding(teams []Team) []Team {
	return slices.Clone(teams)
}

// AvoidTopTeamClashes remaps an order-seeded roster onto bracket
// slots so that the top seeds meet as late as possible: seed 1 at
// the top, seed 2 at the opposite end, and so on following the
// standard single-elimination placement. For team counts that are
// not a power of two the slot formula collides; colliding seeds
// fall into the lowest free slot in ascending order, which is an
// approximation rather than exact seeding theory.
//
// Rosters of fewer than 4 teams are returned unchanged.
func AvoidTopTeamClashes(teams []Team) ([]Team, error) {
	if len(teams) < 4 {
		return slices.Clone(teams), nil
	}

	numRounds := ceilLog2(len(teams))
	placed := make([]Team, len(teams))
	filled := make([]bool, len(teams))

	for i, team := range teams {
		slot := seedSlot(i+1, numRounds) - 1
		if slot < 0 || slot >= len(teams) || filled[slot] {
			slot = 0
			for slot < len(teams) && filled[slot] {
				slot += 1
			}
			if slot == len(teams) {
				return nil, ErrMalformedSeeding
			}
		}
		placed[slot] = team
		filled[slot] = true
	}

	for _, ok := range filled {
		if !ok {
			return nil, ErrMalformedSeeding
		}
	}

	return placed, nil
}

// seedSlot returns the 1-indexed bracket slot for a 1-indexed seed
// in a full bracket of 2^rounds slots, clamped to the valid range.
func seedSlot(seed, rounds int) int {
	size := 1 << rounds
	if seed == 1 {
		return 1
	}
	if seed == 2 {
		return size
	}

	power := 1
	for 1<<power < seed {
		power += 1
	}
	offset := 1<<power - seed

	var slot int
	if seed%2 == 1 {
		slot = 1<<(rounds-power+1) - (2*offset - 1)
	} else {
		slot = size - 1<<(rounds-power) + 1 + (2*offset - 2)
	}

	return max(1, min(size, slot))
}

func ceilLog2(n int) int {
	return bits.Len(uint(n - 1))
}
