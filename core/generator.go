package core

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	ErrNoTeams         = errors.New("no teams provided")
	ErrTeamMissingID   = errors.New("team is missing a valid id")
	ErrDuplicateTeamID = errors.New("duplicate team id")
)

// Options configures a generation run. The zero value seeds
// randomly, assigns venues round robin over a single venue and
// skips date scheduling.
type Options struct {
	SeedingMethod    SeedingMethod
	SchedulingMethod SchedulingMethod

	NumVenues  int
	VenueNames []string

	AvoidTopTeamClashes bool

	EnableDynamicReseeding bool
	WithdrawnTeams         []int

	StartDate        time.Time
	EndDate          time.Time
	EnableRestDays   bool
	RestDayInterval  int
	MaxMatchesPerDay int

	// Rand is the source for random seeding. Nil draws from the
	// shared package source.
	Rand *rand.Rand
}

// Result of a generation run. Insights is a human readable trace of
// the applied algorithms; entries prefixed with "Error:" report
// recovered failures and "Warning:" entries report capacity
// problems.
type Result struct {
	Matches  []*Match
	Insights []string
	Schedule []ScheduleDay
	Ladder   RoundLadder
}

// Generate builds the complete tournament state for the roster:
// seeding, bracket with byes, venue assignment, optional reseeding
// for pre-declared withdrawals and the optional calendar. The
// engine keeps no state between calls; every later mutation goes
// through ApplyResult, Reseed or Postpone against the returned
// snapshot.
func Generate(teams []Team, opts Options, rankingType RankingType) (*Result, error) {
	if err := validateRoster(teams); err != nil {
		return nil, err
	}

	insights := []string{"Tournament: Knockout"}

	var seeded []Team
	switch opts.SeedingMethod {
	case SeedMergeSort:
		seeded = MergeSortSeeding(teams, rankingType)
		insights = append(insights, "Seeding: Merge Sort, O(n log n)")
	case SeedQuickSort:
		seeded = QuickSortSeeding(teams, rankingType)
		insights = append(insights, "Seeding: Quick Sort, O(n log n) average")
	case SeedManual:
		seeded = ManualSeeding(teams)
		insights = append(insights, "Seeding: Manual, O(n)")
	default:
		seeded = RandomSeeding(teams, opts.Rand)
		insights = append(insights, "Seeding: Random, O(n)")
	}

	if opts.AvoidTopTeamClashes {
		placed, err := AvoidTopTeamClashes(seeded)
		if err != nil {
			insights = append(insights, "Error: Top Team Clash avoidance failed, using original seeding")
		} else {
			seeded = placed
			insights = append(insights, "Optimization: Avoid Top Team Clashes")
		}
	}

	ladder := NewRoundLadder(len(seeded))
	matches := BuildBracket(seeded, ladder)

	method := opts.SchedulingMethod
	switch method {
	case ScheduleGraphColoring:
		insights = append(insights, "Scheduling: Graph Coloring, O(n²)")
	case ScheduleHamiltonianPath:
		insights = append(insights, "Scheduling: Hamiltonian Path, O(n!)")
	default:
		method = ScheduleBasic
		insights = append(insights, "Scheduling: Basic, O(n)")
	}
	matches = AssignVenues(matches, opts.NumVenues, method)
	applyVenueNames(matches, opts.VenueNames)

	if opts.EnableDynamicReseeding && len(opts.WithdrawnTeams) > 0 {
		matches = Reseed(matches, teams, opts.WithdrawnTeams, rankingType, ladder)
		insights = append(insights, "Dynamic Reseeding: Enabled with Priority Queue")
		applyVenueNames(matches, opts.VenueNames)
	}

	var schedule []ScheduleDay
	if !opts.StartDate.IsZero() && !opts.EndDate.IsZero() {
		var warnings []string
		schedule, warnings = ScheduleDates(matches, opts, ladder)
		insights = append(insights, "Date Scheduling: Enabled")
		if opts.EnableRestDays {
			insights = append(insights, "Rest Days: Between rounds")
		}
		insights = append(insights, warnings...)
	}

	return &Result{
		Matches:  matches,
		Insights: insights,
		Schedule: schedule,
		Ladder:   ladder,
	}, nil
}

func validateRoster(teams []Team) error {
	if len(teams) == 0 {
		return ErrNoTeams
	}

	seen := make(map[int]bool, len(teams))
	for _, team := range teams {
		if team.ID <= 0 {
			return fmt.Errorf("%w: %q", ErrTeamMissingID, team.Name)
		}
		if seen[team.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateTeamID, team.ID)
		}
		seen[team.ID] = true
	}
	return nil
}

// TeamSlice builds a roster of the given size for tests and
// examples. Rankings descend so the first team is the strongest
// under HigherBetter.
func TeamSlice(numTeams int) []Team {
	teams := make([]Team, 0, numTeams)
	for i := 0; i < numTeams; i++ {
		teams = append(teams, Team{
			ID:      i + 1,
			Name:    fmt.Sprintf("Team %d", i+1),
			Ranking: float64(numTeams - i),
		})
	}
	return teams
}
