package core

import (
	"fmt"
	"time"
)

const oneDay = 24 * time.Hour

const (
	defaultRestDayInterval  = 3
	defaultMaxMatchesPerDay = 4
)

// ScheduleDates distributes the matches over the calendar window,
// round by round in ladder order. Every round consumes enough days
// to fit its matches under MaxMatchesPerDay, with rest days between
// rounds when enabled. The returned warnings report capacity
// problems; scheduling proceeds best-effort regardless.
//
// An empty window yields no schedule.
func ScheduleDates(matches []*Match, opts Options, ladder RoundLadder) ([]ScheduleDay, []string) {
	if opts.StartDate.IsZero() || opts.EndDate.IsZero() {
		return nil, nil
	}

	restInterval := effectiveRestDayInterval(opts)
	maxPerDay := opts.MaxMatchesPerDay
	if maxPerDay <= 0 {
		maxPerDay = defaultMaxMatchesPerDay
	}

	start := truncateToDay(opts.StartDate)
	end := truncateToDay(opts.EndDate)

	totalDays := int(end.Sub(start)/oneDay) + 1
	if totalDays <= 0 {
		return nil, []string{"Warning: End date must be after start date"}
	}

	byRound, _ := groupMatchesByRound(matches)
	sortedRounds := make([]string, 0, len(byRound))
	for _, name := range ladder.names {
		if _, ok := byRound[name]; ok {
			sortedRounds = append(sortedRounds, name)
		}
	}

	daysPerRound := make(map[string]int, len(sortedRounds))
	totalDaysNeeded := 0
	for _, round := range sortedRounds {
		needed := (len(byRound[round]) + maxPerDay - 1) / maxPerDay
		daysPerRound[round] = needed
		totalDaysNeeded += needed
	}
	if opts.EnableRestDays && len(sortedRounds) > 1 {
		totalDaysNeeded += (len(sortedRounds) - 1) * restInterval
	}

	var warnings []string
	if totalDaysNeeded > totalDays {
		warnings = append(warnings, fmt.Sprintf(
			"Warning: Tournament requires %d days but only %d are available", totalDaysNeeded, totalDays))
	}

	schedule := make([]ScheduleDay, 0, min(totalDaysNeeded, totalDays))
	current := start
	dayCount := 0

	for roundIndex, round := range sortedRounds {
		if roundIndex > 0 && opts.EnableRestDays {
			for i := 0; i < restInterval && dayCount < totalDays; i++ {
				schedule = append(schedule, ScheduleDay{Date: current, IsRestDay: true})
				current = current.AddDate(0, 0, 1)
				dayCount += 1
			}
			if dayCount >= totalDays {
				return schedule, warnings
			}
		}

		roundMatches := byRound[round]
		for d := 0; d < daysPerRound[round] && dayCount < totalDays; d++ {
			lo := d * maxPerDay
			hi := min(lo+maxPerDay, len(roundMatches))

			dayMatches := make([]Match, 0, hi-lo)
			for _, m := range roundMatches[lo:hi] {
				c := *m
				c.ScheduledDate = current
				dayMatches = append(dayMatches, c)
			}

			schedule = append(schedule, ScheduleDay{
				Date:    current,
				Round:   round,
				Matches: dayMatches,
			})
			current = current.AddDate(0, 0, 1)
			dayCount += 1
		}
	}

	return schedule, warnings
}

func effectiveRestDayInterval(opts Options) int {
	if opts.RestDayInterval <= 0 {
		return defaultRestDayInterval
	}
	return opts.RestDayInterval
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return truncateToDay(a).Equal(truncateToDay(b))
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
