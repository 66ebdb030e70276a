package core

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var ErrMatchNotScheduled = errors.New("match has no scheduled day")

// postponementSlot is the outcome of the free-date search.
type postponementSlot struct {
	date              time.Time
	needsRescheduling bool
	daysToShift       int
}

// Postpone moves a single match to a later date without breaking
// the round ordering of the calendar. The match is removed from its
// current day and placed on its own day tagged with a postponement
// marker. When no free gap exists before the next round, the later
// rounds are shifted to make room. New snapshots of both the match
// list and the schedule are returned.
func Postpone(matchID string, matches []*Match, schedule []ScheduleDay, opts Options, ladder RoundLadder) ([]*Match, []ScheduleDay, error) {
	updatedMatches := cloneMatches(matches)
	updatedSchedule := cloneSchedule(schedule)

	m := matchByID(updatedMatches, matchID)
	if m == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}

	originalDate, found := removeFromSchedule(updatedSchedule, matchID)
	if !found {
		return nil, nil, fmt.Errorf("%w: %s", ErrMatchNotScheduled, matchID)
	}

	m.Status = StatusPostponed
	slot := findPostponementSlot(m, originalDate, updatedMatches, updatedSchedule, opts, ladder)
	m.ScheduledDate = slot.date

	updatedSchedule = append(updatedSchedule, ScheduleDay{
		Date:    slot.date,
		Round:   m.Round + postponedSuffix,
		Matches: []Match{*m},
	})
	sortScheduleByDate(updatedSchedule)

	if slot.needsRescheduling {
		shiftLaterRounds(updatedSchedule, slot, m.Round, ladder)
	}

	normalizeRoundOrdering(updatedSchedule, ladder)
	sortScheduleByDate(updatedSchedule)

	return updatedMatches, updatedSchedule, nil
}

// removeFromSchedule deletes the match from its scheduled day and
// returns that day's date.
func removeFromSchedule(schedule []ScheduleDay, matchID string) (time.Time, bool) {
	for i := range schedule {
		d := &schedule[i]
		if d.IsRestDay {
			continue
		}
		for j := range d.Matches {
			if d.Matches[j].ID == matchID {
				d.Matches = append(d.Matches[:j], d.Matches[j+1:]...)
				return d.Date, true
			}
		}
	}
	return time.Time{}, false
}

// findPostponementSlot searches for a new date for the match:
// first a free day strictly between its round and the next round
// that neither contestant occupies and that differs from the
// original date, then any free day after the original date but
// before the next round, then the day before the next round with a
// rescheduling shift, and finally, with no next round at all, the
// day after the schedule ends.
func findPostponementSlot(m *Match, originalDate time.Time, matches []*Match, schedule []ScheduleDay, opts Options, ladder RoundLadder) postponementSlot {
	nextRound := nextRoundWithMatches(m.Round, matches, ladder)
	occupied := occupiedDates(schedule, m)

	var currentRoundLast, nextRoundFirst time.Time
	for _, d := range schedule {
		if d.IsRestDay {
			continue
		}
		round := StripPostponed(d.Round)
		if round == m.Round {
			if currentRoundLast.IsZero() || d.Date.After(currentRoundLast) {
				currentRoundLast = d.Date
			}
		}
		if nextRound != "" && round == nextRound {
			if nextRoundFirst.IsZero() || d.Date.Before(nextRoundFirst) {
				nextRoundFirst = d.Date
			}
		}
	}

	if !currentRoundLast.IsZero() && !nextRoundFirst.IsZero() {
		for d := currentRoundLast.AddDate(0, 0, 1); d.Before(nextRoundFirst); d = d.AddDate(0, 0, 1) {
			if !occupied[dateKey(d)] && !sameDay(d, originalDate) {
				return postponementSlot{date: d}
			}
		}
	}

	if !nextRoundFirst.IsZero() {
		for d := originalDate.AddDate(0, 0, 1); d.Before(nextRoundFirst); d = d.AddDate(0, 0, 1) {
			if !occupied[dateKey(d)] {
				return postponementSlot{date: d}
			}
		}

		// No gap at all: take the day before the next round and
		// flag the later rounds for shifting.
		shift := 1
		if opts.EnableRestDays {
			shift = effectiveRestDayInterval(opts)
		}
		return postponementSlot{
			date:              nextRoundFirst.AddDate(0, 0, -1),
			needsRescheduling: true,
			daysToShift:       shift,
		}
	}

	// The final has no following round; append after the last day.
	date := lastScheduledDate(schedule).AddDate(0, 0, 1)
	if sameDay(date, originalDate) {
		date = date.AddDate(0, 0, 1)
	}
	return postponementSlot{date: date}
}

// nextRoundWithMatches returns the first ladder round after the
// given one that has matches, or the empty string.
func nextRoundWithMatches(round string, matches []*Match, ladder RoundLadder) string {
	index := ladder.Index(round)
	if index < 0 {
		return ""
	}
	for _, name := range ladder.names[index+1:] {
		for _, m := range matches {
			if m.Round == name {
				return name
			}
		}
	}
	return ""
}

// occupiedDates collects the days on which either contestant of the
// match already plays another match.
func occupiedDates(schedule []ScheduleDay, m *Match) map[string]bool {
	occupied := make(map[string]bool)
	for _, d := range schedule {
		if d.IsRestDay {
			continue
		}
		for i := range d.Matches {
			other := &d.Matches[i]
			if other.ID == m.ID {
				continue
			}
			if other.ContainsTeam(m.Team1ID) || other.ContainsTeam(m.Team2ID) {
				occupied[dateKey(d.Date)] = true
			}
		}
	}
	return occupied
}

func lastScheduledDate(schedule []ScheduleDay) time.Time {
	var last time.Time
	for _, d := range schedule {
		if d.Date.After(last) {
			last = d.Date
		}
	}
	return last
}

// shiftLaterRounds pushes every day after the postponement date
// whose round comes later in the ladder by the slot's shift amount.
func shiftLaterRounds(schedule []ScheduleDay, slot postponementSlot, round string, ladder RoundLadder) {
	postponedIndex := ladder.Index(round)
	for i := range schedule {
		d := &schedule[i]
		if d.IsRestDay || !d.Date.After(slot.date) {
			continue
		}
		if ladder.Index(d.Round) > postponedIndex {
			d.Date = d.Date.AddDate(0, 0, slot.daysToShift)
		}
	}
}

// normalizeRoundOrdering shifts whole rounds forward until no round
// starts before the previous round has finished. Postponed days
// count towards their original round. This is the post-pass that
// upholds the calendar's round-ordering invariant after any
// postponement.
func normalizeRoundOrdering(schedule []ScheduleDay, ladder RoundLadder) {
	byRound := make(map[int][]*ScheduleDay, ladder.NumRounds())
	for i := range schedule {
		d := &schedule[i]
		if d.IsRestDay {
			continue
		}
		if index := ladder.Index(d.Round); index >= 0 {
			byRound[index] = append(byRound[index], d)
		}
	}

	var lastRoundEnd time.Time
	for index := 0; index < ladder.NumRounds(); index++ {
		days := byRound[index]
		if len(days) == 0 {
			continue
		}
		slices.SortFunc(days, func(a, b *ScheduleDay) int { return a.Date.Compare(b.Date) })

		earliest := days[0].Date
		latest := days[len(days)-1].Date
		if !lastRoundEnd.IsZero() && earliest.Before(lastRoundEnd) {
			shift := int(lastRoundEnd.Sub(earliest)/oneDay) + 1
			for _, d := range days {
				d.Date = d.Date.AddDate(0, 0, shift)
			}
			latest = latest.AddDate(0, 0, shift)
		}
		lastRoundEnd = latest
	}
}

func sortScheduleByDate(schedule []ScheduleDay) {
	slices.SortStableFunc(schedule, func(a, b ScheduleDay) int { return a.Date.Compare(b.Date) })
}
