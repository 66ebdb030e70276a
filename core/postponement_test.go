package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// findDay returns the first schedule day matching the round label
// and date, or nil.
func findDay(schedule []ScheduleDay, round string, day time.Time) *ScheduleDay {
	for i := range schedule {
		d := &schedule[i]
		if !d.IsRestDay && d.Round == round && sameDay(d.Date, day) {
			return d
		}
	}
	return nil
}

// An eight team calendar with rest days leaves Jun 3 free between
// the quarters and the semis, so the postponed match lands there.
func TestPostponeIntoGapDay(t *testing.T) {
	teams := TeamSlice(8)
	ladder := NewRoundLadder(len(teams))
	matches := BuildBracket(ManualSeeding(teams), ladder)

	opts := Options{
		StartDate:        date(2026, time.June, 1),
		EndDate:          date(2026, time.June, 30),
		MaxMatchesPerDay: 2,
		EnableRestDays:   true,
		RestDayInterval:  1,
	}
	schedule, warnings := ScheduleDates(matches, opts, ladder)
	require.Empty(t, warnings)

	updatedMatches, updatedSchedule, err := Postpone("r1-m1", matches, schedule, opts, ladder)
	require.NoError(t, err)

	m := matchByID(updatedMatches, "r1-m1")
	require.Equal(t, StatusPostponed, m.Status)
	require.Equal(t, date(2026, time.June, 3), m.ScheduledDate)

	postponed := findDay(updatedSchedule, "Quarterfinals (Postponed)", date(2026, time.June, 3))
	require.NotNil(t, postponed)
	require.Len(t, postponed.Matches, 1)
	require.Equal(t, "r1-m1", postponed.Matches[0].ID)

	// The match left its original day.
	jun1 := findDay(updatedSchedule, "Quarterfinals", date(2026, time.June, 1))
	require.NotNil(t, jun1)
	for _, other := range jun1.Matches {
		require.NotEqual(t, "r1-m1", other.ID)
	}

	// No later round moved.
	require.NotNil(t, findDay(updatedSchedule, "Semifinals", date(2026, time.June, 4)))
	require.NotNil(t, findDay(updatedSchedule, "Final", date(2026, time.June, 6)))

	assertRoundOrdering(t, updatedSchedule, ladder)

	// The inputs are untouched.
	require.Equal(t, StatusPending, matchByID(matches, "r1-m1").Status)
	require.Len(t, schedule, 6)
}

// A packed calendar has no gap, so the later rounds are shifted to
// make room.
func TestPostponeShiftsLaterRounds(t *testing.T) {
	teams := TeamSlice(8)
	ladder := NewRoundLadder(len(teams))
	matches := BuildBracket(ManualSeeding(teams), ladder)

	opts := Options{
		StartDate: date(2026, time.June, 1),
		EndDate:   date(2026, time.June, 30),
	}
	schedule, warnings := ScheduleDates(matches, opts, ladder)
	require.Empty(t, warnings)
	require.Len(t, schedule, 3)

	_, updatedSchedule, err := Postpone("r1-m1", matches, schedule, opts, ladder)
	require.NoError(t, err)

	postponed := findDay(updatedSchedule, "Quarterfinals (Postponed)", date(2026, time.June, 1))
	require.NotNil(t, postponed)

	require.NotNil(t, findDay(updatedSchedule, "Semifinals", date(2026, time.June, 3)))
	require.NotNil(t, findDay(updatedSchedule, "Final", date(2026, time.June, 4)))

	assertRoundOrdering(t, updatedSchedule, ladder)
}

// The final has no following round; it is appended after the last
// scheduled day.
func TestPostponeFinal(t *testing.T) {
	teams := TeamSlice(8)
	ladder := NewRoundLadder(len(teams))
	matches := BuildBracket(ManualSeeding(teams), ladder)

	opts := Options{
		StartDate: date(2026, time.June, 1),
		EndDate:   date(2026, time.June, 30),
	}
	schedule, _ := ScheduleDates(matches, opts, ladder)

	updatedMatches, updatedSchedule, err := Postpone("r3-m1", matches, schedule, opts, ladder)
	require.NoError(t, err)

	m := matchByID(updatedMatches, "r3-m1")
	require.Equal(t, date(2026, time.June, 4), m.ScheduledDate)

	postponed := findDay(updatedSchedule, "Final (Postponed)", date(2026, time.June, 4))
	require.NotNil(t, postponed)

	assertRoundOrdering(t, updatedSchedule, ladder)
}

// Postponing twice in a row must keep the calendar consistent.
func TestPostponeRepeatedly(t *testing.T) {
	teams := TeamSlice(8)
	ladder := NewRoundLadder(len(teams))
	matches := BuildBracket(ManualSeeding(teams), ladder)

	opts := Options{
		StartDate:        date(2026, time.June, 1),
		EndDate:          date(2026, time.June, 30),
		MaxMatchesPerDay: 2,
		EnableRestDays:   true,
		RestDayInterval:  1,
	}
	schedule, _ := ScheduleDates(matches, opts, ladder)

	matches, schedule, err := Postpone("r1-m1", matches, schedule, opts, ladder)
	require.NoError(t, err)
	matches, schedule, err = Postpone("r1-m2", matches, schedule, opts, ladder)
	require.NoError(t, err)

	require.Equal(t, StatusPostponed, matchByID(matches, "r1-m1").Status)
	require.Equal(t, StatusPostponed, matchByID(matches, "r1-m2").Status)

	// Every match still sits on exactly one day.
	want := make([]string, 0, len(matches))
	for _, m := range matches {
		want = append(want, m.ID)
	}
	require.ElementsMatch(t, want, scheduledMatchIDs(schedule))

	assertRoundOrdering(t, schedule, ladder)
}

func TestPostponeErrors(t *testing.T) {
	teams := TeamSlice(4)
	ladder := NewRoundLadder(len(teams))
	matches := BuildBracket(ManualSeeding(teams), ladder)

	opts := Options{
		StartDate: date(2026, time.June, 1),
		EndDate:   date(2026, time.June, 30),
	}
	schedule, _ := ScheduleDates(matches, opts, ladder)

	_, _, err := Postpone("r9-m9", matches, schedule, opts, ladder)
	require.ErrorIs(t, err, ErrMatchNotFound)

	_, _, err = Postpone("r1-m1", matches, nil, opts, ladder)
	require.ErrorIs(t, err, ErrMatchNotScheduled)
}
