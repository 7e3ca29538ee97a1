package services

import (
	"testing"
	"time"

	"github.com/JovenTung/UpNext/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2 March 2026, 09:00 UTC.
var monday9am = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func weekdayEvenings(start, end string) []models.WorkWindow {
	windows := make([]models.WorkWindow, 0, 5)
	for day := 1; day <= 5; day++ {
		windows = append(windows, models.WorkWindow{Day: day, Start: start, End: end})
	}
	return windows
}

func prefsWith(stress int, windows ...models.WorkWindow) models.UserPreferences {
	return models.UserPreferences{StressLevel: stress, WorkWindows: windows}
}

func assignment(id string, hours float64, understanding int, due time.Time) models.Assignment {
	return models.Assignment{
		ID:             id,
		Title:          "Essay " + id,
		DueDate:        due,
		EstimatedHours: hours,
		Understanding:  understanding,
	}
}

func totalMinutes(events []models.StudyEvent, assignmentID string) int {
	total := 0
	for _, e := range events {
		if e.AssignmentID == assignmentID {
			total += e.Duration()
		}
	}
	return total
}

func TestBudgetWeighting(t *testing.T) {
	assert.InDelta(t, 1.60, understandingFactor(1), 1e-9)
	assert.InDelta(t, 1.12, understandingFactor(5), 1e-9)
	assert.InDelta(t, 1.16, stressFactor(5), 1e-9)
	assert.InDelta(t, 0.84, stressFactor(1), 1e-9)
	assert.InDelta(t, 1.00, stressFactor(3), 1e-9)

	// 60 * 1.60 * 1.16 = 111.36 -> 112; 60 * 1.12 * 0.84 = 56.448 -> 57
	assert.Equal(t, 112, budgetMinutes(1, 1, 5))
	assert.Equal(t, 57, budgetMinutes(1, 5, 1))
	assert.Equal(t, 135, budgetMinutes(2, 5, 3))
}

func TestPlanSplitsBudgetIntoCappedSessions(t *testing.T) {
	prefs := prefsWith(3, weekdayEvenings("18:00", "22:00")...)
	a := assignment("a1", 2, 5, monday9am.AddDate(0, 0, 5))

	events, err := Plan([]models.Assignment{a}, prefs, nil, monday9am)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// The 135-minute budget splits as a capped 90 plus the 45 remainder,
	// with the 10-minute buffer between them.
	first, second := events[0], events[1]
	assert.Equal(t, 90, first.Duration())
	assert.Equal(t, 45, second.Duration())
	assert.Equal(t, time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC), first.Start)
	assert.Equal(t, time.Date(2026, 3, 2, 19, 40, 0, 0, time.UTC), second.Start)

	for _, e := range events {
		assert.Equal(t, "a1", e.AssignmentID)
		assert.Equal(t, "Essay a1 — Study", e.Title)
		assert.False(t, e.Start.Before(monday9am))
		assert.False(t, e.End.After(endOfDay(a.DueDate)))
	}
}

func TestPlanEarlierDueDateClaimsSlotsFirst(t *testing.T) {
	// Single 2-hour Monday window; both assignments due Tuesday and both
	// needing 135 minutes. Only one capped session fits, and it goes to the
	// assignment that sorted first.
	prefs := prefsWith(3, models.WorkWindow{Day: 1, Start: "18:00", End: "20:00"})
	due := monday9am.AddDate(0, 0, 1)
	a := assignment("first", 2, 5, due)
	b := assignment("second", 2, 5, due)

	events, err := Plan([]models.Assignment{a, b}, prefs, nil, monday9am)
	require.NoError(t, err)

	assert.Equal(t, 90, totalMinutes(events, "first"))
	assert.Equal(t, 0, totalMinutes(events, "second"))
}

func TestPlanStableOrderOnEqualDueDates(t *testing.T) {
	prefs := prefsWith(3, weekdayEvenings("18:00", "22:00")...)
	due := monday9am.AddDate(0, 0, 4)
	a := assignment("a", 1, 5, due)
	b := assignment("b", 1, 5, due)

	events, err := Plan([]models.Assignment{a, b}, prefs, nil, monday9am)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	// Input order is the tie-break, so "a" owns the earliest slot.
	assert.Equal(t, "a", events[0].AssignmentID)
}

func TestPlanSkipsFullyBookedDay(t *testing.T) {
	prefs := prefsWith(3, weekdayEvenings("18:00", "22:00")...)
	a := assignment("a1", 1, 5, monday9am.AddDate(0, 0, 5))
	blocker := models.StudyEvent{
		ID:           "fixed-commitment",
		AssignmentID: "other",
		Start:        time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC),
		End:          time.Date(2026, 3, 2, 22, 0, 0, 0, time.UTC),
	}

	events, err := Plan([]models.Assignment{a}, prefs, []models.StudyEvent{blocker}, monday9am)
	require.NoError(t, err)
	require.Len(t, events, 1)

	// Monday is solid, so the session lands Tuesday at window open.
	assert.Equal(t, time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC), events[0].Start)
	assert.Equal(t, 68, events[0].Duration())
}

func TestPlanProbesPastPartialConflict(t *testing.T) {
	prefs := prefsWith(3, weekdayEvenings("18:00", "22:00")...)
	a := assignment("a1", 1.5, 5, monday9am.AddDate(0, 0, 5))
	blocker := models.StudyEvent{
		ID:           "short-meeting",
		AssignmentID: "other",
		Start:        time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC),
		End:          time.Date(2026, 3, 2, 18, 5, 0, 0, time.UTC),
	}

	events, err := Plan([]models.Assignment{a}, prefs, []models.StudyEvent{blocker}, monday9am)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	// 18:00 collides; one 15-minute probe clears the meeting.
	assert.Equal(t, time.Date(2026, 3, 2, 18, 15, 0, 0, time.UTC), events[0].Start)
	assert.Equal(t, 90, events[0].Duration())
}

func TestPlanWeightingBiasesAllocatedTime(t *testing.T) {
	windows := weekdayEvenings("08:00", "22:00")
	due := monday9am.AddDate(0, 0, 5)

	hard, err := Plan(
		[]models.Assignment{assignment("hard", 1, 1, due)},
		prefsWith(5, windows...), nil, monday9am)
	require.NoError(t, err)

	easy, err := Plan(
		[]models.Assignment{assignment("easy", 1, 5, due)},
		prefsWith(1, windows...), nil, monday9am)
	require.NoError(t, err)

	assert.Equal(t, 112, totalMinutes(hard, "hard"))
	assert.Equal(t, 57, totalMinutes(easy, "easy"))
}

func TestPlanInvertedWindowContributesNothing(t *testing.T) {
	prefs := prefsWith(3, models.WorkWindow{Day: 1, Start: "20:00", End: "18:00"})
	a := assignment("a1", 1, 5, monday9am.AddDate(0, 0, 5))

	events, err := Plan([]models.Assignment{a}, prefs, nil, monday9am)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestPlanPastDueDateYieldsNothing(t *testing.T) {
	prefs := prefsWith(3, weekdayEvenings("18:00", "22:00")...)
	a := assignment("late", 2, 3, monday9am.AddDate(0, 0, -7))

	events, err := Plan([]models.Assignment{a}, prefs, nil, monday9am)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestPlanEmptyInputs(t *testing.T) {
	prefs := prefsWith(3, weekdayEvenings("18:00", "22:00")...)

	events, err := Plan(nil, prefs, nil, monday9am)
	require.NoError(t, err)
	assert.Empty(t, events)

	a := assignment("a1", 2, 3, monday9am.AddDate(0, 0, 5))
	events, err = Plan([]models.Assignment{a}, prefsWith(3), nil, monday9am)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestPlanNeverBackdates(t *testing.T) {
	// Invoked mid-window: the first session starts at the invocation
	// instant, not at the already-passed window open.
	now := time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)
	prefs := prefsWith(3, models.WorkWindow{Day: 1, Start: "18:00", End: "22:00"})
	a := assignment("a1", 1, 5, now.AddDate(0, 0, 3))

	events, err := Plan([]models.Assignment{a}, prefs, nil, now)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, now, events[0].Start)
}

func TestPlanInvariants(t *testing.T) {
	prefs := prefsWith(4, weekdayEvenings("18:00", "21:00")...)
	existing := []models.StudyEvent{
		{
			ID:           "gym",
			AssignmentID: "life",
			Start:        time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC),
			End:          time.Date(2026, 3, 3, 19, 0, 0, 0, time.UTC),
		},
	}
	assignments := []models.Assignment{
		assignment("essay", 3, 2, monday9am.AddDate(0, 0, 4)),
		assignment("lab", 2, 4, monday9am.AddDate(0, 0, 6)),
		assignment("quiz", 1, 3, monday9am.AddDate(0, 0, 2)),
	}

	events, err := Plan(assignments, prefs, existing, monday9am)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	all := append(append([]models.StudyEvent{}, existing...), events...)
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			assert.False(t, all[i].Overlaps(all[j]),
				"events %s and %s overlap", all[i].ID, all[j].ID)
		}
	}

	byID := map[string]models.Assignment{}
	for _, a := range assignments {
		byID[a.ID] = a
	}
	for _, e := range events {
		a := byID[e.AssignmentID]

		assert.True(t, e.Start.Before(e.End))
		assert.False(t, e.Start.Before(monday9am), "session %s backdated", e.ID)
		assert.False(t, e.End.After(endOfDay(a.DueDate)), "session %s past deadline", e.ID)
		assert.LessOrEqual(t, e.Duration(), maxSessionMinutes)

		// Window containment on the matching weekday.
		contained := false
		for _, w := range prefs.WorkWindows {
			if w.Day != int(e.Start.Weekday()) {
				continue
			}
			wStart, wEnd := windowBounds(w, e.Start)
			if !e.Start.Before(wStart) && !e.End.After(wEnd) {
				contained = true
			}
		}
		assert.True(t, contained, "session %s outside every window", e.ID)
	}

	// Monotone consumption: never more than the weighted budget.
	for _, a := range assignments {
		budget := budgetMinutes(a.EstimatedHours, a.Understanding, prefs.StressLevel)
		assert.LessOrEqual(t, totalMinutes(events, a.ID), budget)
	}
}

func TestPlanIsDeterministic(t *testing.T) {
	prefs := prefsWith(3, weekdayEvenings("18:00", "22:00")...)
	assignments := []models.Assignment{
		assignment("a1", 2, 2, monday9am.AddDate(0, 0, 4)),
		assignment("a2", 1, 4, monday9am.AddDate(0, 0, 3)),
	}

	first, err := Plan(assignments, prefs, nil, monday9am)
	require.NoError(t, err)
	second, err := Plan(assignments, prefs, nil, monday9am)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Start, second[i].Start)
		assert.Equal(t, first[i].End, second[i].End)
	}
}

func TestPlanDoesNotMutateInputs(t *testing.T) {
	prefs := prefsWith(3, weekdayEvenings("18:00", "22:00")...)
	later := assignment("later", 1, 5, monday9am.AddDate(0, 0, 6))
	sooner := assignment("sooner", 1, 5, monday9am.AddDate(0, 0, 2))
	assignments := []models.Assignment{later, sooner}
	existing := []models.StudyEvent{{
		ID:           "gym",
		AssignmentID: "life",
		Start:        time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC),
		End:          time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC),
	}}

	_, err := Plan(assignments, prefs, existing, monday9am)
	require.NoError(t, err)

	assert.Equal(t, "later", assignments[0].ID)
	assert.Equal(t, "sooner", assignments[1].ID)
	assert.Len(t, existing, 1)
}

func TestPlanInputValidation(t *testing.T) {
	prefs := prefsWith(3, weekdayEvenings("18:00", "22:00")...)
	due := monday9am.AddDate(0, 0, 5)

	cases := []struct {
		name        string
		assignments []models.Assignment
		prefs       models.UserPreferences
	}{
		{"non-positive hours", []models.Assignment{assignment("a", 0, 3, due)}, prefs},
		{"understanding out of range", []models.Assignment{assignment("a", 1, 0, due)}, prefs},
		{"missing due date", []models.Assignment{assignment("a", 1, 3, time.Time{})}, prefs},
		{"stress out of range", []models.Assignment{assignment("a", 1, 3, due)}, prefsWith(0, prefs.WorkWindows...)},
		{"bad clock string", []models.Assignment{assignment("a", 1, 3, due)},
			prefsWith(3, models.WorkWindow{Day: 1, Start: "18h00", End: "22:00"})},
		{"window day out of range", []models.Assignment{assignment("a", 1, 3, due)},
			prefsWith(3, models.WorkWindow{Day: 7, Start: "18:00", End: "22:00"})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			events, err := Plan(tc.assignments, tc.prefs, nil, monday9am)
			require.ErrorIs(t, err, ErrInvalidPlanInput)
			assert.Nil(t, events)
		})
	}
}

func TestEventIDIsStable(t *testing.T) {
	start := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, EventID("a1", start), EventID("a1", start))
	assert.Equal(t, "a1-1772474400", EventID("a1", start))
	assert.NotEqual(t, EventID("a1", start), EventID("a2", start))
	assert.NotEqual(t, EventID("a1", start), EventID("a1", start.Add(time.Minute)))

	// Location changes the rendering of the instant but not the id.
	assert.Equal(t, EventID("a1", start), EventID("a1", start.In(time.FixedZone("AEST", 10*3600))))
}

func TestParseClock(t *testing.T) {
	got, err := parseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())

	for _, bad := range []string{"", "25:00", "18h00", "9:99"} {
		_, err := parseClock(bad)
		assert.ErrorIs(t, err, ErrInvalidPlanInput, "input %q", bad)
	}
}
