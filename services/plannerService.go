package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/JovenTung/UpNext/models"
)

// Tuning weights for the study-time budget. Empirically chosen; changing
// them changes every schedule the planner produces.
var (
	weightUnderstanding = 0.12 // each point below 5 inflates the budget
	weightStress        = 0.08 // each point above 3 inflates, below shrinks
)

const (
	maxSessionMinutes    = 90  // cap a single block, keep sessions focused
	sessionBufferMinutes = 10  // gap after a committed session
	probeStepMinutes     = 15  // step forward when a slot doesn't fit
	maxPlanDays          = 730 // defensive ceiling on the day walk
)

// ErrInvalidPlanInput marks malformed planner input (bad clock strings,
// non-positive hours, out-of-range ratings). The whole invocation fails;
// no partial schedule is returned.
var ErrInvalidPlanInput = errors.New("invalid plan input")

const studyTitleSuffix = " — Study"

// -------- Budget weighting --------

// understandingFactor ranges 1.12 (understanding=5) to 1.60 (understanding=1).
func understandingFactor(understanding int) float64 {
	return 1 + float64(6-understanding)*weightUnderstanding
}

// stressFactor ranges 0.84 (stress=1) to 1.16 (stress=5); 3 is neutral.
func stressFactor(stressLevel int) float64 {
	return 1 + float64(stressLevel-3)*weightStress
}

// budgetMinutes is the total study time to schedule for one assignment,
// rounded up to the next whole minute.
func budgetMinutes(estimatedHours float64, understanding, stressLevel int) int {
	raw := estimatedHours * 60 * understandingFactor(understanding) * stressFactor(stressLevel)
	return int(math.Ceil(raw))
}

// -------- Clock / day helpers --------

// parseClock parses a wall-clock "HH:mm" string.
func parseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad clock time %q", ErrInvalidPlanInput, s)
	}
	return t, nil
}

// windowBounds resolves a recurring window onto a specific calendar day.
func windowBounds(w models.WorkWindow, day time.Time) (time.Time, time.Time) {
	s, _ := parseClock(w.Start)
	e, _ := parseClock(w.End)
	start := time.Date(day.Year(), day.Month(), day.Day(), s.Hour(), s.Minute(), 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), e.Hour(), e.Minute(), 0, 0, day.Location())
	return start, end
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// EventID derives a stable id for a planned session from the assignment and
// the session start. Unix seconds keep it independent of any string layout,
// so re-planning the same inputs regenerates the same ids.
func EventID(assignmentID string, start time.Time) string {
	return assignmentID + "-" + strconv.FormatInt(start.Unix(), 10)
}

func overlapsBusy(busy []models.StudyEvent, start, end time.Time) bool {
	candidate := models.StudyEvent{Start: start, End: end}
	for _, e := range busy {
		if candidate.Overlaps(e) {
			return true
		}
	}
	return false
}

// -------- Input validation --------

func validatePlanInput(assignments []models.Assignment, prefs models.UserPreferences) error {
	for _, a := range assignments {
		if a.EstimatedHours <= 0 {
			return fmt.Errorf("%w: assignment %q estimated hours must be positive", ErrInvalidPlanInput, a.ID)
		}
		if a.Understanding < 1 || a.Understanding > 5 {
			return fmt.Errorf("%w: assignment %q understanding must be 1-5", ErrInvalidPlanInput, a.ID)
		}
		if a.DueDate.IsZero() {
			return fmt.Errorf("%w: assignment %q has no due date", ErrInvalidPlanInput, a.ID)
		}
	}
	if prefs.StressLevel < 1 || prefs.StressLevel > 5 {
		return fmt.Errorf("%w: stress level must be 1-5", ErrInvalidPlanInput)
	}
	for _, w := range prefs.WorkWindows {
		if w.Day < 0 || w.Day > 6 {
			return fmt.Errorf("%w: work window day must be 0-6", ErrInvalidPlanInput)
		}
		if _, err := parseClock(w.Start); err != nil {
			return err
		}
		if _, err := parseClock(w.End); err != nil {
			return err
		}
	}
	return nil
}

// -------- Planner --------

// Plan packs study sessions for the given assignments into the user's weekly
// work windows, earliest due date first, without overlapping existing events
// or each other. It returns only the newly created sessions; merging them
// into the event store is the caller's job.
//
// Pure over its inputs: the caller's slices are never mutated and the busy
// list lives on this call's stack, so concurrent invocations are safe.
func Plan(assignments []models.Assignment, prefs models.UserPreferences, existing []models.StudyEvent, now time.Time) ([]models.StudyEvent, error) {
	planned := []models.StudyEvent{}
	if len(assignments) == 0 {
		return planned, nil
	}
	if err := validatePlanInput(assignments, prefs); err != nil {
		return nil, err
	}
	if len(prefs.WorkWindows) == 0 {
		return planned, nil
	}

	sorted := make([]models.Assignment, len(assignments))
	copy(sorted, assignments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DueDate.Before(sorted[j].DueDate)
	})

	// Busy grows as sessions are committed, so later-due assignments cannot
	// claim slots already given to sooner-due ones.
	busy := make([]models.StudyEvent, len(existing))
	copy(busy, existing)

	for _, a := range sorted {
		remaining := budgetMinutes(a.EstimatedHours, a.Understanding, prefs.StressLevel)
		dueEnd := endOfDay(a.DueDate.In(now.Location()))

		day := startOfDay(now)
		for steps := 0; remaining > 0 && day.Before(dueEnd) && steps < maxPlanDays; steps++ {
			weekday := int(day.Weekday())
			for _, w := range prefs.WorkWindows {
				if w.Day != weekday || remaining <= 0 {
					continue
				}
				wStart, wEnd := windowBounds(w, day)
				if !wStart.Before(wEnd) {
					continue // inverted window, zero capacity today
				}
				cursor := wStart
				if cursor.Before(now) {
					cursor = now // never backdate a session
				}
				for remaining > 0 && cursor.Before(wEnd) {
					length := remaining
					if length > maxSessionMinutes {
						length = maxSessionMinutes
					}
					sessionEnd := cursor.Add(time.Duration(length) * time.Minute)
					if !sessionEnd.After(wEnd) && !overlapsBusy(busy, cursor, sessionEnd) {
						evt := models.StudyEvent{
							ID:           EventID(a.ID, cursor),
							UserID:       a.UserID,
							AssignmentID: a.ID,
							Title:        a.Title + studyTitleSuffix,
							Start:        cursor,
							End:          sessionEnd,
						}
						planned = append(planned, evt)
						busy = append(busy, evt)
						remaining -= length
						cursor = sessionEnd.Add(sessionBufferMinutes * time.Minute)
						continue
					}
					cursor = cursor.Add(probeStepMinutes * time.Minute)
				}
			}
			day = day.AddDate(0, 0, 1)
		}
	}

	return planned, nil
}
