package services

import (
	"time"

	"github.com/JovenTung/UpNext/logger"
	"github.com/JovenTung/UpNext/models"
)

// PlanForUser runs the planner over the user's stored assignments,
// preferences and calendar, persists the new sessions and returns them.
// A user with no saved preferences gets an empty plan, not an error.
func PlanForUser(userID string, now time.Time) ([]models.StudyEvent, error) {
	prefs, ok, err := GetPreferences(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.StudyEvent{}, nil
	}

	assignments, err := GetAssignmentsByUser(userID)
	if err != nil {
		return nil, err
	}

	existing, err := GetEventsByUser(userID)
	if err != nil {
		return nil, err
	}

	events, err := Plan(assignments, *prefs, existing, now)
	if err != nil {
		return nil, err
	}

	if err := UpsertEvents(userID, events); err != nil {
		return nil, err
	}

	logger.L.Info("planned study sessions",
		"user_id", userID,
		"assignments", len(assignments),
		"new_events", len(events),
	)
	return events, nil
}
