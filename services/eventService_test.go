package services

import (
	"testing"
	"time"

	"github.com/JovenTung/UpNext/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMergeEventKeepsCompletionMark(t *testing.T) {
	start := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	old := models.StudyEvent{
		DBID:         primitive.NewObjectID(),
		ID:           "a1-1772474400",
		UserID:       "u1",
		AssignmentID: "a1",
		Title:        "Essay — Study",
		Start:        start,
		End:          start.Add(90 * time.Minute),
		Completed:    true,
	}

	// A re-plan regenerates the same id with shifted times and no
	// completion flag; the user's mark must survive.
	incoming := models.StudyEvent{
		ID:           "a1-1772474400",
		AssignmentID: "a1",
		Title:        "Essay — Study",
		Start:        start.Add(15 * time.Minute),
		End:          start.Add(105 * time.Minute),
	}

	merged := MergeEvent(old, incoming)
	assert.True(t, merged.Completed)
	assert.Equal(t, old.DBID, merged.DBID)
	assert.Equal(t, "u1", merged.UserID)
	assert.Equal(t, incoming.Start, merged.Start)
	assert.Equal(t, incoming.End, merged.End)
}

func TestMergeEventIncomingFieldsWin(t *testing.T) {
	start := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	old := models.StudyEvent{
		ID:           "a1-1772474400",
		UserID:       "u1",
		AssignmentID: "a1",
		Title:        "Old title",
		Start:        start,
		End:          start.Add(time.Hour),
	}
	incoming := models.StudyEvent{
		ID:           "a1-1772474400",
		UserID:       "u1",
		AssignmentID: "a1",
		Title:        "New title",
		Start:        start,
		End:          start.Add(30 * time.Minute),
		Completed:    true,
	}

	merged := MergeEvent(old, incoming)
	assert.Equal(t, "New title", merged.Title)
	assert.Equal(t, start.Add(30*time.Minute), merged.End)
	assert.True(t, merged.Completed)
}
