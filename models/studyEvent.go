package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudyEvent is one scheduled study block on the calendar. Planner-produced
// events derive ID deterministically from the assignment and start instant,
// so re-planning regenerates the same ids and upserts instead of duplicating.
// Completed is owned by the UI / event store; the planner never sets it.
type StudyEvent struct {
	DBID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID           string             `bson:"event_id" json:"id"`
	UserID       string             `bson:"user_id,omitempty" json:"-"`
	AssignmentID string             `bson:"assignment_id" json:"assignmentId"`
	Title        string             `bson:"title" json:"title"`
	Start        time.Time          `bson:"start" json:"start"`
	End          time.Time          `bson:"end" json:"end"`
	Completed    bool               `bson:"completed" json:"completed"`
}

// Overlaps reports whether two events share any time, half-open intervals.
func (e StudyEvent) Overlaps(other StudyEvent) bool {
	return e.Start.Before(other.End) && e.End.After(other.Start)
}

// Duration is the event length in whole minutes.
func (e StudyEvent) Duration() int {
	return int(e.End.Sub(e.Start) / time.Minute)
}
