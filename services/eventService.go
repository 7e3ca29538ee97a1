package services

import (
	"context"
	"time"

	"github.com/JovenTung/UpNext/config"
	"github.com/JovenTung/UpNext/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MergeEvent lays an incoming event over a stored one. Scheduling fields come
// from the incoming record; fields the planner never writes (Completed, the
// Mongo id) survive from the stored copy. This is how a user's completion
// mark outlives a re-plan that regenerates the same event id.
func MergeEvent(old, incoming models.StudyEvent) models.StudyEvent {
	merged := incoming
	merged.DBID = old.DBID
	if old.UserID != "" && merged.UserID == "" {
		merged.UserID = old.UserID
	}
	merged.Completed = old.Completed || incoming.Completed
	return merged
}

// UpsertEvents merges planner output into the store by event id: read the
// stored copy, shallow-merge the incoming record over it, write back.
func UpsertEvents(userID string, events []models.StudyEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("events")

	for _, e := range events {
		e.UserID = userID

		var old models.StudyEvent
		err := coll.FindOne(ctx, bson.M{"user_id": userID, "event_id": e.ID}).Decode(&old)
		if err == mongo.ErrNoDocuments {
			e.DBID = primitive.NewObjectID()
			if _, err := coll.InsertOne(ctx, e); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		merged := MergeEvent(old, e)
		if _, err := coll.ReplaceOne(ctx, bson.M{"_id": old.DBID}, merged); err != nil {
			return err
		}
	}
	return nil
}

// EventPatch is a partial update from the calendar UI (drag, resize,
// completion toggle). Nil fields are left untouched.
type EventPatch struct {
	Title     *string    `json:"title"`
	Start     *time.Time `json:"start"`
	End       *time.Time `json:"end"`
	Completed *bool      `json:"completed"`
}

func UpdateEvent(userID, eventID string, patch EventPatch) (*models.StudyEvent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("events")

	set := bson.D{}
	if patch.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *patch.Title})
	}
	if patch.Start != nil {
		set = append(set, bson.E{Key: "start", Value: *patch.Start})
	}
	if patch.End != nil {
		set = append(set, bson.E{Key: "end", Value: *patch.End})
	}
	if patch.Completed != nil {
		set = append(set, bson.E{Key: "completed", Value: *patch.Completed})
	}

	filter := bson.M{"user_id": userID, "event_id": eventID}
	if len(set) > 0 {
		if _, err := coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: set}}); err != nil {
			return nil, err
		}
	}

	var updated models.StudyEvent
	if err := coll.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func GetEventsByUser(userID string) ([]models.StudyEvent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("events")

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.StudyEvent{}
	err = cursor.All(ctx, &out)
	return out, err
}
