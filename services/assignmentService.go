package services

import (
	"context"
	"time"

	"github.com/JovenTung/UpNext/config"
	"github.com/JovenTung/UpNext/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateAssignment(userID string, a models.Assignment) (*models.Assignment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("assignments")

	now := time.Now()
	a.DBID = primitive.NewObjectID()
	a.UserID = userID
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := coll.InsertOne(ctx, a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAssignmentsByUser returns the user's assignments, soonest due first.
func GetAssignmentsByUser(userID string) ([]models.Assignment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("assignments")

	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.Assignment{}
	err = cursor.All(ctx, &out)
	return out, err
}

func GetAssignment(userID, assignmentID string) (*models.Assignment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("assignments")

	var a models.Assignment
	err := coll.FindOne(ctx, bson.M{"user_id": userID, "assignment_id": assignmentID}).Decode(&a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAssignment removes an assignment and any study events planned for it.
func DeleteAssignment(userID, assignmentID string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := config.OpenCollection("assignments").
		DeleteOne(ctx, bson.M{"user_id": userID, "assignment_id": assignmentID})
	if err != nil {
		return 0, err
	}

	_, err = config.OpenCollection("events").
		DeleteMany(ctx, bson.M{"user_id": userID, "assignment_id": assignmentID})
	return res.DeletedCount, err
}
