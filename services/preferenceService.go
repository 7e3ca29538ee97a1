package services

import (
	"context"
	"time"

	"github.com/JovenTung/UpNext/config"
	"github.com/JovenTung/UpNext/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SavePreferences upserts the single preferences document for a user.
func SavePreferences(userID string, prefs models.UserPreferences) (*models.UserPreferences, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("preferences")

	prefs.UserID = userID
	prefs.UpdatedAt = time.Now()

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "daily_max_hours", Value: prefs.DailyMaxHours},
		{Key: "work_windows", Value: prefs.WorkWindows},
		{Key: "stress_level", Value: prefs.StressLevel},
		{Key: "proficiencies", Value: prefs.Proficiencies},
		{Key: "updated_at", Value: prefs.UpdatedAt},
	}}}

	opts := options.Update().SetUpsert(true)
	_, err := coll.UpdateOne(ctx, bson.M{"user_id": userID}, update, opts)
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

// GetPreferences fetches the user's preferences; ok=false when never saved.
func GetPreferences(userID string) (*models.UserPreferences, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("preferences")

	var prefs models.UserPreferences
	err := coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&prefs)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &prefs, true, nil
}
