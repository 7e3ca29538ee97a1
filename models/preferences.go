package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkWindow is one recurring weekly availability slot. Day uses the
// time.Weekday numbering, Sunday=0. Start and End are wall-clock "HH:mm".
type WorkWindow struct {
	Day   int    `bson:"day" json:"day" validate:"min=0,max=6"`
	Start string `bson:"start" json:"start" binding:"required"`
	End   string `bson:"end" json:"end" binding:"required"`
}

// UserPreferences holds the user's availability and self-reported load.
// DailyMaxHours is persisted for the UI but the planner does not enforce it.
type UserPreferences struct {
	DBID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID        string             `bson:"user_id" json:"-"`
	DailyMaxHours float64            `bson:"daily_max_hours" json:"dailyMaxHours"`
	WorkWindows   []WorkWindow       `bson:"work_windows" json:"workWindows" validate:"dive"`
	StressLevel   int                `bson:"stress_level" json:"stressLevel" validate:"min=1,max=5"`
	Proficiencies map[string]int     `bson:"proficiencies,omitempty" json:"proficiencies,omitempty"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
