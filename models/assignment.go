package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assignment is a piece of work the user wants study time planned for.
// Only DueDate, EstimatedHours and Understanding drive the planner; the
// remaining fields are carried for display and labeling.
type Assignment struct {
	DBID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID             string             `bson:"assignment_id" json:"id"`
	UserID         string             `bson:"user_id" json:"-"`
	Title          string             `bson:"title" json:"title" binding:"required"`
	Course         string             `bson:"course,omitempty" json:"course,omitempty"`
	Subject        string             `bson:"subject,omitempty" json:"subject,omitempty"`
	DueDate        time.Time          `bson:"due_date" json:"dueDate" binding:"required"`
	EstimatedHours float64            `bson:"estimated_hours" json:"estimatedHours" validate:"gt=0"`
	Understanding  int                `bson:"understanding" json:"understanding" validate:"min=1,max=5"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`

	// Optional intake fields from the assignment form.
	SpecType           string     `bson:"spec_type,omitempty" json:"specType,omitempty"`
	SpecText           string     `bson:"spec_text,omitempty" json:"specText,omitempty"`
	SpecFileName       string     `bson:"spec_file_name,omitempty" json:"specFileName,omitempty"`
	Confidence         int        `bson:"confidence,omitempty" json:"confidence,omitempty"`
	Started            string     `bson:"started,omitempty" json:"started,omitempty"` // yes / partly / no
	IdealStartDate     *time.Time `bson:"ideal_start_date,omitempty" json:"idealStartDate,omitempty"`
	ComfortableDueDate *time.Time `bson:"comfortable_due_date,omitempty" json:"comfortableDueDate,omitempty"`
	Progress           int        `bson:"progress,omitempty" json:"progress,omitempty"` // 0-100

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
