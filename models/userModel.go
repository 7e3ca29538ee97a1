package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	DBID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID       string             `bson:"user_id" json:"user_id"`
	Name         *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email        *string            `bson:"email" json:"email" validate:"required,email"`
	Password     *string            `bson:"password" json:"password,omitempty" validate:"required,min=6"`
	Role         *string            `bson:"role" json:"role,omitempty"`
	Token        *string            `bson:"token,omitempty" json:"token,omitempty"`
	RefreshToken *string            `bson:"refresh_token,omitempty" json:"refresh_token,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
