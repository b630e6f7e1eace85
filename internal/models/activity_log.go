package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityLog records one administrative action (MongoDB)
type ActivityLog struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ActorID   uint               `json:"actor_id" bson:"actor_id"`
	Action    string             `json:"action" bson:"action"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
