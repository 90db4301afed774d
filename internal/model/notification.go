package model

import "time"

type Notification struct {
	ID          string    `json:"id" bson:"_id"`
	RecipientID string    `json:"recipientId" bson:"recipient_id"`
	SenderID    string    `json:"-" bson:"sender_id"`
	Sender      *Author   `json:"sender,omitempty" bson:"-"`
	Type        string    `json:"type" bson:"type"`
	Message     string    `json:"message" bson:"message"`
	EntityID    string    `json:"entityId,omitempty" bson:"entity_id,omitempty"`
	EntityType  string    `json:"entityType,omitempty" bson:"entity_type,omitempty"`
	Read        bool      `json:"read" bson:"read"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}
