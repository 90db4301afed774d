package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Store struct {
	comments      *mongo.Collection
	notifications *mongo.Collection
	users         *mongo.Collection
	log           *zap.Logger
}

func New(db *mongo.Database, logger *zap.Logger) *Store {
	return &Store{
		comments:      db.Collection("comments"),
		notifications: db.Collection("notifications"),
		users:         db.Collection("users"),
		log:           logger,
	}
}
