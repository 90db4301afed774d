package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"socialstream/internal/domain"
	"socialstream/internal/model"
)

func (s *Store) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.Followers == nil {
		user.Followers = []string{}
	}
	if user.Following == nil {
		user.Following = []string{}
	}
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (model.User, error) {
	var user model.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, domain.ErrUserNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	err := s.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, domain.ErrUserNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (s *Store) UpdateProfile(ctx context.Context, id, bio, avatarURL string) (model.User, error) {
	set := bson.M{}
	if bio != "" {
		set["bio"] = bio
	}
	if avatarURL != "" {
		set["profile_picture"] = avatarURL
	}
	if len(set) == 0 {
		return s.GetUser(ctx, id)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user model.User
	err := s.users.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, domain.ErrUserNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (s *Store) AddFollower(ctx context.Context, targetID, followerID string) error {
	result, err := s.users.UpdateOne(ctx, bson.M{"_id": targetID},
		bson.M{"$addToSet": bson.M{"followers": followerID}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	result, err = s.users.UpdateOne(ctx, bson.M{"_id": followerID},
		bson.M{"$addToSet": bson.M{"following": targetID}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *Store) RemoveFollower(ctx context.Context, targetID, followerID string) error {
	if _, err := s.users.UpdateOne(ctx, bson.M{"_id": targetID},
		bson.M{"$pull": bson.M{"followers": followerID}}); err != nil {
		return err
	}
	_, err := s.users.UpdateOne(ctx, bson.M{"_id": followerID},
		bson.M{"$pull": bson.M{"following": targetID}})
	return err
}
