package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"socialstream/internal/domain"
	"socialstream/internal/model"
)

func (s *Store) CreateComment(ctx context.Context, comment model.Comment) (model.Comment, error) {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = now
	}
	comment.UpdatedAt = comment.CreatedAt
	if comment.ReplyIDs == nil {
		comment.ReplyIDs = []string{}
	}
	if comment.LikeIDs == nil {
		comment.LikeIDs = []string{}
	}
	if _, err := s.comments.InsertOne(ctx, comment); err != nil {
		s.log.Error("mongo insert comment failed", zap.String("comment_id", comment.ID), zap.Error(err))
		return model.Comment{}, err
	}
	return comment, nil
}

func (s *Store) GetComment(ctx context.Context, id string) (model.Comment, error) {
	var comment model.Comment
	err := s.comments.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Comment{}, domain.ErrCommentNotFound
		}
		return model.Comment{}, err
	}
	return comment, nil
}

func (s *Store) ListTopLevelComments(ctx context.Context) ([]model.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	filter := bson.M{"$or": bson.A{
		bson.M{"parent_id": ""},
		bson.M{"parent_id": bson.M{"$exists": false}},
	}}
	cursor, err := s.comments.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var result []model.Comment
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Store) UpdateCommentContent(ctx context.Context, id, content string) (model.Comment, error) {
	update := bson.M{"$set": bson.M{"content": content, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var comment model.Comment
	err := s.comments.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Comment{}, domain.ErrCommentNotFound
		}
		return model.Comment{}, err
	}
	return comment, nil
}

func (s *Store) DeleteComment(ctx context.Context, id string) error {
	result, err := s.comments.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (s *Store) AppendReply(ctx context.Context, parentID, replyID string) error {
	update := bson.M{"$addToSet": bson.M{"reply_ids": replyID}}
	result, err := s.comments.UpdateOne(ctx, bson.M{"_id": parentID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (s *Store) AddLike(ctx context.Context, commentID, userID string) error {
	filter := bson.M{"_id": commentID, "like_ids": bson.M{"$ne": userID}}
	update := bson.M{
		"$addToSet": bson.M{"like_ids": userID},
		"$inc":      bson.M{"likes_count": 1},
	}
	result, err := s.comments.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Already liked, or the comment is gone.
		exists, err := s.commentExists(ctx, commentID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrCommentNotFound
		}
	}
	return nil
}

func (s *Store) RemoveLike(ctx context.Context, commentID, userID string) error {
	filter := bson.M{"_id": commentID, "like_ids": userID}
	update := bson.M{
		"$pull": bson.M{"like_ids": userID},
		"$inc":  bson.M{"likes_count": -1},
	}
	result, err := s.comments.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		exists, err := s.commentExists(ctx, commentID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrCommentNotFound
		}
	}
	return nil
}

func (s *Store) ListLikedComments(ctx context.Context, userID string) ([]model.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.comments.Find(ctx, bson.M{"like_ids": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var result []model.Comment
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Store) CountCommentsByAuthor(ctx context.Context, authorID string) (int, error) {
	count, err := s.comments.CountDocuments(ctx, bson.M{"author_id": authorID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *Store) commentExists(ctx context.Context, id string) (bool, error) {
	err := s.comments.FindOne(ctx, bson.M{"_id": id}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
