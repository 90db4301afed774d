package social

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"socialstream/internal/domain"
	"socialstream/internal/model"
	"socialstream/internal/repository"
	"socialstream/internal/service/notify"
)

// Service covers follower relationships and user profiles.
type Service struct {
	store  repository.Store
	notify *notify.Service
	log    *zap.Logger
}

func NewService(store repository.Store, notifySvc *notify.Service, logger *zap.Logger) *Service {
	return &Service{store: store, notify: notifySvc, log: logger}
}

func (s *Service) Follow(ctx context.Context, followerID, targetID string) error {
	if followerID == targetID {
		return domain.ErrSelfFollow
	}
	if err := s.store.AddFollower(ctx, targetID, followerID); err != nil {
		s.log.Error("store add follower failed",
			zap.String("target_id", targetID),
			zap.String("follower_id", followerID),
			zap.Error(err),
		)
		return err
	}

	follower, err := s.store.GetUser(ctx, followerID)
	if err != nil {
		return err
	}
	if _, err := s.notify.Create(ctx,
		targetID,
		followerID,
		domain.NotificationTypeFollow,
		fmt.Sprintf("%s started following you", follower.Username),
		followerID,
		domain.EntityTypeUser,
	); err != nil {
		s.log.Error("follow notification failed", zap.String("target_id", targetID), zap.Error(err))
	}
	return nil
}

func (s *Service) Unfollow(ctx context.Context, followerID, targetID string) error {
	return s.store.RemoveFollower(ctx, targetID, followerID)
}

func (s *Service) IsFollowing(ctx context.Context, followerID, targetID string) (bool, error) {
	user, err := s.store.GetUser(ctx, followerID)
	if err != nil {
		return false, err
	}
	for _, id := range user.Following {
		if id == targetID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) Followers(ctx context.Context, userID string) ([]model.Author, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveAuthors(ctx, user.Followers), nil
}

func (s *Service) Following(ctx context.Context, userID string) ([]model.Author, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveAuthors(ctx, user.Following), nil
}

func (s *Service) Profile(ctx context.Context, userID string) (model.Profile, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return model.Profile{}, err
	}
	return s.buildProfile(ctx, user)
}

func (s *Service) ProfileByUsername(ctx context.Context, username string) (model.Profile, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return model.Profile{}, err
	}
	return s.buildProfile(ctx, user)
}

func (s *Service) UpdateProfile(ctx context.Context, userID, bio, avatarURL string) (model.User, error) {
	return s.store.UpdateProfile(ctx, userID, bio, avatarURL)
}

func (s *Service) buildProfile(ctx context.Context, user model.User) (model.Profile, error) {
	commentsCount, err := s.store.CountCommentsByAuthor(ctx, user.ID)
	if err != nil {
		s.log.Error("comment count failed", zap.String("user_id", user.ID), zap.Error(err))
		return model.Profile{}, err
	}
	return model.Profile{
		User:           user,
		FollowersCount: len(user.Followers),
		FollowingCount: len(user.Following),
		CommentsCount:  commentsCount,
	}, nil
}

func (s *Service) resolveAuthors(ctx context.Context, ids []string) []model.Author {
	authors := make([]model.Author, 0, len(ids))
	for _, id := range ids {
		user, err := s.store.GetUser(ctx, id)
		if err != nil {
			s.log.Warn("user lookup failed", zap.String("user_id", id), zap.Error(err))
			continue
		}
		authors = append(authors, user.AsAuthor())
	}
	return authors
}
