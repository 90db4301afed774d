package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"socialstream/internal/domain"
	"socialstream/internal/model"
)

func (s *Store) CreateUser(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
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
	s.users[user.ID] = user
	return user, nil
}

func (s *Store) GetUser(_ context.Context, id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return model.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return model.User{}, domain.ErrUserNotFound
}

func (s *Store) UpdateProfile(_ context.Context, id, bio, avatarURL string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return model.User{}, domain.ErrUserNotFound
	}
	if bio != "" {
		user.Bio = bio
	}
	if avatarURL != "" {
		user.AvatarURL = avatarURL
	}
	s.users[id] = user
	return user, nil
}

func (s *Store) AddFollower(_ context.Context, targetID, followerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok := s.users[targetID]
	if !ok {
		return domain.ErrUserNotFound
	}
	follower, ok := s.users[followerID]
	if !ok {
		return domain.ErrUserNotFound
	}
	target.Followers = appendUnique(target.Followers, followerID)
	follower.Following = appendUnique(follower.Following, targetID)
	s.users[targetID] = target
	s.users[followerID] = follower
	return nil
}

func (s *Store) RemoveFollower(_ context.Context, targetID, followerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok := s.users[targetID]
	if !ok {
		return domain.ErrUserNotFound
	}
	follower, ok := s.users[followerID]
	if !ok {
		return domain.ErrUserNotFound
	}
	target.Followers = remove(target.Followers, followerID)
	follower.Following = remove(follower.Following, targetID)
	s.users[targetID] = target
	s.users[followerID] = follower
	return nil
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func remove(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
