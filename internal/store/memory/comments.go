package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"socialstream/internal/domain"
	"socialstream/internal/model"
)

func (s *Store) CreateComment(_ context.Context, comment model.Comment) (model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
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
	s.comments[comment.ID] = comment
	s.commentOrder = append(s.commentOrder, comment.ID)
	return comment, nil
}

func (s *Store) GetComment(_ context.Context, id string) (model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment, ok := s.comments[id]
	if !ok {
		return model.Comment{}, domain.ErrCommentNotFound
	}
	return comment, nil
}

func (s *Store) ListTopLevelComments(_ context.Context) ([]model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Comment
	for i := len(s.commentOrder) - 1; i >= 0; i-- {
		comment, ok := s.comments[s.commentOrder[i]]
		if !ok || comment.ParentID != "" {
			continue
		}
		result = append(result, comment)
	}
	return result, nil
}

func (s *Store) UpdateCommentContent(_ context.Context, id, content string) (model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment, ok := s.comments[id]
	if !ok {
		return model.Comment{}, domain.ErrCommentNotFound
	}
	comment.Content = content
	comment.UpdatedAt = time.Now().UTC()
	s.comments[id] = comment
	return comment, nil
}

func (s *Store) DeleteComment(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(s.comments, id)
	return nil
}

func (s *Store) AppendReply(_ context.Context, parentID, replyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	parent, ok := s.comments[parentID]
	if !ok {
		return domain.ErrCommentNotFound
	}
	parent.ReplyIDs = append(parent.ReplyIDs, replyID)
	s.comments[parentID] = parent
	return nil
}

func (s *Store) AddLike(_ context.Context, commentID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment, ok := s.comments[commentID]
	if !ok {
		return domain.ErrCommentNotFound
	}
	if comment.LikedBy(userID) {
		return nil
	}
	comment.LikeIDs = append(comment.LikeIDs, userID)
	comment.LikesCount++
	s.comments[commentID] = comment
	return nil
}

func (s *Store) RemoveLike(_ context.Context, commentID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment, ok := s.comments[commentID]
	if !ok {
		return domain.ErrCommentNotFound
	}
	for i, id := range comment.LikeIDs {
		if id == userID {
			comment.LikeIDs = append(comment.LikeIDs[:i], comment.LikeIDs[i+1:]...)
			comment.LikesCount--
			break
		}
	}
	s.comments[commentID] = comment
	return nil
}

func (s *Store) ListLikedComments(_ context.Context, userID string) ([]model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Comment
	for i := len(s.commentOrder) - 1; i >= 0; i-- {
		comment, ok := s.comments[s.commentOrder[i]]
		if !ok || !comment.LikedBy(userID) {
			continue
		}
		result = append(result, comment)
	}
	return result, nil
}

func (s *Store) CountCommentsByAuthor(_ context.Context, authorID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, comment := range s.comments {
		if comment.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}
