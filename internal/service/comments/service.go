package comments

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"socialstream/internal/auth"
	"socialstream/internal/domain"
	"socialstream/internal/model"
	"socialstream/internal/repository"
	"socialstream/internal/service/notify"
	"socialstream/internal/ws"
)

// Service hosts the comment, reply and like producers. Each mutating
// operation persists first and emits its events only once persistence has
// succeeded; a failed operation emits nothing.
type Service struct {
	store  repository.Store
	notify *notify.Service
	hub    *ws.Hub
	log    *zap.Logger
}

func NewService(store repository.Store, notifySvc *notify.Service, hub *ws.Hub, logger *zap.Logger) *Service {
	return &Service{store: store, notify: notifySvc, hub: hub, log: logger}
}

type LikeResult struct {
	Liked   bool   `json:"liked"`
	Message string `json:"message"`
}

type CommentLikes struct {
	Likes      []model.Author `json:"likes"`
	LikesCount int            `json:"likesCount"`
}

func (s *Service) Create(ctx context.Context, actor auth.Identity, content string) (model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return model.Comment{}, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	created, err := s.store.CreateComment(ctx, model.Comment{
		Content:  content,
		AuthorID: actor.UserID,
	})
	if err != nil {
		s.log.Error("store create comment failed", zap.String("author_id", actor.UserID), zap.Error(err))
		return model.Comment{}, err
	}
	populated, err := s.populate(ctx, created, true)
	if err != nil {
		return model.Comment{}, err
	}
	s.hub.Broadcast(ws.NewCommentEvent(populated))
	return populated, nil
}

func (s *Service) Reply(ctx context.Context, actor auth.Identity, parentID, content string) (model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return model.Comment{}, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	parent, err := s.store.GetComment(ctx, parentID)
	if err != nil {
		return model.Comment{}, err
	}

	reply, err := s.store.CreateComment(ctx, model.Comment{
		Content:  content,
		AuthorID: actor.UserID,
		ParentID: parentID,
	})
	if err != nil {
		s.log.Error("store create reply failed", zap.String("parent_id", parentID), zap.Error(err))
		return model.Comment{}, err
	}
	if err := s.store.AppendReply(ctx, parentID, reply.ID); err != nil {
		return model.Comment{}, err
	}

	populated, err := s.populate(ctx, reply, false)
	if err != nil {
		return model.Comment{}, err
	}
	s.hub.Broadcast(ws.NewReplyEvent(populated, parentID))

	if _, err := s.notify.Create(ctx,
		parent.AuthorID,
		actor.UserID,
		domain.NotificationTypeReply,
		fmt.Sprintf("%s replied to your comment", actor.Username),
		reply.ID,
		domain.EntityTypeComment,
	); err != nil {
		s.log.Error("reply notification failed", zap.String("reply_id", reply.ID), zap.Error(err))
	}
	return populated, nil
}

// ToggleLike flips the actor's like on a comment. A like broadcasts and
// notifies the author; an unlike only broadcasts, so the counter update
// propagates but no one hears about the unlike.
func (s *Service) ToggleLike(ctx context.Context, actor auth.Identity, commentID string) (LikeResult, error) {
	comment, err := s.store.GetComment(ctx, commentID)
	if err != nil {
		return LikeResult{}, err
	}

	liked := !comment.LikedBy(actor.UserID)
	if liked {
		err = s.store.AddLike(ctx, commentID, actor.UserID)
	} else {
		err = s.store.RemoveLike(ctx, commentID, actor.UserID)
	}
	if err != nil {
		s.log.Error("store toggle like failed", zap.String("comment_id", commentID), zap.Error(err))
		return LikeResult{}, err
	}

	s.hub.Broadcast(ws.LikeUpdateEvent(commentID, liked, actor.UserID))

	if liked {
		if _, err := s.notify.Create(ctx,
			comment.AuthorID,
			actor.UserID,
			domain.NotificationTypeLike,
			fmt.Sprintf("%s liked your comment", actor.Username),
			commentID,
			domain.EntityTypeComment,
		); err != nil {
			s.log.Error("like notification failed", zap.String("comment_id", commentID), zap.Error(err))
		}
		return LikeResult{Liked: true, Message: "Comment liked"}, nil
	}
	return LikeResult{Liked: false, Message: "Comment unliked"}, nil
}

func (s *Service) Update(ctx context.Context, actor auth.Identity, commentID, content string) (model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return model.Comment{}, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	comment, err := s.store.GetComment(ctx, commentID)
	if err != nil {
		return model.Comment{}, err
	}
	if comment.AuthorID != actor.UserID {
		return model.Comment{}, domain.ErrUnauthorized
	}

	updated, err := s.store.UpdateCommentContent(ctx, commentID, content)
	if err != nil {
		return model.Comment{}, err
	}
	populated, err := s.populate(ctx, updated, false)
	if err != nil {
		return model.Comment{}, err
	}
	s.hub.Broadcast(ws.CommentUpdatedEvent(commentID, content))
	return populated, nil
}

func (s *Service) Delete(ctx context.Context, actor auth.Identity, commentID string) error {
	comment, err := s.store.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != actor.UserID {
		return domain.ErrUnauthorized
	}
	if err := s.store.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	s.hub.Broadcast(ws.CommentDeletedEvent(commentID))
	return nil
}

func (s *Service) Get(ctx context.Context, commentID string) (model.Comment, error) {
	comment, err := s.store.GetComment(ctx, commentID)
	if err != nil {
		return model.Comment{}, err
	}
	return s.populate(ctx, comment, true)
}

func (s *Service) List(ctx context.Context) ([]model.Comment, error) {
	comments, err := s.store.ListTopLevelComments(ctx)
	if err != nil {
		s.log.Error("store list comments failed", zap.Error(err))
		return nil, err
	}
	result := make([]model.Comment, 0, len(comments))
	for _, comment := range comments {
		populated, err := s.populate(ctx, comment, true)
		if err != nil {
			return nil, err
		}
		result = append(result, populated)
	}
	return result, nil
}

func (s *Service) Likes(ctx context.Context, commentID string) (CommentLikes, error) {
	comment, err := s.store.GetComment(ctx, commentID)
	if err != nil {
		return CommentLikes{}, err
	}
	likes := make([]model.Author, 0, len(comment.LikeIDs))
	for _, userID := range comment.LikeIDs {
		user, err := s.store.GetUser(ctx, userID)
		if err != nil {
			s.log.Warn("like user lookup failed", zap.String("user_id", userID), zap.Error(err))
			continue
		}
		likes = append(likes, user.AsAuthor())
	}
	return CommentLikes{Likes: likes, LikesCount: comment.LikesCount}, nil
}

func (s *Service) ListLiked(ctx context.Context, userID string) ([]model.Comment, error) {
	comments, err := s.store.ListLikedComments(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Comment, 0, len(comments))
	for _, comment := range comments {
		populated, err := s.populate(ctx, comment, false)
		if err != nil {
			return nil, err
		}
		result = append(result, populated)
	}
	return result, nil
}

// populate resolves the author projection and, when asked, the reply tree
// one level deep.
func (s *Service) populate(ctx context.Context, comment model.Comment, withReplies bool) (model.Comment, error) {
	author, err := s.store.GetUser(ctx, comment.AuthorID)
	if err == nil {
		a := author.AsAuthor()
		comment.Author = &a
	} else {
		s.log.Warn("author lookup failed", zap.String("author_id", comment.AuthorID), zap.Error(err))
	}

	if !withReplies || len(comment.ReplyIDs) == 0 {
		return comment, nil
	}
	replies := make([]model.Comment, 0, len(comment.ReplyIDs))
	for _, replyID := range comment.ReplyIDs {
		reply, err := s.store.GetComment(ctx, replyID)
		if err != nil {
			continue
		}
		populated, err := s.populate(ctx, reply, false)
		if err != nil {
			return model.Comment{}, err
		}
		replies = append(replies, populated)
	}
	comment.Replies = replies
	return comment, nil
}
