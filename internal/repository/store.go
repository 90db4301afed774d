package repository

import (
	"context"

	"socialstream/internal/model"
)

type CommentRepository interface {
	CreateComment(ctx context.Context, comment model.Comment) (model.Comment, error)
	GetComment(ctx context.Context, id string) (model.Comment, error)
	ListTopLevelComments(ctx context.Context) ([]model.Comment, error)
	UpdateCommentContent(ctx context.Context, id, content string) (model.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	AppendReply(ctx context.Context, parentID, replyID string) error
	AddLike(ctx context.Context, commentID, userID string) error
	RemoveLike(ctx context.Context, commentID, userID string) error
	ListLikedComments(ctx context.Context, userID string) ([]model.Comment, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification model.Notification) (model.Notification, error)
	ListNotifications(ctx context.Context, recipientID string, limit int) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id, recipientID string) (model.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, recipientID string) error
	CountUnreadNotifications(ctx context.Context, recipientID string) (int, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	UpdateProfile(ctx context.Context, id, bio, avatarURL string) (model.User, error)
	AddFollower(ctx context.Context, targetID, followerID string) error
	RemoveFollower(ctx context.Context, targetID, followerID string) error
	CountCommentsByAuthor(ctx context.Context, authorID string) (int, error)
}

// Store is the full persistence surface consumed by the services.
type Store interface {
	CommentRepository
	NotificationRepository
	UserRepository
}
