package domain

import "errors"

const (
	NotificationTypeReply  = "reply"
	NotificationTypeLike   = "like"
	NotificationTypeFollow = "follow"
)

const (
	EntityTypeComment = "Comment"
	EntityTypeUser    = "User"
)

var ErrInvalidNotificationType = errors.New("invalid notification type")

func IsValidNotificationType(value string) bool {
	switch value {
	case NotificationTypeReply, NotificationTypeLike, NotificationTypeFollow:
		return true
	default:
		return false
	}
}
