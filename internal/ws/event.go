package ws

import (
	"socialstream/internal/model"
)

// EventKind enumerates every outbound event name. The catalog is closed:
// producers go through the constructors below, so a frame with an unknown
// name or a mismatched payload cannot be emitted.
type EventKind string

const (
	EventNewComment         EventKind = "new_comment"
	EventNewReply           EventKind = "new_reply"
	EventLikeUpdate         EventKind = "like_update"
	EventCommentUpdated     EventKind = "comment_updated"
	EventCommentDeleted     EventKind = "comment_deleted"
	EventNotification       EventKind = "notification"
	EventFollowNotification EventKind = "follow_notification"
)

// Event is the frame written to connected clients.
type Event struct {
	Kind    EventKind `json:"event"`
	Payload any       `json:"data"`
}

func NewCommentEvent(comment model.Comment) Event {
	return Event{Kind: EventNewComment, Payload: comment}
}

func NewReplyEvent(reply model.Comment, parentID string) Event {
	return Event{Kind: EventNewReply, Payload: model.ReplyEvent{Reply: reply, ParentCommentID: parentID}}
}

func LikeUpdateEvent(commentID string, liked bool, userID string) Event {
	return Event{Kind: EventLikeUpdate, Payload: model.LikeUpdateEvent{CommentID: commentID, Liked: liked, UserID: userID}}
}

func CommentUpdatedEvent(commentID, content string) Event {
	return Event{Kind: EventCommentUpdated, Payload: model.CommentUpdatedEvent{CommentID: commentID, Content: content}}
}

func CommentDeletedEvent(commentID string) Event {
	return Event{Kind: EventCommentDeleted, Payload: model.CommentDeletedEvent{CommentID: commentID}}
}

func NotificationEvent(notification model.Notification) Event {
	return Event{Kind: EventNotification, Payload: notification}
}

// FollowNotificationEvent carries the same record as NotificationEvent
// under a follow-specific name. The split exists in deployed clients, so
// both names are kept.
func FollowNotificationEvent(notification model.Notification) Event {
	return Event{Kind: EventFollowNotification, Payload: notification}
}
