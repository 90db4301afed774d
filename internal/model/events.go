package model

// Payloads carried by outbound websocket events. Kept alongside the
// persisted models so producers and the hub agree on shapes.

type ReplyEvent struct {
	Reply           Comment `json:"reply"`
	ParentCommentID string  `json:"parentCommentId"`
}

type LikeUpdateEvent struct {
	CommentID string `json:"commentId"`
	Liked     bool   `json:"liked"`
	UserID    string `json:"userId"`
}

type CommentUpdatedEvent struct {
	CommentID string `json:"commentId"`
	Content   string `json:"content"`
}

type CommentDeletedEvent struct {
	CommentID string `json:"commentId"`
}
