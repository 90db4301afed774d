package dto

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type ReplyCommentRequest struct {
	ParentCommentID string `json:"parentCommentId"`
	Content         string `json:"content"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

type UpdateProfileRequest struct {
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profilePicture"`
}

type PublishEventRequest struct {
	RecipientID string `json:"recipientId"`
	SenderID    string `json:"senderId"`
	Type        string `json:"type"`
	Message     string `json:"message"`
	EntityID    string `json:"entityId"`
	EntityType  string `json:"entityType"`
}
