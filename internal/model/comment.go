package model

import "time"

type Comment struct {
	ID         string    `json:"id" bson:"_id"`
	Content    string    `json:"content" bson:"content"`
	AuthorID   string    `json:"-" bson:"author_id"`
	Author     *Author   `json:"author,omitempty" bson:"-"`
	ParentID   string    `json:"parentCommentId,omitempty" bson:"parent_id,omitempty"`
	ReplyIDs   []string  `json:"-" bson:"reply_ids"`
	Replies    []Comment `json:"replies,omitempty" bson:"-"`
	LikeIDs    []string  `json:"-" bson:"like_ids"`
	LikesCount int       `json:"likesCount" bson:"likes_count"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updated_at"`
}

// LikedBy reports whether the user is in the comment's like set.
func (c Comment) LikedBy(userID string) bool {
	for _, id := range c.LikeIDs {
		if id == userID {
			return true
		}
	}
	return false
}
