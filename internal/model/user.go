package model

import "time"

type User struct {
	ID        string    `json:"id" bson:"_id"`
	Username  string    `json:"username" bson:"username"`
	AvatarURL string    `json:"profilePicture,omitempty" bson:"profile_picture,omitempty"`
	Bio       string    `json:"bio,omitempty" bson:"bio,omitempty"`
	Followers []string  `json:"followers" bson:"followers"`
	Following []string  `json:"following" bson:"following"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// Author is the public projection of a user embedded in comments and
// notifications.
type Author struct {
	ID        string `json:"id" bson:"_id"`
	Username  string `json:"username" bson:"username"`
	AvatarURL string `json:"profilePicture,omitempty" bson:"profile_picture,omitempty"`
}

func (u User) AsAuthor() Author {
	return Author{ID: u.ID, Username: u.Username, AvatarURL: u.AvatarURL}
}

type Profile struct {
	User
	FollowersCount int `json:"followersCount"`
	FollowingCount int `json:"followingCount"`
	CommentsCount  int `json:"commentsCount"`
}
