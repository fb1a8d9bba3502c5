package model

type Profile struct {
	UserID    string `db:"id" json:"id,omitempty"`
	Username  string `db:"username" json:"username"`
	AvatarURL string `db:"avatar_url" json:"avatar_url"`
}

// Identity is the signed-in user as seen by the chat client.
type Identity struct {
	UserID    string
	Username  string
	AvatarURL string
	IsAdmin   bool
}

// UserEvent is a user platform change consumed from Kafka.
type UserEvent struct {
	UserUUID  string  `json:"user_uuid"`
	Nickname  *string `json:"nickname,omitempty"`
	AvatarURL *string `json:"avatar_link,omitempty"`
}
