package model

import (
	"time"
)

const (
	PlaceholderUsername = "Unknown"

	VoteLike    = "like"
	VoteDislike = "dislike"
)

type MessageList []Message

type Message struct {
	ID        string    `db:"id" json:"id"`
	Content   string    `db:"content" json:"content"`
	UserID    string    `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	IsPinned  bool      `db:"is_pinned" json:"is_pinned"`
	Likes     int64     `db:"likes" json:"likes"`
	Dislikes  int64     `db:"dislikes" json:"dislikes"`

	// Author is denormalized from profiles at read time.
	Author Profile `db:"-" json:"-"`
	// Pending is set while the message only exists locally.
	Pending bool `db:"-" json:"-"`
}

// MessageRow is a message joined with its author's profile.
type MessageRow struct {
	Message
	Username  *string `db:"username"`
	AvatarURL *string `db:"avatar_url"`
}

type MessageRowList []MessageRow

// RawRow is an untyped backend row as it arrives over the wire.
type RawRow map[string]any
