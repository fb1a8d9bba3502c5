package model

import "time"

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

const (
	TargetPost    = "post"
	TargetComment = "comment"
)

type CommentList []Comment

type Comment struct {
	ID         string    `db:"id"`
	PostID     string    `db:"post_id"`
	UserID     string    `db:"user_id"`
	UserName   string    `db:"user_name"`
	UserAvatar string    `db:"user_avatar"`
	Content    string    `db:"content"`
	CreatedAt  time.Time `db:"created_at"`
}

// ReactionTarget is the post or comment a reaction belongs to.
type ReactionTarget struct {
	Kind string
	ID   string
}

func PostTarget(postID string) ReactionTarget {
	return ReactionTarget{Kind: TargetPost, ID: postID}
}

func CommentTarget(commentID string) ReactionTarget {
	return ReactionTarget{Kind: TargetComment, ID: commentID}
}

type Reaction struct {
	Target   ReactionTarget
	UserID   string
	Reaction string
}

type ReactionSummary struct {
	Likes    int64  `db:"likes"`
	Dislikes int64  `db:"dislikes"`
	Mine     string `db:"-"`
}
