package api

type Error struct {
	Error string `json:"error"`
}

type Profile struct {
	Username  string `json:"username"`
	AvatarUrl string `json:"avatar_url"`
}

type Message struct {
	Id        string   `json:"id"`
	Content   string   `json:"content"`
	UserId    string   `json:"user_id"`
	CreatedAt string   `json:"created_at"`
	IsPinned  bool     `json:"is_pinned"`
	Likes     int64    `json:"likes"`
	Dislikes  int64    `json:"dislikes"`
	Profiles  *Profile `json:"profiles"`
}

type ListMessagesParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

type ListMessagesResponse struct {
	Messages []Message `json:"messages"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type SendMessageResponse struct {
	Id        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

type VoteRequest struct {
	Kind string `json:"kind"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Channel   string `json:"channel,omitempty"`
}

type Comment struct {
	Id         string `json:"id"`
	UserId     string `json:"user_id"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

type ListCommentsResponse struct {
	Comments []Comment `json:"comments"`
}

type AddCommentRequest struct {
	Content string `json:"content"`
}

type AddCommentResponse struct {
	Id        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

type ReactRequest struct {
	Reaction string `json:"reaction"`
}

type ReactionsResponse struct {
	Likes    int64   `json:"likes"`
	Dislikes int64   `json:"dislikes"`
	Mine     *string `json:"mine,omitempty"`
}
