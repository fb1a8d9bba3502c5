//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/devfolio/chat-service/internal/api"
	"github.com/devfolio/chat-service/internal/model"
)

type DBRepo interface {
	ListMessages(ctx context.Context, limit uint64) (model.MessageRowList, error)
	GetMessage(ctx context.Context, id string) (*model.MessageRow, error)
	SaveMessage(ctx context.Context, userID, content string) (*model.Message, error)
	DeleteMessage(ctx context.Context, id string) (*model.Message, error)
	TogglePin(ctx context.Context, id string) (*model.Message, error)
	Vote(ctx context.Context, id, kind string) (*model.Message, error)

	GetProfile(ctx context.Context, userID string) (*model.Profile, error)

	ListComments(ctx context.Context, postID string) (model.CommentList, error)
	AddComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, postID, commentID string) (*model.Comment, error)

	GetReaction(ctx context.Context, target model.ReactionTarget, userID string) (string, error)
	InsertReaction(ctx context.Context, reaction model.Reaction) error
	UpdateReaction(ctx context.Context, reaction model.Reaction) error
	DeleteReaction(ctx context.Context, target model.ReactionTarget, userID string) error
	CountReactions(ctx context.Context, target model.ReactionTarget) (*model.ReactionSummary, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type CentrifugoClient interface {
	Publish(ctx context.Context, channel string, event model.ChangeEvent) error
}

type Validator interface {
	ValidateSendMessage(req *api.SendMessageRequest) error
	ValidateVote(req *api.VoteRequest) error
	ValidateAddComment(req *api.AddCommentRequest) error
	ValidateReaction(req *api.ReactRequest) error
	ValidateID(id string) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (model.StreamToken, error)
	GenerateSubscribeToken(userID, channel string) (model.StreamToken, error)
}

type Limiter interface {
	Allow(key string) bool
}
