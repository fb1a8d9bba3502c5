package validator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/devfolio/chat-service/internal/api"
	"github.com/devfolio/chat-service/internal/model"
)

const maxContentLength = 500

type ContentFilter interface {
	IsProfane(text string) bool
}

type Validator struct {
	filter ContentFilter
}

func New(filter ContentFilter) *Validator {
	return &Validator{
		filter: filter,
	}
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	return v.validateContent(req.Content)
}

func (v *Validator) ValidateVote(req *api.VoteRequest) error {
	switch req.Kind {
	case model.VoteLike, model.VoteDislike:
		return nil
	default:
		return fmt.Errorf("vote kind '%s' is not supported", req.Kind)
	}
}

func (v *Validator) ValidateAddComment(req *api.AddCommentRequest) error {
	return v.validateContent(req.Content)
}

func (v *Validator) ValidateReaction(req *api.ReactRequest) error {
	switch req.Reaction {
	case model.ReactionLike, model.ReactionDislike:
		return nil
	default:
		return fmt.Errorf("reaction '%s' is not supported", req.Reaction)
	}
}

func (v *Validator) ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid id '%s'", id)
	}
	return nil
}

func (v *Validator) validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	if v.filter.IsProfane(content) {
		return fmt.Errorf("content contains inappropriate language")
	}

	return nil
}
