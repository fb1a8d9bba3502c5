package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/devfolio/chat-service/internal/config"
	"github.com/devfolio/chat-service/internal/model"
)

type Handler struct {
	dbR DBRepo
}

func New(dbR DBRepo) *Handler {
	return &Handler{dbR: dbR}
}

// Handler keeps the profiles table in sync with user platform events. Malformed events are
// logged and dropped so they do not block the partition.
func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserProfileUpdate")

	var event model.UserEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user event: %v", err))
		return nil
	}

	if _, err := uuid.Parse(event.UserUUID); err != nil {
		logger.Error(fmt.Sprintf("user event has invalid uuid '%s'", event.UserUUID))
		return nil
	}

	if event.Nickname == nil && event.AvatarURL == nil {
		return nil
	}

	if err := h.dbR.UpsertProfile(ctx, event.UserUUID, event.Nickname, event.AvatarURL); err != nil {
		logger.Error(fmt.Sprintf("failed to update profile of %s: %v", event.UserUUID, err))
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}
