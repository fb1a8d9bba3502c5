package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/devfolio/chat-service/internal/api"
	"github.com/devfolio/chat-service/internal/config"
	"github.com/devfolio/chat-service/internal/model"
	"github.com/devfolio/chat-service/internal/pkg/monitoring"
	"github.com/devfolio/chat-service/internal/pkg/tx"
)

type Handler struct {
	repository       DBRepo
	centrifugoClient CentrifugoClient
	validator        Validator
	jwtGenerator     JWTGenerator
	limiter          Limiter
	adminUserID      string
	channel          string
}

func New(
	repo DBRepo,
	centrifugoClient CentrifugoClient,
	validator Validator,
	jwtGenerator JWTGenerator,
	limiter Limiter,
	chat config.Chat,
) *Handler {
	return &Handler{
		repository:       repo,
		centrifugoClient: centrifugoClient,
		validator:        validator,
		jwtGenerator:     jwtGenerator,
		limiter:          limiter,
		adminUserID:      chat.AdminUserID,
		channel:          chat.Channel,
	}
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request, params api.ListMessagesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListMessages")

	var limit uint64
	if params.Limit != nil {
		if *params.Limit < 0 {
			h.writeError(w, "limit must not be negative", http.StatusBadRequest)
			return
		}
		limit = uint64(*params.Limit)
	}

	rows, err := h.repository.ListMessages(r.Context(), limit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to list messages: %v", err), http.StatusInternalServerError)
		return
	}

	messages := make([]api.Message, len(rows))
	for i, row := range rows {
		messages[i] = toAPIMessage(row)
	}

	h.writeJSON(w, api.ListMessagesResponse{Messages: messages}, http.StatusOK)
}

func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessage")

	if err := h.validator.ValidateID(messageId); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	row, err := h.repository.GetMessage(r.Context(), messageId)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			h.writeError(w, "message not found", http.StatusNotFound)
			return
		}
		logger.Error(fmt.Sprintf("failed to get message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get message: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toAPIMessage(*row), http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	senderID, ok := userFromContext(r.Context())
	if !ok {
		h.writeError(w, "sign in to send messages", http.StatusUnauthorized)
		return
	}

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		monitoring.MessagesRejected.WithLabelValues("invalid").Inc()
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	if !h.limiter.Allow(senderID) {
		monitoring.MessagesRejected.WithLabelValues("rate_limited").Inc()
		logger.Warn(fmt.Sprintf("user %s exceeded the send rate", senderID))
		h.writeError(w, "too many messages, slow down", http.StatusTooManyRequests)
		return
	}

	var row *model.MessageRow
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		saved, err := h.repository.SaveMessage(ctx, senderID, req.Content)
		if err != nil {
			return err
		}

		row, err = h.repository.GetMessage(ctx, saved.ID)
		return err
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to send message: %v", err), http.StatusInternalServerError)
		return
	}

	monitoring.MessagesPosted.Inc()

	message := toAPIMessage(*row)
	h.publish(r.Context(), logger, model.ChangeInsert, message, nil)

	h.writeJSON(w, api.SendMessageResponse{
		Id:        message.Id,
		CreatedAt: message.CreatedAt,
	}, http.StatusOK)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteMessage")

	if !h.requireAdmin(w, r) {
		return
	}

	if err := h.validator.ValidateID(messageId); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := h.repository.DeleteMessage(r.Context(), messageId)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			h.writeError(w, "message not found", http.StatusNotFound)
			return
		}
		logger.Error(fmt.Sprintf("failed to delete message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to delete message: %v", err), http.StatusInternalServerError)
		return
	}

	monitoring.ModerationActions.WithLabelValues("delete").Inc()

	h.publish(r.Context(), logger, model.ChangeDelete, nil, map[string]string{"id": deleted.ID, "user_id": deleted.UserID})

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) TogglePin(w http.ResponseWriter, r *http.Request, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("TogglePin")

	if !h.requireAdmin(w, r) {
		return
	}

	if err := h.validator.ValidateID(messageId); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated := h.updateMessage(w, r, logger, messageId, func(ctx context.Context) (*model.Message, error) {
		return h.repository.TogglePin(ctx, messageId)
	})
	if updated {
		monitoring.ModerationActions.WithLabelValues("pin").Inc()
	}
}

func (h *Handler) VoteMessage(w http.ResponseWriter, r *http.Request, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("VoteMessage")

	if _, ok := userFromContext(r.Context()); !ok {
		h.writeError(w, "sign in to vote", http.StatusUnauthorized)
		return
	}

	var req api.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateVote(&req); err != nil {
		h.writeError(w, fmt.Sprintf("vote validation failed: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateID(messageId); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated := h.updateMessage(w, r, logger, messageId, func(ctx context.Context) (*model.Message, error) {
		return h.repository.Vote(ctx, messageId, req.Kind)
	})
	if updated {
		monitoring.Votes.WithLabelValues(req.Kind).Inc()
	}
}

func (h *Handler) GetConnectToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectToken")

	userUUID, ok := userFromContext(r.Context())
	if !ok {
		h.writeError(w, "failed to get user UUID", http.StatusUnauthorized)
		return
	}

	token, err := h.jwtGenerator.GenerateConnectToken(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated access token for user %s", userUUID))

	h.writeJSON(w, api.TokenResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	}, http.StatusOK)
}

func (h *Handler) GetSubscribeToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSubscribeToken")

	userUUID, ok := userFromContext(r.Context())
	if !ok {
		h.writeError(w, "failed to get user UUID", http.StatusUnauthorized)
		return
	}

	token, err := h.jwtGenerator.GenerateSubscribeToken(userUUID, h.channel)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate subscribe token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated subscribe token for user %s, channel %s", userUUID, h.channel))

	h.writeJSON(w, api.TokenResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		Channel:   token.Channel,
	}, http.StatusOK)
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request, postId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListComments")

	comments, err := h.repository.ListComments(r.Context(), postId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list comments: %v", err))
		h.writeError(w, fmt.Sprintf("failed to list comments: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.ListCommentsResponse{Comments: make([]api.Comment, len(comments))}
	for i, c := range comments {
		response.Comments[i] = toAPIComment(c)
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request, postId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AddComment")

	userUUID, ok := userFromContext(r.Context())
	if !ok {
		h.writeError(w, "sign in to comment", http.StatusUnauthorized)
		return
	}

	var req api.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateAddComment(&req); err != nil {
		h.writeError(w, fmt.Sprintf("comment validation failed: %v", err), http.StatusBadRequest)
		return
	}

	author := model.Profile{Username: model.PlaceholderUsername}
	profile, err := h.repository.GetProfile(r.Context(), userUUID)
	switch {
	case err == nil:
		author = *profile
		if author.Username == "" {
			author.Username = model.PlaceholderUsername
		}
	case errors.Is(err, model.ErrNotFound):
	default:
		logger.Error(fmt.Sprintf("failed to get profile: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get profile: %v", err), http.StatusInternalServerError)
		return
	}

	comment := model.Comment{
		PostID:     postId,
		UserID:     userUUID,
		UserName:   author.Username,
		UserAvatar: author.AvatarURL,
		Content:    req.Content,
	}

	if err := h.repository.AddComment(r.Context(), &comment); err != nil {
		logger.Error(fmt.Sprintf("failed to add comment: %v", err))
		h.writeError(w, fmt.Sprintf("failed to add comment: %v", err), http.StatusInternalServerError)
		return
	}

	monitoring.CommentsPosted.Inc()

	h.writeJSON(w, api.AddCommentResponse{
		Id:        comment.ID,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339Nano),
	}, http.StatusOK)
}

func (h *Handler) GetReactions(w http.ResponseWriter, r *http.Request, postId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetReactions")

	h.reactions(w, r, logger, model.PostTarget(postId))
}

// React toggles the caller's reaction: the same reaction removes it, the other one replaces it.
func (h *Handler) React(w http.ResponseWriter, r *http.Request, postId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("React")

	h.react(w, r, logger, model.PostTarget(postId), nil)
}

func (h *Handler) GetCommentReactions(w http.ResponseWriter, r *http.Request, postId string, commentId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetCommentReactions")

	if err := h.validator.ValidateID(commentId); err != nil {
		h.writeError(w, fmt.Sprintf("invalid comment id: %v", err), http.StatusBadRequest)
		return
	}

	if _, err := h.repository.GetComment(r.Context(), postId, commentId); err != nil {
		h.writeCommentError(w, logger, err)
		return
	}

	h.reactions(w, r, logger, model.CommentTarget(commentId))
}

func (h *Handler) ReactToComment(w http.ResponseWriter, r *http.Request, postId string, commentId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ReactToComment")

	if err := h.validator.ValidateID(commentId); err != nil {
		h.writeError(w, fmt.Sprintf("invalid comment id: %v", err), http.StatusBadRequest)
		return
	}

	h.react(w, r, logger, model.CommentTarget(commentId), func(ctx context.Context) error {
		_, err := h.repository.GetComment(ctx, postId, commentId)
		return err
	})
}

// ----------------------------- helpers -----------------------------

func (h *Handler) reactions(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface, target model.ReactionTarget) {
	summary, err := h.repository.CountReactions(r.Context(), target)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to count reactions: %v", err))
		h.writeError(w, fmt.Sprintf("failed to count reactions: %v", err), http.StatusInternalServerError)
		return
	}

	if userUUID, ok := userFromContext(r.Context()); ok {
		summary.Mine, err = h.repository.GetReaction(r.Context(), target, userUUID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to get reaction: %v", err))
			h.writeError(w, fmt.Sprintf("failed to get reaction: %v", err), http.StatusInternalServerError)
			return
		}
	}

	h.writeJSON(w, toAPIReactions(summary), http.StatusOK)
}

// react runs the toggle in one transaction; exists, when set, runs first inside it.
func (h *Handler) react(
	w http.ResponseWriter,
	r *http.Request,
	logger logger_lib.LoggerInterface,
	target model.ReactionTarget,
	exists func(ctx context.Context) error,
) {
	userUUID, ok := userFromContext(r.Context())
	if !ok {
		h.writeError(w, "sign in to react", http.StatusUnauthorized)
		return
	}

	var req api.ReactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateReaction(&req); err != nil {
		h.writeError(w, fmt.Sprintf("reaction validation failed: %v", err), http.StatusBadRequest)
		return
	}

	var summary *model.ReactionSummary
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		if exists != nil {
			if err := exists(ctx); err != nil {
				return err
			}
		}

		current, err := h.repository.GetReaction(ctx, target, userUUID)
		if err != nil {
			return err
		}

		reaction := model.Reaction{Target: target, UserID: userUUID, Reaction: req.Reaction}
		mine := req.Reaction

		switch current {
		case "":
			err = h.repository.InsertReaction(ctx, reaction)
		case req.Reaction:
			err = h.repository.DeleteReaction(ctx, target, userUUID)
			mine = ""
		default:
			err = h.repository.UpdateReaction(ctx, reaction)
		}
		if err != nil {
			return err
		}

		summary, err = h.repository.CountReactions(ctx, target)
		if err != nil {
			return err
		}
		summary.Mine = mine

		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			h.writeError(w, fmt.Sprintf("%s not found", target.Kind), http.StatusNotFound)
			return
		}
		logger.Error(fmt.Sprintf("failed to react: %v", err))
		h.writeError(w, fmt.Sprintf("failed to react: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toAPIReactions(summary), http.StatusOK)
}

func (h *Handler) writeCommentError(w http.ResponseWriter, logger logger_lib.LoggerInterface, err error) {
	if errors.Is(err, model.ErrNotFound) {
		h.writeError(w, "comment not found", http.StatusNotFound)
		return
	}
	logger.Error(fmt.Sprintf("failed to get comment: %v", err))
	h.writeError(w, fmt.Sprintf("failed to get comment: %v", err), http.StatusInternalServerError)
}

func (h *Handler) updateMessage(
	w http.ResponseWriter,
	r *http.Request,
	logger logger_lib.LoggerInterface,
	messageId string,
	update func(ctx context.Context) (*model.Message, error),
) bool {
	var row *model.MessageRow
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		if _, err := update(ctx); err != nil {
			return err
		}

		var err error
		row, err = h.repository.GetMessage(ctx, messageId)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			h.writeError(w, "message not found", http.StatusNotFound)
			return false
		}
		logger.Error(fmt.Sprintf("failed to update message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to update message: %v", err), http.StatusInternalServerError)
		return false
	}

	message := toAPIMessage(*row)
	h.publish(r.Context(), logger, model.ChangeUpdate, message, map[string]string{"id": message.Id})

	h.writeJSON(w, message, http.StatusOK)
	return true
}

// publish is best effort: the row is already committed when it runs.
func (h *Handler) publish(ctx context.Context, logger logger_lib.LoggerInterface, changeType model.ChangeType, newRow, oldRow interface{}) {
	event := model.ChangeEvent{
		Type:            changeType,
		Table:           model.MessagesTable,
		CommitTimestamp: time.Now().UTC(),
	}

	var err error
	if newRow != nil {
		if event.New, err = json.Marshal(newRow); err != nil {
			logger.Error(fmt.Sprintf("failed to marshal change event: %v", err))
			return
		}
	}
	if oldRow != nil {
		if event.Old, err = json.Marshal(oldRow); err != nil {
			logger.Error(fmt.Sprintf("failed to marshal change event: %v", err))
			return
		}
	}

	if err := h.centrifugoClient.Publish(ctx, h.channel, event); err != nil {
		monitoring.PublishFailures.Inc()
		logger.Error(fmt.Sprintf("failed to publish %s event: %v", changeType, err))
	}
}

func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	userUUID, ok := userFromContext(r.Context())
	if !ok {
		h.writeError(w, "sign in to moderate", http.StatusUnauthorized)
		return false
	}

	if h.adminUserID == "" || userUUID != h.adminUserID {
		h.writeError(w, "only the admin can moderate messages", http.StatusForbidden)
		return false
	}

	return true
}

func userFromContext(ctx context.Context) (string, bool) {
	userUUID, ok := ctx.Value(config.KeyUUID).(string)
	return userUUID, ok && userUUID != ""
}

func toAPIMessage(row model.MessageRow) api.Message {
	message := api.Message{
		Id:        row.ID,
		Content:   row.Content,
		UserId:    row.UserID,
		CreatedAt: row.CreatedAt.Format(time.RFC3339Nano),
		IsPinned:  row.IsPinned,
		Likes:     row.Likes,
		Dislikes:  row.Dislikes,
	}

	if row.Username != nil || row.AvatarURL != nil {
		profile := &api.Profile{}
		if row.Username != nil {
			profile.Username = *row.Username
		}
		if row.AvatarURL != nil {
			profile.AvatarUrl = *row.AvatarURL
		}
		message.Profiles = profile
	}

	return message
}

func toAPIComment(c model.Comment) api.Comment {
	return api.Comment{
		Id:         c.ID,
		UserId:     c.UserID,
		UserName:   c.UserName,
		UserAvatar: c.UserAvatar,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339Nano),
	}
}

func toAPIReactions(summary *model.ReactionSummary) api.ReactionsResponse {
	response := api.ReactionsResponse{
		Likes:    summary.Likes,
		Dislikes: summary.Dislikes,
	}
	if summary.Mine != "" {
		mine := summary.Mine
		response.Mine = &mine
	}

	return response
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
