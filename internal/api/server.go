package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

type ServerInterface interface {
	// (GET /api/chat/messages)
	ListMessages(w http.ResponseWriter, r *http.Request, params ListMessagesParams)
	// (POST /api/chat/messages)
	SendMessage(w http.ResponseWriter, r *http.Request)
	// (GET /api/chat/messages/{message_id})
	GetMessage(w http.ResponseWriter, r *http.Request, messageId string)
	// (DELETE /api/chat/messages/{message_id})
	DeleteMessage(w http.ResponseWriter, r *http.Request, messageId string)
	// (POST /api/chat/messages/{message_id}/pin)
	TogglePin(w http.ResponseWriter, r *http.Request, messageId string)
	// (POST /api/chat/messages/{message_id}/votes)
	VoteMessage(w http.ResponseWriter, r *http.Request, messageId string)
	// (GET /api/chat/token/connect)
	GetConnectToken(w http.ResponseWriter, r *http.Request)
	// (GET /api/chat/token/subscribe)
	GetSubscribeToken(w http.ResponseWriter, r *http.Request)
	// (GET /api/blog/posts/{post_id}/comments)
	ListComments(w http.ResponseWriter, r *http.Request, postId string)
	// (POST /api/blog/posts/{post_id}/comments)
	AddComment(w http.ResponseWriter, r *http.Request, postId string)
	// (GET /api/blog/posts/{post_id}/reactions)
	GetReactions(w http.ResponseWriter, r *http.Request, postId string)
	// (POST /api/blog/posts/{post_id}/reactions)
	React(w http.ResponseWriter, r *http.Request, postId string)
	// (GET /api/blog/posts/{post_id}/comments/{comment_id}/reactions)
	GetCommentReactions(w http.ResponseWriter, r *http.Request, postId string, commentId string)
	// (POST /api/blog/posts/{post_id}/comments/{comment_id}/reactions)
	ReactToComment(w http.ResponseWriter, r *http.Request, postId string, commentId string)
}

type serverWrapper struct {
	handler ServerInterface
}

// HandlerFromMux registers every route of si on r and returns r.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	sw := &serverWrapper{handler: si}

	r.Get("/api/chat/messages", sw.ListMessages)
	r.Post("/api/chat/messages", si.SendMessage)
	r.Get("/api/chat/messages/{message_id}", sw.withPathParam("message_id", si.GetMessage))
	r.Delete("/api/chat/messages/{message_id}", sw.withPathParam("message_id", si.DeleteMessage))
	r.Post("/api/chat/messages/{message_id}/pin", sw.withPathParam("message_id", si.TogglePin))
	r.Post("/api/chat/messages/{message_id}/votes", sw.withPathParam("message_id", si.VoteMessage))
	r.Get("/api/chat/token/connect", si.GetConnectToken)
	r.Get("/api/chat/token/subscribe", si.GetSubscribeToken)
	r.Get("/api/blog/posts/{post_id}/comments", sw.withPathParam("post_id", si.ListComments))
	r.Post("/api/blog/posts/{post_id}/comments", sw.withPathParam("post_id", si.AddComment))
	r.Get("/api/blog/posts/{post_id}/reactions", sw.withPathParam("post_id", si.GetReactions))
	r.Post("/api/blog/posts/{post_id}/reactions", sw.withPathParam("post_id", si.React))
	r.Get("/api/blog/posts/{post_id}/comments/{comment_id}/reactions", sw.withCommentPath(si.GetCommentReactions))
	r.Post("/api/blog/posts/{post_id}/comments/{comment_id}/reactions", sw.withCommentPath(si.ReactToComment))

	return r
}

func (sw *serverWrapper) ListMessages(w http.ResponseWriter, r *http.Request) {
	var params ListMessagesParams

	err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		writeBindError(w, fmt.Errorf("invalid format for parameter limit: %w", err))
		return
	}

	sw.handler.ListMessages(w, r, params)
}

func (sw *serverWrapper) withPathParam(name string, next func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value, err := bindPathParam(r, name)
		if err != nil {
			writeBindError(w, err)
			return
		}

		next(w, r, value)
	}
}

func (sw *serverWrapper) withCommentPath(next func(http.ResponseWriter, *http.Request, string, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postId, err := bindPathParam(r, "post_id")
		if err != nil {
			writeBindError(w, err)
			return
		}

		commentId, err := bindPathParam(r, "comment_id")
		if err != nil {
			writeBindError(w, err)
			return
		}

		next(w, r, postId, commentId)
	}
}

func bindPathParam(r *http.Request, name string) (string, error) {
	var value string

	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &value, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return "", fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}

	return value, nil
}

func writeBindError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(Error{Error: err.Error()})
}
