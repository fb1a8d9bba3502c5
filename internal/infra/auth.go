package infra

import (
	"context"
	"net/http"

	"github.com/devfolio/chat-service/internal/config"
)

const HeaderUserUUID = "X-User-Uuid"

// AuthInterceptorHTTP puts the caller's user id into the request context when the gateway provided one.
// Anonymous requests pass through; handlers that need an identity reject them.
func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userUUID := r.Header.Get(HeaderUserUUID)
		if userUUID == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userUUID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
