//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package chatsync

import (
	"context"

	"github.com/devfolio/chat-service/internal/model"
)

// Backend is the row-level API over the messages collection. Rows come back untyped;
// ParseMessage is the only place they are interpreted.
type Backend interface {
	ListMessages(ctx context.Context) ([]model.RawRow, error)
	GetMessage(ctx context.Context, id string) (model.RawRow, error)
	InsertMessage(ctx context.Context, content string) (model.RawRow, error)
	DeleteMessage(ctx context.Context, id string) error
	TogglePin(ctx context.Context, id string) (model.RawRow, error)
	Vote(ctx context.Context, id, kind string) (model.RawRow, error)
}

type ContentFilter interface {
	IsProfane(text string) bool
	Censor(text string) string
}

type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// StreamHandler receives notifications from a change stream.
type StreamHandler interface {
	HandleEvent(ctx context.Context, event model.ChangeEvent) error
	// HandleGap is called when the stream resumed but missed events could not be recovered.
	HandleGap(ctx context.Context)
}

type ChangeStream interface {
	Listen(ctx context.Context, handler StreamHandler) error
}
