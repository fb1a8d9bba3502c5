//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package stream

import (
	"context"

	"github.com/devfolio/chat-service/internal/model"
)

type TokenSource interface {
	ConnectToken(ctx context.Context) (model.StreamToken, error)
	SubscribeToken(ctx context.Context) (model.StreamToken, error)
}

type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}
