package model

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"

	MessagesTable = "messages"
)

// ChangeEvent is a row-level change notification published to the realtime channel.
type ChangeEvent struct {
	Type            ChangeType      `json:"eventType"`
	Table           string          `json:"table"`
	New             json.RawMessage `json:"new,omitempty"`
	Old             json.RawMessage `json:"old,omitempty"`
	CommitTimestamp time.Time       `json:"commit_timestamp"`
}

type CentrifugoEvent struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type CentrifugoEventParams struct {
	Channel string      `json:"channel"`
	Data    ChangeEvent `json:"data"`
}

type CentrifugoConnectClaims struct {
	jwt.RegisteredClaims
}

type CentrifugoSubscribeClaims struct {
	jwt.RegisteredClaims

	Channel string `json:"channel"`
	Client  string `json:"client,omitempty"`

	UserID string `json:"user_id"`
}

// StreamToken is a signed Centrifugo token together with its expiry.
type StreamToken struct {
	Token     string
	ExpiresAt int64
	Channel   string
}
