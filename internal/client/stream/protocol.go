package stream

import "encoding/json"

// Centrifugo client protocol, JSON flavour. A single websocket frame may carry several
// newline separated replies.

type command struct {
	ID        uint32            `json:"id"`
	Connect   *connectRequest   `json:"connect,omitempty"`
	Subscribe *subscribeRequest `json:"subscribe,omitempty"`
}

type connectRequest struct {
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
}

type subscribeRequest struct {
	Channel string `json:"channel"`
	Token   string `json:"token,omitempty"`
	Recover bool   `json:"recover,omitempty"`
	Offset  uint64 `json:"offset,omitempty"`
	Epoch   string `json:"epoch,omitempty"`
}

type reply struct {
	ID        uint32           `json:"id,omitempty"`
	Error     *replyError      `json:"error,omitempty"`
	Connect   *connectResult   `json:"connect,omitempty"`
	Subscribe *subscribeResult `json:"subscribe,omitempty"`
	Push      *push            `json:"push,omitempty"`
}

// isPing reports whether r is an empty server ping that expects an empty pong.
func (r reply) isPing() bool {
	return r.ID == 0 && r.Error == nil && r.Connect == nil && r.Subscribe == nil && r.Push == nil
}

type replyError struct {
	Code    uint32 `json:"code"`
	Message string `json:"message"`
}

type connectResult struct {
	Client  string `json:"client"`
	Version string `json:"version,omitempty"`
}

type subscribeResult struct {
	Recoverable  bool          `json:"recoverable,omitempty"`
	Epoch        string        `json:"epoch,omitempty"`
	Offset       uint64        `json:"offset,omitempty"`
	Recovered    bool          `json:"recovered,omitempty"`
	Publications []publication `json:"publications,omitempty"`
}

type publication struct {
	Data   json.RawMessage `json:"data"`
	Offset uint64          `json:"offset,omitempty"`
}

type push struct {
	Channel     string          `json:"channel,omitempty"`
	Pub         *publication    `json:"pub,omitempty"`
	Unsubscribe *unsubscribe    `json:"unsubscribe,omitempty"`
	Disconnect  *disconnectPush `json:"disconnect,omitempty"`
}

type unsubscribe struct {
	Code   uint32 `json:"code,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type disconnectPush struct {
	Code   uint32 `json:"code"`
	Reason string `json:"reason"`
}
