package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/devfolio/chat-service/internal/chatsync"
	"github.com/devfolio/chat-service/internal/model"
)

const (
	defaultRetryInterval = 3 * time.Second
	defaultReadTimeout   = time.Minute
	clientName           = "chat-cli"
)

var errDisconnected = errors.New("server closed the subscription")

// Client follows one Centrifugo channel and feeds its publications to a chatsync.StreamHandler.
// It keeps the last seen stream position so that a reconnect can recover missed publications.
type Client struct {
	url     string
	channel string
	tokens  TokenSource
	logger  Logger
	dialer  *websocket.Dialer

	retryInterval time.Duration
	readTimeout   time.Duration

	nextID atomic.Uint32
	epoch  string
	offset uint64
}

type Option func(*Client)

func WithRetryInterval(d time.Duration) Option {
	return func(c *Client) {
		c.retryInterval = d
	}
}

func WithReadTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.readTimeout = d
	}
}

func New(url, channel string, tokens TokenSource, logger Logger, opts ...Option) *Client {
	c := &Client{
		url:           url,
		channel:       channel,
		tokens:        tokens,
		logger:        logger,
		dialer:        websocket.DefaultDialer,
		retryInterval: defaultRetryInterval,
		readTimeout:   defaultReadTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Listen keeps a subscription open until ctx is cancelled, reconnecting on every failure.
func (c *Client) Listen(ctx context.Context, handler chatsync.StreamHandler) error {
	t := time.NewTicker(c.retryInterval)
	defer t.Stop()

	for {
		err := c.connectAndFollow(ctx, handler)
		if ctx.Err() != nil {
			c.logger.Info("stopping change stream")
			return nil
		}
		c.logger.Warn(fmt.Sprintf("change stream interrupted, reconnecting: %v", err))

		select {
		case <-t.C:
		case <-ctx.Done():
			c.logger.Info("stopping change stream")
			return nil
		}
	}
}

func (c *Client) connectAndFollow(ctx context.Context, handler chatsync.StreamHandler) error {
	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("failed to dial: %w", err)
	}
	defer conn.Close() //nolint:errcheck // .

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	if err := c.connect(ctx, conn, handler); err != nil {
		return err
	}

	if err := c.subscribe(ctx, conn, handler); err != nil {
		return err
	}

	c.logger.Info(fmt.Sprintf("subscribed to %s", c.channel))

	for {
		replies, err := c.read(conn)
		if err != nil {
			return err
		}
		for _, r := range replies {
			if err := c.handle(ctx, conn, r, handler); err != nil {
				return err
			}
		}
	}
}

func (c *Client) connect(ctx context.Context, conn *websocket.Conn, handler chatsync.StreamHandler) error {
	token, err := c.tokens.ConnectToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connect token: %w", err)
	}

	r, err := c.call(ctx, conn, handler, command{Connect: &connectRequest{Token: token.Token, Name: clientName}})
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	if r.Connect == nil {
		return fmt.Errorf("failed to connect: empty connect result")
	}

	return nil
}

func (c *Client) subscribe(ctx context.Context, conn *websocket.Conn, handler chatsync.StreamHandler) error {
	token, err := c.tokens.SubscribeToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get subscribe token: %w", err)
	}

	req := &subscribeRequest{Channel: c.channel, Token: token.Token}
	resuming := c.epoch != ""
	if resuming {
		req.Recover = true
		req.Offset = c.offset
		req.Epoch = c.epoch
	}

	r, err := c.call(ctx, conn, handler, command{Subscribe: req})
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}
	if r.Subscribe == nil {
		return fmt.Errorf("failed to subscribe: empty subscribe result")
	}

	result := r.Subscribe
	recovered := resuming && result.Recovered && result.Epoch == c.epoch

	c.epoch = result.Epoch
	c.offset = result.Offset

	if resuming && !recovered {
		c.logger.Warn(fmt.Sprintf("could not recover %s, resyncing", c.channel))
		handler.HandleGap(ctx)
		return nil
	}

	for _, pub := range result.Publications {
		c.dispatch(ctx, pub, handler)
	}

	return nil
}

// call sends cmd and waits for its reply, handling pings and pushes that arrive first.
func (c *Client) call(ctx context.Context, conn *websocket.Conn, handler chatsync.StreamHandler, cmd command) (reply, error) {
	cmd.ID = c.nextID.Add(1)

	payload, err := json.Marshal(cmd)
	if err != nil {
		return reply{}, fmt.Errorf("failed to marshal command: %w", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return reply{}, fmt.Errorf("failed to write command: %w", err)
	}

	for {
		replies, err := c.read(conn)
		if err != nil {
			return reply{}, err
		}

		for i, r := range replies {
			if r.ID != cmd.ID {
				if err := c.handle(ctx, conn, r, handler); err != nil {
					return reply{}, err
				}
				continue
			}

			if r.Error != nil {
				return reply{}, fmt.Errorf("centrifugo error %d: %s", r.Error.Code, r.Error.Message)
			}
			for _, rest := range replies[i+1:] {
				if err := c.handle(ctx, conn, rest, handler); err != nil {
					return reply{}, err
				}
			}
			return r, nil
		}
	}
}

func (c *Client) read(conn *websocket.Conn) ([]reply, error) {
	if c.readTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(c.readTimeout))
	}

	_, data, err := conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("failed to read: %w", err)
	}

	var replies []reply
	dec := json.NewDecoder(bytes.NewReader(data))
	for {
		var r reply
		if err := dec.Decode(&r); err != nil {
			if errors.Is(err, io.EOF) {
				return replies, nil
			}
			return nil, fmt.Errorf("failed to decode reply: %w", err)
		}
		replies = append(replies, r)
	}
}

func (c *Client) handle(ctx context.Context, conn *websocket.Conn, r reply, handler chatsync.StreamHandler) error {
	if r.isPing() {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("{}")); err != nil {
			return fmt.Errorf("failed to write pong: %w", err)
		}
		return nil
	}

	if r.Push == nil || (r.Push.Channel != "" && r.Push.Channel != c.channel) {
		return nil
	}

	switch {
	case r.Push.Pub != nil:
		c.dispatch(ctx, *r.Push.Pub, handler)
	case r.Push.Unsubscribe != nil:
		return fmt.Errorf("%w: %s", errDisconnected, r.Push.Unsubscribe.Reason)
	case r.Push.Disconnect != nil:
		return fmt.Errorf("%w: %s", errDisconnected, r.Push.Disconnect.Reason)
	}

	return nil
}

func (c *Client) dispatch(ctx context.Context, pub publication, handler chatsync.StreamHandler) {
	if pub.Offset > 0 {
		c.offset = pub.Offset
	}

	var event model.ChangeEvent
	if err := json.Unmarshal(pub.Data, &event); err != nil {
		c.logger.Error(fmt.Sprintf("failed to decode change event: %v", err))
		return
	}

	if err := handler.HandleEvent(ctx, event); err != nil {
		c.logger.Warn(fmt.Sprintf("failed to apply %s event: %v", event.Type, err))
	}
}
