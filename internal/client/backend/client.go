package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/devfolio/chat-service/internal/api"
	"github.com/devfolio/chat-service/internal/config"
	"github.com/devfolio/chat-service/internal/infra"
	"github.com/devfolio/chat-service/internal/model"
)

// Client talks to the chat REST API on behalf of a single user. Rows are returned untyped.
type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Client.BaseURL,
		userID:  cfg.Client.UserID,
		httpClient: &http.Client{
			Timeout: cfg.Client.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) ListMessages(ctx context.Context) ([]model.RawRow, error) {
	var response struct {
		Messages []model.RawRow `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/chat/messages", nil, &response); err != nil {
		return nil, err
	}

	return response.Messages, nil
}

func (c *Client) GetMessage(ctx context.Context, id string) (model.RawRow, error) {
	var row model.RawRow
	if err := c.do(ctx, http.MethodGet, "/api/chat/messages/"+url.PathEscape(id), nil, &row); err != nil {
		return nil, err
	}

	return row, nil
}

func (c *Client) InsertMessage(ctx context.Context, content string) (model.RawRow, error) {
	var row model.RawRow
	if err := c.do(ctx, http.MethodPost, "/api/chat/messages", api.SendMessageRequest{Content: content}, &row); err != nil {
		return nil, err
	}

	return row, nil
}

func (c *Client) DeleteMessage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/chat/messages/"+url.PathEscape(id), nil, nil)
}

func (c *Client) TogglePin(ctx context.Context, id string) (model.RawRow, error) {
	var row model.RawRow
	if err := c.do(ctx, http.MethodPost, "/api/chat/messages/"+url.PathEscape(id)+"/pin", nil, &row); err != nil {
		return nil, err
	}

	return row, nil
}

func (c *Client) Vote(ctx context.Context, id, kind string) (model.RawRow, error) {
	var row model.RawRow
	if err := c.do(ctx, http.MethodPost, "/api/chat/messages/"+url.PathEscape(id)+"/votes", api.VoteRequest{Kind: kind}, &row); err != nil {
		return nil, err
	}

	return row, nil
}

func (c *Client) ConnectToken(ctx context.Context) (model.StreamToken, error) {
	return c.token(ctx, "/api/chat/token/connect")
}

func (c *Client) SubscribeToken(ctx context.Context) (model.StreamToken, error) {
	return c.token(ctx, "/api/chat/token/subscribe")
}

func (c *Client) token(ctx context.Context, path string) (model.StreamToken, error) {
	var response api.TokenResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &response); err != nil {
		return model.StreamToken{}, err
	}

	return model.StreamToken{
		Token:     response.Token,
		ExpiresAt: response.ExpiresAt,
		Channel:   response.Channel,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userID != "" {
		req.Header.Set(infra.HeaderUserUUID, c.userID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr api.Error
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)

		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s %s: %w", method, path, model.ErrNotFound)
		}
		return fmt.Errorf("%s %s: unexpected status code %d: %s", method, path, resp.StatusCode, apiErr.Error)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
