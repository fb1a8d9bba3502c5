package chatsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/devfolio/chat-service/internal/model"
)

const (
	TempIDPrefix = "temp-"

	ErrTextLoad          = "Failed to load messages"
	ErrTextSend          = "Failed to send message"
	ErrTextDelete        = "Failed to delete message"
	ErrTextUpdate        = "Failed to update message"
	ErrTextInappropriate = "Please avoid using inappropriate language."

	fallbackSenderName = "You"
)

var (
	ErrEmptyMessage  = errors.New("message is empty")
	ErrInappropriate = errors.New("message contains inappropriate language")
	ErrNotSignedIn   = errors.New("not signed in")
	ErrForbidden     = errors.New("action requires admin rights")
	ErrNotFound      = errors.New("message not found")
	ErrUnknownVote   = errors.New("unknown vote kind")
)

// Session holds the local view of the chat room and keeps it in sync with the backend.
// Backend calls are made without holding the lock, so completions may interleave the
// same way they do in the browser.
type Session struct {
	backend Backend
	filter  ContentFilter
	logger  Logger
	user    *model.Identity
	now     func() time.Time

	mu       sync.Mutex
	store    *Store
	errText  string
	seq      atomic.Uint64
	onChange func()
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithOnChange registers a callback invoked after every visible state change.
func WithOnChange(fn func()) Option {
	return func(s *Session) {
		s.onChange = fn
	}
}

// New creates a session. user may be nil for a read-only viewer.
func New(backend Backend, filter ContentFilter, logger Logger, user *model.Identity, opts ...Option) *Session {
	s := &Session{
		backend: backend,
		filter:  filter,
		logger:  logger,
		user:    user,
		now:     time.Now,
		store:   NewStore(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Messages returns the display projection of the store.
func (s *Session) Messages() []model.Message {
	s.mu.Lock()
	snapshot := s.store.Snapshot()
	s.mu.Unlock()

	return Project(snapshot)
}

// Err returns the user-visible error, empty when there is none.
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errText
}

func (s *Session) ClearError() {
	s.mutate(func(*Store) {
		s.errText = ""
	})
}

// Load replaces the store with the backend's full message list. On failure the store
// is left empty and the error is surfaced.
func (s *Session) Load(ctx context.Context) error {
	rows, err := s.backend.ListMessages(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("failed to load messages: %v", err))
		s.mutate(func(store *Store) {
			store.Replace(nil)
			s.errText = ErrTextLoad
		})
		return fmt.Errorf("failed to load messages: %w", err)
	}

	msgs := s.parseRows(rows)
	s.mutate(func(store *Store) {
		store.Replace(msgs)
	})

	return nil
}

// Resync re-fetches the full list and replaces the store only when the fetch succeeds.
func (s *Session) Resync(ctx context.Context) {
	rows, err := s.backend.ListMessages(ctx)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("failed to resync messages: %v", err))
		return
	}

	msgs := s.parseRows(rows)
	s.mutate(func(store *Store) {
		pending := make([]model.Message, 0)
		for _, msg := range store.Snapshot() {
			if msg.Pending {
				pending = append(pending, msg)
			}
		}
		store.Replace(msgs)
		for _, msg := range pending {
			store.Append(msg)
		}
	})
	s.logger.Info(fmt.Sprintf("resynced %d messages", len(msgs)))
}

func (s *Session) HandleGap(ctx context.Context) {
	s.logger.Warn("change stream missed events, resyncing")
	s.Resync(ctx)
}

// HandleEvent applies one change notification to the store.
func (s *Session) HandleEvent(ctx context.Context, event model.ChangeEvent) error {
	if event.Table != "" && event.Table != model.MessagesTable {
		return nil
	}

	switch event.Type {
	case model.ChangeInsert:
		return s.applyInsert(ctx, event)
	case model.ChangeUpdate:
		return s.applyUpdate(event)
	case model.ChangeDelete:
		return s.applyDelete(event)
	default:
		return fmt.Errorf("unknown change type %q", event.Type)
	}
}

func (s *Session) applyInsert(ctx context.Context, event model.ChangeEvent) error {
	row, err := DecodeRow(event.New)
	if err != nil {
		return err
	}
	id := asString(row["id"])
	if id == "" {
		return fmt.Errorf("insert event: %w", ErrMissingID)
	}

	if s.contains(id) {
		return nil
	}

	fetched, err := s.backend.GetMessage(ctx, id)
	if err != nil {
		s.logger.Error(fmt.Sprintf("failed to fetch new message %s: %v", id, err))
		return fmt.Errorf("failed to fetch new message: %w", err)
	}

	msg, err := ParseMessage(fetched)
	if err != nil {
		return fmt.Errorf("failed to parse new message: %w", err)
	}

	s.mutate(func(store *Store) {
		store.Append(msg)
	})

	return nil
}

func (s *Session) applyUpdate(event model.ChangeEvent) error {
	row, err := DecodeRow(event.New)
	if err != nil {
		return err
	}
	id := asString(row["id"])
	if id == "" {
		return fmt.Errorf("update event: %w", ErrMissingID)
	}

	s.mutate(func(store *Store) {
		if store.Update(id, func(msg *model.Message) { MergeMessage(msg, row) }) {
			return
		}

		msg, _ := ParseMessage(row)
		if msg.CreatedAt.IsZero() {
			msg.CreatedAt = s.now()
		}
		store.Append(msg)
	})

	return nil
}

func (s *Session) applyDelete(event model.ChangeEvent) error {
	id := ""
	for _, raw := range []json.RawMessage{event.Old, event.New} {
		row, err := DecodeRow(raw)
		if err != nil {
			return err
		}
		if id = asString(row["id"]); id != "" {
			break
		}
	}
	if id == "" {
		return fmt.Errorf("delete event: %w", ErrMissingID)
	}

	s.mutate(func(store *Store) {
		store.Remove(id)
	})

	return nil
}

// Submit shows the message immediately and then asks the backend to store it.
func (s *Session) Submit(ctx context.Context, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyMessage
	}
	if s.user == nil {
		return ErrNotSignedIn
	}
	if s.filter.IsProfane(trimmed) {
		s.mutate(func(*Store) {
			s.errText = ErrTextInappropriate
		})
		return ErrInappropriate
	}

	content := s.filter.Censor(trimmed)
	now := s.now()
	temp := model.Message{
		ID:        fmt.Sprintf("%s%d-%d", TempIDPrefix, now.UnixMilli(), s.seq.Add(1)),
		Content:   content,
		UserID:    s.user.UserID,
		CreatedAt: now,
		Author:    s.senderProfile(),
		Pending:   true,
	}
	s.mutate(func(store *Store) {
		store.Append(temp)
	})

	row, err := s.backend.InsertMessage(ctx, content)
	if err != nil {
		s.logger.Error(fmt.Sprintf("failed to send message: %v", err))
		s.mutate(func(store *Store) {
			store.Remove(temp.ID)
			s.errText = ErrTextSend
		})
		return fmt.Errorf("failed to send message: %w", err)
	}

	confirmed, err := ParseMessage(row)
	if err != nil {
		// the row exists on the server; the change stream delivers it
		s.logger.Warn(fmt.Sprintf("insert confirmation without id: %v", err))
		s.mutate(func(store *Store) {
			store.Remove(temp.ID)
		})
		return nil
	}

	s.mutate(func(store *Store) {
		store.Confirm(temp.ID, confirmed.ID, confirmed.CreatedAt)
	})

	return nil
}

// Delete removes the message locally first. A failed request falls back to a full reload.
func (s *Session) Delete(ctx context.Context, id string) error {
	if !s.isAdmin() {
		return ErrForbidden
	}

	s.mutate(func(store *Store) {
		store.Remove(id)
	})

	if err := s.backend.DeleteMessage(ctx, id); err != nil {
		s.logger.Error(fmt.Sprintf("failed to delete message %s: %v", id, err))
		s.mutate(func(*Store) {
			s.errText = ErrTextDelete
		})
		_ = s.Load(ctx)
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}

// TogglePin flips the pin locally and lets the backend toggle it atomically.
func (s *Session) TogglePin(ctx context.Context, id string) error {
	if !s.isAdmin() {
		return ErrForbidden
	}

	var previous bool
	found := false
	s.mutate(func(store *Store) {
		found = store.Update(id, func(msg *model.Message) {
			previous = msg.IsPinned
			msg.IsPinned = !msg.IsPinned
		})
	})
	if !found {
		return ErrNotFound
	}

	row, err := s.backend.TogglePin(ctx, id)
	if err != nil {
		s.logger.Error(fmt.Sprintf("failed to toggle pin of %s: %v", id, err))
		s.mutate(func(store *Store) {
			store.Update(id, func(msg *model.Message) {
				msg.IsPinned = previous
			})
			s.errText = ErrTextUpdate
		})
		return fmt.Errorf("failed to toggle pin: %w", err)
	}

	s.mutate(func(store *Store) {
		store.Update(id, func(msg *model.Message) {
			MergeMessage(msg, row)
		})
	})

	return nil
}

// Vote bumps the like or dislike count locally and lets the backend increment it atomically.
func (s *Session) Vote(ctx context.Context, id, kind string) error {
	if s.user == nil {
		return ErrNotSignedIn
	}

	var delta func(msg *model.Message, n int64)
	switch kind {
	case model.VoteLike:
		delta = func(msg *model.Message, n int64) { msg.Likes += n }
	case model.VoteDislike:
		delta = func(msg *model.Message, n int64) { msg.Dislikes += n }
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVote, kind)
	}

	found := false
	s.mutate(func(store *Store) {
		found = store.Update(id, func(msg *model.Message) { delta(msg, 1) })
	})
	if !found {
		return ErrNotFound
	}

	row, err := s.backend.Vote(ctx, id, kind)
	if err != nil {
		s.logger.Error(fmt.Sprintf("failed to vote on %s: %v", id, err))
		s.mutate(func(store *Store) {
			store.Update(id, func(msg *model.Message) { delta(msg, -1) })
			s.errText = ErrTextUpdate
		})
		return fmt.Errorf("failed to vote: %w", err)
	}

	s.mutate(func(store *Store) {
		store.Update(id, func(msg *model.Message) {
			MergeMessage(msg, row)
		})
	})

	return nil
}

func (s *Session) parseRows(rows []model.RawRow) []model.Message {
	msgs := make([]model.Message, 0, len(rows))
	for _, row := range rows {
		msg, err := ParseMessage(row)
		if err != nil {
			s.logger.Warn(fmt.Sprintf("skipping message row: %v", err))
			continue
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

func (s *Session) contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Contains(id)
}

func (s *Session) isAdmin() bool {
	return s.user != nil && s.user.IsAdmin
}

func (s *Session) senderProfile() model.Profile {
	profile := model.Profile{
		UserID:    s.user.UserID,
		Username:  s.user.Username,
		AvatarURL: s.user.AvatarURL,
	}
	if profile.Username == "" {
		profile.Username = fallbackSenderName
	}
	return profile
}

func (s *Session) mutate(fn func(store *Store)) {
	s.mu.Lock()
	fn(s.store)
	s.mu.Unlock()

	if s.onChange != nil {
		s.onChange()
	}
}
