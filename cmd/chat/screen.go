package main

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/devfolio/chat-service/internal/chatsync"
	"github.com/devfolio/chat-service/internal/model"
)

type censor interface {
	Censor(text string) string
}

type screen struct {
	mu     sync.Mutex
	out    io.Writer
	filter censor
	user   *model.Identity
	shown  []model.Message
}

func newScreen(out io.Writer, filter censor, user *model.Identity) *screen {
	return &screen{out: out, filter: filter, user: user}
}

func (s *screen) render(msgs []model.Message, errText string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shown = msgs
	now := time.Now()

	var b strings.Builder
	b.WriteString("\033[H\033[2J")
	if len(msgs) == 0 {
		b.WriteString("No messages yet. Say hello!\n")
	}

	for i, msg := range msgs {
		flags := ""
		if msg.IsPinned {
			flags += " [pinned]"
		}
		if msg.Pending {
			flags += " [sending]"
		}

		fmt.Fprintf(&b, "#%d %s · %s%s  +%d -%d\n", i+1, msg.Author.Username, chatsync.RelativeTime(msg.CreatedAt, now), flags, msg.Likes, msg.Dislikes)
		fmt.Fprintf(&b, "    %s\n", s.filter.Censor(msg.Content))
	}

	if errText != "" {
		fmt.Fprintf(&b, "\n! %s\n", errText)
	}

	switch {
	case s.user == nil:
		b.WriteString("\nread only: set CHAT_CLIENT_USER_ID to join the conversation\n")
	case s.user.IsAdmin:
		b.WriteString("\n(admin) " + help + "\n")
	default:
		b.WriteString("\n" + help + "\n")
	}

	_, _ = io.WriteString(s.out, b.String())
}

func (s *screen) notice(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.out, "> %s\n", text)
}

func (s *screen) messageID(index string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := parseIndex(index, len(s.shown))
	if err != nil {
		return "", err
	}
	return s.shown[i].ID, nil
}
