package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/devfolio/chat-service/internal/chatsync"
	"github.com/devfolio/chat-service/internal/model"
)

var errQuit = errors.New("quit")

const help = "commands: /pin N, /del N, /like N, /dislike N, /refresh, /clear, /quit; anything else is sent"

// execute runs one input line. Message numbers refer to the last rendered list.
func execute(ctx context.Context, session *chatsync.Session, screen *screen, line string) error {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "/") {
		if line == "" {
			return nil
		}
		err := session.Submit(ctx, line)
		if errors.Is(err, chatsync.ErrEmptyMessage) {
			return nil
		}
		return err
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit":
		return errQuit
	case "/help":
		screen.notice(help)
		return nil
	case "/clear":
		session.ClearError()
		return nil
	case "/refresh":
		return session.Load(ctx)
	}

	if len(fields) != 2 {
		return fmt.Errorf("usage: %s N", fields[0])
	}

	id, err := screen.messageID(fields[1])
	if err != nil {
		return err
	}

	switch fields[0] {
	case "/pin":
		return session.TogglePin(ctx, id)
	case "/del":
		return session.Delete(ctx, id)
	case "/like":
		return session.Vote(ctx, id, model.VoteLike)
	case "/dislike":
		return session.Vote(ctx, id, model.VoteDislike)
	default:
		return fmt.Errorf("unknown command %s; %s", fields[0], help)
	}
}

func parseIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 || i > n {
		return 0, fmt.Errorf("no message #%s", s)
	}
	return i - 1, nil
}
