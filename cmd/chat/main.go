package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/devfolio/chat-service/internal/chatsync"
	"github.com/devfolio/chat-service/internal/client/backend"
	"github.com/devfolio/chat-service/internal/client/stream"
	"github.com/devfolio/chat-service/internal/config"
	"github.com/devfolio/chat-service/internal/model"
	"github.com/devfolio/chat-service/internal/pkg/profanity"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name+"-cli", cfg.Platform.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backendClient := backend.New(cfg)
	defer backendClient.Close()

	var user *model.Identity
	if cfg.Client.UserID != "" {
		user = &model.Identity{
			UserID:    cfg.Client.UserID,
			Username:  cfg.Client.Username,
			AvatarURL: cfg.Client.AvatarURL,
			IsAdmin:   cfg.Chat.AdminUserID != "" && cfg.Client.UserID == cfg.Chat.AdminUserID,
		}
	}

	filter := profanity.New()
	screen := newScreen(os.Stdout, filter, user)

	var session *chatsync.Session
	session = chatsync.New(backendClient, filter, logger, user, chatsync.WithOnChange(func() {
		screen.render(session.Messages(), session.Err())
	}))

	changes := stream.New(cfg.Centrifuge.WebsocketURL, cfg.Chat.Channel, backendClient, logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return session.Run(gctx, changes, cfg.Chat.ReconcileCron)
	})

	g.Go(func() error {
		return readCommands(gctx, session, screen)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		logger.Error(fmt.Sprintf("chat client stopped: %v", err))
		os.Exit(1)
	}
}

func readCommands(ctx context.Context, session *chatsync.Session, screen *screen) error {
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return errQuit
			}
			if err := execute(ctx, session, screen, line); err != nil {
				if errors.Is(err, errQuit) {
					return err
				}
				screen.notice(err.Error())
			}
		}
	}
}
