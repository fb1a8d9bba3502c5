package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/devfolio/chat-service/internal/api"
	"github.com/devfolio/chat-service/internal/client/centrifugo"
	"github.com/devfolio/chat-service/internal/config"
	"github.com/devfolio/chat-service/internal/infra"
	"github.com/devfolio/chat-service/internal/pkg/jwt"
	"github.com/devfolio/chat-service/internal/pkg/monitoring"
	"github.com/devfolio/chat-service/internal/pkg/profanity"
	"github.com/devfolio/chat-service/internal/pkg/tx"
	"github.com/devfolio/chat-service/internal/pkg/validator"
	db "github.com/devfolio/chat-service/internal/repository/postgres"
	"github.com/devfolio/chat-service/internal/rest"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	centrifugoClient := centrifugo.New(cfg)
	defer centrifugoClient.Close()

	vldtr := validator.New(profanity.New())
	jwtGenerator := jwt.New(cfg.Centrifuge.JWTSecret)
	limiter := infra.NewLimiterPool(cfg.Chat.SendRPS, cfg.Chat.SendBurst)

	handler := rest.New(dbRepo, centrifugoClient, vldtr, jwtGenerator, limiter, cfg.Chat)
	router := chi.NewRouter()

	router.Use(monitoring.InstrumentHandler)
	router.Use(infra.AuthInterceptorHTTP)
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	router.Handle("/metrics", promhttp.Handler())
	api.HandlerFromMux(handler, router)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Service.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(fmt.Sprintf("listening on %s", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
