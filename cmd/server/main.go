// Command server starts the boardwalk game server: the HTTP/JSON surface,
// the WebSocket broadcast bridge and the snapshot store janitor.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"boardwalk-backend/api"
	"boardwalk-backend/bridge"
	"boardwalk-backend/config"
	"boardwalk-backend/events"
	"boardwalk-backend/game"
	"boardwalk-backend/store"
)

func main() {
	zcfg := zap.NewProductionConfig()
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := zcfg.Build()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}
	originRe, err := cfg.OriginRegexp()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	hub := bridge.NewHub(originRe, logger)

	// ---- store + event transport ----
	var (
		gameStore store.GameStore
		publisher events.Publisher
		sub       *events.RedisSubscriber
	)
	if addr := cfg.StoreAddr(); addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		rs, err := store.NewRedisStore(ctx, addr, cfg.StorePrefix, logger)
		cancel()
		if err != nil {
			logger.Fatal("store", zap.Error(err))
		}
		gameStore = rs
		publisher = events.NewRedisPublisher(rs.Client(), logger)
		sub, err = events.NewRedisSubscriber(context.Background(), rs.Client(), hub.Deliver, logger)
		if err != nil {
			logger.Fatal("subscribe", zap.Error(err))
		}
		logger.Info("using redis store", zap.String("addr", addr))
	} else {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			logger.Fatal("data dir", zap.Error(err))
		}
		ls, err := store.NewLevelStore(cfg.DataDir+"/games", cfg.StorePrefix, logger)
		if err != nil {
			logger.Fatal("store", zap.Error(err))
		}
		gameStore = ls
		bus := events.NewBus(logger)
		bus.Subscribe(hub.Deliver)
		publisher = bus
		logger.Info("using embedded store", zap.String("dir", cfg.DataDir))
	}

	// ---- janitor ----
	janitorDone := make(chan struct{})
	janitor := store.NewJanitor(gameStore, logger)
	go janitor.Run(cfg.CleanupInterval, janitorDone)

	// ---- HTTP + WS surface ----
	gin.SetMode(gin.ReleaseMode)
	handler := api.NewHandler(gameStore, publisher, game.RandomDice{}, logger)
	router := api.NewRouter(handler, hub, originRe)
	srv := api.NewServer(cfg.ListenAddr(), router, logger)
	if err := srv.Start(); err != nil {
		logger.Fatal("listen", zap.String("addr", cfg.ListenAddr()), zap.Error(err))
	}
	logger.Info("listening", zap.String("addr", cfg.ListenAddr()))

	// ---- graceful shutdown ----
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutting down")

	close(janitorDone)
	if err := srv.Stop(); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	hub.Close()
	if sub != nil {
		sub.Close()
	}
	publisher.Close()
	if err := gameStore.Close(); err != nil {
		logger.Warn("store close", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
