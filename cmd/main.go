package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanRulev/vocamission.git/internal/bot"
	"github.com/DanRulev/vocamission.git/internal/client"
	"github.com/DanRulev/vocamission.git/internal/config"
	"github.com/DanRulev/vocamission.git/internal/repository"
	"github.com/DanRulev/vocamission.git/internal/service"
	"github.com/DanRulev/vocamission.git/internal/storage/cache"
	"github.com/DanRulev/vocamission.git/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func setupStore(ctx context.Context, cfg config.CacheConfig, logger *zap.Logger) (service.SessionStoreI, func()) {
	if cfg.Driver != "redis" {
		return cache.NewCache(cfg.TTL), func() {}
	}

	rc, err := cache.NewRedisCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.TTL)
	if err != nil {
		logger.Fatal("failed init redis", zap.Error(err))
	}
	return rc, func() {
		if err := rc.Close(); err != nil {
			logger.Warn("failed to close redis", zap.Error(err))
		}
	}
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer conn.Close()

	repos := repository.NewRepository(conn)

	store, closeStore := setupStore(ctx, cfg.Cache, logger)
	defer closeStore()

	clients := client.InitClients(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	services := service.InitServices(clients, repos, store, logger)

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, cfg.App.Timeout, services, logger)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	logger.Info("bot started", zap.String("env", cfg.Env), zap.String("cache", cfg.Cache.Driver))
	handler.Start(ctx)
	logger.Info("bot stopped")
}
