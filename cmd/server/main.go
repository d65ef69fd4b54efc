package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JosuePG/pokemon-trader/configs"
	"github.com/JosuePG/pokemon-trader/internal/cache"
	"github.com/JosuePG/pokemon-trader/internal/handlers"
	"github.com/JosuePG/pokemon-trader/internal/logger"
	"github.com/JosuePG/pokemon-trader/internal/notify"
	"github.com/JosuePG/pokemon-trader/internal/pokeapi"
	"github.com/JosuePG/pokemon-trader/internal/queue"
	"github.com/JosuePG/pokemon-trader/internal/ranking"
	"github.com/JosuePG/pokemon-trader/internal/routes"
	"github.com/JosuePG/pokemon-trader/internal/seed"
	"github.com/JosuePG/pokemon-trader/internal/store"
	"github.com/JosuePG/pokemon-trader/internal/trade"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	configs.LoadConfig()
	cfg := configs.AppConfig

	store.NewDB()
	store.DBMigrate()

	users := store.NewUserRepository(store.DB)
	trades := store.NewTradeRepository(store.DB)
	notifications := store.NewNotificationRepository(store.DB)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	inventory := cache.NewInventoryCache(redisClient,
		time.Duration(cfg.Redis.InventoryTTL)*time.Second)

	producer := queue.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	worker := queue.NewWorker(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.Group, trades, logger.Log)

	sender := notify.NewLogSender(logger.Log, cfg.Notifications.EmailEnabled)
	dispatcher := notify.NewDispatcher(notifications, sender, logger.Log)

	pokeClient := pokeapi.NewClient(cfg.PokeAPI.BaseURL)
	starters := pokeapi.NewStarterService(pokeClient, cfg.PokeAPI.StarterCount)
	seed.Run(starters)

	tradeService := trade.NewService(users, trades, dispatcher, inventory, producer, logger.Log)
	rankingService := ranking.NewService(users)

	handler := handlers.New(users, starters, tradeService, inventory, rankingService, logger.Log)
	router := routes.NewRoutes(handler)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	go func() {
		logger.Log.Info("trade worker started", zap.String("topic", cfg.Kafka.Topic))
		if err := worker.Run(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Log.Error("trade worker stopped", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	logger.Log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("graceful shutdown failed", zap.Error(err))
	}

	stopWorker()
	if err := worker.Close(); err != nil {
		logger.Log.Error("worker close failed", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		logger.Log.Error("producer close failed", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		logger.Log.Error("redis close failed", zap.Error(err))
	}

	sqlDB, err := store.DB.DB()
	if err != nil {
		logger.Log.Error("db close skipped, reason:", zap.Error(err))
	} else {
		sqlDB.Close()
		logger.Log.Info("db closed")
	}

	logger.Log.Info("server stopped")
}
