package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	httpapi "foodcart/analytics-svc/internal/api/http"
	"foodcart/analytics-svc/internal/service"
	"foodcart/analytics-svc/internal/storage"
	"foodcart/config"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load("8083")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log := config.NewLogger("analytics-svc", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := openRedis(ctx, cfg.Redis)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to redis")
	}
	defer rdb.Close()

	handler := httpapi.NewHandler(service.NewReportService(storage.NewSalesReader(rdb)), log)
	if err := httpapi.StartServer(ctx, ":"+cfg.Port, httpapi.NewRouter(handler), log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// Sales counters only live in Redis, so there is no fallback mode here.
func openRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if !cfg.Configured() {
		return nil, errors.New("REDIS_HOST is required")
	}
	return config.OpenRedis(ctx, cfg)
}
