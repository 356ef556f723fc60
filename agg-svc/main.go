package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"foodcart/agg-svc/internal/service"
	"foodcart/agg-svc/internal/storage"
	"foodcart/config"

	"github.com/sirupsen/logrus"
)

const (
	consumerGroup  = "agg-svc-consumer"
	rabbitPrefetch = 10
)

func main() {
	// agg-svc serves no HTTP; the port default only satisfies validation.
	cfg, err := config.Load("8084")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log := config.NewLogger("agg-svc", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := buildStore(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize sales store")
	}
	defer cleanup()

	if err := run(ctx, cfg.Broker, service.NewConsumer(store, log), log); err != nil {
		log.WithError(err).Fatal("consumer stopped")
	}
	log.Info("aggregation service stopped")
}

// buildStore needs Redis for the counters. Postgres totals are optional.
func buildStore(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*storage.Store, func(), error) {
	if !cfg.Redis.Configured() {
		return nil, func() {}, errors.New("REDIS_HOST is required")
	}
	rdb, err := config.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, func() {}, err
	}
	closers := []func(){func() { rdb.Close() }}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	store := storage.NewStore(nil, rdb)
	if cfg.Postgres.Configured() {
		db, err := config.OpenPostgres(cfg.Postgres)
		if err != nil {
			log.WithError(err).Warn("postgres unreachable, keeping sales totals in redis only")
			return store, cleanup, nil
		}
		closers = append(closers, func() { db.Close() })
		store = storage.NewStore(db, rdb)
		if err := store.EnsureSchema(ctx); err != nil {
			cleanup()
			return nil, func() {}, err
		}
	}
	return store, cleanup, nil
}

// run starts one consumer per configured broker and waits for all of them.
func run(ctx context.Context, cfg config.BrokerConfig, consumer *service.Consumer, log logrus.FieldLogger) error {
	if cfg.KafkaBroker == "" && cfg.RabbitURI == "" {
		return errors.New("no broker configured: set KAFKA_BROKER or RABBITMQ_URI")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	errCh := make(chan error, 2)

	if cfg.KafkaBroker != "" {
		reader := config.NewKafkaReader(cfg.KafkaBroker, cfg.OrderTopic, consumerGroup)
		defer reader.Close()

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.ConsumeKafka(ctx, reader); err != nil {
				errCh <- fmt.Errorf("kafka: %w", err)
				cancel()
			}
		}()
	}

	if cfg.RabbitURI != "" {
		conn, ch, err := config.OpenRabbitChannel(cfg.RabbitURI, cfg.OrderQueue)
		if err != nil {
			return err
		}
		defer conn.Close()
		defer ch.Close()

		if err := ch.Qos(rabbitPrefetch, 0, false); err != nil {
			return fmt.Errorf("set prefetch: %w", err)
		}
		deliveries, err := ch.Consume(cfg.OrderQueue, consumerGroup, false, false, false, false, nil)
		if err != nil {
			return fmt.Errorf("consume %s: %w", cfg.OrderQueue, err)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.ConsumeRabbit(ctx, deliveries); err != nil {
				errCh <- fmt.Errorf("rabbitmq: %w", err)
				cancel()
			}
		}()
	}

	log.WithFields(logrus.Fields{
		"kafka":    cfg.KafkaBroker != "",
		"rabbitmq": cfg.RabbitURI != "",
	}).Info("aggregation service started")

	wg.Wait()
	close(errCh)
	return <-errCh
}
