package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"foodcart/config"
	httpapi "foodcart/order-svc/internal/api/http"
	"foodcart/order-svc/internal/service"
	"foodcart/order-svc/internal/storage"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load("8082")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log := config.NewLogger("order-svc", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler, cleanup, err := buildHandler(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize order service")
	}
	defer cleanup()

	if err := httpapi.StartServer(ctx, ":"+cfg.Port, httpapi.NewRouter(handler), log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// buildHandler wires whichever stores and brokers are configured. Without
// Postgres every write is a demo success; without Redis carts live in memory.
func buildHandler(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*httpapi.Handler, func(), error) {
	strict := cfg.ErrorMode.Strict()
	closers := []func(){}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var orderRepo service.OrderRepository
	var inquiryRepo service.InquiryRepository
	if cfg.Postgres.Configured() {
		db, err := config.OpenPostgres(cfg.Postgres)
		switch {
		case err != nil && strict:
			return nil, cleanup, err
		case err != nil:
			log.WithError(err).Warn("postgres unreachable, orders will be reported as demo")
		default:
			closers = append(closers, func() { db.Close() })
			pg, err := openRepository(ctx, db, strict, log)
			if err != nil {
				cleanup()
				return nil, func() {}, err
			}
			if pg != nil {
				orderRepo = pg
				inquiryRepo = pg
			}
		}
	} else {
		log.Info("no database configured, orders will be reported as demo")
	}

	var carts service.CartStore = storage.NewMemoryCartStore()
	if cfg.Redis.Configured() {
		client, err := config.OpenRedis(ctx, cfg.Redis)
		if err != nil {
			log.WithError(err).Warn("redis unreachable, keeping carts in memory")
		} else {
			closers = append(closers, func() { client.Close() })
			carts = storage.NewRedisCartStore(client, cfg.Checkout.CartTTL)
		}
	}

	publishers, closePublishers := buildPublishers(cfg.Broker, log)
	closers = append(closers, closePublishers)

	var publisher service.OrderPublisher
	if len(publishers) > 0 {
		publisher = publishers
	}

	cartSvc := service.NewCartService(carts, log)
	orderSvc := service.NewOrderService(orderRepo, service.TrackingQRGenerator{BaseURL: cfg.Checkout.PublicBaseURL}, publisher, strict, log)
	checkoutSvc := service.NewCheckoutService(cartSvc, orderSvc, cfg.Checkout.Delay, log)
	inquirySvc := service.NewInquiryService(inquiryRepo, strict, log)

	return httpapi.NewHandler(cartSvc, checkoutSvc, orderSvc, inquirySvc, log), cleanup, nil
}

// openRepository prepares the schema. In lenient mode a failure leaves the
// service reporting demo orders, the same as an unreachable database.
func openRepository(ctx context.Context, db *sql.DB, strict bool, log logrus.FieldLogger) (*storage.PostgresRepository, error) {
	pg := storage.NewPostgresRepository(db)
	if err := pg.EnsureSchema(ctx); err != nil {
		if strict {
			return nil, err
		}
		log.WithError(err).Warn("postgres schema setup failed, orders will be reported as demo")
		return nil, nil
	}
	return pg, nil
}

// buildPublishers connects the configured brokers. A broker that cannot be
// reached is skipped; order events are best effort.
func buildPublishers(cfg config.BrokerConfig, log logrus.FieldLogger) (service.Publishers, func()) {
	var publishers service.Publishers
	closers := []func(){}

	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.OrderTopic)
		closers = append(closers, func() { writer.Close() })
		publishers = append(publishers, storage.NewKafkaPublisher(writer))
		log.WithFields(logrus.Fields{"broker": cfg.KafkaBroker, "topic": cfg.OrderTopic}).Info("publishing order events to kafka")
	}

	if cfg.RabbitURI != "" {
		conn, ch, err := config.OpenRabbitChannel(cfg.RabbitURI, cfg.OrderQueue)
		if err != nil {
			log.WithError(err).Warn("rabbitmq unreachable, order events will not be queued")
		} else {
			closers = append(closers, func() {
				ch.Close()
				conn.Close()
			})
			publishers = append(publishers, storage.NewRabbitPublisher(ch, cfg.OrderQueue))
			log.WithField("queue", cfg.OrderQueue).Info("publishing order events to rabbitmq")
		}
	}

	return publishers, func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}
}
