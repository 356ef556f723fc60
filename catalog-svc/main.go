package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	httpapi "foodcart/catalog-svc/internal/api/http"
	"foodcart/catalog-svc/internal/generator"
	"foodcart/catalog-svc/internal/service"
	"foodcart/catalog-svc/internal/storage"
	"foodcart/config"

	"github.com/sirupsen/logrus"
)

func main() {
	seedDB := flag.Bool("seed-db", false, "write the generated catalog into Postgres before serving")
	flag.Parse()

	cfg, err := config.Load("8081")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log := config.NewLogger("catalog-svc", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, cleanup, err := buildCatalogService(ctx, cfg, *seedDB, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize catalog")
	}
	defer cleanup()

	handler := httpapi.NewHandler(svc, log)
	if err := httpapi.StartServer(ctx, ":"+cfg.Port, httpapi.NewRouter(handler), log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// buildCatalogService wires whichever stores are configured. An unconfigured
// database means fallback mode in every error mode; a configured but
// unreachable one is fatal only in strict mode.
func buildCatalogService(ctx context.Context, cfg *config.Config, seedDB bool, log logrus.FieldLogger) (*service.CatalogService, func(), error) {
	gen := generator.New(cfg.Catalog.Seed)
	closers := []func(){}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var repo service.RestaurantRepository
	if cfg.Postgres.Configured() {
		db, err := config.OpenPostgres(cfg.Postgres)
		switch {
		case err != nil && cfg.ErrorMode.Strict():
			return nil, cleanup, err
		case err != nil:
			log.WithError(err).Warn("postgres unreachable, serving generated catalog")
		default:
			closers = append(closers, func() { db.Close() })
			pg, err := openRepository(ctx, db, cfg.ErrorMode.Strict(), log)
			if err != nil {
				cleanup()
				return nil, func() {}, err
			}
			if pg != nil && seedDB {
				if err := seedCatalog(ctx, pg, gen, log); err != nil {
					cleanup()
					return nil, func() {}, err
				}
			}
			if pg != nil {
				repo = pg
			}
		}
	} else {
		log.Info("no database configured, serving generated catalog")
	}

	var cache service.CatalogCache
	if repo != nil && cfg.Redis.Configured() {
		client, err := config.OpenRedis(ctx, cfg.Redis)
		if err != nil {
			log.WithError(err).Warn("redis unreachable, catalog cache disabled")
		} else {
			closers = append(closers, func() { client.Close() })
			cache = storage.NewRedisCache(client, cfg.Catalog.CacheTTL)
		}
	}

	return service.NewCatalogService(repo, cache, gen, cfg.ErrorMode.Strict(), log), cleanup, nil
}

// openRepository prepares the schema. In lenient mode a failure falls back to
// the generated catalog, the same as an unreachable database.
func openRepository(ctx context.Context, db *sql.DB, strict bool, log logrus.FieldLogger) (*storage.PostgresRepository, error) {
	pg := storage.NewPostgresRepository(db)
	if err := pg.EnsureSchema(ctx); err != nil {
		if strict {
			return nil, err
		}
		log.WithError(err).Warn("postgres schema setup failed, serving generated catalog")
		return nil, nil
	}
	return pg, nil
}

func seedCatalog(ctx context.Context, pg *storage.PostgresRepository, gen *generator.Generator, log logrus.FieldLogger) error {
	restaurants := gen.Restaurants()
	for _, rest := range restaurants {
		if err := pg.SeedRestaurant(ctx, rest, gen.MenuItems(rest.ID)); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}
	log.WithField("restaurants", len(restaurants)).Info("catalog seeded")
	return nil
}
