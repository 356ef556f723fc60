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

	"foodcart/api-gateway/internal/gateway"
	"foodcart/config"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const upstreamTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load("8080")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log := config.NewLogger("api-gateway", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, ":"+cfg.Port, newHandler(cfg.Gateway, log), log); err != nil {
		log.WithError(err).Fatal("gateway stopped")
	}
}

func newHandler(cfg config.GatewayConfig, log logrus.FieldLogger) http.Handler {
	gw := gateway.NewGateway(gateway.Config{
		CatalogSvcURL:   cfg.CatalogSvcURL,
		OrderSvcURL:     cfg.OrderSvcURL,
		AnalyticsSvcURL: cfg.AnalyticsSvcURL,
	}, &http.Client{Timeout: upstreamTimeout}, log)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(gw.SetupRoutes())
}

func serve(ctx context.Context, addr string, handler http.Handler, log logrus.FieldLogger) error {
	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("api gateway starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("api gateway shutting down")
	return srv.Shutdown(shutdownCtx)
}
