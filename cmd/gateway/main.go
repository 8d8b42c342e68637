package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nPaBwaYT/des/internal/config"
	"github.com/nPaBwaYT/des/internal/gateway"
	"github.com/nPaBwaYT/des/internal/helpers"
)

func main() {
	cfg := config.Load()
	fmt.Println("Configuration loaded:")
	fmt.Println(cfg)

	logger := helpers.NewLogger("gateway", os.Stderr, cfg.Logging.Debug)
	server := gateway.New(cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Gateway stopped: %v", err)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Shutdown failed: %v", err)
		}
	}
}
