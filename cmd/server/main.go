package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"github.com/saulo-duarte/chronos-planner/internal/config"
	"github.com/saulo-duarte/chronos-planner/internal/container"
	"github.com/saulo-duarte/chronos-planner/internal/router"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()
	log := config.Logger()

	c, err := container.New(context.Background(), cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to build container")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.FromContainer(c),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			// The store closes only after in-flight requests have drained.
			"http-server": func(ctx context.Context) error {
				log.Info("Shutting down HTTP server")
				if err := srv.Shutdown(ctx); err != nil {
					return err
				}
				return c.Close()
			},
		},
	)

	exitCode := <-wait
	log.WithField("exit_code", exitCode).Info("Server exited")
	os.Exit(exitCode)
}
