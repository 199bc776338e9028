package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fireforce/internal/auth"
	"fireforce/internal/db"
	"fireforce/internal/seed"
	"fireforce/internal/server"
	"fireforce/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Start the HTTP server",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "demo-cases",
			Usage: "Seed sample cases into the in-memory store (demo mode only)",
		},
	},
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	// Without a DATABASE_URL the portal runs entirely in memory, like the
	// original single-browser deployment. Nothing survives a restart.
	var cases store.CaseStore
	if config.DatabaseURL != "" {
		pool, err := db.Connect(ctx, config)
		if err != nil {
			return err
		}
		defer pool.Close()

		cases = store.NewCaseRepository(pool)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory case store")

		memory := store.NewMemoryStore()
		if cCtx.Bool("demo-cases") {
			if err := seed.Cases(ctx, memory, seed.DefaultCaseCount); err != nil {
				return err
			}
		}
		cases = memory
	}

	srv, err := server.New(config, logger, auth.New(), cases)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
