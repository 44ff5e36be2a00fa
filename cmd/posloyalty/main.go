package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/and161185/posloyalty/internal/config"
	"github.com/and161185/posloyalty/internal/deps"
	"github.com/and161185/posloyalty/internal/server"
	"github.com/and161185/posloyalty/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	dependencies, err := deps.NewDependencies(cfg.Key, cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	logger := dependencies.Logger
	defer logger.Sync()

	store, err := storage.NewPostgresStorage(ctx, cfg.DatabaseURI)
	if err != nil {
		logger.Fatal(err)
	}
	defer store.Close()

	srv := server.NewServer(store, cfg, dependencies)
	logger.Infof("listening on %s", cfg.RunAddress)
	if err := srv.Run(ctx); err != nil {
		logger.Fatal(err)
	}
}
