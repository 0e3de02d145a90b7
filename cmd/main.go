package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ridedemo/config"
	"ridedemo/pkg/demo"
	"ridedemo/pkg/logger"
	"ridedemo/service"
	"ridedemo/storage"
	"ridedemo/storage/memory"
	"ridedemo/storage/postgres"
	"ridedemo/storage/redis"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stg, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open storage", logger.String("driver", cfg.StorageDriver), logger.Error(err))
		exit(log, 1)
	}
	defer stg.Close()

	svc := service.New(stg, log)

	if err := demo.Run(ctx, os.Stdout, svc); err != nil {
		log.Error("demo run failed", logger.Error(err))
		stg.Close()
		exit(log, 1)
	}
}

var osExit = os.Exit

// exit flushes the logger; os.Exit skips deferred calls.
func exit(log logger.ILogger, code int) {
	_ = log.Sync()
	osExit(code)
}

func openStorage(ctx context.Context, cfg config.Config, log logger.ILogger) (storage.IStorage, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory, "":
		return memory.New(), nil
	case config.StoragePostgres:
		pg, err := postgres.New(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return pg, nil
	case config.StorageRedis:
		rdb, err := redis.New(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return rdb, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
