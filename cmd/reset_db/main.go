package main

import (
	"context"
	"os"

	"ridedemo/config"
	"ridedemo/pkg/logger"
	"ridedemo/storage/postgres"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	pg, err := postgres.New(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pg.Close()

	// CASCADE clears driver_rides and rider_history as well.
	_, err = pg.GetPool().Exec(context.Background(), "TRUNCATE TABLE rides, drivers, riders CASCADE")
	if err != nil {
		log.Error("failed to truncate tables", logger.Error(err))
	} else {
		log.Info("truncated rides, drivers, riders and their ledgers")
	}
}
