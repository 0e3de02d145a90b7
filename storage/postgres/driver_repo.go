package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"ridedemo/pkg/logger"
	"ridedemo/pkg/models"
	"ridedemo/storage"
)

type driverRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewDriverRepo(db *pgxpool.Pool, log logger.ILogger) storage.IDriverStorage {
	return &driverRepo{db: db, log: log}
}

func (r *driverRepo) Create(ctx context.Context, driver *models.Driver) error {
	query := `
		INSERT INTO drivers (id, name, rating) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, rating = EXCLUDED.rating
	`
	_, err := r.db.Exec(ctx, query, driver.ID(), driver.Name(), driver.Rating())
	if err != nil {
		r.log.Error("failed to create driver", logger.Int64("driver_id", driver.ID()), logger.Error(err))
	}
	return err
}

func (r *driverRepo) AddRide(ctx context.Context, driverID, rideID int64) error {
	query := `INSERT INTO driver_rides (driver_id, ride_id) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, driverID, rideID)
	if err != nil {
		r.log.Error("failed to assign ride", logger.Int64("driver_id", driverID), logger.Int64("ride_id", rideID), logger.Error(err))
	}
	return err
}

func (r *driverRepo) CountRides(ctx context.Context, driverID int64) (int, error) {
	var exists bool
	queryCheck := `SELECT EXISTS(SELECT 1 FROM drivers WHERE id = $1)`
	if err := r.db.QueryRow(ctx, queryCheck, driverID).Scan(&exists); err != nil {
		return 0, err
	}
	if !exists {
		return 0, storage.ErrNotFound
	}

	var count int
	query := `SELECT COUNT(*) FROM driver_rides WHERE driver_id = $1`
	if err := r.db.QueryRow(ctx, query, driverID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
