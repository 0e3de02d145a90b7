package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ridedemo/pkg/logger"
	"ridedemo/pkg/models"
	"ridedemo/storage"
)

type rideRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewRideRepo(db *pgxpool.Pool, log logger.ILogger) storage.IRideStorage {
	return &rideRepo{db: db, log: log}
}

func (r *rideRepo) Create(ctx context.Context, ride *models.Ride) error {
	query := `
		INSERT INTO rides (id, kind, pickup, dropoff, distance, fare)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET kind = EXCLUDED.kind, pickup = EXCLUDED.pickup, dropoff = EXCLUDED.dropoff,
		    distance = EXCLUDED.distance, fare = EXCLUDED.fare
	`
	_, err := r.db.Exec(ctx, query,
		ride.ID(),
		string(ride.Kind()),
		ride.Pickup(),
		ride.Dropoff(),
		ride.Distance(),
		ride.Fare(),
	)
	if err != nil {
		r.log.Error("failed to create ride", logger.Int64("ride_id", ride.ID()), logger.Error(err))
		return err
	}
	return nil
}

func (r *rideRepo) GetByID(ctx context.Context, id int64) (*models.Ride, error) {
	query := `SELECT id, kind, pickup, dropoff, distance FROM rides WHERE id = $1`
	ride, err := scanRide(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ride, nil
}

func (r *rideRepo) GetAll(ctx context.Context) ([]*models.Ride, error) {
	query := `SELECT id, kind, pickup, dropoff, distance FROM rides ORDER BY seq ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []*models.Ride
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	return rides, rows.Err()
}

func scanRide(row pgx.Row) (*models.Ride, error) {
	var (
		id              int64
		kind            string
		pickup, dropoff string
		distance        float64
	)
	if err := row.Scan(&id, &kind, &pickup, &dropoff, &distance); err != nil {
		return nil, err
	}
	return models.NewRide(models.ParseRideKind(kind), id, pickup, dropoff, distance), nil
}
