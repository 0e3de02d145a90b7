// Package redis keeps the ride ledger in Redis hashes and lists.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cast"

	"ridedemo/config"
	"ridedemo/pkg/logger"
	"ridedemo/pkg/models"
	"ridedemo/storage"
)

const (
	rideKeyPrefix         = "ridedemo:ride:%d"
	rideIndexKey          = "ridedemo:rides"
	rideSeqKey            = "ridedemo:rides:seq"
	driverKeyPrefix       = "ridedemo:driver:%d"
	driverRidesKeyPrefix  = "ridedemo:driver:%d:rides"
	riderKeyPrefix        = "ridedemo:rider:%d"
	riderHistoryKeyPrefix = "ridedemo:rider:%d:history"
)

type Store struct {
	rdb *redis.Client
	log logger.ILogger
}

func New(ctx context.Context, cfg config.Config, log logger.ILogger) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("failed to connect Redis", logger.String("addr", cfg.RedisAddr()), logger.Error(err))
		_ = rdb.Close()
		return nil, err
	}
	log.Info("Redis connected")
	return NewWithClient(rdb, log), nil
}

// NewWithClient wraps an already connected client.
func NewWithClient(rdb *redis.Client, log logger.ILogger) *Store {
	return &Store{rdb: rdb, log: log}
}

func (s *Store) Close() {
	if err := s.rdb.Close(); err != nil {
		s.log.Warning("closing Redis", logger.Error(err))
	}
}

func (s *Store) Ride() storage.IRideStorage     { return &rideRepo{rdb: s.rdb, log: s.log} }
func (s *Store) Driver() storage.IDriverStorage { return &driverRepo{rdb: s.rdb, log: s.log} }
func (s *Store) Rider() storage.IRiderStorage   { return &riderRepo{rdb: s.rdb, log: s.log} }

type rideRepo struct {
	rdb *redis.Client
	log logger.ILogger
}

func (r *rideRepo) Create(ctx context.Context, ride *models.Ride) error {
	key := fmt.Sprintf(rideKeyPrefix, ride.ID())
	seq, err := r.rdb.Incr(ctx, rideSeqKey).Result()
	if err != nil {
		r.log.Error("failed to allocate ride sequence", logger.Int64("ride_id", ride.ID()), logger.Error(err))
		return err
	}
	// NX keeps the first score, so a re-created ride keeps its position.
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			"id", ride.ID(),
			"kind", string(ride.Kind()),
			"pickup", ride.Pickup(),
			"dropoff", ride.Dropoff(),
			"distance", ride.Distance(),
			"fare", ride.Fare(),
		)
		pipe.ZAddNX(ctx, rideIndexKey, redis.Z{Score: float64(seq), Member: ride.ID()})
		return nil
	})
	if err != nil {
		r.log.Error("failed to create ride", logger.Int64("ride_id", ride.ID()), logger.Error(err))
	}
	return err
}

func (r *rideRepo) GetByID(ctx context.Context, id int64) (*models.Ride, error) {
	fields, err := r.rdb.HGetAll(ctx, fmt.Sprintf(rideKeyPrefix, id)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, storage.ErrNotFound
	}
	return models.NewRide(
		models.ParseRideKind(fields["kind"]),
		cast.ToInt64(fields["id"]),
		fields["pickup"],
		fields["dropoff"],
		cast.ToFloat64(fields["distance"]),
	), nil
}

// GetAll lists rides in first-creation order.
func (r *rideRepo) GetAll(ctx context.Context) ([]*models.Ride, error) {
	ids, err := r.rdb.ZRange(ctx, rideIndexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	rides := make([]*models.Ride, 0, len(ids))
	for _, id := range ids {
		ride, err := r.GetByID(ctx, cast.ToInt64(id))
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	return rides, nil
}

type driverRepo struct {
	rdb *redis.Client
	log logger.ILogger
}

func (r *driverRepo) Create(ctx context.Context, driver *models.Driver) error {
	err := r.rdb.HSet(ctx, fmt.Sprintf(driverKeyPrefix, driver.ID()),
		"id", driver.ID(),
		"name", driver.Name(),
		"rating", driver.Rating(),
	).Err()
	if err != nil {
		r.log.Error("failed to create driver", logger.Int64("driver_id", driver.ID()), logger.Error(err))
	}
	return err
}

func (r *driverRepo) AddRide(ctx context.Context, driverID, rideID int64) error {
	if err := exists(ctx, r.rdb, fmt.Sprintf(driverKeyPrefix, driverID)); err != nil {
		return err
	}
	err := r.rdb.RPush(ctx, fmt.Sprintf(driverRidesKeyPrefix, driverID), rideID).Err()
	if err != nil {
		r.log.Error("failed to assign ride", logger.Int64("driver_id", driverID), logger.Int64("ride_id", rideID), logger.Error(err))
	}
	return err
}

func (r *driverRepo) CountRides(ctx context.Context, driverID int64) (int, error) {
	if err := exists(ctx, r.rdb, fmt.Sprintf(driverKeyPrefix, driverID)); err != nil {
		return 0, err
	}
	n, err := r.rdb.LLen(ctx, fmt.Sprintf(driverRidesKeyPrefix, driverID)).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

type riderRepo struct {
	rdb *redis.Client
	log logger.ILogger
}

func (r *riderRepo) Create(ctx context.Context, rider *models.Rider) error {
	err := r.rdb.HSet(ctx, fmt.Sprintf(riderKeyPrefix, rider.ID()),
		"id", rider.ID(),
		"name", rider.Name(),
	).Err()
	if err != nil {
		r.log.Error("failed to create rider", logger.Int64("rider_id", rider.ID()), logger.Error(err))
	}
	return err
}

func (r *riderRepo) AppendHistory(ctx context.Context, riderID int64, entry string) error {
	if err := exists(ctx, r.rdb, fmt.Sprintf(riderKeyPrefix, riderID)); err != nil {
		return err
	}
	err := r.rdb.RPush(ctx, fmt.Sprintf(riderHistoryKeyPrefix, riderID), entry).Err()
	if err != nil {
		r.log.Error("failed to append rider history", logger.Int64("rider_id", riderID), logger.Error(err))
	}
	return err
}

func (r *riderRepo) History(ctx context.Context, riderID int64) ([]string, error) {
	if err := exists(ctx, r.rdb, fmt.Sprintf(riderKeyPrefix, riderID)); err != nil {
		return nil, err
	}
	return r.rdb.LRange(ctx, fmt.Sprintf(riderHistoryKeyPrefix, riderID), 0, -1).Result()
}

func exists(ctx context.Context, rdb *redis.Client, key string) error {
	n, err := rdb.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
