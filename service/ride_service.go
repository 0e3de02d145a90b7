package service

import (
	"context"

	"ridedemo/pkg/logger"
	"ridedemo/pkg/models"
	"ridedemo/storage"
)

type RideService interface {
	Book(ctx context.Context, kind models.RideKind, id int64, pickup, dropoff string, distance float64) (*models.Ride, error)
	GetByID(ctx context.Context, id int64) (*models.Ride, error)
	List(ctx context.Context) ([]*models.Ride, error)
}

type rideService struct {
	stg storage.IRideStorage
	log logger.ILogger
}

func NewRideService(stg storage.IStorage, log logger.ILogger) RideService {
	return &rideService{
		stg: stg.Ride(),
		log: log,
	}
}

// Book builds a ride and records it. Rides with a negative distance are
// rejected here rather than priced below the base fee.
func (s *rideService) Book(ctx context.Context, kind models.RideKind, id int64, pickup, dropoff string, distance float64) (*models.Ride, error) {
	ride := models.NewRide(kind, id, pickup, dropoff, distance)
	if err := ride.Validate(); err != nil {
		s.log.Warning("rejected ride", logger.Int64("ride_id", id), logger.Float64("distance", distance))
		return nil, err
	}
	if err := s.stg.Create(ctx, ride); err != nil {
		return nil, err
	}
	s.log.Info("ride booked",
		logger.Int64("ride_id", id),
		logger.String("kind", kind.String()),
		logger.Float64("fare", ride.Fare()),
	)
	return ride, nil
}

func (s *rideService) GetByID(ctx context.Context, id int64) (*models.Ride, error) {
	return s.stg.GetByID(ctx, id)
}

func (s *rideService) List(ctx context.Context) ([]*models.Ride, error) {
	return s.stg.GetAll(ctx)
}
