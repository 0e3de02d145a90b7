package service

import (
	"context"
	"fmt"

	"ridedemo/pkg/logger"
	"ridedemo/pkg/models"
	"ridedemo/storage"
)

type DispatchService interface {
	RegisterDriver(ctx context.Context, driver *models.Driver) error
	RegisterRider(ctx context.Context, rider *models.Rider) error
	Assign(ctx context.Context, driver *models.Driver, rider *models.Rider, rides []*models.Ride) error
}

type dispatchService struct {
	drivers storage.IDriverStorage
	riders  storage.IRiderStorage
	log     logger.ILogger
}

func NewDispatchService(stg storage.IStorage, log logger.ILogger) DispatchService {
	return &dispatchService{
		drivers: stg.Driver(),
		riders:  stg.Rider(),
		log:     log,
	}
}

func (s *dispatchService) RegisterDriver(ctx context.Context, driver *models.Driver) error {
	if err := s.drivers.Create(ctx, driver); err != nil {
		return fmt.Errorf("register driver %d: %w", driver.ID(), err)
	}
	return nil
}

func (s *dispatchService) RegisterRider(ctx context.Context, rider *models.Rider) error {
	if err := s.riders.Create(ctx, rider); err != nil {
		return fmt.Errorf("register rider %d: %w", rider.ID(), err)
	}
	return nil
}

// Assign lets rider request each ride in order and then moves the ride into
// driver. Every transferred slot of rides is set to nil, so the caller holds
// no reference once Assign returns. Nil slots are skipped.
//
// Both parties must be registered; otherwise nothing is changed. For each
// ride the ledger is written before rider, driver and rides are touched, so a
// storage error leaves the failing ride with the caller.
func (s *dispatchService) Assign(ctx context.Context, driver *models.Driver, rider *models.Rider, rides []*models.Ride) error {
	if _, err := s.drivers.CountRides(ctx, driver.ID()); err != nil {
		return fmt.Errorf("driver %d: %w", driver.ID(), err)
	}
	if _, err := s.riders.History(ctx, rider.ID()); err != nil {
		return fmt.Errorf("rider %d: %w", rider.ID(), err)
	}

	for i, ride := range rides {
		if ride == nil {
			continue
		}

		if err := s.riders.AppendHistory(ctx, rider.ID(), models.RequestEntry(ride.ID())); err != nil {
			return fmt.Errorf("record request for ride %d: %w", ride.ID(), err)
		}
		if err := s.drivers.AddRide(ctx, driver.ID(), ride.ID()); err != nil {
			return fmt.Errorf("record assignment of ride %d: %w", ride.ID(), err)
		}

		rider.RequestRide(ride)
		driver.AddRide(ride)
		rides[i] = nil

		s.log.Debug("ride assigned",
			logger.Int64("ride_id", ride.ID()),
			logger.Int64("driver_id", driver.ID()),
			logger.Int64("rider_id", rider.ID()),
		)
	}
	s.log.Info("rides assigned",
		logger.String("driver", driver.Name()),
		logger.Int("completed", driver.RideCount()),
	)
	return nil
}
