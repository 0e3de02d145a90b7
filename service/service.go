package service

import (
	"ridedemo/pkg/logger"
	"ridedemo/storage"
)

type IServiceManager interface {
	Ride() RideService
	Dispatch() DispatchService
}

type service struct {
	rideService     RideService
	dispatchService DispatchService
}

func New(stg storage.IStorage, log logger.ILogger) IServiceManager {
	return &service{
		rideService:     NewRideService(stg, log),
		dispatchService: NewDispatchService(stg, log),
	}
}

func (s *service) Ride() RideService {
	return s.rideService
}

func (s *service) Dispatch() DispatchService {
	return s.dispatchService
}
