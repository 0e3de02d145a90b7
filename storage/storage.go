package storage

import (
	"context"
	"errors"

	"ridedemo/pkg/models"
)

var ErrNotFound = errors.New("not found")

type IStorage interface {
	Ride() IRideStorage
	Driver() IDriverStorage
	Rider() IRiderStorage
	Close()
}

type IRideStorage interface {
	Create(ctx context.Context, ride *models.Ride) error
	GetByID(ctx context.Context, id int64) (*models.Ride, error)
	// GetAll lists rides in the order they were first created. Re-creating
	// an existing id updates it in place.
	GetAll(ctx context.Context) ([]*models.Ride, error)
}

type IDriverStorage interface {
	Create(ctx context.Context, driver *models.Driver) error
	AddRide(ctx context.Context, driverID, rideID int64) error
	CountRides(ctx context.Context, driverID int64) (int, error)
}

type IRiderStorage interface {
	Create(ctx context.Context, rider *models.Rider) error
	AppendHistory(ctx context.Context, riderID int64, entry string) error
	History(ctx context.Context, riderID int64) ([]string, error)
}
