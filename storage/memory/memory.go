// Package memory keeps the ride ledger in process memory. It is the default
// backend and the one the tests run against.
package memory

import (
	"context"
	"sync"

	"ridedemo/pkg/models"
	"ridedemo/storage"
)

type Store struct {
	mu sync.RWMutex

	rides       map[int64]*models.Ride
	rideOrder   []int64
	drivers     map[int64]*models.Driver
	driverRides map[int64][]int64
	riders      map[int64]*models.Rider
	history     map[int64][]string
}

func New() *Store {
	return &Store{
		rides:       make(map[int64]*models.Ride),
		drivers:     make(map[int64]*models.Driver),
		driverRides: make(map[int64][]int64),
		riders:      make(map[int64]*models.Rider),
		history:     make(map[int64][]string),
	}
}

func (s *Store) Close() {}

func (s *Store) Ride() storage.IRideStorage     { return &rideRepo{s} }
func (s *Store) Driver() storage.IDriverStorage { return &driverRepo{s} }
func (s *Store) Rider() storage.IRiderStorage   { return &riderRepo{s} }

type rideRepo struct{ s *Store }

func (r *rideRepo) Create(ctx context.Context, ride *models.Ride) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	// The store keeps its own copy; the caller's ride can move on to a driver.
	if _, ok := r.s.rides[ride.ID()]; !ok {
		r.s.rideOrder = append(r.s.rideOrder, ride.ID())
	}
	stored := *ride
	r.s.rides[ride.ID()] = &stored
	return nil
}

func (r *rideRepo) GetByID(ctx context.Context, id int64) (*models.Ride, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ride, ok := r.s.rides[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return ride, nil
}

func (r *rideRepo) GetAll(ctx context.Context) ([]*models.Ride, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rides := make([]*models.Ride, 0, len(r.s.rideOrder))
	for _, id := range r.s.rideOrder {
		rides = append(rides, r.s.rides[id])
	}
	return rides, nil
}

type driverRepo struct{ s *Store }

func (r *driverRepo) Create(ctx context.Context, driver *models.Driver) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.drivers[driver.ID()] = driver
	return nil
}

func (r *driverRepo) AddRide(ctx context.Context, driverID, rideID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.drivers[driverID]; !ok {
		return storage.ErrNotFound
	}
	r.s.driverRides[driverID] = append(r.s.driverRides[driverID], rideID)
	return nil
}

func (r *driverRepo) CountRides(ctx context.Context, driverID int64) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if _, ok := r.s.drivers[driverID]; !ok {
		return 0, storage.ErrNotFound
	}
	return len(r.s.driverRides[driverID]), nil
}

type riderRepo struct{ s *Store }

func (r *riderRepo) Create(ctx context.Context, rider *models.Rider) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.riders[rider.ID()] = rider
	return nil
}

func (r *riderRepo) AppendHistory(ctx context.Context, riderID int64, entry string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.riders[riderID]; !ok {
		return storage.ErrNotFound
	}
	r.s.history[riderID] = append(r.s.history[riderID], entry)
	return nil
}

func (r *riderRepo) History(ctx context.Context, riderID int64) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if _, ok := r.s.riders[riderID]; !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]string, len(r.s.history[riderID]))
	copy(out, r.s.history[riderID])
	return out, nil
}
