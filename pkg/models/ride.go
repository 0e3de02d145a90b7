package models

import (
	"errors"
	"fmt"
	"io"
)

var ErrNegativeDistance = errors.New("ride distance must not be negative")

// Ride is a single trip. It is immutable once built.
type Ride struct {
	id       int64
	kind     RideKind
	pickup   string
	dropoff  string
	distance float64 // miles
}

func NewRide(kind RideKind, id int64, pickup, dropoff string, distance float64) *Ride {
	return &Ride{
		id:       id,
		kind:     kind,
		pickup:   pickup,
		dropoff:  dropoff,
		distance: distance,
	}
}

func NewStandardRide(id int64, pickup, dropoff string, distance float64) *Ride {
	return NewRide(RideKindStandard, id, pickup, dropoff, distance)
}

func NewPremiumRide(id int64, pickup, dropoff string, distance float64) *Ride {
	return NewRide(RideKindPremium, id, pickup, dropoff, distance)
}

func (r *Ride) ID() int64         { return r.id }
func (r *Ride) Kind() RideKind    { return r.kind }
func (r *Ride) Pickup() string    { return r.pickup }
func (r *Ride) Dropoff() string   { return r.dropoff }
func (r *Ride) Distance() float64 { return r.distance }

// Fare is computed from the ride kind's tariff. Negative distances pass
// through and give a fare below the base fee; see Validate.
func (r *Ride) Fare() float64 {
	return TariffFor(r.kind).Fare(r.distance)
}

func (r *Ride) Validate() error {
	if r.distance < 0 {
		return fmt.Errorf("ride %d: %w", r.id, ErrNegativeDistance)
	}
	return nil
}

// WriteDetails writes the one-line summary without a trailing newline.
func (r *Ride) WriteDetails(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Ride %d | %s -> %s | %.2f miles", r.id, r.pickup, r.dropoff, r.distance)
	return err
}
