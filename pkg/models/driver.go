package models

import (
	"fmt"
	"io"
)

type Driver struct {
	id     int64
	name   string
	rating float64
	rides  []*Ride
}

func NewDriver(id int64, name string, rating float64) *Driver {
	return &Driver{id: id, name: name, rating: rating}
}

func (d *Driver) ID() int64       { return d.id }
func (d *Driver) Name() string    { return d.name }
func (d *Driver) Rating() float64 { return d.rating }

// AddRide hands ride over to the driver. The caller must drop its reference.
func (d *Driver) AddRide(ride *Ride) {
	d.rides = append(d.rides, ride)
}

func (d *Driver) RideCount() int {
	return len(d.rides)
}

// Rides returns the completed rides in assignment order.
func (d *Driver) Rides() []*Ride {
	out := make([]*Ride, len(d.rides))
	copy(out, d.rides)
	return out
}

func (d *Driver) WriteInfo(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Driver %s (Rating: %.2f) | Completed Rides: %d\n", d.name, d.rating, len(d.rides))
	return err
}
