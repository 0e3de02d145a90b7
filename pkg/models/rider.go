package models

import (
	"fmt"
	"io"
)

type Rider struct {
	id      int64
	name    string
	history []string
}

func NewRider(id int64, name string) *Rider {
	return &Rider{id: id, name: name}
}

func (r *Rider) ID() int64    { return r.id }
func (r *Rider) Name() string { return r.name }

// RequestRide records the request and returns the history entry. Only the
// ride id is read; no reference to the ride is kept.
func (r *Rider) RequestRide(ride *Ride) string {
	entry := RequestEntry(ride.ID())
	r.history = append(r.history, entry)
	return entry
}

func (r *Rider) History() []string {
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}

func (r *Rider) WriteHistory(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Rider %s Ride History:\n", r.name); err != nil {
		return err
	}
	for _, entry := range r.history {
		if _, err := fmt.Fprintf(w, "  - %s\n", entry); err != nil {
			return err
		}
	}
	return nil
}

func RequestEntry(rideID int64) string {
	return fmt.Sprintf("Requested Ride %d", rideID)
}
