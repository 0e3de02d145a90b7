// Package demo runs the fixed ride walkthrough: book two rides, price them,
// hand them to a driver while a rider records the requests, and print the
// resulting state.
package demo

import (
	"context"
	"fmt"
	"io"

	"ridedemo/pkg/models"
	"ridedemo/service"
)

type rideSpec struct {
	kind     models.RideKind
	id       int64
	pickup   string
	dropoff  string
	distance float64
}

var demoRides = []rideSpec{
	{models.RideKindStandard, 101, "Downtown", "Airport", 12.0},
	{models.RideKindPremium, 102, "Mall", "Hotel", 5.0},
}

const (
	driverID     = 1
	driverName   = "Aisha"
	driverRating = 4.9

	riderID   = 10
	riderName = "Kashif"
)

func Run(ctx context.Context, w io.Writer, svc service.IServiceManager) error {
	rides := make([]*models.Ride, 0, len(demoRides))
	for _, s := range demoRides {
		ride, err := svc.Ride().Book(ctx, s.kind, s.id, s.pickup, s.dropoff, s.distance)
		if err != nil {
			return fmt.Errorf("book ride %d: %w", s.id, err)
		}
		rides = append(rides, ride)
	}

	if _, err := fmt.Fprintln(w, "Ride List (Polymorphic fare calls):"); err != nil {
		return err
	}
	for _, ride := range rides {
		if err := ride.WriteDetails(w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, " | Fare: $%.2f\n", ride.Fare()); err != nil {
			return err
		}
	}

	driver := models.NewDriver(driverID, driverName, driverRating)
	rider := models.NewRider(riderID, riderName)
	if err := svc.Dispatch().RegisterDriver(ctx, driver); err != nil {
		return err
	}
	if err := svc.Dispatch().RegisterRider(ctx, rider); err != nil {
		return err
	}

	if err := svc.Dispatch().Assign(ctx, driver, rider, rides); err != nil {
		return err
	}
	rides = nil // every ride now belongs to the driver

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := driver.WriteInfo(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return rider.WriteHistory(w)
}
