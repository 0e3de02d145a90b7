package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ridedemo/pkg/models"
	"ridedemo/storage"
)

var _ storage.IStorage = (*Store)(nil)

func TestRideRepo(t *testing.T) {
	ctx := context.Background()
	stg := New()

	r1 := models.NewStandardRide(101, "Downtown", "Airport", 12)
	r2 := models.NewPremiumRide(102, "Mall", "Hotel", 5)
	for _, r := range []*models.Ride{r1, r2, r1} {
		if err := stg.Ride().Create(ctx, r); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	got, err := stg.Ride().GetByID(ctx, 102)
	if err != nil {
		t.Fatalf("GetByID(102) error = %v", err)
	}
	if got == r2 {
		t.Error("GetByID(102) returned the caller's pointer, want a stored copy")
	}
	if *got != *r2 {
		t.Errorf("GetByID(102) = %+v, want %+v", *got, *r2)
	}

	if _, err := stg.Ride().GetByID(ctx, 999); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetByID(999) error = %v, want ErrNotFound", err)
	}

	all, err := stg.Ride().GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(all) != 2 || all[0].ID() != 101 || all[1].ID() != 102 {
		t.Errorf("GetAll() = %v, want [101 102]", all)
	}
}

func TestRideRepo_GetAllKeepsCreationOrder(t *testing.T) {
	ctx := context.Background()
	stg := New()

	for _, id := range []int64{102, 101, 7, 101} {
		if err := stg.Ride().Create(ctx, models.NewStandardRide(id, "a", "b", 1)); err != nil {
			t.Fatalf("Create(%d) error = %v", id, err)
		}
	}

	all, err := stg.Ride().GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	var got []int64
	for _, r := range all {
		got = append(got, r.ID())
	}
	if diff := cmp.Diff([]int64{102, 101, 7}, got); diff != "" {
		t.Errorf("GetAll() order mismatch (-want +got):\n%s", diff)
	}
}

func TestDriverRepo(t *testing.T) {
	ctx := context.Background()
	stg := New()

	if err := stg.Driver().AddRide(ctx, 1, 101); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("AddRide() unknown driver error = %v, want ErrNotFound", err)
	}

	if err := stg.Driver().Create(ctx, models.NewDriver(1, "Aisha", 4.9)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	for _, id := range []int64{101, 102, 103} {
		if err := stg.Driver().AddRide(ctx, 1, id); err != nil {
			t.Fatalf("AddRide(%d) error = %v", id, err)
		}
	}
	n, err := stg.Driver().CountRides(ctx, 1)
	if err != nil || n != 3 {
		t.Errorf("CountRides() = %d, %v; want 3", n, err)
	}
}

func TestRiderRepo(t *testing.T) {
	ctx := context.Background()
	stg := New()

	if _, err := stg.Rider().History(ctx, 10); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("History() unknown rider error = %v, want ErrNotFound", err)
	}

	if err := stg.Rider().Create(ctx, models.NewRider(10, "Kashif")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	want := []string{"Requested Ride 101", "Requested Ride 102"}
	for _, entry := range want {
		if err := stg.Rider().AppendHistory(ctx, 10, entry); err != nil {
			t.Fatalf("AppendHistory() error = %v", err)
		}
	}

	got, err := stg.Rider().History(ctx, 10)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("History() mismatch (-want +got):\n%s", diff)
	}
}
