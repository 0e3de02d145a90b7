package demo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ridedemo/pkg/logger"
	"ridedemo/service"
	"ridedemo/storage/memory"
)

const wantOutput = `Ride List (Polymorphic fare calls):
Ride 101 | Downtown -> Airport | 12.00 miles | Fare: $20.00
Ride 102 | Mall -> Hotel | 5.00 miles | Fare: $20.00

Driver Aisha (Rating: 4.90) | Completed Rides: 2

Rider Kashif Ride History:
  - Requested Ride 101
  - Requested Ride 102
`

func TestRun_Output(t *testing.T) {
	stg := memory.New()
	svc := service.New(stg, logger.NewNop())

	var sb strings.Builder
	if err := Run(context.Background(), &sb, svc); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if diff := cmp.Diff(wantOutput, sb.String()); diff != "" {
		t.Errorf("Run() output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_MirrorsStorage(t *testing.T) {
	ctx := context.Background()
	stg := memory.New()
	svc := service.New(stg, logger.NewNop())

	var sb strings.Builder
	if err := Run(ctx, &sb, svc); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	rides, err := stg.Ride().GetAll(ctx)
	if err != nil || len(rides) != 2 {
		t.Fatalf("GetAll() = %v, %v; want 2 rides", rides, err)
	}
	if n, err := stg.Driver().CountRides(ctx, driverID); err != nil || n != 2 {
		t.Errorf("CountRides() = %d, %v; want 2", n, err)
	}
	history, err := stg.Rider().History(ctx, riderID)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if diff := cmp.Diff([]string{"Requested Ride 101", "Requested Ride 102"}, history); diff != "" {
		t.Errorf("History() mismatch (-want +got):\n%s", diff)
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRun_WriteError(t *testing.T) {
	svc := service.New(memory.New(), logger.NewNop())
	if err := Run(context.Background(), failingWriter{}, svc); !errors.Is(err, errWrite) {
		t.Errorf("Run() error = %v, want %v", err, errWrite)
	}
}
