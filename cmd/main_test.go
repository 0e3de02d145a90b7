package main

import (
	"context"
	"testing"

	"ridedemo/config"
	"ridedemo/pkg/logger"
	"ridedemo/storage/memory"
)

type syncRecorder struct {
	logger.ILogger
	synced bool
}

func (s *syncRecorder) Sync() error {
	s.synced = true
	return nil
}

func TestExit_SyncsLogger(t *testing.T) {
	var code int
	orig := osExit
	osExit = func(c int) { code = c }
	t.Cleanup(func() { osExit = orig })

	log := &syncRecorder{ILogger: logger.NewNop()}
	exit(log, 1)

	if !log.synced {
		t.Error("exit() did not sync the logger")
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestOpenStorage(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		wantErr bool
	}{
		{name: "default", driver: ""},
		{name: "memory", driver: config.StorageMemory},
		{name: "unknown", driver: "cassandra", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stg, err := openStorage(context.Background(), config.Config{StorageDriver: tt.driver}, logger.NewNop())
			if tt.wantErr {
				if err == nil {
					t.Fatal("openStorage() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("openStorage() error = %v", err)
			}
			if _, ok := stg.(*memory.Store); !ok {
				t.Errorf("openStorage() = %T, want *memory.Store", stg)
			}
		})
	}
}
