// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

type mockCheckpointer struct {
	count atomic.Int32
	err   error
}

func (m *mockCheckpointer) Checkpoint(ctx context.Context) error {
	m.count.Add(1)
	return m.err
}

func TestMaintenanceService_Interface(t *testing.T) {
	var _ suture.Service = (*MaintenanceService)(nil)
}

func TestNewMaintenanceService_MinimumInterval(t *testing.T) {
	svc := NewMaintenanceService(&mockCheckpointer{}, time.Second)
	if svc.interval != time.Minute {
		t.Errorf("interval = %v, want raised to 1m", svc.interval)
	}
	if svc.String() != "db-maintenance" {
		t.Errorf("name = %q, want db-maintenance", svc.String())
	}
}

func TestMaintenanceService_StopsOnCancel(t *testing.T) {
	svc := NewMaintenanceService(&mockCheckpointer{}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestMaintenanceService_ChecksOnTick(t *testing.T) {
	cp := &mockCheckpointer{}
	svc := &MaintenanceService{db: cp, interval: 10 * time.Millisecond, name: "db-maintenance"}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_ = svc.Serve(ctx)

	if cp.count.Load() == 0 {
		t.Error("Checkpoint was never called")
	}
}

func TestMaintenanceService_SurvivesCheckpointError(t *testing.T) {
	cp := &mockCheckpointer{err: errors.New("disk full")}
	svc := &MaintenanceService{db: cp, interval: 10 * time.Millisecond, name: "db-maintenance"}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded after riding out errors, got %v", err)
	}
	if cp.count.Load() < 2 {
		t.Errorf("Checkpoint called %d times, want retries after failure", cp.count.Load())
	}
}
