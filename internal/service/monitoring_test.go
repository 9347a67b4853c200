package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dharavthjayanth/3D-Model/internal/repository"
)

func TestMonitoringService_Snapshot(t *testing.T) {
	repo := &fakeStateRepo{table: stateTable(unit("AC1", "24.0", "ON", "Cooling"), unit("AC2", "20.0", "OFF", "Fan"))}
	s := NewMonitoringService(repo)

	tbl, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d", len(tbl.Rows))
	}
}

func TestMonitoringService_Unit(t *testing.T) {
	repo := &fakeStateRepo{table: stateTable(unit("AC1", "24.0", "ON", "Cooling"))}
	s := NewMonitoringService(repo)

	row, err := s.Unit(context.Background(), "AC1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.Get("mode") != "Cooling" {
		t.Fatalf("unexpected row")
	}

	_, err = s.Unit(context.Background(), "AC2")
	if !errors.Is(err, ErrNotFound) || err.Error() != "AC not found" {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMonitoringService_Unit_MissingFile(t *testing.T) {
	s := NewMonitoringService(&fakeStateRepo{loadErr: &repository.MissingFileError{Name: "ac_state.csv"}})

	_, err := s.Unit(context.Background(), "AC1")
	if !errors.Is(err, repository.ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile, got %v", err)
	}
}
