package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dharavthjayanth/3D-Model/internal/repository"
)

const historyFixture = "timestamp,ac_id,current_temp\n" +
	"2025-01-01 10:00:00,F1-AC1,25.0\n" +
	"2025-01-01 10:00:05,F1-AC2,23.0\n" +
	"2025-01-01 10:00:05,F1-AC1,24.8\n" +
	"2025-01-01 10:00:10,F1-AC1,24.5\n"

func TestHistoryCSV_Query_LastNInFileOrder(t *testing.T) {
	path := writeFile(t, t.TempDir(), "temperature_history.csv", historyFixture)
	repo := repository.NewHistoryCSV(path)

	points, err := repo.Query(context.Background(), "F1-AC1", 2)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Get("current_temp") != "24.8" || points[1].Get("current_temp") != "24.5" {
		t.Fatalf("unexpected points: %s, %s", points[0].Get("current_temp"), points[1].Get("current_temp"))
	}
}

func TestHistoryCSV_Query_LimitLargerThanHistory(t *testing.T) {
	path := writeFile(t, t.TempDir(), "temperature_history.csv", historyFixture)
	repo := repository.NewHistoryCSV(path)

	points, err := repo.Query(context.Background(), "F1-AC1", 720)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
}

func TestHistoryCSV_Query_UnknownUnitIsNotFound(t *testing.T) {
	path := writeFile(t, t.TempDir(), "temperature_history.csv", historyFixture)
	repo := repository.NewHistoryCSV(path)

	_, err := repo.Query(context.Background(), "F3-AC1", 10)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHistoryCSV_Query_MissingFile(t *testing.T) {
	repo := repository.NewHistoryCSV(filepath.Join(t.TempDir(), "temperature_history.csv"))

	_, err := repo.Query(context.Background(), "F1-AC1", 10)
	if !errors.Is(err, repository.ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile, got %v", err)
	}
}
