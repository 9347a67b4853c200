package service

import (
	"context"

	"github.com/dharavthjayanth/3D-Model/internal/models"
	"github.com/dharavthjayanth/3D-Model/internal/repository"
)

type MonitoringService struct {
	stateRepo repository.StateRepo
}

func NewMonitoringService(stateRepo repository.StateRepo) *MonitoringService {
	return &MonitoringService{stateRepo: stateRepo}
}

// Snapshot returns every unit as currently stored on disk.
func (s *MonitoringService) Snapshot(ctx context.Context) (models.Table, error) {
	return s.stateRepo.Load(ctx)
}

// Unit returns one unit's row.
func (s *MonitoringService) Unit(ctx context.Context, acID string) (models.Row, error) {
	row, err := s.stateRepo.Find(ctx, acID)
	if err != nil {
		if isStorageMiss(err) {
			return models.Row{}, notFound("AC not found", err)
		}
		return models.Row{}, err
	}
	return row, nil
}
