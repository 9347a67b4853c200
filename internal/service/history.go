package service

import (
	"context"

	"github.com/dharavthjayanth/3D-Model/internal/models"
	"github.com/dharavthjayanth/3D-Model/internal/repository"
)

// DefaultHistoryLimit is 1h of points at the collector's 5s interval.
const DefaultHistoryLimit = 720

type HistoryService struct {
	historyRepo repository.HistoryRepo
}

func NewHistoryService(historyRepo repository.HistoryRepo) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

// Recent returns the last limit points of a unit, oldest first. A zero limit
// returns every point.
func (s *HistoryService) Recent(ctx context.Context, acID string, limit int) ([]models.Row, error) {
	if limit < 0 {
		return nil, invalidInput("limit must not be negative")
	}
	points, err := s.historyRepo.Query(ctx, acID, limit)
	if err != nil {
		if isStorageMiss(err) {
			return nil, notFound("No history for this AC", err)
		}
		return nil, err
	}
	return points, nil
}
