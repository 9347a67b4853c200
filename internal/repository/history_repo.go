package repository

import (
	"context"
	"fmt"

	"github.com/dharavthjayanth/3D-Model/internal/models"
)

// HistoryCSV is the temperature history table written by the external
// collector. Rows are assumed to be appended oldest first.
type HistoryCSV struct {
	path string
}

func NewHistoryCSV(path string) *HistoryCSV {
	return &HistoryCSV{path: path}
}

var _ HistoryRepo = (*HistoryCSV)(nil)

func (r *HistoryCSV) Load(ctx context.Context) (models.Table, error) {
	return readTable(ctx, r.path)
}

// Query returns the most recent limit points of a unit in file order.
// A unit without any point is ErrNotFound rather than an empty result.
// A non-positive limit returns every point.
func (r *HistoryCSV) Query(ctx context.Context, acID string, limit int) ([]models.Row, error) {
	t, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	var points []models.Row
	for _, row := range t.Rows {
		if row.Get(models.KeyColumn) == acID {
			points = append(points, row)
		}
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("history for %q: %w", acID, ErrNotFound)
	}
	if limit > 0 && len(points) > limit {
		points = points[len(points)-limit:]
	}
	return points, nil
}
