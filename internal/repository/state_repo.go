package repository

import (
	"context"
	"fmt"

	"github.com/dharavthjayanth/3D-Model/internal/models"
)

// StateCSV is the unit snapshot table. Every call re-reads the file; nothing
// is cached between requests.
type StateCSV struct {
	path string
}

func NewStateCSV(path string) *StateCSV {
	return &StateCSV{path: path}
}

// Ensure implementation of StateRepo interface at compile time.
var _ StateRepo = (*StateCSV)(nil)

// Load reads every unit row together with the file's header.
func (r *StateCSV) Load(ctx context.Context) (models.Table, error) {
	return readTable(ctx, r.path)
}

// Find returns the first row whose ac_id matches.
func (r *StateCSV) Find(ctx context.Context, acID string) (models.Row, error) {
	t, err := r.Load(ctx)
	if err != nil {
		return models.Row{}, err
	}
	i, ok := t.Find(acID)
	if !ok {
		return models.Row{}, fmt.Errorf("unit %q: %w", acID, ErrNotFound)
	}
	return t.Rows[i], nil
}

// Save rewrites the whole table using the column order captured by Load.
// Concurrent Saves are not coordinated: the last rename wins.
func (r *StateCSV) Save(ctx context.Context, t models.Table) error {
	return writeTableAtomic(ctx, r.path, t)
}
