package repository

import (
	"context"

	"github.com/dharavthjayanth/3D-Model/internal/models"
	"github.com/dharavthjayanth/3D-Model/internal/repository/datadir"
)

// StateRepo reads and rewrites the unit snapshot table.
type StateRepo interface {
	Load(ctx context.Context) (models.Table, error)
	Find(ctx context.Context, acID string) (models.Row, error)
	Save(ctx context.Context, t models.Table) error
}

// HistoryRepo reads the temperature history table.
type HistoryRepo interface {
	Load(ctx context.Context) (models.Table, error)
	Query(ctx context.Context, acID string, limit int) ([]models.Row, error)
}

// CommandLogRepo appends to and reads the command audit log.
type CommandLogRepo interface {
	Append(ctx context.Context, e models.CommandLogEntry) error
	List(ctx context.Context, acID string, limit int) ([]models.CommandLogEntry, error)
}

type Repository struct {
	StateRepo      StateRepo
	HistoryRepo    HistoryRepo
	CommandLogRepo CommandLogRepo
}

func NewRepository(paths datadir.Paths) *Repository {
	return &Repository{
		StateRepo:      NewStateCSV(paths.State),
		HistoryRepo:    NewHistoryCSV(paths.History),
		CommandLogRepo: NewCommandLogCSV(paths.CommandLog),
	}
}
