package service

import (
	"context"

	"github.com/dharavthjayanth/3D-Model/internal/models"
	"github.com/dharavthjayanth/3D-Model/internal/repository"
)

// Commands validates and applies control commands.
type Commands interface {
	Apply(ctx context.Context, cmd models.Command) (models.CommandResult, error)
	ApplyText(ctx context.Context, user, text string) (models.CommandResult, error)
}

// Monitoring exposes the current unit snapshot.
type Monitoring interface {
	Snapshot(ctx context.Context) (models.Table, error)
	Unit(ctx context.Context, acID string) (models.Row, error)
}

// History exposes recent temperature observations.
type History interface {
	Recent(ctx context.Context, acID string, limit int) ([]models.Row, error)
}

// CommandLog exposes the audit trail of applied commands.
type CommandLog interface {
	ListCommands(ctx context.Context, f CommandLogFilter) ([]models.CommandLogEntry, error)
}

// Service aggregates all sub-services.
type Service struct {
	Commands
	Monitoring
	History
	CommandLog
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	return &Service{
		Commands:   NewCommandService(repos.StateRepo, repos.CommandLogRepo, opts.DefaultUser),
		Monitoring: NewMonitoringService(repos.StateRepo),
		History:    NewHistoryService(repos.HistoryRepo),
		CommandLog: NewCommandLogService(repos.CommandLogRepo),
	}
}
