package service

import (
	"context"
	"strings"

	"github.com/dharavthjayanth/3D-Model/internal/models"
	"github.com/dharavthjayanth/3D-Model/internal/repository"
)

type CommandLogService struct {
	logRepo repository.CommandLogRepo
}

func NewCommandLogService(logRepo repository.CommandLogRepo) *CommandLogService {
	return &CommandLogService{logRepo: logRepo}
}

// ListCommands returns logged commands, oldest first.
func (s *CommandLogService) ListCommands(ctx context.Context, f CommandLogFilter) ([]models.CommandLogEntry, error) {
	if f.Limit < 0 {
		return nil, invalidInput("limit must not be negative")
	}
	return s.logRepo.List(ctx, strings.TrimSpace(f.ACID), f.Limit)
}
