package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dharavthjayanth/3D-Model/internal/models"
	"github.com/dharavthjayanth/3D-Model/internal/repository"
)

const timestampColumn = "timestamp"

type CommandService struct {
	stateRepo   repository.StateRepo
	logRepo     repository.CommandLogRepo
	defaultUser string
	now         func() time.Time
}

func NewCommandService(stateRepo repository.StateRepo, logRepo repository.CommandLogRepo, defaultUser string) *CommandService {
	if defaultUser == "" {
		defaultUser = DefaultUser
	}
	return &CommandService{
		stateRepo:   stateRepo,
		logRepo:     logRepo,
		defaultUser: defaultUser,
		now:         time.Now,
	}
}

// Apply validates cmd, writes the new value into the unit's row, rewrites the
// state table and appends a log entry. Validation and lookup failures leave
// no trace on disk.
//
// Two Apply calls racing on the state table are not serialized: each one
// rewrites the whole file, so the later rename silently drops the earlier
// update.
func (s *CommandService) Apply(ctx context.Context, cmd models.Command) (models.CommandResult, error) {
	setting, err := ValidateCommand(cmd)
	if err != nil {
		return models.CommandResult{}, err
	}

	tbl, err := s.stateRepo.Load(ctx)
	if err != nil {
		return models.CommandResult{}, err
	}
	if len(tbl.Rows) == 0 {
		return models.CommandResult{}, integrity("state table has no rows")
	}

	i, ok := tbl.Find(cmd.ACID)
	if !ok {
		return models.CommandResult{}, notFound("AC not found", nil)
	}

	col := setting.Action.Column()
	for _, c := range []string{col, timestampColumn} {
		if !tbl.HasColumn(c) {
			return models.CommandResult{}, integrity(fmt.Sprintf("state table has no %q column", c))
		}
	}

	now := s.now()
	row := &tbl.Rows[i]
	before := row.Get(col)
	row.Set(col, setting.Text())
	row.Set(timestampColumn, now.Format(models.TimestampLayout))

	if err := s.stateRepo.Save(ctx, tbl); err != nil {
		return models.CommandResult{}, fmt.Errorf("save state: %w", err)
	}

	// the snapshot is already replaced; a cancelled request must not skip the log
	if err := s.logRepo.Append(context.WithoutCancel(ctx), s.logEntry(cmd, setting, before, now)); err != nil {
		return models.CommandResult{}, fmt.Errorf("append command log: %w", err)
	}

	return models.CommandResult{
		ACID:     cmd.ACID,
		Action:   setting.Action,
		NewValue: setting.Value(),
		OldValue: before,
		User:     s.userOf(cmd),
	}, nil
}

func (s *CommandService) logEntry(cmd models.Command, setting models.Setting, before string, at time.Time) models.CommandLogEntry {
	user := s.userOf(cmd)
	text := cmd.Note
	if text == "" {
		text = fmt.Sprintf("%s %s -> %s", setting.Action, cmd.ACID, setting.Text())
	}
	return models.CommandLogEntry{
		Timestamp: at.Format(models.TimestampLayout),
		User:      user,
		Command:   text,
		ACID:      cmd.ACID,
		OldValue:  before,
		NewValue:  setting.Text(),
		Status:    models.CommandStatusApplied,
	}
}

// userOf is the user recorded for cmd.
func (s *CommandService) userOf(cmd models.Command) string {
	if cmd.User == "" {
		return s.defaultUser
	}
	return cmd.User
}

// ApplyText parses a dashboard chat phrase and applies it.
func (s *CommandService) ApplyText(ctx context.Context, user, text string) (models.CommandResult, error) {
	cmd, err := ParseChatCommand(text)
	if err != nil {
		return models.CommandResult{}, err
	}
	cmd.User = user
	return s.Apply(ctx, cmd)
}

// isStorageMiss reports whether err is a repository not-found.
func isStorageMiss(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
