package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dharavthjayanth/3D-Model/internal/models"
)

// CommandLogCSV is the append-only command audit log.
type CommandLogCSV struct {
	path string
}

func NewCommandLogCSV(path string) *CommandLogCSV { return &CommandLogCSV{path: path} }

var _ CommandLogRepo = (*CommandLogCSV)(nil)

// Append writes one entry, creating the file with its header first if needed.
// Appends are not locked; concurrent writers may interleave.
func (r *CommandLogCSV) Append(ctx context.Context, e models.CommandLogEntry) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create command log directory: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, defaultFileMode)
	if err != nil {
		return fmt.Errorf("open command log: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close command log: %w", cerr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat command log: %w", err)
	}

	// header and row go out in a single flush
	cw := newCSVWriter(f)
	if info.Size() == 0 {
		if err := cw.Write(models.CommandLogColumns); err != nil {
			return fmt.Errorf("write command log header: %w", err)
		}
	}
	if err := cw.Write(e.Record()); err != nil {
		return fmt.Errorf("write command log entry: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush command log: %w", err)
	}
	return nil
}

// List returns logged entries in file order, optionally restricted to one
// unit and to the last limit entries. A log that does not exist yet is empty.
func (r *CommandLogCSV) List(ctx context.Context, acID string, limit int) ([]models.CommandLogEntry, error) {
	t, err := readTable(ctx, r.path)
	if err != nil {
		if errors.Is(err, ErrMissingFile) {
			return []models.CommandLogEntry{}, nil
		}
		return nil, err
	}

	out := make([]models.CommandLogEntry, 0, len(t.Rows))
	for _, row := range t.Rows {
		e := models.CommandLogEntryFromRow(row)
		if acID != "" && e.ACID != acID {
			continue
		}
		out = append(out, e)
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}
