package repository

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dharavthjayanth/3D-Model/internal/models"
)

var (
	// ErrMissingFile means a backing table does not exist on disk. It is a
	// deployment problem, not a request-level miss.
	ErrMissingFile = errors.New("missing file")
	// ErrNotFound means no row matched the requested unit.
	ErrNotFound = errors.New("not found")
)

// MissingFileError names the table file that could not be found.
type MissingFileError struct {
	Name string
}

func (e *MissingFileError) Error() string { return "missing file: " + e.Name }

func (e *MissingFileError) Is(target error) bool { return target == ErrMissingFile }

const (
	utf8BOM     = "\ufeff"
	defaultFileMode = 0o644
)

// readTable loads a whole CSV file; the first record is the header.
func readTable(ctx context.Context, path string) (models.Table, error) {
	if err := ctx.Err(); err != nil {
		return models.Table{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Table{}, &MissingFileError{Name: filepath.Base(path)}
		}
		return models.Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	t, err := decodeTable(f)
	if err != nil {
		return models.Table{}, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return t, nil
}

// decodeTable parses header-keyed records. Short records leave the missing
// columns empty and surplus fields are ignored.
func decodeTable(r io.Reader) (models.Table, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return models.Table{}, nil
	}
	if err != nil {
		return models.Table{}, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	t := models.Table{Columns: header}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return models.Table{}, err
		}
		values := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				values[col] = rec[i]
			}
		}
		t.Rows = append(t.Rows, models.NewRow(header, values))
	}
	return t, nil
}

// encodeTable writes the header followed by every row in header order.
func encodeTable(w io.Writer, t models.Table) error {
	cw := newCSVWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row.Values(t.Columns)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// newCSVWriter uses CRLF line endings like the tooling that produces the data files.
func newCSVWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return cw
}

// writeTableAtomic writes t to a temporary file next to path and renames it
// into place, so readers see either the old or the new complete file.
func writeTableAtomic(ctx context.Context, path string, t models.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmpFile, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", base, err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := encodeTable(tmpFile, t); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("sync %s: %w", tmpPath, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}

	// CreateTemp uses 0600; keep the mode of the file being replaced.
	mode := os.FileMode(defaultFileMode)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename %s to %s: %w", tmpPath, path, err)
	}
	success = true
	return nil
}
