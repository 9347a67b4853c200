package datadir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Default file names inside the data directory.
const (
	DefaultStateFile      = "ac_state.csv"
	DefaultHistoryFile    = "temperature_history.csv"
	DefaultCommandLogFile = "command_log.csv"
)

// Names are the table file names relative to the data directory.
type Names struct {
	State      string
	History    string
	CommandLog string
}

// Paths locates the three tables of a data directory.
type Paths struct {
	Dir        string
	State      string
	History    string
	CommandLog string
}

// Resolve joins names onto dir, falling back to the default file names.
// Absolute names are used as-is.
func Resolve(dir string, names Names) Paths {
	if dir == "" {
		dir = "data"
	}
	return Paths{
		Dir:        dir,
		State:      join(dir, names.State, DefaultStateFile),
		History:    join(dir, names.History, DefaultHistoryFile),
		CommandLog: join(dir, names.CommandLog, DefaultCommandLogFile),
	}
}

func join(dir, name, def string) string {
	if name == "" {
		name = def
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// Open resolves the table paths and makes sure the data directory exists.
// It returns the tables that are not present yet. Those are produced by other
// tooling, so their absence is reported rather than repaired; each request
// touching them fails with a server error until they appear.
func Open(dir string, names Names) (Paths, []string, error) {
	p := Resolve(dir, names)

	info, err := os.Stat(p.Dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(p.Dir, 0o755); err != nil {
			return Paths{}, nil, fmt.Errorf("create data directory %q: %w", p.Dir, err)
		}
	case err != nil:
		return Paths{}, nil, fmt.Errorf("stat data directory %q: %w", p.Dir, err)
	case !info.IsDir():
		return Paths{}, nil, fmt.Errorf("data directory %q is not a directory", p.Dir)
	}

	var missing []string
	for _, path := range []string{p.State, p.History} {
		if _, err := os.Stat(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Paths{}, nil, fmt.Errorf("stat %q: %w", path, err)
			}
			missing = append(missing, path)
		}
	}
	return p, missing, nil
}
