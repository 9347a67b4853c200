package service

import (
	"context"

	"github.com/dharavthjayanth/3D-Model/internal/models"
	"github.com/dharavthjayanth/3D-Model/internal/repository"
)

type fakeStateRepo struct {
	table      models.Table
	loadErr    error
	saveErr    error
	loadCalls  int
	savedCalls []models.Table
}

func (f *fakeStateRepo) Load(ctx context.Context) (models.Table, error) {
	f.loadCalls++
	return f.table, f.loadErr
}

func (f *fakeStateRepo) Find(ctx context.Context, acID string) (models.Row, error) {
	if f.loadErr != nil {
		return models.Row{}, f.loadErr
	}
	i, ok := f.table.Find(acID)
	if !ok {
		return models.Row{}, repository.ErrNotFound
	}
	return f.table.Rows[i], nil
}

func (f *fakeStateRepo) Save(ctx context.Context, t models.Table) error {
	f.savedCalls = append(f.savedCalls, t)
	return f.saveErr
}

type fakeCommandLogRepo struct {
	appendErr error
	entries   []models.CommandLogEntry
	lastACID  string
	lastLimit int
}

func (f *fakeCommandLogRepo) Append(ctx context.Context, e models.CommandLogEntry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeCommandLogRepo) List(ctx context.Context, acID string, limit int) ([]models.CommandLogEntry, error) {
	f.lastACID = acID
	f.lastLimit = limit
	return f.entries, nil
}

type fakeHistoryRepo struct {
	points    []models.Row
	err       error
	lastLimit int
}

func (f *fakeHistoryRepo) Load(ctx context.Context) (models.Table, error) {
	return models.Table{Rows: f.points}, f.err
}

func (f *fakeHistoryRepo) Query(ctx context.Context, acID string, limit int) ([]models.Row, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.points, nil
}

var stateColumns = []string{"ac_id", "set_temp", "status", "mode", "timestamp"}

func stateTable(rows ...map[string]string) models.Table {
	t := models.Table{Columns: stateColumns}
	for _, r := range rows {
		t.Rows = append(t.Rows, models.NewRow(stateColumns, r))
	}
	return t
}

func unit(id, temp, status, mode string) map[string]string {
	return map[string]string{"ac_id": id, "set_temp": temp, "status": status, "mode": mode, "timestamp": "2025-01-01 00:00:00"}
}
