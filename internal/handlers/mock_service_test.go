package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/dharavthjayanth/3D-Model/internal/metrics"
	"github.com/dharavthjayanth/3D-Model/internal/models"
	"github.com/dharavthjayanth/3D-Model/internal/repository"
	"github.com/dharavthjayanth/3D-Model/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// ---- Service Mocks ----

type mockCommands struct {
	res       models.CommandResult
	err       error
	lastCmd   models.Command
	lastUser  string
	lastText  string
	applyCall int
	textCall  int
}

func (m *mockCommands) Apply(ctx context.Context, cmd models.Command) (models.CommandResult, error) {
	m.applyCall++
	m.lastCmd = cmd
	return m.res, m.err
}

func (m *mockCommands) ApplyText(ctx context.Context, user, text string) (models.CommandResult, error) {
	m.textCall++
	m.lastUser = user
	m.lastText = text
	return m.res, m.err
}

type mockMonitoring struct {
	table  models.Table
	row    models.Row
	err    error
	lastID string
}

func (m *mockMonitoring) Snapshot(ctx context.Context) (models.Table, error) {
	return m.table, m.err
}

func (m *mockMonitoring) Unit(ctx context.Context, acID string) (models.Row, error) {
	m.lastID = acID
	return m.row, m.err
}

type mockHistory struct {
	points    []models.Row
	err       error
	lastID    string
	lastLimit int
}

func (m *mockHistory) Recent(ctx context.Context, acID string, limit int) ([]models.Row, error) {
	m.lastID = acID
	m.lastLimit = limit
	return m.points, m.err
}

type mockCommandLog struct {
	resp       []models.CommandLogEntry
	err        error
	lastFilter service.CommandLogFilter
}

func (m *mockCommandLog) ListCommands(ctx context.Context, f service.CommandLogFilter) ([]models.CommandLogEntry, error) {
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Repository Stubs ----

// stubStateRepo backs a real service when a test needs its error classes.
type stubStateRepo struct {
	table models.Table
	err   error
	saved []models.Table
}

func (r *stubStateRepo) Load(ctx context.Context) (models.Table, error) {
	return r.table, r.err
}

func (r *stubStateRepo) Find(ctx context.Context, acID string) (models.Row, error) {
	if r.err != nil {
		return models.Row{}, r.err
	}
	if i, ok := r.table.Find(acID); ok {
		return r.table.Rows[i], nil
	}
	return models.Row{}, fmt.Errorf("ac %q: %w", acID, repository.ErrNotFound)
}

func (r *stubStateRepo) Save(ctx context.Context, t models.Table) error {
	r.saved = append(r.saved, t)
	return r.err
}

type stubCommandLogRepo struct {
	entries []models.CommandLogEntry
}

func (r *stubCommandLogRepo) Append(ctx context.Context, e models.CommandLogEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *stubCommandLogRepo) List(ctx context.Context, acID string, limit int) ([]models.CommandLogEntry, error) {
	return r.entries, nil
}

type stubHistoryRepo struct {
	table models.Table
}

func (r *stubHistoryRepo) Load(ctx context.Context) (models.Table, error) {
	return r.table, nil
}

func (r *stubHistoryRepo) Query(ctx context.Context, acID string, limit int) ([]models.Row, error) {
	var out []models.Row
	for _, row := range r.table.Rows {
		if row.Get(models.KeyColumn) == acID {
			out = append(out, row)
		}
	}
	if len(out) == 0 {
		return nil, repository.ErrNotFound
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil, Options{AllowedOrigins: []string{"*"}})
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func newTestRouterWithMetrics(s *service.Service) (*gin.Engine, *metrics.Metrics) {
	m := metrics.New(prometheus.NewRegistry())
	h := NewHandler(s, nil, m, Options{AllowedOrigins: []string{"*"}})
	gin.SetMode(gin.TestMode)
	return h.InitRoutes(), m
}

func doRequest(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testRow(cols []string, kv ...string) models.Row {
	values := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		values[kv[i]] = kv[i+1]
	}
	return models.NewRow(cols, values)
}

func testutilCount(m *metrics.Metrics, method, route, code string) float64 {
	return testutil.ToFloat64(m.RequestsTotal.WithLabelValues(method, route, code))
}
