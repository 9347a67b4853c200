package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dharavthjayanth/3D-Model/internal/models"
	"github.com/dharavthjayanth/3D-Model/internal/service"
)

func TestListCommands(t *testing.T) {
	logs := &mockCommandLog{resp: []models.CommandLogEntry{
		{Timestamp: "2025-01-01 00:00:00", User: "Admin", Command: "set_temp AC1 -> 22.0", ACID: "AC1", OldValue: "24.0", NewValue: "22.0", Status: models.CommandStatusApplied},
	}}
	r := newTestRouter(&service.Service{CommandLog: logs})

	w := doRequest(r, http.MethodGet, "/commands?ac_id=%20AC1%20&limit=10", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if logs.lastFilter.ACID != "AC1" || logs.lastFilter.Limit != 10 {
		t.Fatalf("filter = %+v", logs.lastFilter)
	}
	var out commandsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 1 || out.Items[0].NewValue != "22.0" || out.Items[0].Status != "Applied" {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestListCommands_NoLogIsEmpty(t *testing.T) {
	r := newTestRouter(&service.Service{CommandLog: &mockCommandLog{}})

	w := doRequest(r, http.MethodGet, "/commands", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if w.Body.String() != `{"count":0,"items":[]}` {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestListCommands_BadLimit(t *testing.T) {
	s := &service.Service{CommandLog: service.NewCommandLogService(&stubCommandLogRepo{})}
	r := newTestRouter(s)

	for _, q := range []string{"x", "-1"} {
		w := doRequest(r, http.MethodGet, "/commands?limit="+q, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("limit=%s: status=%d", q, w.Code)
		}
	}
}
