package server

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNormalizeAddr(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"8000":           ":8000",
		":8000":          ":8000",
		" 9000 ":         ":9000",
		"127.0.0.1:8000": "127.0.0.1:8000",
	}
	for in, want := range cases {
		if got := normalizeAddr(in); got != want {
			t.Errorf("normalizeAddr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTimeoutsWithDefaults(t *testing.T) {
	got := Timeouts{Write: 3 * time.Second}.withDefaults()
	if got.ReadHeader != readHeaderTimeout || got.Write != 3*time.Second || got.Idle != idleTimeout {
		t.Fatalf("unexpected timeouts: %+v", got)
	}

	srv := newHTTPServer(":0", http.NotFoundHandler(), got)
	if srv.WriteTimeout != 3*time.Second || srv.MaxHeaderBytes != maxHeaderBytes {
		t.Fatalf("unexpected server: %+v", srv)
	}
}

func TestShutdownBeforeRun(t *testing.T) {
	if err := New(Timeouts{}).Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}
