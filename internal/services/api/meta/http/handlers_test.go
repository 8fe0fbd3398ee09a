package http

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "knownkey/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type pinger struct{ err error }

func (p pinger) Ping(stdctx.Context) error { return p.err }

func get(t *testing.T, d Deps, path string, out any) {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), d)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("%s status = %d", path, rr.Code)
	}
	env := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		pg     any
		status string
		check  string
	}{
		{"no postgres", nil, "ok", "skipped"},
		{"postgres up", pinger{}, "ok", "ok"},
		{"postgres down", pinger{err: errors.New("refused")}, "fail", "fail"},
		{"not a pinger", struct{}{}, "ok", "unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var got ReadyResponse
			get(t, Deps{ServiceName: "svc", PG: tc.pg}, "/ready", &got)
			if got.Status != tc.status || len(got.Checks) != 1 || got.Checks[0].Status != tc.check {
				t.Fatalf("ready = %+v", got)
			}
		})
	}
}

func TestHealthAndService(t *testing.T) {
	t.Parallel()

	started := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d := Deps{
		ServiceName: "knownkey-api",
		StartedAt:   started,
		Now:         func() time.Time { return started.Add(90 * time.Second) },
		Modules:     func() []string { return []string{"meta", "translator"} },
	}

	var h HealthResponse
	get(t, d, "/health", &h)
	if !h.OK || h.Service != "knownkey-api" || h.Now != "2026-01-01T00:01:30Z" {
		t.Fatalf("health = %+v", h)
	}

	var s ServiceResponse
	get(t, d, "/service", &s)
	if s.Uptime != 90 || s.Started != "2026-01-01T00:00:00Z" || len(s.Modules) != 2 || s.Modules[1] != "translator" {
		t.Fatalf("service = %+v", s)
	}

	var v map[string]string
	get(t, d, "/version", &v)
	if v["service"] != "knownkey-api" {
		t.Fatalf("version = %v", v)
	}
}
