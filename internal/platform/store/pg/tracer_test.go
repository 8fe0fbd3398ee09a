package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"knownkey/internal/platform/logger"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"select 1":                       "select 1",
		"  select   1  ":                 "select 1",
		"SELECT id\n  FROM known_keys\t": "SELECT id FROM known_keys",
		"":                               "",
	} {
		if got := compact(in); got != want {
			t.Fatalf("compact(%q) = %q, want %q", in, got, want)
		}
	}
}

type traceLine struct {
	Level     string  `json:"level"`
	SQL       string  `json:"sql"`
	Args      int     `json:"args"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Slow      bool    `json:"slow"`
	Error     string  `json:"error"`
	Component string  `json:"component"`
	RequestID string  `json:"request_id"`
}

func trace(t *testing.T, ctx context.Context, ev QueryEvent) (traceLine, string) {
	t.Helper()
	var buf bytes.Buffer
	// the tracer must log even when the root sits at warn
	Tracer(zerolog.New(&buf).Level(zerolog.WarnLevel)).OnQuery(ctx, ev)
	var l traceLine
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &l); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	return l, buf.String()
}

func TestTracer_Levels(t *testing.T) {
	t.Parallel()

	ev := QueryEvent{
		SQL:       "SELECT id FROM known_keys\n WHERE hash = $1",
		Args:      []any{"5f4dcc3b5aa765d61d8327deb882cf99"},
		ElapsedUS: 2500,
		Err:       errors.New("boom"),
	}
	cases := []struct {
		slow  bool
		level string
	}{
		{false, "info"},
		{true, "warn"},
	}
	for _, tc := range cases {
		ev.Slow = tc.slow
		l, raw := trace(t, context.Background(), ev)
		if l.Level != tc.level || l.Slow != tc.slow {
			t.Fatalf("slow=%v: line = %+v", tc.slow, l)
		}
		if l.SQL != "SELECT id FROM known_keys WHERE hash = $1" || l.ElapsedMS != 2.5 || l.Error != "boom" || l.Component != "pg" {
			t.Fatalf("line = %+v", l)
		}
		if l.Args != 1 || bytes.Contains([]byte(raw), []byte("5f4dcc3b")) {
			t.Fatalf("hash value leaked or miscounted: %s", raw)
		}
	}
}

func TestTracer_CarriesRequestID(t *testing.T) {
	t.Parallel()

	l, _ := trace(t, logger.WithRequest(context.Background(), "rid-42"), QueryEvent{SQL: "select 1"})
	if l.RequestID != "rid-42" || l.Level != "info" {
		t.Fatalf("line = %+v", l)
	}
}
