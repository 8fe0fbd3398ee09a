package pg

import (
	"context"
	"strings"

	"knownkey/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent is one finished statement
type QueryEvent struct {
	SQL       string
	Args      []any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer sees every statement the store runs
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs each statement through root even when root's level is above debug;
// slow ones log at warn. Argument values are keystore hashes and ids, so only their count is logged
func Tracer(root logger.Logger) QueryTracer {
	return sqlLog{root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()}
}

type sqlLog struct{ logger.Logger }

func (s sqlLog) OnQuery(ctx context.Context, ev QueryEvent) {
	l := logger.RequestFields(ctx, s.Logger)
	e := l.Info()
	if ev.Slow {
		e = l.Warn()
	}
	e.Str("sql", compact(ev.SQL)).
		Int("args", len(ev.Args)).
		Float64("elapsed_ms", float64(ev.ElapsedUS)/1e3).
		Bool("slow", ev.Slow).
		Err(ev.Err).
		Msg("pg query")
}

// compact puts a statement on one line
func compact(sql string) string { return strings.Join(strings.Fields(sql), " ") }
