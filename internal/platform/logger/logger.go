// Package logger owns the process zerolog logger
//
// services receive a Logger value at construction; request code derives one from
// the context with C so every line carries the request id
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"time"

	"knownkey/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Options configures a logger; FromEnv fills it from LOG_*
type Options struct {
	Level       string // trace..panic or disabled, anything else is debug
	Format      string // json or console
	Service     string
	Component   string
	Writer      io.Writer // nil is stdout
	WithCaller  bool
	SampleEvery int // keep one line in n when n > 1
}

// FromEnv reads LOG_* through the raw config view, which never logs
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:       strings.ToLower(env.Get("LEVEL", "info")),
		Format:      strings.ToLower(env.Get("FORMAT", "json")),
		Service:     env.Get("SERVICE", "knownkey-api"),
		Component:   env.Get("COMPONENT", ""),
		WithCaller:  env.GetBool("CALLER", false),
		SampleEvery: env.GetInt("SAMPLE_EVERY", 0),
	}
}

var root atomic.Pointer[Logger]

// Init installs the root logger built from opt; only the first call has any effect
func Init(opt Options) {
	l := New(opt)
	if root.CompareAndSwap(nil, &l) {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
	}
}

// Get returns the root logger, initialising it from the environment when Init was never called
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// New builds a logger from opt without installing it as root
func New(opt Options) Logger {
	w := opt.Writer
	if w == nil {
		w = os.Stdout
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	fields := zerolog.New(w).Level(level(opt.Level)).With().Timestamp()
	if bi, ok := debug.ReadBuildInfo(); ok {
		fields = fields.Str("go_version", bi.GoVersion)
	}
	if opt.Service != "" {
		fields = fields.Str("service", opt.Service)
	}
	if opt.Component != "" {
		fields = fields.Str("component", opt.Component)
	}
	if opt.WithCaller {
		fields = fields.Caller()
	}

	l := fields.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return l
}

func level(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	l, err := zerolog.ParseLevel(s)
	if err != nil || l == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return l
}

// Named is a child of the root logger tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}

type requestIDKey struct{}

// WithRequest stores reqID on ctx for RequestFields; an empty id leaves ctx alone
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, reqID)
}

// RequestFields adds the request id carried by ctx, if any, to l
func RequestFields(ctx context.Context, l Logger) Logger {
	id, _ := ctx.Value(requestIDKey{}).(string)
	if id == "" {
		return l
	}
	return l.With().Str("request_id", id).Logger()
}

// C is the logger attached to ctx with zerolog's WithContext, else the root logger,
// plus ctx's request fields
func C(ctx context.Context) *Logger {
	base := Get()
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		base = l
	}
	l := RequestFields(ctx, *base)
	return &l
}
