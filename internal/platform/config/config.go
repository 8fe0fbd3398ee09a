// Package config reads settings from the environment
//
// a Conf is a prefix; modules take cfg.Prefix("TRANSLATOR_") and read their own keys.
// May* getters never fail: a blank value is the default and an unparseable one is
// logged and replaced by the default
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"knownkey/internal/platform/logger"
)

// Conf is a namespaced view over environment variables
type Conf struct{ prefix string }

// New is the unprefixed view
func New() Conf { return Conf{} }

// Prefix nests p under c's prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

// Lookup returns the untrimmed value and whether the variable exists
// an empty value still counts as set
func (c Conf) Lookup(key string) (string, bool) { return os.LookupEnv(c.key(key)) }

func (c Conf) raw(key string) string { return strings.TrimSpace(os.Getenv(c.key(key))) }

// MayString returns the trimmed value or def when blank
func (c Conf) MayString(key, def string) string {
	if v := c.raw(key); v != "" {
		return v
	}
	return def
}

// MayInt reads a base 10 int
func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

// MayInt64 reads a base 10 int64, for byte sizes
func (c Conf) MayInt64(key string, def int64) int64 {
	return may(c, key, def, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
}

// MayBool reads anything strconv.ParseBool accepts
func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

// MayDuration reads a time.ParseDuration string such as "5s"
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

// MayCSV splits a comma separated value, dropping blank items; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for item := range strings.SplitSeq(c.raw(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s := c.raw(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).
			Msg("unparseable setting, using default")
		return def
	}
	return v
}
