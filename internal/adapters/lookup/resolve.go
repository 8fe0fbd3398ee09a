package lookup

import (
	"net"
	"net/url"
	"strings"

	perr "knownkey/internal/platform/errors"
)

// Resolve turns target into an absolute URL
// a target without scheme and host is resolved against base, the server's own address;
// the inbound request never contributes, so callers cannot steer where credentials go
func Resolve(target string, base *url.URL) (string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "lookup url %q", target)
	}
	if u.IsAbs() && u.Host != "" {
		return u.String(), nil
	}
	if base == nil || base.Host == "" {
		return "", perr.InvalidArgf("lookup url %q is relative and no self url is configured", target)
	}
	return base.ResolveReference(u).String(), nil
}

// SelfURL builds the base for relative lookups
// raw is either a full URL (TRANSLATOR_SELF_URL) or a listen address like ":4000";
// an unspecified listen host becomes loopback
func SelfURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "self url %q", raw)
		}
		if u.Host == "" {
			return nil, perr.InvalidArgf("self url %q has no host", raw)
		}
		return &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}, nil
	}

	host, port, err := net.SplitHostPort(raw)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "listen address %q", raw)
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return &url.URL{Scheme: "http", Host: net.JoinHostPort(host, port), Path: "/"}, nil
}
