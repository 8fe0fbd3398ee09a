package httpkit

import (
	"net/http"

	phttp "knownkey/internal/platform/net/http"
	"knownkey/internal/platform/net/middleware"
)

// CommonStack returns the baseline router middleware for the api server
// request scoped pieces come from middleware.Defaults, then CORS and the access log
// CORS is only mounted for configured origins, and preflights still reach the routes
// so the translator answers every method itself
func CommonStack(opt StackOptions) []func(http.Handler) http.Handler {
	mws := middleware.Defaults(opt.Timeout, opt.Log)
	if len(opt.Origins) > 0 {
		mws = append(mws, middleware.CORS(middleware.CORSOptions{
			AllowedOrigins:     opt.Origins,
			OptionsPassthrough: true,
		}))
	}
	if !opt.NoAccessLog {
		mws = append(mws, middleware.AccessLogZerolog(middleware.AccessLogOptions{Skip: opt.QuietPaths}))
	}
	return mws
}

// Auth wires the auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}
