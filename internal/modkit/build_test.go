package modkit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"knownkey/internal/modkit/httpkit"
	"knownkey/internal/modkit/repokit"
	phttp "knownkey/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

// fakeTx only needs to be a TxRunner; the query surface is never called
type fakeTx struct{ repokit.Queryer }

func (fakeTx) Tx(context.Context, func(repokit.Queryer) error) error { return nil }

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults: %+v", b)
	}
}

func TestBuild_LaterOptionsWin(t *testing.T) {
	t.Parallel()

	b := Build(WithName("a"), WithPrefix("/a"), WithName("b"), WithPorts(7))
	if b.Name != "b" || b.Prefix != "/a" {
		t.Fatalf("got name=%q prefix=%q", b.Name, b.Prefix)
	}
	if b.Ports != 7 {
		t.Fatalf("Ports = %v, want 7", b.Ports)
	}
}

func TestBuild_MiddlewareCopy(t *testing.T) {
	t.Parallel()

	mw := func(next http.Handler) http.Handler { return next }
	src := []func(http.Handler) http.Handler{mw}
	b := Build(WithMiddlewares(src...))
	src[0] = nil
	if b.Mw[0] == nil {
		t.Fatal("Build should copy the middleware slice")
	}
}

func header(k, v string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(k, v)
			next.ServeHTTP(w, r)
		})
	}
}

func TestBuilt_Mount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		prefix string
		path   string
	}{
		{"prefixed", "/keys", "/keys/ping"},
		{"root", "/", "/ping"},
		{"empty", "", "/ping"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mux := chi.NewRouter()
			b := Build(
				WithPrefix(tc.prefix),
				WithMiddlewares(header("X-Mod", "1"), header("X-Mod-2", "1")),
			)
			b.Mount(phttp.AdaptChi(mux), func(r httpkit.Router) {
				r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
			})

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if rr.Code != http.StatusTeapot {
				t.Fatalf("status = %d, want 418", rr.Code)
			}
			if rr.Header().Get("X-Mod") != "1" || rr.Header().Get("X-Mod-2") != "1" {
				t.Fatal("module middleware did not run")
			}
		})
	}
}
