package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "knownkey/internal/platform/net/http"
	"knownkey/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestProtected(t *testing.T) {
	t.Parallel()

	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Get("/open", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	Protected(r, NewKeyPort("ops", "k"), func(pr Router) {
		Get(pr, "/who", func(r *http.Request) (any, error) {
			return Principal(r)
		})
	})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/open", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("open route status = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/who", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d, want 401", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "k")
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("authenticated status = %d, want 200", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), `"data":"ops"`)
}

func TestPrincipal_Missing(t *testing.T) {
	t.Parallel()

	if _, err := Principal(httptest.NewRequest(http.MethodGet, "/", nil)); err == nil {
		t.Fatal("expected error without principal")
	}
}
