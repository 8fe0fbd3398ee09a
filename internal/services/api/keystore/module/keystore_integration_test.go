//go:build integration_pg
// +build integration_pg

package module

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"knownkey/internal/modkit"
	"knownkey/internal/modkit/swaggerkit"
	"knownkey/internal/platform/config"
	phttp "knownkey/internal/platform/net/http"
	"knownkey/internal/platform/store"
	translatormod "knownkey/internal/services/api/translator/module"

	"github.com/go-chi/chi/v5"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

func do(t *testing.T, method, url, hash, auth, body string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if hash != "" {
		req.Header.Set("X-Hash-Value", hash)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", auth)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, strings.TrimSpace(string(raw))
}

func TestKeystoreAndTranslator_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()
	t.Cleanup(swaggerkit.Reset)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "knownkey-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 4},
	})
	if err != nil {
		t.Fatalf("store open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	deps := modkit.Deps{Cfg: config.New(), PG: st.PG}
	ks := New(deps, Options{Auth: "Basic xyz", StatementTimeout: 2 * time.Second})
	if err := ks.(*Module).EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	// idempotent
	if err := ks.(*Module).EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema twice: %v", err)
	}

	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	ks.MountRoutes(r)
	translatormod.New(deps).MountRoutes(r)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	status, body := do(t, http.MethodGet, srv.URL+"/lookup", "abc123", "Basic xyz", "")
	if status != 200 || body != `{"id":null}` {
		t.Fatalf("unknown key via translator = %d %s", status, body)
	}

	status, body = do(t, http.MethodPut, srv.URL+"/knownKey", "", "Basic xyz",
		`{"hash":"abc123","id":"86cdca52-a34e-4899-8c12-fd370b9b5c56"}`)
	if status != 200 || body != `{"id":"86cdca52-a34e-4899-8c12-fd370b9b5c56"}` {
		t.Fatalf("put = %d %s", status, body)
	}

	status, body = do(t, http.MethodGet, srv.URL+"/lookup", "abc123", "Basic xyz", "")
	if status != 200 || body != `{"id":"86cdca52-a34e-4899-8c12-fd370b9b5c56"}` {
		t.Fatalf("known key via translator = %d %s", status, body)
	}

	status, body = do(t, http.MethodGet, srv.URL+"/lookup", "abc123", "Basic wrong", "")
	if status != 200 || body != `{"id":null}` {
		t.Fatalf("bad credential via translator = %d %s", status, body)
	}

	status, _ = do(t, http.MethodDelete, srv.URL+"/knownKey", "abc123", "Basic xyz", "")
	if status != http.StatusNoContent {
		t.Fatalf("delete = %d", status)
	}
	status, _ = do(t, http.MethodGet, srv.URL+"/knownKey", "abc123", "Basic xyz", "")
	if status != http.StatusNotFound {
		t.Fatalf("get after delete = %d", status)
	}
}
