package testkit

import (
	"net/http"
	"strings"
	"testing"
)

func TestMustPanic(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() {
		panic("boom")
	})
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	haystack := "alpha beta gamma"
	MustContain(t, haystack, "beta")
	MustNotContain(t, haystack, "delta")
}

func TestLines(t *testing.T) {
	t.Parallel()

	if got := Lines(""); got != nil {
		t.Fatalf("Lines(empty) = %v", got)
	}
	if got := Lines("a\nb\n"); len(got) != 2 || got[1] != "b" {
		t.Fatalf("Lines = %v", got)
	}
}

func TestBackend_RecordsHits(t *testing.T) {
	b := NewBackend(t, Reply(http.StatusOK, "application/json", `{"id":"x"}`))

	req, _ := http.NewRequest(http.MethodGet, b.URL+"/knownKey", nil)
	req.Header.Set("X-Hash-Value", "h1")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if b.Count() != 1 {
		t.Fatalf("count = %d", b.Count())
	}
	h := b.Hits()[0]
	if h.Method != http.MethodGet || h.Path != "/knownKey" || h.Header.Get("X-Hash-Value") != "h1" {
		t.Fatalf("hit = %+v", h)
	}
	if !strings.Contains(resp.Header.Get("Content-Type"), "json") {
		t.Fatalf("content type = %q", resp.Header.Get("Content-Type"))
	}
}
