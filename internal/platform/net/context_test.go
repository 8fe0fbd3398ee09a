package net_test

import (
	"context"
	"testing"

	pnet "knownkey/internal/platform/net"
)

func TestWithRequest_And_Getters(t *testing.T) {
	base := context.Background()

	t.Run("sets request id", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "req-123")
		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
	})

	t.Run("empty id returns same ctx", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "")
		if ctx != base {
			t.Fatalf("expected ctx to be unchanged when id empty")
		}
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
	})
}

func TestWithPrincipal(t *testing.T) {
	base := context.Background()

	ctx := pnet.WithPrincipal(base, "keystore-client")
	if got := pnet.Principal(ctx); got != "keystore-client" {
		t.Fatalf("Principal got %q", got)
	}
	if pnet.WithPrincipal(base, "") != base {
		t.Fatalf("empty principal should not change ctx")
	}
	if got := pnet.Principal(base); got != "" {
		t.Fatalf("Principal on bare ctx got %q", got)
	}
}
