package testkit

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

var (
	backoff  = func(context.Context, time.Duration) error { return nil }
	maxConns = int32(4)
)

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &backoff, func(context.Context, time.Duration) error { return context.Canceled })
		Swap(t, &maxConns, 16)
		if backoff(context.Background(), time.Second) == nil || maxConns != 16 {
			t.Fatal("swap did not take effect")
		}
	})
	if backoff(context.Background(), time.Second) != nil || maxConns != 4 {
		t.Fatalf("not restored, maxConns=%d", maxConns)
	}
}

func TestSerial_NoOverlap(t *testing.T) {
	var inside, overlaps atomic.Int32
	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"a", "b", "c"} {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				Serial(t)
				if inside.Add(1) > 1 {
					overlaps.Add(1)
				}
				time.Sleep(20 * time.Millisecond)
				inside.Add(-1)
			})
		}
	})
	if n := overlaps.Load(); n != 0 {
		t.Fatalf("%d subtests ran while another held the lock", n)
	}
}
