package net_test

import (
	"context"
	"testing"

	pnet "seekdomains/internal/platform/net"
)

func TestWithRequest_And_Getters(t *testing.T) {
	base := context.Background()

	t.Run("sets both ids", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "req-123", "srch-abc")

		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
		if got := pnet.SearchID(ctx); got != "srch-abc" {
			t.Fatalf("SearchID got %q want %q", got, "srch-abc")
		}
	})

	t.Run("sets only request id", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "r-only", "")

		if got := pnet.RequestID(ctx); got != "r-only" {
			t.Fatalf("RequestID got %q want %q", got, "r-only")
		}
		if got := pnet.SearchID(ctx); got != "" {
			t.Fatalf("SearchID got %q want empty", got)
		}
	})

	t.Run("sets only search id", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "", "s-only")

		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
		if got := pnet.SearchID(ctx); got != "s-only" {
			t.Fatalf("SearchID got %q want %q", got, "s-only")
		}
	})

	t.Run("no ids returns same ctx and empty getters", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "", "")

		// should be the same reference since nothing was set
		if ctx != base {
			t.Fatalf("expected ctx to be unchanged when both ids empty")
		}
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
		if got := pnet.SearchID(ctx); got != "" {
			t.Fatalf("SearchID got %q want empty", got)
		}
	})
}
