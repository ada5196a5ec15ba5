package repokit

import (
	"context"
	"strings"
	"testing"
	"time"
)

// assertPanicContains runs fn and asserts it panics with a message containing wantSub
func assertPanicContains(t *testing.T, name, wantSub string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic, got none", name)
			return
		}
		var msg string
		switch x := r.(type) {
		case string:
			msg = x
		case error:
			msg = x.Error()
		}
		if !strings.Contains(msg, wantSub) {
			t.Fatalf("%s: panic message mismatch, got %q want contains %q", name, msg, wantSub)
		}
	}()
	fn()
}

// fakeGuard lets us force Guard() to succeed or fail and records the ctx
type fakeGuard struct {
	err     error
	lastCtx context.Context
}

func (f *fakeGuard) Guard(ctx context.Context) error {
	f.lastCtx = ctx
	return f.err
}

func TestMustGuard_PanicsOnError(t *testing.T) {
	t.Parallel()
	assertPanicContains(t, "MustGuard(error)", "dependency guard failed: boom", func() {
		MustGuard(context.Background(), &fakeGuard{err: errBoom("boom")})
	})
}

func TestMustGuard_NoPanicOnNilError(t *testing.T) {
	t.Parallel()
	MustGuard(context.Background(), &fakeGuard{})
}

func TestMustGuard_AddsDefaultTimeoutWhenNone(t *testing.T) {
	t.Parallel()

	fg := &fakeGuard{}
	start := time.Now()
	MustGuard(context.Background(), fg)

	dl, ok := fg.lastCtx.Deadline()
	if !ok {
		t.Fatalf("expected a deadline to be set by MustGuard")
	}
	if got := dl.Sub(start); got < 4*time.Second || got > 6*time.Second {
		t.Fatalf("default deadline not ~5s: got %v", got)
	}
}

func TestMustGuard_HonorsExistingDeadline(t *testing.T) {
	t.Parallel()

	fg := &fakeGuard{}
	parent, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()
	MustGuard(parent, fg)

	want, _ := parent.Deadline()
	got, _ := fg.lastCtx.Deadline()
	if !got.Equal(want) {
		t.Fatalf("child deadline should match parent: got %v want %v", got, want)
	}
}

// minimal error type to avoid importing errors
type errBoom string

func (e errBoom) Error() string { return string(e) }
