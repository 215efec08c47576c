package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func quietOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, spin bytes.Buffer
	oldOut, oldSpin := stdout, spinnerOut
	stdout, spinnerOut = &out, &spin
	t.Cleanup(func() { stdout, spinnerOut = oldOut, oldSpin })
	return &out, &spin
}

func TestSpinnerBasic(t *testing.T) {
	quietOutput(t)

	s := newSpinner(context.Background(), "Fetching repository...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if s.Cancelled() {
		t.Error("Stop() should not count as cancellation")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	quietOutput(t)
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinner(ctx, "Fetching repository...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	quietOutput(t)

	s := newSpinner(context.Background(), "Deleting hook...")
	s.Start()
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerClearsLine(t *testing.T) {
	_, spinOut := quietOutput(t)

	s := newSpinner(context.Background(), "Creating...")
	s.Start()
	time.Sleep(2 * spinnerInterval)
	s.Stop()

	out := spinOut.String()
	if !strings.Contains(out, "Creating...") {
		t.Errorf("spinner output %q should show the message", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner output %q should end by returning the cursor", out)
	}
}

func TestSpinReturnsResult(t *testing.T) {
	quietOutput(t)

	got, err := spin(context.Background(), "Working...", func(context.Context) (int, error) {
		return 42, nil
	})
	if err != nil || got != 42 {
		t.Errorf("spin() = %d, %v; want 42, nil", got, err)
	}

	want := errors.New("boom")
	if err := spinErr(context.Background(), "Working...", func(context.Context) error { return want }); err != want {
		t.Errorf("spinErr() = %v, want %v", err, want)
	}
}
