package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// spinnerOut receives spinner frames. Tests replace it.
var spinnerOut io.Writer = os.Stderr

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// spinner animates a one-line status on spinnerOut while a request is in
// flight. It stops on Stop or when its context ends, whichever comes first.
type spinner struct {
	message string
	ctx     context.Context
	cancel  context.CancelFunc

	stop     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
	stopped  bool
	mu       sync.Mutex
}

func newSpinner(ctx context.Context, message string) *spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &spinner{message: message, ctx: ctx, cancel: cancel, stop: make(chan struct{})}
}

// Start begins the animation in a background goroutine.
func (s *spinner) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.clear()

		tick := time.NewTicker(spinnerInterval)
		defer tick.Stop()
		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				return
			case <-s.stop:
				return
			case <-tick.C:
				s.mu.Lock()
				fmt.Fprintf(spinnerOut, "\r%s %s", styleIconSpinner.Render(spinnerFrames[i%len(spinnerFrames)]), styleDim.Render(s.message))
				s.mu.Unlock()
			}
		}
	}()
}

// Stop ends the animation and clears the line. Repeated calls are no-ops.
func (s *spinner) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()
		close(s.stop)
		s.wg.Wait()
		s.cancel()
	})
}

// Cancelled reports whether the parent context ended before Stop.
func (s *spinner) Cancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.stopped && s.ctx.Err() != nil
}

func (s *spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(spinnerOut, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}

// spin runs fn under a spinner showing message.
func spin[T any](ctx context.Context, message string, fn func(context.Context) (T, error)) (T, error) {
	s := newSpinner(ctx, message)
	s.Start()
	defer s.Stop()
	return fn(ctx)
}

// spinErr is spin for calls that return only an error.
func spinErr(ctx context.Context, message string, fn func(context.Context) error) error {
	_, err := spin(ctx, message, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
