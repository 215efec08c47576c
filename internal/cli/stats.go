package cli

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/waspothegreat/gitea-go/pkg/observability"
)

// requestStats counts API traffic for the debug summary printed after each
// command.
type requestStats struct {
	mu       sync.Mutex
	requests int
	failures int
	statuses map[int]int
	elapsed  time.Duration
}

func newRequestStats() *requestStats {
	return &requestStats{statuses: make(map[int]int)}
}

func (s *requestStats) OnRequest(context.Context, string, string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests++
}

func (s *requestStats) OnResponse(_ context.Context, _, _, _ string, status int, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[status]++
	s.elapsed += d
}

func (s *requestStats) OnError(context.Context, string, string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures++
}

func (s *requestStats) snapshot() (requests, failures int, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests, s.failures, s.elapsed
}

// log writes the summary at debug level. Nothing is logged when no request
// was made.
func (s *requestStats) log(l *log.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.requests == 0 {
		return
	}
	l.Debug("api summary", "requests", s.requests, "transport_errors", s.failures,
		"statuses", s.statuses, "time", s.elapsed.Round(time.Millisecond))
}

var _ observability.HTTPHooks = (*requestStats)(nil)
