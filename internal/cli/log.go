// Package cli implements the gitea-go command-line interface.
//
// The commands are thin wrappers over the pkg/gitea client: each resolves the
// server and token (saved profile, then GITEA_URL/GITEA_TOKEN, then the
// --url/--token flags), performs one API call under a spinner, and prints the
// result with lipgloss styles.
//
// # Commands
//
//   - login, logout, whoami, server-version: session management
//   - user, repo, org, topic: API resources
//   - hook listen: receive webhook deliveries
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which includes
// one line per HTTP request. Loggers are passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w with short timestamps
// ("15:04:05.00") and the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
