// Package buildinfo holds the version stamped into gitea-go at build time:
//
//	go build -ldflags "-X github.com/waspothegreat/gitea-go/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/waspothegreat/gitea-go/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/waspothegreat/gitea-go/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}

// UserAgent returns the User-Agent header the API client sends by default.
func UserAgent() string {
	return "gitea-go/" + Version
}
