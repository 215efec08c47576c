package buildinfo

import (
	"strings"
	"testing"
)

func TestUserAgentCarriesVersion(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	t.Cleanup(func() { Version = old })

	if got := UserAgent(); got != "gitea-go/v1.2.3" {
		t.Errorf("UserAgent() = %q", got)
	}
	if got := Template(); !strings.Contains(got, "v1.2.3") || !strings.Contains(got, "{{.Name}}") {
		t.Errorf("Template() = %q", got)
	}
}
