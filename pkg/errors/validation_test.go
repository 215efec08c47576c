package errors

import (
	"strings"
	"testing"
)

func TestRequireString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "gitea", false},
		{"valid with dash", "my-org", false},
		{"valid with dot", "my.repo", false},
		{"valid dotfile name", ".profile", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"newline", "foo\nbar", true},
		{"null byte", "foo\x00bar", true},
		{"current dir", ".", true},
		{"parent dir", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireString("owner", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("RequireString(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeValidation) {
				t.Errorf("RequireString(%q) code = %v, want VALIDATION", tt.input, GetCode(err))
			}
		})
	}
}

func TestRequireStringNamesParameter(t *testing.T) {
	err := RequireString("username", "")
	if err == nil || !strings.Contains(err.Error(), "username") {
		t.Errorf("error %v should name the parameter", err)
	}
}

func TestRequireStrings(t *testing.T) {
	if err := RequireStrings("owner", "o", "repo", "r"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := RequireStrings("owner", "o", "repo", "")
	if err == nil || !strings.Contains(UserMessage(err), "repo") {
		t.Errorf("error %v should name repo", err)
	}

	err = RequireStrings("owner", "", "repo", "")
	if err == nil || !strings.Contains(UserMessage(err), "owner") {
		t.Errorf("first failure should be reported, got %v", err)
	}
}

func TestRequireList(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantErr bool
	}{
		{"single", []string{"a@example.com"}, false},
		{"many", []string{"a@example.com", "b@example.com"}, false},

		{"nil", nil, true},
		{"empty", []string{}, true},
		{"blank entry", []string{"a@example.com", " "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireList("emails", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("RequireList(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestRequireID(t *testing.T) {
	if err := RequireID("id", 7); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, id := range []int64{0, -1} {
		if err := RequireID("id", id); !Is(err, ErrCodeValidation) {
			t.Errorf("RequireID(%d) = %v, want VALIDATION", id, err)
		}
	}
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid https", "https://gitea.example.com", false},
		{"valid http with port", "http://localhost:3000", false},
		{"valid with subpath", "https://example.com/gitea", false},

		{"empty", "", true},
		{"no scheme", "gitea.example.com", true},
		{"ftp scheme", "ftp://example.com", true},
		{"no host", "https://", true},
		{"unparseable", "http://[::1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaseURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBaseURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeConfiguration) {
				t.Errorf("ValidateBaseURL(%q) code = %v, want CONFIGURATION", tt.input, GetCode(err))
			}
		})
	}
}
