package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	errs "github.com/waspothegreat/gitea-go/pkg/errors"
)

// Environment variables consulted when resolving the server and token.
const (
	envURL   = "GITEA_URL"
	envToken = "GITEA_TOKEN"
)

// Profile is the saved login, stored as TOML.
type Profile struct {
	URL     string    `toml:"url"`
	Token   string    `toml:"token"`
	User    string    `toml:"user,omitempty"`
	SavedAt time.Time `toml:"saved_at"`
}

// ProfileStore reads and writes the profile file.
type ProfileStore struct {
	path string
}

// newProfileStore opens the store at path, or at the default location
// ($XDG_CONFIG_HOME/gitea-go/config.toml) when path is empty.
func newProfileStore(path string) (*ProfileStore, error) {
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return nil, fmt.Errorf("get config dir: %w", err)
		}
		path = filepath.Join(dir, "config.toml")
	}
	return &ProfileStore{path: path}, nil
}

// Path returns the profile file location.
func (s *ProfileStore) Path() string { return s.path }

// Load returns the saved profile, or nil when none exists.
func (s *ProfileStore) Load() (*Profile, error) {
	var p Profile
	if _, err := toml.DecodeFile(s.path, &p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read profile %s: %w", s.path, err)
	}
	return &p, nil
}

// Save writes p with owner-only permissions.
func (s *ProfileStore) Save(p *Profile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

// Delete removes the profile. A missing file is not an error.
func (s *ProfileStore) Delete() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove profile: %w", err)
	}
	return nil
}

// configDir returns the config directory using XDG standard (~/.config/gitea-go/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadEnvFile loads KEY=VALUE pairs from path into the environment.
// Variables already set are kept. A missing file is ignored.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// settings is the server and token a command runs against.
type settings struct {
	URL    string
	Token  string
	Source string
}

// resolveSettings merges the saved profile, the environment and the flags,
// later sources overriding earlier ones field by field.
func (c *CLI) resolveSettings() (settings, error) {
	var s settings

	store, err := newProfileStore(c.ProfilePath)
	if err != nil {
		return s, err
	}
	p, err := store.Load()
	if err != nil {
		return s, err
	}
	if p != nil {
		s = settings{URL: p.URL, Token: p.Token, Source: "profile"}
	}

	override := func(url, token, source string) {
		if url = strings.TrimSpace(url); url != "" {
			s.URL, s.Source = url, source
		}
		if token = strings.TrimSpace(token); token != "" {
			s.Token, s.Source = token, source
		}
	}
	override(os.Getenv(envURL), os.Getenv(envToken), "environment")
	override(c.URL, c.Token, "flags")

	if s.URL == "" || s.Token == "" {
		return s, errs.New(errs.ErrCodeConfiguration, "not logged in (run '%s login' or set %s and %s)", appName, envURL, envToken)
	}
	return s, nil
}
