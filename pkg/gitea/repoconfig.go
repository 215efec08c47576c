package gitea

import (
	"fmt"
	"strings"

	errs "github.com/waspothegreat/gitea-go/pkg/errors"
)

// RepositoryConfigKeys are the fields a repository configuration must carry.
var RepositoryConfigKeys = []string{
	"auto_init", "description", "gitignores", "license", "name", "private", "readme",
}

func (cfg *RepositoryConfig) validate() error {
	if cfg == nil {
		return errs.New(errs.ErrCodeValidation, "repository config must not be nil")
	}
	return errs.RequireString("name", cfg.Name)
}

// RepositoryConfigFromMap converts untyped input, such as a decoded TOML or
// JSON document, into a RepositoryConfig. Every key in
// [RepositoryConfigKeys] must be present; all missing keys are reported
// together. Unknown keys are rejected.
func RepositoryConfigFromMap(m map[string]any) (*RepositoryConfig, error) {
	if m == nil {
		return nil, errs.New(errs.ErrCodeValidation, "repository config must not be nil")
	}

	var missing []string
	for _, k := range RepositoryConfigKeys {
		if _, ok := m[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, errs.New(errs.ErrCodeValidation, "repository config is missing fields: %s", strings.Join(missing, ", "))
	}
	for k := range m {
		if !isRepositoryConfigKey(k) {
			return nil, errs.New(errs.ErrCodeValidation, "repository config has unknown field %q", k)
		}
	}

	var cfg RepositoryConfig
	var err error
	if cfg.AutoInit, err = boolField(m, "auto_init"); err != nil {
		return nil, err
	}
	if cfg.Private, err = boolField(m, "private"); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"description", &cfg.Description},
		{"gitignores", &cfg.Gitignores},
		{"license", &cfg.License},
		{"name", &cfg.Name},
		{"readme", &cfg.Readme},
	} {
		if *f.dst, err = stringField(m, f.key); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func isRepositoryConfigKey(k string) bool {
	for _, known := range RepositoryConfigKeys {
		if k == known {
			return true
		}
	}
	return false
}

func boolField(m map[string]any, key string) (bool, error) {
	v, ok := m[key].(bool)
	if !ok {
		return false, errs.New(errs.ErrCodeValidation, "%s must be a boolean, got %s", key, typeName(m[key]))
	}
	return v, nil
}

func stringField(m map[string]any, key string) (string, error) {
	v, ok := m[key].(string)
	if !ok {
		return "", errs.New(errs.ErrCodeValidation, "%s must be a string, got %s", key, typeName(m[key]))
	}
	return v, nil
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
