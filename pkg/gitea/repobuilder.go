package gitea

// RepositoryConfig is the payload for creating a repository.
type RepositoryConfig struct {
	AutoInit    bool   `json:"auto_init" toml:"auto_init"`
	Description string `json:"description" toml:"description"`
	Gitignores  string `json:"gitignores" toml:"gitignores"`
	License     string `json:"license" toml:"license"`
	Name        string `json:"name" toml:"name"`
	Private     bool   `json:"private" toml:"private"`
	Readme      string `json:"readme" toml:"readme"`
}

// RepoBuilder accumulates a [RepositoryConfig] through chained setters.
// Setters do not validate; [Client.MakeRepository] does.
type RepoBuilder struct {
	cfg RepositoryConfig
}

// NewRepoBuilder returns a builder holding the zero configuration.
func NewRepoBuilder() *RepoBuilder {
	return &RepoBuilder{}
}

// AutoInit makes the server create an initial commit.
func (b *RepoBuilder) AutoInit() *RepoBuilder {
	b.cfg.AutoInit = true
	return b
}

func (b *RepoBuilder) SetDescription(desc string) *RepoBuilder {
	b.cfg.Description = desc
	return b
}

// SetGitignores sets the comma-separated .gitignore template names applied
// on auto-init.
func (b *RepoBuilder) SetGitignores(gitignores string) *RepoBuilder {
	b.cfg.Gitignores = gitignores
	return b
}

func (b *RepoBuilder) SetLicense(license string) *RepoBuilder {
	b.cfg.License = license
	return b
}

func (b *RepoBuilder) SetName(name string) *RepoBuilder {
	b.cfg.Name = name
	return b
}

// Private marks the repository private.
func (b *RepoBuilder) Private() *RepoBuilder {
	b.cfg.Private = true
	return b
}

func (b *RepoBuilder) SetReadme(readme string) *RepoBuilder {
	b.cfg.Readme = readme
	return b
}

// Build returns a copy of the accumulated configuration. Later setter calls
// do not affect copies already returned.
func (b *RepoBuilder) Build() RepositoryConfig {
	return b.cfg
}
