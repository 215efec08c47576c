package gitea

import "time"

// ServerVersion is the answer of GET /version.
type ServerVersion struct {
	Version string `json:"version"`
}

// User is a Gitea account.
type User struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"login"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url"`
	Language  string    `json:"language,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	Location  string    `json:"location,omitempty"`
	Website   string    `json:"website,omitempty"`
	Followers int       `json:"followers_count"`
	Following int       `json:"following_count"`
	Stars     int       `json:"starred_repos_count"`
	Created   time.Time `json:"created,omitempty"`
}

// Email is an address attached to the authenticated account.
type Email struct {
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
	Primary  bool   `json:"primary"`
}

// Permission describes the caller's access to a repository.
type Permission struct {
	Admin bool `json:"admin"`
	Push  bool `json:"push"`
	Pull  bool `json:"pull"`
}

// Repository is a Gitea repository.
type Repository struct {
	ID            int64       `json:"id"`
	Owner         *User       `json:"owner"`
	Name          string      `json:"name"`
	FullName      string      `json:"full_name"`
	Description   string      `json:"description"`
	Empty         bool        `json:"empty"`
	Private       bool        `json:"private"`
	Fork          bool        `json:"fork"`
	Parent        *Repository `json:"parent,omitempty"`
	Mirror        bool        `json:"mirror"`
	Archived      bool        `json:"archived"`
	Size          int         `json:"size"`
	HTMLURL       string      `json:"html_url"`
	SSHURL        string      `json:"ssh_url"`
	CloneURL      string      `json:"clone_url"`
	Website       string      `json:"website"`
	Stars         int         `json:"stars_count"`
	Forks         int         `json:"forks_count"`
	Watchers      int         `json:"watchers_count"`
	OpenIssues    int         `json:"open_issues_count"`
	DefaultBranch string      `json:"default_branch"`
	Created       time.Time   `json:"created_at"`
	Updated       time.Time   `json:"updated_at"`
	Permissions   *Permission `json:"permissions,omitempty"`
}

// Organization is a group account that owns repositories and teams.
type Organization struct {
	ID          int64  `json:"id"`
	UserName    string `json:"username"`
	FullName    string `json:"full_name"`
	AvatarURL   string `json:"avatar_url"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Visibility  string `json:"visibility"`
}

// Team is a permission group inside an organization.
type Team struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Organization *Organization `json:"organization,omitempty"`
	Permission   string        `json:"permission"`
	Units        []string      `json:"units,omitempty"`
}

// Label is an issue label defined on a repository.
type Label struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Hook is a webhook registered on a repository or organization.
type Hook struct {
	ID      int64             `json:"id"`
	Type    string            `json:"type"`
	Config  map[string]string `json:"config"`
	Events  []string          `json:"events"`
	Active  bool              `json:"active"`
	Created time.Time         `json:"created_at"`
	Updated time.Time         `json:"updated_at"`
}

// Topic is a repository topic as returned by topic search.
type Topic struct {
	ID        int64     `json:"id"`
	Name      string    `json:"topic_name"`
	RepoCount int       `json:"repo_count"`
	Created   time.Time `json:"created"`
	Updated   time.Time `json:"updated"`
}

// CreateOrgOption is the body of POST /orgs.
type CreateOrgOption struct {
	UserName    string `json:"username"`
	FullName    string `json:"full_name,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Location    string `json:"location,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

// EditOrgOption is the body of PATCH /orgs/{org}. Empty fields are left
// unchanged by the server.
type EditOrgOption struct {
	FullName    string `json:"full_name,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Location    string `json:"location,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

// CreateTeamOption is the body of POST /orgs/{org}/teams.
type CreateTeamOption struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Permission  TeamPermission `json:"permission"`
	Units       []string       `json:"units,omitempty"`
}

// CreateHookOption is the body of POST .../hooks.
type CreateHookOption struct {
	Type   HookType          `json:"type"`
	Config map[string]string `json:"config"`
	Events []HookEvent       `json:"events"`
	Active bool              `json:"active"`
}

// CreateForkOption is the body of POST /repos/{owner}/{repo}/forks.
type CreateForkOption struct {
	Organization *string `json:"organization,omitempty"`
}

// CreateEmailOption is the body of POST /user/emails.
type CreateEmailOption struct {
	Emails []string `json:"emails"`
}

// searchResults wraps the "data" array returned by search endpoints.
type searchResults[T any] struct {
	OK   bool `json:"ok"`
	Data []T  `json:"data"`
}

type topicResults struct {
	Topics []Topic `json:"topics"`
}
