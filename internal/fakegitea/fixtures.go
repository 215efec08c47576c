package fakegitea

import "net/http"

// Fixture identities served by [Server.Seed].
const (
	FixtureUser    = "alice"
	FixtureRepo    = "demo"
	FixtureOrg     = "acme"
	FixtureHookID  = 7
	FixtureVersion = "1.21.4"
)

var (
	fixtureUser = map[string]any{
		"id": 1, "login": FixtureUser, "full_name": "Alice Example",
		"email": "alice@example.com", "followers_count": 2, "following_count": 1,
	}
	fixtureBob  = map[string]any{"id": 2, "login": "bob", "full_name": "Bob Example"}
	fixtureRepo = map[string]any{
		"id": 10, "name": FixtureRepo, "full_name": FixtureUser + "/" + FixtureRepo,
		"owner": fixtureUser, "description": "demo repository", "stars_count": 3,
		"forks_count": 1, "default_branch": "main",
		"html_url": "https://gitea.example.com/alice/demo",
	}
	fixtureFork = map[string]any{
		"id": 11, "name": FixtureRepo, "full_name": "bob/" + FixtureRepo,
		"owner": fixtureBob, "fork": true,
	}
	fixtureOrg = map[string]any{
		"id": 100, "username": FixtureOrg, "full_name": "Acme Inc",
		"description": "widgets", "visibility": "public",
	}
	fixtureTeam = map[string]any{"id": 5, "name": "Owners", "permission": "owner"}
	fixtureHook = map[string]any{
		"id": FixtureHookID, "type": "gitea", "active": true,
		"events": []string{"push"},
		"config": map[string]string{"url": "https://hooks.example.com/gitea", "content_type": "json"},
	}
	fixtureLabel = map[string]any{"id": 1, "name": "bug", "color": "ee0701"}
	fixtureEmail = map[string]any{"email": "alice@example.com", "verified": true, "primary": true}
	fixtureTopic = map[string]any{"id": 1, "topic_name": "golang", "repo_count": 4}
)

// Seed registers a consistent set of answers for every endpoint the client
// covers, around user [FixtureUser], repository FixtureUser/[FixtureRepo],
// organization [FixtureOrg] and hook [FixtureHookID].
func (s *Server) Seed() *Server {
	const api = "/api/v1"
	ok, created, none := http.StatusOK, http.StatusCreated, http.StatusNoContent

	s.Handle("GET", api+"/version", ok, map[string]string{"version": FixtureVersion})

	s.Handle("GET", api+"/user", ok, fixtureUser)
	s.Handle("GET", api+"/user/emails", ok, []any{fixtureEmail})
	s.Handle("POST", api+"/user/emails", created, []any{
		map[string]any{"email": "alt@example.com", "verified": false, "primary": false},
	})
	s.Handle("GET", api+"/user/followers", ok, []any{fixtureBob})
	s.Handle("GET", api+"/user/following", ok, []any{fixtureBob})
	s.Handle("PUT", api+"/user/following/{username}", none, nil)
	s.Handle("DELETE", api+"/user/following/{username}", none, nil)
	s.Handle("GET", api+"/user/orgs", ok, []any{fixtureOrg})
	s.Handle("GET", api+"/user/starred", ok, []any{fixtureRepo})
	s.Handle("PUT", api+"/user/starred/{owner}/{repo}", none, nil)
	s.Handle("POST", api+"/user/repos", created, fixtureRepo)

	s.Handle("GET", api+"/users/search", ok, map[string]any{"ok": true, "data": []any{fixtureUser, fixtureBob}})
	s.Handle("GET", api+"/users/"+FixtureUser, ok, fixtureUser)
	s.Handle("GET", api+"/users/"+FixtureUser+"/repos", ok, []any{fixtureRepo})

	repo := api + "/repos/" + FixtureUser + "/" + FixtureRepo
	s.Handle("GET", api+"/repos/search", ok, map[string]any{"ok": true, "data": []any{fixtureRepo}})
	s.Handle("GET", repo, ok, fixtureRepo)
	s.Handle("GET", repo+"/forks", ok, []any{fixtureFork})
	s.Handle("POST", repo+"/forks", http.StatusAccepted, fixtureFork)
	s.Handle("GET", repo+"/labels", ok, []any{fixtureLabel})
	s.Handle("POST", repo+"/hooks", created, fixtureHook)

	org := api + "/orgs/" + FixtureOrg
	s.Handle("POST", api+"/orgs", created, fixtureOrg)
	s.Handle("GET", org, ok, fixtureOrg)
	s.Handle("PATCH", org, ok, fixtureOrg)
	s.Handle("POST", org+"/repos", created, fixtureRepo)
	s.Handle("GET", org+"/members", ok, []any{fixtureUser, fixtureBob})
	s.Handle("GET", org+"/teams", ok, []any{fixtureTeam})
	s.Handle("POST", org+"/teams", created, map[string]any{"id": 6, "name": "devs", "permission": "write"})
	s.Handle("GET", org+"/hooks", ok, []any{fixtureHook})
	s.Handle("POST", org+"/hooks", created, fixtureHook)
	s.Handle("GET", org+"/hooks/{id}", ok, fixtureHook)
	s.Handle("DELETE", org+"/hooks/{id}", none, nil)

	s.Handle("GET", api+"/topics/search", ok, map[string]any{"topics": []any{fixtureTopic}})
	return s
}
