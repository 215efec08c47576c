// Package gitea is a client for the Gitea REST API (v1).
//
// A [Client] wraps one server base URL and one access token. Every method
// validates its arguments, issues exactly one HTTP request under /api/v1,
// decodes the JSON answer into a typed value, and maps failures onto the
// codes of [github.com/waspothegreat/gitea-go/pkg/errors]:
//
//   - VALIDATION: an argument was rejected before any request was sent
//   - UNAUTHORIZED: the server answered 401
//   - NOT_FOUND: the server answered 404
//   - REMOTE: any other non-2xx answer
//   - TRANSPORT: no answer at all (DNS, refused connection, timeout)
//
// # Usage
//
//	client, err := gitea.NewClient(gitea.Config{
//	    BaseURL: "https://gitea.example.com",
//	    Token:   os.Getenv("GITEA_TOKEN"),
//	})
//	if err != nil {
//	    return err
//	}
//	repo, err := client.GetRepository(ctx, "gitea", "tea")
//
// Repository creation payloads are assembled with [RepoBuilder]:
//
//	cfg := gitea.NewRepoBuilder().
//	    SetName("service").
//	    SetDescription("internal service").
//	    Private().
//	    Build()
//	repo, err := client.MakeRepository(ctx, &cfg)
//
// The client holds no mutable state and is safe for concurrent use. It does
// not retry, cache, or paginate.
package gitea
