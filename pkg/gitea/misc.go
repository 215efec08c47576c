package gitea

import (
	"context"
	"net/http"
	"net/url"

	errs "github.com/waspothegreat/gitea-go/pkg/errors"
)

// GetVersion returns the server version string. It is the one call that
// does not send the token.
func (c *Client) GetVersion(ctx context.Context) (string, error) {
	var v ServerVersion
	if err := c.do(ctx, request{method: http.MethodGet, path: "/version", anon: true}, &v); err != nil {
		return "", err
	}
	return v.Version, nil
}

// SearchTopic searches repository topics by keyword.
func (c *Client) SearchTopic(ctx context.Context, topic string) ([]Topic, error) {
	if err := errs.RequireString("topic", topic); err != nil {
		return nil, err
	}
	var res topicResults
	req := request{
		method: http.MethodGet,
		path:   "/topics/search",
		query:  url.Values{"q": {topic}},
	}
	if err := c.do(ctx, req, &res); err != nil {
		return nil, err
	}
	return res.Topics, nil
}
