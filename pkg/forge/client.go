package forge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	errs "github.com/thejimbirch/dependgen/pkg/errors"
)

// ErrNotFound is returned when a requested resource does not exist (404).
var ErrNotFound = errors.New("resource not found")

// Client performs the HTTP calls against forge APIs and raw-content
// endpoints. Calls are synchronous and never retried; a failed call is
// final.
type Client struct {
	http *http.Client

	// apiBase overrides the provider API base URL, keyed by provider.
	// Used by tests; production clients leave it nil.
	apiBase map[Provider]string
}

// NewClient creates a Client whose requests time out after the given
// duration.
func NewClient(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// GetJSON performs an HTTP GET and JSON-decodes the response body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.doRequest(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}

// GetText performs an HTTP GET and returns the response body as a string.
// Used for raw-content endpoints.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	body, err := c.doRequest(ctx, url)
	if err != nil {
		return "", err
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	return string(data), err
}

func (c *Client) doRequest(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeNetwork, err, "GET %s", url)
	}

	if err := checkStatus(resp.StatusCode, url); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int, url string) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, url)
	default:
		return errs.New(errs.ErrCodeNetwork, "GET %s: status %d", url, code)
	}
}

// DefaultBranch queries the provider API for the repository's configured
// default branch. One network call per lookup. Fails with BRANCH_RESOLUTION
// when the lookup fails or the provider reports no default.
func (c *Client) DefaultBranch(ctx context.Context, repo Repo) (string, error) {
	url := repo.apiProjectURL()
	if base, ok := c.apiBase[repo.Provider]; ok {
		url = base + url[len(providers[repo.Provider].apiBase):]
	}

	var data struct {
		DefaultBranch string `json:"default_branch"`
	}
	if err := c.GetJSON(ctx, url, &data); err != nil {
		return "", errs.Wrap(errs.ErrCodeBranchResolution, err, "default branch lookup for %s", repo.URL())
	}
	if data.DefaultBranch == "" {
		return "", errs.New(errs.ErrCodeBranchResolution, "provider reports no default branch for %s", repo.URL())
	}
	return data.DefaultBranch, nil
}

// FetchFile retrieves a file from the repository at its resolved branch via
// the provider's raw-content endpoint.
func (c *Client) FetchFile(ctx context.Context, repo Repo, path string) (string, error) {
	return c.GetText(ctx, repo.RawFileURL(path))
}
