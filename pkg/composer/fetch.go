package composer

import (
	"context"
	"errors"

	errs "github.com/thejimbirch/dependgen/pkg/errors"
	"github.com/thejimbirch/dependgen/pkg/forge"
)

// FileGetter retrieves a file from a repository's raw-content endpoint.
// *forge.Client satisfies it.
type FileGetter interface {
	FetchFile(ctx context.Context, repo forge.Repo, path string) (string, error)
}

// Fetcher retrieves and parses manifests for resolved repository references.
type Fetcher struct {
	client   FileGetter
	filename string
}

// NewFetcher creates a Fetcher that fetches filename (typically
// "composer.json") through client.
func NewFetcher(client FileGetter, filename string) *Fetcher {
	return &Fetcher{client: client, filename: filename}
}

// FetchManifest fetches and parses the manifest at the repo's branch.
// A missing file yields MANIFEST_NOT_FOUND; the caller decides whether that
// is fatal (root) or a recoverable skip (dependency). When the manifest
// omits its package name, the repo's owner/name is used instead.
func (f *Fetcher) FetchManifest(ctx context.Context, repo forge.Repo) (*Manifest, error) {
	body, err := f.client.FetchFile(ctx, repo, f.filename)
	if err != nil {
		if errors.Is(err, forge.ErrNotFound) {
			return nil, errs.Wrap(errs.ErrCodeManifestNotFound, err,
				"no %s in %s on branch %s", f.filename, repo.URL(), repo.Branch)
		}
		return nil, err
	}

	m, err := Parse([]byte(body))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse %s from %s", f.filename, repo.URL())
	}
	if m.Name == "" {
		m.Name = repo.FullName()
	}
	return m, nil
}
