// Package forge classifies repository URLs into the supported hosting
// providers and builds the provider-specific URLs the rest of the tool needs:
// raw-content file URLs and default-branch API lookups.
//
// Three forges are supported: GitHub, GitLab, and Drupal GitLab
// (git.drupalcode.org, which speaks the GitLab API).
package forge

import (
	"net/url"
	"strings"

	errs "github.com/thejimbirch/dependgen/pkg/errors"
)

// Provider identifies a supported repository host.
type Provider int

const (
	// GitHub is github.com.
	GitHub Provider = iota
	// GitLab is gitlab.com.
	GitLab
	// DrupalGitLab is git.drupalcode.org, the Drupal project forge.
	DrupalGitLab
)

// providerInfo is the capability table for a provider: where its web UI,
// API, and raw file content live.
type providerInfo struct {
	name    string
	host    string
	apiBase string
}

var providers = map[Provider]providerInfo{
	GitHub:       {name: "github", host: "github.com", apiBase: "https://api.github.com"},
	GitLab:       {name: "gitlab", host: "gitlab.com", apiBase: "https://gitlab.com/api/v4"},
	DrupalGitLab: {name: "drupalcode", host: "git.drupalcode.org", apiBase: "https://git.drupalcode.org/api/v4"},
}

// String returns the provider's configuration name.
func (p Provider) String() string {
	if info, ok := providers[p]; ok {
		return info.name
	}
	return "unknown"
}

// Host returns the provider's web host.
func (p Provider) Host() string { return providers[p].host }

// ProviderByName resolves a configuration name ("github", "gitlab",
// "drupalcode") to a Provider.
func ProviderByName(name string) (Provider, bool) {
	for p, info := range providers {
		if info.name == name {
			return p, true
		}
	}
	return 0, false
}

// Repo is a resolved repository reference. It is immutable once created;
// WithBranch returns a copy rather than mutating.
type Repo struct {
	Provider Provider
	Owner    string // namespace; may contain slashes on GitLab-style forges
	Name     string
	Branch   string // empty until resolved
}

// FullName returns the owner/name path of the repository.
func (r Repo) FullName() string { return r.Owner + "/" + r.Name }

// URL returns the canonical web URL of the repository.
func (r Repo) URL() string {
	return "https://" + r.Provider.Host() + "/" + r.FullName()
}

// WithBranch returns a copy of the reference pinned to the given branch.
func (r Repo) WithBranch(branch string) Repo {
	r.Branch = branch
	return r
}

// RawFileURL returns the raw-content URL for a file at the repo's branch.
// GitHub serves raw files from raw.githubusercontent.com; GitLab-style
// forges use the /-/raw/ path on the web host.
func (r Repo) RawFileURL(path string) string {
	switch r.Provider {
	case GitHub:
		return "https://raw.githubusercontent.com/" + r.FullName() + "/" + r.Branch + "/" + path
	default:
		return r.URL() + "/-/raw/" + r.Branch + "/" + path
	}
}

// apiProjectURL returns the provider API endpoint describing the repository,
// which carries its default branch.
func (r Repo) apiProjectURL() string {
	base := providers[r.Provider].apiBase
	switch r.Provider {
	case GitHub:
		return base + "/repos/" + r.FullName()
	default:
		// GitLab wants the full project path as a single URL-encoded ID.
		return base + "/projects/" + url.PathEscape(r.FullName())
	}
}

// Parse classifies a repository web URL into a Repo reference.
// It fails with UNSUPPORTED_PROVIDER when the host matches none of the
// supported forges, and INVALID_INPUT when the path has no owner/name.
func Parse(rawURL string) (Repo, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Repo{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid repository URL %q", rawURL)
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	var provider Provider
	found := false
	for p, info := range providers {
		if info.host == host {
			provider, found = p, true
			break
		}
	}
	if !found {
		return Repo{}, errs.New(errs.ErrCodeUnsupportedProvider, "unsupported provider for %s", rawURL)
	}

	path := strings.Trim(u.Path, "/")
	path = strings.TrimSuffix(path, ".git")
	segs := strings.Split(path, "/")
	if len(segs) < 2 || segs[0] == "" {
		return Repo{}, errs.New(errs.ErrCodeInvalidInput, "repository URL %s has no owner/name path", rawURL)
	}

	// GitLab-style forges allow nested namespaces; everything before the
	// final segment is the owner.
	return Repo{
		Provider: provider,
		Owner:    strings.Join(segs[:len(segs)-1], "/"),
		Name:     segs[len(segs)-1],
	}, nil
}

// VendorRule maps a dependency-name prefix to the forge its repositories
// live on. Namespace overrides the repository namespace when it differs from
// the package vendor.
type VendorRule struct {
	Prefix    string
	Provider  Provider
	Namespace string
}

// RepoForPackage maps a composer package name to a repository reference
// using the first matching vendor rule. Returns ok=false when no rule
// matches or the name has no vendor/name shape; such dependencies stay
// unresolved leaf edges.
func RepoForPackage(name string, rules []VendorRule) (Repo, bool) {
	vendor, pkg, hasSlash := strings.Cut(name, "/")
	if !hasSlash || pkg == "" {
		return Repo{}, false
	}
	for _, rule := range rules {
		if !strings.HasPrefix(name, rule.Prefix) {
			continue
		}
		owner := vendor
		if rule.Namespace != "" {
			owner = rule.Namespace
		}
		return Repo{Provider: rule.Provider, Owner: owner, Name: pkg}, true
	}
	return Repo{}, false
}

// RegistryURL returns the package-registry page for a dependency name.
// Drupal-ecosystem packages link to their drupal.org project page; anything
// else links to Packagist.
func RegistryURL(pkg string) string {
	if project, ok := strings.CutPrefix(pkg, "drupal/"); ok {
		return "https://www.drupal.org/project/" + project
	}
	return "https://packagist.org/packages/" + pkg
}
