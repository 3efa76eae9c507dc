package depgraph

import (
	"context"

	"github.com/thejimbirch/dependgen/pkg/composer"
	errs "github.com/thejimbirch/dependgen/pkg/errors"
	"github.com/thejimbirch/dependgen/pkg/forge"
)

// ManifestFetcher retrieves and parses the manifest for a resolved
// repository reference. *composer.Fetcher satisfies it.
type ManifestFetcher interface {
	FetchManifest(ctx context.Context, repo forge.Repo) (*composer.Manifest, error)
}

// BranchResolver looks up a repository's default branch. *forge.Client
// satisfies it.
type BranchResolver interface {
	DefaultBranch(ctx context.Context, repo forge.Repo) (string, error)
}

// Walker builds the transitive dependency graph with a queue-based
// breadth-first traversal. A visited set guarantees each package is
// processed at most once, which also guarantees termination on cyclic
// dependency declarations.
//
// Root failures abort the walk; per-dependency failures are recovered
// locally (the dependency stays a bare edge, or becomes a leaf node when
// only its manifest is missing) and logged through logf.
type Walker struct {
	fetcher  ManifestFetcher
	branches BranchResolver
	rules    []forge.VendorRule
	logf     func(format string, args ...any)
}

// NewWalker creates a Walker. logf may be nil to discard warnings.
func NewWalker(fetcher ManifestFetcher, branches BranchResolver, rules []forge.VendorRule, logf func(string, ...any)) *Walker {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Walker{fetcher: fetcher, branches: branches, rules: rules, logf: logf}
}

// item is one queued traversal step. The root carries a fully resolved
// reference; dependencies are resolved when dequeued.
type item struct {
	name string
	repo forge.Repo
	root bool
}

// Walk traverses the dependency graph starting at root, which must already
// have its branch resolved. rootName keys the root node (typically the
// repository's owner/name).
func (w *Walker) Walk(ctx context.Context, root forge.Repo, rootName string) (*Graph, error) {
	g := New()
	visited := make(map[string]bool)
	queue := []item{{name: rootName, repo: root, root: true}}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		if visited[it.name] {
			continue
		}
		visited[it.name] = true

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		repo := it.repo
		if !it.root {
			resolved, ok := w.resolve(ctx, it.name)
			if !ok {
				// Unresolved leaf edge: no node of its own.
				continue
			}
			repo = resolved
		}

		manifest, err := w.fetcher.FetchManifest(ctx, repo)
		if err != nil {
			if it.root {
				return nil, err
			}
			// Recoverable skip: the dependency becomes a leaf node with no
			// further expansion.
			w.logf("skipping %s: %v", it.name, err)
			_ = g.AddNode(Node{Name: it.name, Type: "unknown"})
			continue
		}

		node := Node{Name: it.name, Type: manifest.Type}
		for _, dep := range manifest.Require {
			node.Deps = append(node.Deps, Edge{Name: dep.Name, Constraint: dep.Constraint})
		}
		_ = g.AddNode(node)

		for _, dep := range manifest.Require {
			if visited[dep.Name] || !w.recursable(dep.Name) {
				continue
			}
			queue = append(queue, item{name: dep.Name})
		}
	}

	return g, nil
}

// resolve maps a dependency name to a branch-resolved repository reference.
// Both failure modes (no vendor rule, failed branch lookup) are recoverable
// per-node conditions.
func (w *Walker) resolve(ctx context.Context, name string) (forge.Repo, bool) {
	repo, ok := forge.RepoForPackage(name, w.rules)
	if !ok {
		w.logf("%v", errs.New(errs.ErrCodeUnresolvedDependency,
			"no repository mapping for %s; kept as leaf edge", name))
		return forge.Repo{}, false
	}

	branch, err := w.branches.DefaultBranch(ctx, repo)
	if err != nil {
		w.logf("skipping %s: %v", name, err)
		return forge.Repo{}, false
	}
	return repo.WithBranch(branch), true
}

// recursable reports whether a dependency name is worth enqueuing: it must
// look like a composer package and match a vendor rule. Anything else stays
// a rendered edge without a node.
func (w *Walker) recursable(name string) bool {
	if !composer.IsPackageName(name) {
		return false
	}
	_, ok := forge.RepoForPackage(name, w.rules)
	return ok
}
