package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/thejimbirch/dependgen/pkg/composer"
	"github.com/thejimbirch/dependgen/pkg/config"
	"github.com/thejimbirch/dependgen/pkg/depgraph"
	errs "github.com/thejimbirch/dependgen/pkg/errors"
	"github.com/thejimbirch/dependgen/pkg/forge"
	"github.com/thejimbirch/dependgen/pkg/render"
	"github.com/thejimbirch/dependgen/pkg/report"
)

// generateOpts holds the command-line flags for the generate operation.
type generateOpts struct {
	output     string // report file path override
	configPath string // explicit config file
	svg        bool   // also render an SVG
}

// runGenerate is the whole run: resolve the root repository, walk its
// dependency graph, render the diagram, write the report.
func (c *CLI) runGenerate(ctx context.Context, args []string, opts generateOpts) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}

	repo, err := forge.Parse(args[0])
	if err != nil {
		return err
	}

	client := forge.NewClient(cfg.Timeout())

	branch := ""
	if len(args) > 1 {
		branch = args[1]
	} else {
		c.Logger.Debugf("Looking up default branch for %s", repo.URL())
		branch, err = client.DefaultBranch(ctx, repo)
		if err != nil {
			return err
		}
	}
	repo = repo.WithBranch(branch)

	rootName := repo.FullName()
	c.Logger.Infof("Walking dependencies of %s (branch %s)", rootName, branch)

	walker := depgraph.NewWalker(
		composer.NewFetcher(client, cfg.Manifest),
		client,
		c.vendorRules(cfg),
		func(format string, a ...any) { c.Logger.Warnf(format, a...) },
	)

	sp := newSpinner(ctx, fmt.Sprintf("Resolving %s manifests", cfg.Manifest))
	sp.Start()
	prog := newProgress(c.Logger)
	g, err := walker.Walk(ctx, repo, rootName)
	sp.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Resolved %d repositories with %d dependencies", g.Len(), g.EdgeCount()))

	diagram := render.Mermaid(g, rootName)
	if err := report.Write(g, diagram, rootName, cfg.Output); err != nil {
		return err
	}
	printSuccess("%s file created!", cfg.Output)

	if opts.svg {
		if err := c.writeSVG(ctx, g, rootName, cfg.Output); err != nil {
			return err
		}
	}

	return nil
}

// writeSVG renders the graph through Graphviz next to the Markdown report.
func (c *CLI) writeSVG(ctx context.Context, g *depgraph.Graph, rootName, reportPath string) error {
	svg, err := render.SVG(ctx, render.ToDOT(g, rootName))
	if err != nil {
		return err
	}
	path := strings.TrimSuffix(reportPath, ".md") + ".svg"
	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeWriteError, err, "write SVG to %s", path)
	}
	printSuccess("%s file created!", path)
	return nil
}

// vendorRules converts configured rules into forge rules, dropping entries
// naming unknown providers with a warning.
func (c *CLI) vendorRules(cfg config.Config) []forge.VendorRule {
	var rules []forge.VendorRule
	for _, r := range cfg.Resolve.Rules {
		provider, ok := forge.ProviderByName(r.Provider)
		if !ok {
			c.Logger.Warnf("ignoring rule for prefix %q: unknown provider %q", r.Prefix, r.Provider)
			continue
		}
		rules = append(rules, forge.VendorRule{
			Prefix:    r.Prefix,
			Provider:  provider,
			Namespace: r.Namespace,
		})
	}
	return rules
}
