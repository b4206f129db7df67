package app

import (
	"context"
	"fmt"

	"github.com/Balackburn/tweakplan/internal/ctxlog"
	"github.com/Balackburn/tweakplan/internal/dag"
	"github.com/Balackburn/tweakplan/internal/headers"
	"github.com/Balackburn/tweakplan/internal/manifest"
	"github.com/Balackburn/tweakplan/internal/tweak"
)

// Run executes the analyzer pipeline: load the tweak list, filter out
// known-incompatible tweaks, resolve each remaining tweak to a
// configuration record, compute the build order, aggregate headers and
// rewrite the config document. Any failure before the final write leaves
// the input document untouched.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	doc, err := manifest.Load(appConfig.ConfigPath)
	if err != nil {
		return err
	}
	if len(doc.Tweakslist) == 0 {
		return fmt.Errorf("no tweaks found in %s tweakslist", appConfig.ConfigPath)
	}
	a.logger.Info("Found tweaks to analyze.", "count", len(doc.Tweakslist))

	// Filter out tweaks that are known-broken. They are report-only and
	// never reach resolution, the build order or the output list.
	active := make([]string, 0, len(doc.Tweakslist))
	for _, repo := range doc.Tweakslist {
		if reason, ok := a.registry.SkipReason(tweak.NormalizeID(repo)); ok {
			a.logger.Warn("Skipping incompatible tweak.", "repo", repo, "reason", reason)
			continue
		}
		active = append(active, repo)
	}

	// Fail-fast: one unresolvable tweak aborts the whole run rather than
	// producing a partial document.
	records := make([]*tweak.Record, 0, len(active))
	for _, repo := range active {
		rec, err := a.resolver.Resolve(ctx, repo)
		if err != nil {
			return fmt.Errorf("failed to analyze %s: %w", repo, err)
		}
		records = append(records, rec)
	}

	graph, err := dag.Build(ctx, records)
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}
	order, cyclic := graph.TopoSort()
	if cyclic {
		a.logger.Warn("Circular dependency detected, using lexicographic order.")
	}
	a.logger.Info("Build order computed.", "order", order)

	required := headers.Required(records)
	located := headers.Locate(required, a.registry)
	for _, name := range required {
		if repo, ok := located[name]; ok {
			a.logger.Info("Required header.", "header", name, "repo", repo)
		}
	}

	out := &manifest.Document{
		Tweakslist: active,
		Config:     records,
		BuildOrder: order,
		Headers:    located,
		Metadata: &manifest.Metadata{
			TotalTweaks:          len(active),
			SuccessfullyAnalyzed: len(records),
			RequiredHeaders:      required,
		},
	}
	if err := out.Save(appConfig.ConfigPath); err != nil {
		return err
	}

	a.logger.Info("Updated config.",
		"path", appConfig.ConfigPath,
		"analyzed", len(records),
		"total", len(active),
		"required_headers", len(required),
	)
	a.logger.Debug("App.Run method finished.")
	return nil
}
