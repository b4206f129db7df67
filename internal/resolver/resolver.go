// Package resolver derives the build configuration record for a single
// tweak by consulting the static metadata tables.
package resolver

import (
	"context"
	"fmt"

	"github.com/Balackburn/tweakplan/internal/ctxlog"
	"github.com/Balackburn/tweakplan/internal/registry"
	"github.com/Balackburn/tweakplan/internal/tweak"
)

// Resolver turns repository references into configuration records. Each
// field of the record comes from an independent table lookup with its own
// default, so an identifier absent from every table still resolves.
type Resolver struct {
	reg *registry.Registry
}

// New creates a Resolver backed by the given registry.
func New(reg *registry.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Resolve produces the configuration record for one repository reference.
// Unknown identifiers resolve to all defaults; the only error case is a
// reference that normalizes to an empty identifier.
func (r *Resolver) Resolve(ctx context.Context, repo string) (*tweak.Record, error) {
	logger := ctxlog.FromContext(ctx)

	id := tweak.NormalizeID(repo)
	if id == "" {
		return nil, fmt.Errorf("reference %q normalizes to an empty identifier", repo)
	}

	logger.Info("Analyzing tweak.", "repo", repo, "id", id)

	rec := &tweak.Record{
		ID:   id,
		Repo: repo,
	}

	// Fetch method precedence: release, then appex, then the build default.
	switch {
	case r.reg.HasRelease(id):
		rec.Fetch = tweak.FetchRelease
		logger.Debug("Fetch method resolved.", "id", id, "fetch", rec.Fetch, "reason", "known to have releases")
	case r.reg.IsAppex(id):
		rec.Fetch = tweak.FetchAppex
		logger.Debug("Fetch method resolved.", "id", id, "fetch", rec.Fetch, "reason", "contains .appex")
	default:
		rec.Fetch = tweak.FetchBuild
		logger.Debug("Fetch method resolved.", "id", id, "fetch", rec.Fetch, "reason", "default")
	}

	// The build command only applies to tweaks compiled from source.
	if rec.Fetch == tweak.FetchBuild {
		rec.BuildCmd = r.reg.BuildCmd(id)
		if rec.BuildCmd != r.reg.DefaultBuildCmd() {
			logger.Debug("Special build command.", "id", id, "build_cmd", rec.BuildCmd)
		}
	}

	// Deb asset filters only make sense for release downloads; filters
	// defined for a build-method tweak are dropped here.
	if rec.Fetch == tweak.FetchRelease {
		if f, ok := r.reg.DebFilterFor(id); ok {
			rec.DebFilter = f.Filter
			rec.DebExclude = f.Exclude
			logger.Debug("Deb asset filters.", "id", id, "deb_filter", f.Filter, "deb_exclude", f.Exclude)
		}
	}

	if deps := r.reg.Dependencies(id); len(deps) > 0 {
		rec.DependsOn = deps
		logger.Debug("Dependencies.", "id", id, "depends_on", deps)
	}

	if cmd, ok := r.reg.PreBuildCmd(id); ok {
		rec.PreBuildCmd = cmd
		logger.Debug("Pre-build patch.", "id", id, "pre_build_cmd", cmd)
	}

	rec.Headers = r.reg.Headers(id)
	logger.Debug("Required headers.", "id", id, "headers", rec.Headers)

	return rec, nil
}
