package registry

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/Balackburn/tweakplan/internal/ctxlog"
)

//go:embed registry.hcl
var registryHCL []byte

// Load parses the embedded registry document and compiles it into lookup
// maps. Any malformed block, duplicate identifier or missing defaults
// block is a fatal startup error.
func Load(ctx context.Context) (*Registry, error) {
	return LoadSource(ctx, registryHCL, "registry.hcl")
}

// LoadSource compiles a registry from an arbitrary HCL document. The
// filename is used only for diagnostics.
func LoadSource(ctx context.Context, src []byte, filename string) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading metadata tables.", "file", filename)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}

	var root rootSchema
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, diags)
	}

	if root.Defaults == nil {
		return nil, fmt.Errorf("%s: missing required defaults block", filename)
	}

	reg := &Registry{
		defaultBuildCmd: root.Defaults.BuildCmd,
		fallbackHeader:  root.Defaults.FallbackHeader,
		hasRelease:      make(map[string]struct{}),
		appex:           make(map[string]struct{}),
		buildCmds:       make(map[string]string),
		deps:            make(map[string][]string),
		headers:         make(map[string][]string),
		debFilters:      make(map[string]DebFilter),
		preBuild:        make(map[string]string),
		skips:           make(map[string]string),
		headerRepos:     make(map[string]string),
	}

	for _, t := range root.Tweaks {
		if err := reg.addTweak(t); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
	}

	for _, h := range root.Headers {
		if _, ok := reg.headerRepos[h.Name]; ok {
			return nil, fmt.Errorf("%s: duplicate header block %q", filename, h.Name)
		}
		reg.headerRepos[h.Name] = h.Repo
	}

	logger.Debug("Registry tables compiled.",
		"tweaks", len(root.Tweaks),
		"headers", len(reg.headerRepos),
		"skips", len(reg.skips),
	)
	return reg, nil
}

// addTweak translates one tweak block into its entries across the
// independent lookup maps.
func (r *Registry) addTweak(t *tweakSchema) error {
	if r.seen(t.ID) {
		return fmt.Errorf("duplicate tweak block %q", t.ID)
	}

	if t.Release {
		r.hasRelease[t.ID] = struct{}{}
	}
	if t.Appex {
		r.appex[t.ID] = struct{}{}
	}
	if len(t.DependsOn) > 0 {
		r.deps[t.ID] = t.DependsOn
	}
	if len(t.Headers) > 0 {
		r.headers[t.ID] = t.Headers
	}

	buildCmd, ok, err := stringValue(t.BuildCmd)
	if err != nil {
		return fmt.Errorf("tweak %q: invalid build_cmd: %w", t.ID, err)
	}
	if ok {
		r.buildCmds[t.ID] = buildCmd
	}

	filter, filterOK, err := stringValue(t.DebFilter)
	if err != nil {
		return fmt.Errorf("tweak %q: invalid deb_filter: %w", t.ID, err)
	}
	exclude, excludeOK, err := stringValue(t.DebExclude)
	if err != nil {
		return fmt.Errorf("tweak %q: invalid deb_exclude: %w", t.ID, err)
	}
	if filterOK || excludeOK {
		r.debFilters[t.ID] = DebFilter{Filter: filter, Exclude: exclude}
	}

	preBuild, ok, err := stringValue(t.PreBuildCmd)
	if err != nil {
		return fmt.Errorf("tweak %q: invalid pre_build_cmd: %w", t.ID, err)
	}
	if ok {
		r.preBuild[t.ID] = preBuild
	}

	skip, ok, err := stringValue(t.Skip)
	if err != nil {
		return fmt.Errorf("tweak %q: invalid skip: %w", t.ID, err)
	}
	if ok {
		r.skips[t.ID] = skip
	}

	return nil
}

// seen reports whether any table already holds an entry for the id. Used
// only for duplicate-block detection during load.
func (r *Registry) seen(id string) bool {
	if _, ok := r.hasRelease[id]; ok {
		return true
	}
	if _, ok := r.appex[id]; ok {
		return true
	}
	if _, ok := r.buildCmds[id]; ok {
		return true
	}
	if _, ok := r.deps[id]; ok {
		return true
	}
	if _, ok := r.headers[id]; ok {
		return true
	}
	if _, ok := r.debFilters[id]; ok {
		return true
	}
	if _, ok := r.preBuild[id]; ok {
		return true
	}
	if _, ok := r.skips[id]; ok {
		return true
	}
	return false
}

// stringValue converts an optional cty value into a Go string. The second
// return value is false when the attribute was absent or null.
func stringValue(v *cty.Value) (string, bool, error) {
	if v == nil || v.IsNull() {
		return "", false, nil
	}
	converted, err := convert.Convert(*v, cty.String)
	if err != nil {
		return "", false, err
	}
	var s string
	if err := gocty.FromCtyValue(converted, &s); err != nil {
		return "", false, err
	}
	return s, true, nil
}
