package registry

// DebFilter holds the substring constraints used to pick the correct .deb
// asset when a release ships multiple variants.
type DebFilter struct {
	// Filter must appear in the chosen asset filename. Empty means no
	// positive constraint.
	Filter string
	// Exclude must not appear in the chosen asset filename.
	Exclude string
}

// Registry is the compiled, immutable form of the metadata tables. It is
// built once by Load and never mutated afterwards.
type Registry struct {
	defaultBuildCmd string
	fallbackHeader  string

	hasRelease  map[string]struct{}
	appex       map[string]struct{}
	buildCmds   map[string]string
	deps        map[string][]string
	headers     map[string][]string
	debFilters  map[string]DebFilter
	preBuild    map[string]string
	skips       map[string]string
	headerRepos map[string]string
}

// DefaultBuildCmd returns the canonical build command used when no
// per-tweak override exists.
func (r *Registry) DefaultBuildCmd() string {
	return r.defaultBuildCmd
}

// FallbackHeader returns the header package assumed for tweaks with no
// explicit header list.
func (r *Registry) FallbackHeader() string {
	return r.fallbackHeader
}

// HasRelease reports whether the tweak is known to publish release assets.
func (r *Registry) HasRelease(id string) bool {
	_, ok := r.hasRelease[id]
	return ok
}

// IsAppex reports whether the tweak ships as an .appex extension bundle.
func (r *Registry) IsAppex(id string) bool {
	_, ok := r.appex[id]
	return ok
}

// BuildCmd returns the build command for the tweak. Overrides are total
// replacements of the default, never merges.
func (r *Registry) BuildCmd(id string) string {
	if cmd, ok := r.buildCmds[id]; ok {
		return cmd
	}
	return r.defaultBuildCmd
}

// Dependencies returns the tweaks that must be present as sibling clones
// before this tweak compiles. The result is a copy; missing means none.
func (r *Registry) Dependencies(id string) []string {
	deps, ok := r.deps[id]
	if !ok {
		return nil
	}
	out := make([]string, len(deps))
	copy(out, deps)
	return out
}

// Headers returns the header packages the tweak needs. A tweak with no
// explicit entry needs the fallback header; the result is never empty.
func (r *Registry) Headers(id string) []string {
	hdrs, ok := r.headers[id]
	if !ok {
		return []string{r.fallbackHeader}
	}
	out := make([]string, len(hdrs))
	copy(out, hdrs)
	return out
}

// DebFilterFor returns the deb asset filter for the tweak, if any.
func (r *Registry) DebFilterFor(id string) (DebFilter, bool) {
	f, ok := r.debFilters[id]
	return f, ok
}

// PreBuildCmd returns the shell command to run inside the clone directory
// before the main build command, if any.
func (r *Registry) PreBuildCmd(id string) (string, bool) {
	cmd, ok := r.preBuild[id]
	return cmd, ok
}

// SkipReason returns the reason a tweak is excluded from the build
// entirely. The second return value is false for compatible tweaks.
func (r *Registry) SkipReason(id string) (string, bool) {
	reason, ok := r.skips[id]
	return reason, ok
}

// HeaderRepo returns the source location for a header package. Headers
// absent from the table have no known location.
func (r *Registry) HeaderRepo(name string) (string, bool) {
	repo, ok := r.headerRepos[name]
	return repo, ok
}
