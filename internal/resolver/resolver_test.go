package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Balackburn/tweakplan/internal/registry"
	"github.com/Balackburn/tweakplan/internal/tweak"
)

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	reg, err := registry.Load(context.Background())
	require.NoError(t, err)
	return New(reg)
}

func TestResolve_UnknownTweakUsesEveryDefault(t *testing.T) {
	t.Parallel()

	r := newResolver(t)
	rec, err := r.Resolve(context.Background(), "Someone/Completely-Unknown")
	require.NoError(t, err)

	assert.Equal(t, "completelyunknown", rec.ID)
	assert.Equal(t, "Someone/Completely-Unknown", rec.Repo)
	assert.Equal(t, tweak.FetchBuild, rec.Fetch)
	assert.Equal(t, "make clean package DEBUG=0 FINALPACKAGE=1", rec.BuildCmd)
	assert.Equal(t, []string{"YouTubeHeader"}, rec.Headers)
	assert.Empty(t, rec.DependsOn)
	assert.Empty(t, rec.DebFilter)
	assert.Empty(t, rec.DebExclude)
	assert.Empty(t, rec.PreBuildCmd)
}

func TestResolve_ReleaseTweak(t *testing.T) {
	t.Parallel()

	r := newResolver(t)
	rec, err := r.Resolve(context.Background(), "dayanch96/YTLite")
	require.NoError(t, err)

	assert.Equal(t, "ytlite", rec.ID)
	assert.Equal(t, tweak.FetchRelease, rec.Fetch)
	// Release tweaks are downloaded, not compiled.
	assert.Empty(t, rec.BuildCmd)
	assert.Equal(t, "iphoneos-arm64", rec.DebFilter)
	assert.Equal(t, "roothide", rec.DebExclude)
	assert.Equal(t, []string{"YouTubeHeader", "PSHeader"}, rec.Headers)
}

func TestResolve_AppexTweak(t *testing.T) {
	t.Parallel()

	r := newResolver(t)
	rec, err := r.Resolve(context.Background(), "CokePokes/YouTubeExtensions")
	require.NoError(t, err)

	assert.Equal(t, "youtubeextensions", rec.ID)
	assert.Equal(t, tweak.FetchAppex, rec.Fetch)
	assert.Empty(t, rec.BuildCmd)
	assert.Empty(t, rec.DebFilter)
}

func TestResolve_BuildCommandOverride(t *testing.T) {
	t.Parallel()

	r := newResolver(t)
	rec, err := r.Resolve(context.Background(), "PoomSmart/YTUHD")
	require.NoError(t, err)

	assert.Equal(t, tweak.FetchBuild, rec.Fetch)
	assert.Equal(t, "make clean package DEBUG=0 FINALPACKAGE=1 SIDELOAD=1", rec.BuildCmd)
}

func TestResolve_Dependencies(t *testing.T) {
	t.Parallel()

	r := newResolver(t)
	rec, err := r.Resolve(context.Background(), "PoomSmart/YouPiP")
	require.NoError(t, err)

	assert.Equal(t, []string{"ytvideooverlay"}, rec.DependsOn)
	assert.Equal(t, []string{"YouTubeHeader"}, rec.Headers)
}

func TestResolve_PreBuildPatch(t *testing.T) {
	t.Parallel()

	r := newResolver(t)
	rec, err := r.Resolve(context.Background(), "arichornlover/YouTimeStamp")
	require.NoError(t, err)

	assert.Equal(t, "youtimestamp", rec.ID)
	assert.Contains(t, rec.PreBuildCmd, "initYTVideoOverlay(TweakKey, nil);")
}

func TestResolve_FetchPrecedence(t *testing.T) {
	t.Parallel()

	// A tweak flagged both release and appex resolves to release.
	src := `
defaults {
  build_cmd       = "make"
  fallback_header = "YouTubeHeader"
}

tweak "both" {
  release = true
  appex   = true
}
`
	reg, err := registry.LoadSource(context.Background(), []byte(src), "test.hcl")
	require.NoError(t, err)

	rec, err := New(reg).Resolve(context.Background(), "Owner/Both")
	require.NoError(t, err)
	assert.Equal(t, tweak.FetchRelease, rec.Fetch)
}

func TestResolve_DebFiltersDroppedForBuildTweaks(t *testing.T) {
	t.Parallel()

	// Filters defined for a tweak that is compiled from source are
	// silently dropped from the record.
	src := `
defaults {
  build_cmd       = "make"
  fallback_header = "YouTubeHeader"
}

tweak "built" {
  deb_filter  = "iphoneos-arm64"
  deb_exclude = "roothide"
}
`
	reg, err := registry.LoadSource(context.Background(), []byte(src), "test.hcl")
	require.NoError(t, err)

	rec, err := New(reg).Resolve(context.Background(), "Owner/Built")
	require.NoError(t, err)
	assert.Equal(t, tweak.FetchBuild, rec.Fetch)
	assert.Empty(t, rec.DebFilter)
	assert.Empty(t, rec.DebExclude)
}

func TestResolve_EmptyIdentifierFails(t *testing.T) {
	t.Parallel()

	r := newResolver(t)
	_, err := r.Resolve(context.Background(), "Owner/---")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty identifier")
}
