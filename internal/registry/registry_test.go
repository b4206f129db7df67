package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedTables(t *testing.T) {
	t.Parallel()

	reg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "make clean package DEBUG=0 FINALPACKAGE=1", reg.DefaultBuildCmd())
	assert.Equal(t, "YouTubeHeader", reg.FallbackHeader())

	// Fetch-method sets.
	assert.True(t, reg.HasRelease("ytlite"))
	assert.True(t, reg.HasRelease("returnyoutubedislikes"))
	assert.False(t, reg.HasRelease("youpip"))
	assert.True(t, reg.IsAppex("youtubeextensions"))
	assert.True(t, reg.IsAppex("openyoutubesafariextension"))
	assert.False(t, reg.IsAppex("ytlite"))

	// Build-command overrides are total replacements.
	assert.Equal(t, "make clean package DEBUG=0 FINALPACKAGE=1 SIDELOAD=1", reg.BuildCmd("ytuhd"))
	assert.Equal(t, reg.DefaultBuildCmd(), reg.BuildCmd("youpip"))

	// Dependency lists.
	assert.Equal(t, []string{"ytvideooverlay"}, reg.Dependencies("youpip"))
	assert.Nil(t, reg.Dependencies("ytvideooverlay"))

	// Header lists fall back to the default header, never to empty.
	assert.Equal(t, []string{"YouTubeHeader", "PSHeader"}, reg.Headers("ytlite"))
	assert.Equal(t, []string{"YouTubeHeader"}, reg.Headers("sometweaknobodyknows"))

	// Deb asset filters.
	f, ok := reg.DebFilterFor("ytlite")
	require.True(t, ok)
	assert.Equal(t, DebFilter{Filter: "iphoneos-arm64", Exclude: "roothide"}, f)
	f, ok = reg.DebFilterFor("returnyoutubedislikes")
	require.True(t, ok)
	assert.Equal(t, DebFilter{Exclude: "roothide"}, f)
	_, ok = reg.DebFilterFor("youpip")
	assert.False(t, ok)

	// Pre-build patches and the exclusion table.
	cmd, ok := reg.PreBuildCmd("youtimestamp")
	require.True(t, ok)
	assert.Contains(t, cmd, "initYTVideoOverlay(TweakKey, nil);")
	reason, ok := reg.SkipReason("youtimestamp")
	require.True(t, ok)
	assert.Contains(t, reason, "incompatible with current YouTubeHeader")
	_, ok = reg.SkipReason("ytlite")
	assert.False(t, ok)

	// Header repository table.
	repo, ok := reg.HeaderRepo("YouTubeHeader")
	require.True(t, ok)
	assert.Equal(t, "https://github.com/PoomSmart/YouTubeHeader.git", repo)
	_, ok = reg.HeaderRepo("NoSuchHeader")
	assert.False(t, ok)
}

func TestLoad_ReturnedSlicesAreCopies(t *testing.T) {
	t.Parallel()

	reg, err := Load(context.Background())
	require.NoError(t, err)

	deps := reg.Dependencies("youpip")
	require.Equal(t, []string{"ytvideooverlay"}, deps)
	deps[0] = "mutated"
	assert.Equal(t, []string{"ytvideooverlay"}, reg.Dependencies("youpip"))

	hdrs := reg.Headers("ytlite")
	hdrs[0] = "mutated"
	assert.Equal(t, []string{"YouTubeHeader", "PSHeader"}, reg.Headers("ytlite"))
}

func TestLoadSource_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "malformed document",
			src:     `tweak "a" {`,
			wantErr: "failed to parse",
		},
		{
			name: "missing defaults block",
			src: `
tweak "a" {
  release = true
}
`,
			wantErr: "missing required defaults block",
		},
		{
			name: "duplicate tweak block",
			src: `
defaults {
  build_cmd       = "make"
  fallback_header = "YouTubeHeader"
}

tweak "a" {
  release = true
}

tweak "a" {
  appex = true
}
`,
			wantErr: `duplicate tweak block "a"`,
		},
		{
			name: "duplicate header block",
			src: `
defaults {
  build_cmd       = "make"
  fallback_header = "YouTubeHeader"
}

header "H" {
  repo = "https://example.com/h.git"
}

header "H" {
  repo = "https://example.com/other.git"
}
`,
			wantErr: `duplicate header block "H"`,
		},
		{
			name: "non-string deb_filter",
			src: `
defaults {
  build_cmd       = "make"
  fallback_header = "YouTubeHeader"
}

tweak "a" {
  deb_filter = ["not", "a", "string"]
}
`,
			wantErr: "invalid deb_filter",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadSource(context.Background(), []byte(tc.src), "test.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadSource_NumericOverrideConverts(t *testing.T) {
	t.Parallel()

	// cty converts scalars to string where possible, matching HCL's
	// usual conversion rules.
	src := `
defaults {
  build_cmd       = "make"
  fallback_header = "YouTubeHeader"
}

tweak "a" {
  build_cmd = 42
}
`
	reg, err := LoadSource(context.Background(), []byte(src), "test.hcl")
	require.NoError(t, err)
	assert.Equal(t, "42", reg.BuildCmd("a"))
}
