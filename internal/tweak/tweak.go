// Package tweak defines the tweak identifier scheme and the configuration
// record produced for each analyzed tweak.
package tweak

import "strings"

// Fetch is the strategy used to obtain a build artifact for a tweak.
type Fetch string

const (
	// FetchRelease downloads a prebuilt .deb from the tweak's releases.
	FetchRelease Fetch = "release"
	// FetchAppex extracts an .appex extension bundle from the repository.
	FetchAppex Fetch = "appex"
	// FetchBuild compiles the tweak from source.
	FetchBuild Fetch = "build"
)

// Record is the full build configuration derived for one tweak. Optional
// fields are omitted from the JSON document when empty.
type Record struct {
	ID          string   `json:"id"`
	Repo        string   `json:"repo"`
	Fetch       Fetch    `json:"fetch"`
	BuildCmd    string   `json:"build_cmd,omitempty"`
	DebFilter   string   `json:"deb_filter,omitempty"`
	DebExclude  string   `json:"deb_exclude,omitempty"`
	DependsOn   []string `json:"depends_on,omitempty"`
	PreBuildCmd string   `json:"pre_build_cmd,omitempty"`
	Headers     []string `json:"headers,omitempty"`
}

// idSeparators are stripped from repository names during normalization.
var idSeparators = strings.NewReplacer("-", "", "_", "", ".", "")

// NormalizeID converts a repository reference like "Owner/Repo-Name" into
// the canonical tweak identifier ("reponame"). The owner segment is
// discarded, separators are removed and the result is lowercased. The
// function is pure and idempotent.
func NormalizeID(repo string) string {
	name := repo
	if idx := strings.LastIndex(repo, "/"); idx >= 0 {
		name = repo[idx+1:]
	}
	return strings.ToLower(idSeparators.Replace(name))
}
