// Package headers aggregates the header-package requirements of a set of
// resolved tweak records.
package headers

import (
	"sort"

	"github.com/Balackburn/tweakplan/internal/registry"
	"github.com/Balackburn/tweakplan/internal/tweak"
)

// Required returns the lexicographically sorted union of the header
// packages declared by the given records, without duplicates.
func Required(records []*tweak.Record) []string {
	set := make(map[string]struct{})
	for _, rec := range records {
		for _, h := range rec.Headers {
			set[h] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for h := range set {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}

// Locate maps each required header to its source location from the header
// table. Headers with no known location are silently omitted.
func Locate(required []string, reg *registry.Registry) map[string]string {
	located := make(map[string]string)
	for _, h := range required {
		if repo, ok := reg.HeaderRepo(h); ok {
			located[h] = repo
		}
	}
	return located
}
