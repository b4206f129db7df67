// Package dag models the dependency graph between tweaks and computes a
// deterministic build order for it.
package dag
