// Package registry holds the static metadata tables driving tweak analysis:
// fetch-method sets, build-command overrides, dependency and header lists,
// deb asset filters, pre-build patches, the known-incompatible exclusion
// table and the header repository mapping.
//
// The tables are authored as a single embedded HCL document and compiled
// into immutable lookup maps at process start. Every lookup is an O(1) map
// access; a miss always means "use the default", never an error.
package registry
