// Package app wires the analyzer together: it owns the logger, the
// metadata registry and the run pipeline that turns a tweak list into a
// complete build configuration document.
package app
