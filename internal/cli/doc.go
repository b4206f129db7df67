// Package cli parses command-line arguments and environment defaults into
// an app.Config.
package cli
