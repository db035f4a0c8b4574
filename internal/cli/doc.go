// Package cli wires the arcicons command tree: icon generation, tree
// scaffolding, style sheet inspection, user configuration, and
// diagnostics.
package cli
