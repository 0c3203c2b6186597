// Package catalog is the published corpus of validation patterns.
//
// Each domain lives in a small constructor function grouped by topic
// (email.go, network.go, paths.go, ...). Sources are raw string literals and
// are the exact text shown to readers, so any edit to escaping or class order
// is a visible change. Every variant carries its conformance table; the table
// is the regression contract for the source next to it.
//
// Default returns the process-wide registry built from Domains on first use.
package catalog
