// Package module defines analysis units and builds them from a flat set of
// discovered manifest files.
package module

import (
	"path/filepath"
)

// A Unit is the atomic scope submitted to the remote scanner: either one
// standalone manifest, or one aggregator manifest plus all of its
// transitively owned members.
//
// Units are built once per pipeline run and are immutable afterwards.
type Unit struct {
	// Name is a human-readable display label.
	Name string
	// RootManifest is the absolute path of the unit's root manifest, which
	// doubles as the unit's identity within a run.
	RootManifest string
	// Manifests are the member manifest paths, root first. For standalone
	// units this is just the root.
	Manifests []string
	// IsAggregate is true when the unit was rooted at an aggregator.
	IsAggregate bool
}

// Dir returns the directory of the unit's root manifest. Member paths are
// made relative to this directory when packaging.
func (u Unit) Dir() string {
	return filepath.Dir(u.RootManifest)
}
