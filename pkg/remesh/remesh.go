// Package remesh implements the incremental remesher: fixed passes of
// split/collapse/flip/tangential-relax/(optional) project, built on
// pkg/mesh's edit primitives and safety predicates.
package remesh

import (
	"github.com/chazu/lignin-geo/pkg/mesh"
	"github.com/chazu/lignin-geo/pkg/spatial"
)

// Options configures a remeshing run.
type Options struct {
	TargetLength     float64
	Passes           int
	MinQuality       float64
	PreserveBoundary bool

	// Project, if non-nil, re-projects every vertex onto it at the end
	// of every pass. Build one with BuildProjectionIndex before the
	// first pass mutates the mesh.
	Project spatial.NearestPointIndex
}

// Stats summarizes a completed remeshing run.
type Stats struct {
	Splits    int
	Collapses int
	Flips     int
	Relaxed   int
	Projected int
	PassesRun int
}

// Run executes Options.Passes fixed passes over m in place.
func Run(m *mesh.Mesh, opts Options) Stats {
	var stats Stats
	maxStep := opts.TargetLength

	for p := 0; p < opts.Passes; p++ {
		stats.Splits += splitPass(m, opts.TargetLength)
		stats.Collapses += collapsePass(m, opts.TargetLength, opts.MinQuality, opts.PreserveBoundary)
		stats.Flips += flipPass(m)
		stats.Relaxed += TangentialRelax(m, maxStep)
		if opts.Project != nil {
			stats.Projected += projectPass(m, opts.Project)
		}
		stats.PassesRun++
	}
	return stats
}
